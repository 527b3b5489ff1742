package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"warden/internal/admission"
	"warden/internal/config"
	"warden/internal/pipeline"
	"warden/internal/roster"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check registrar health",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			notifier, err := ctx.newNotifier()
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				printSectionHeader(out, "Admission stages", colorize)
				runner := pipeline.New(logger, notifier,
					admission.NewProximityCheck(cfg, logger),
					admission.NewPaymentCheck(logger),
					admission.NewAllocator(logger, notifier),
				)
				for _, health := range runner.Health(cmd.Context()) {
					printStatus(out, health.Name, boolStatus(health.Ready), health.Detail, colorize)
				}

				fmt.Fprintln(out)
				printSectionHeader(out, "Roster database", colorize)
				dbHealth, err := store.CheckHealth(cmd.Context())
				if err != nil {
					printStatus(out, "database", statusError, err.Error(), colorize)
					return nil
				}
				printStatus(out, "path", statusInfo, dbHealth.DBPath, colorize)
				printStatus(out, "readable", boolStatus(dbHealth.DatabaseReadable), "", colorize)
				printStatus(out, "schema", boolStatus(dbHealth.TableExists), "", colorize)
				printStatus(out, "integrity", boolStatus(dbHealth.IntegrityCheck), "", colorize)
				printStatus(out, "records", statusInfo, fmt.Sprintf("%d", dbHealth.TotalRecords), colorize)

				fmt.Fprintln(out)
				printSectionHeader(out, "Notifications", colorize)
				if cfg.Notifications.NtfyTopic == "" {
					printStatus(out, "ntfy", statusWarn, "topic not configured", colorize)
				} else {
					printStatus(out, "ntfy", statusOK, cfg.Notifications.NtfyTopic, colorize)
				}
				return nil
			})
		},
	}
}
