package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"warden/internal/config"
	"warden/internal/roster"
	"warden/internal/services"
)

func newRegisterCommand(ctx *commandContext) *cobra.Command {
	var distance int
	var feePaid bool

	cmd := &cobra.Command{
		Use:   "register <name>",
		Short: "Register a student for hostel admission",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			notifier, err := ctx.newNotifier()
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				svc := roster.NewService(store, cfg, logger, notifier)
				record, err := svc.Register(cmd.Context(), name, distance, feePaid)
				if err != nil {
					if services.IsRecoverable(err) {
						fmt.Fprintf(cmd.OutOrStdout(), "Registration refused: %v\n", err)
						return nil
					}
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Registered %s (record %d)\n", record.Name, record.ID)
				fmt.Fprintf(out, "Distance: %d  Fee paid: %s\n", record.Distance, yesNo(record.FeePaid))
				fmt.Fprintln(out, "Run `warden admit` to evaluate pending registrations.")
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&distance, "distance", "d", 0, "Distance from the hostel in domain units")
	cmd.Flags().BoolVar(&feePaid, "paid", false, "Mark the admission fee as paid")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}
