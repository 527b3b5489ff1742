package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"warden/internal/config"
	"warden/internal/roster"
	"warden/internal/services"
)

func newRosterCommand(ctx *commandContext) *cobra.Command {
	rosterCmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect and manage hostel registrations",
	}

	rosterCmd.AddCommand(newRosterListCommand(ctx))
	rosterCmd.AddCommand(newRosterStatusCommand(ctx))
	rosterCmd.AddCommand(newShowCommand(ctx))
	rosterCmd.AddCommand(newRosterWithdrawCommand(ctx))
	rosterCmd.AddCommand(newRosterClearCommand(ctx))
	rosterCmd.AddCommand(newRosterResetCommand(ctx))

	return rosterCmd
}

func newRosterListCommand(ctx *commandContext) *cobra.Command {
	var listStatuses []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered students",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := make([]roster.Status, 0, len(listStatuses))
			for _, statusStr := range listStatuses {
				status, ok := roster.ParseStatus(statusStr)
				if !ok {
					return fmt.Errorf("unknown status %q (expected one of %s)", statusStr, knownStatusList())
				}
				statuses = append(statuses, status)
			}

			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				records, err := store.List(cmd.Context(), statuses...)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, newRecordViews(records))
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Roster is empty")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, record := range records {
					rows = append(rows, []string{
						fmt.Sprintf("%d", record.ID),
						record.Name,
						fmt.Sprintf("%d", record.Distance),
						yesNo(record.FeePaid),
						record.Status.DisplayLabel(),
						record.CreatedAt.Local().Format(time.RFC3339),
					})
				}
				table := renderTable(
					[]string{"ID", "Name", "Distance", "Fee Paid", "Status", "Registered"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&listStatuses, "status", "s", nil, "Filter by roster status (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit records as JSON")
	return cmd
}

func newRosterStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show roster status summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if len(stats) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Roster is empty")
					return nil
				}

				rows := make([][]string, 0, len(stats))
				for _, status := range roster.AllStatuses() {
					count, ok := stats[status]
					if !ok {
						continue
					}
					rows = append(rows, []string{status.DisplayLabel(), fmt.Sprintf("%d", count)})
				}
				table := renderTable([]string{"Status", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}
}

func newRosterWithdrawCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "withdraw <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a student's registration",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				svc := roster.NewService(store, cfg, logger, nil)
				if err := svc.Withdraw(cmd.Context(), name); err != nil {
					if services.IsRecoverable(err) {
						fmt.Fprintln(cmd.OutOrStdout(), err)
						return nil
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Withdrew %s\n", name)
				return nil
			})
		},
	}
}

func newRosterClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all roster records",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				svc := roster.NewService(store, cfg, logger, nil)
				removed, err := svc.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d roster records\n", removed)
				return nil
			})
		},
	}
}

func newRosterResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-stuck",
		Short: "Return records stuck mid-admission to registered",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				reset, err := store.ResetStuckValidating(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reset %d records\n", reset)
				return nil
			})
		},
	}
}

func knownStatusList() string {
	statuses := roster.AllStatuses()
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}
