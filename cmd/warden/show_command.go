package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"warden/internal/config"
	"warden/internal/roster"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Display a student's registration details",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))

			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				record, err := store.GetByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				if record == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "No registration found for %q\n", name)
					return nil
				}
				if asJSON {
					return writeJSON(cmd, newRecordView(record))
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Name:       %s\n", record.Name)
				fmt.Fprintf(out, "Record:     %d\n", record.ID)
				fmt.Fprintf(out, "Distance:   %d\n", record.Distance)
				fmt.Fprintf(out, "Fee paid:   %s\n", yesNo(record.FeePaid))
				fmt.Fprintf(out, "Status:     %s\n", record.Status.DisplayLabel())
				if record.ErrorMessage != "" {
					fmt.Fprintf(out, "Rejection:  %s\n", record.ErrorMessage)
				}
				fmt.Fprintf(out, "Registered: %s\n", record.CreatedAt.Local().Format(time.RFC3339))
				fmt.Fprintf(out, "Updated:    %s\n", record.UpdatedAt.Local().Format(time.RFC3339))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the record as JSON")
	return cmd
}
