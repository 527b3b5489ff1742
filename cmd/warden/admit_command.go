package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"warden/internal/admission"
	"warden/internal/config"
	"warden/internal/notifications"
	"warden/internal/pipeline"
	"warden/internal/roster"
	"warden/internal/services"
	"warden/internal/stage"
)

func newAdmitCommand(ctx *commandContext) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "admit [name]",
		Short: "Run the admission pipeline over pending registrations",
		Long: "Evaluates registered students through the admission checks in order:\n" +
			"proximity, payment, then room allocation. The first failing check\n" +
			"rejects the student; later checks are not consulted.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			notifier, err := ctx.newNotifier()
			if err != nil {
				return err
			}
			if !quiet {
				notifier.Hub().Register(notifications.NewConsoleObserver("console", cmd.OutOrStdout()))
			}

			return ctx.withStore(func(cfg *config.Config, store *roster.Store) error {
				runner := pipeline.New(logger, notifier,
					admission.NewProximityCheck(cfg, logger),
					admission.NewPaymentCheck(logger),
					admission.NewAllocator(logger, notifier),
				)

				records, err := admitCandidates(cmd.Context(), store, strings.TrimSpace(strings.Join(args, " ")))
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No registered students awaiting admission")
					return nil
				}

				for _, record := range records {
					if err := admitOne(cmd.Context(), store, runner, notifier, record, cmd.OutOrStdout()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress notification output on the console")
	return cmd
}

// admitCandidates resolves which records to evaluate: a named student, or every
// record still in the registered state.
func admitCandidates(ctx context.Context, store *roster.Store, name string) ([]*roster.Record, error) {
	if name == "" {
		return store.List(ctx, roster.StatusRegistered)
	}
	record, err := store.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, services.Wrap(services.ErrNotFound, "admit", "resolve",
			fmt.Sprintf("student %q is not registered", name), nil)
	}
	if record.Status != roster.StatusRegistered {
		return nil, services.Wrap(services.ErrValidation, "admit", "resolve",
			fmt.Sprintf("student %q is already %s", name, record.Status), nil)
	}
	return []*roster.Record{record}, nil
}

func admitOne(ctx context.Context, store *roster.Store, runner *pipeline.Runner, notifier notifications.Service, record *roster.Record, out io.Writer) error {
	record.Status = roster.StatusValidating
	if err := store.Update(ctx, record); err != nil {
		return err
	}

	runErr := runner.Run(ctx, record.Student())
	if runErr != nil {
		failure, ok := stage.AsFailure(runErr)
		if !ok {
			// Defect, not a validation outcome. Leave the record for
			// reset-stuck and surface the error.
			return runErr
		}
		record.SetRejected(failure.Reason)
		if err := store.Update(ctx, record); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s rejected at %s: %s\n", record.Name, failure.Rule, failure.Reason)
		return nil
	}

	record.SetAllocated()
	if err := store.Update(ctx, record); err != nil {
		return err
	}
	if err := notifier.Publish(ctx, notifications.EventAdmissionCompleted, notifications.Payload{
		"student": record.Name,
	}); err != nil {
		fmt.Fprintf(out, "notification failed: %v\n", err)
	}
	fmt.Fprintf(out, "%s admitted and allocated a room\n", record.Name)
	return nil
}
