package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"warden/internal/notifications"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			notifier, err := ctx.newNotifier()
			if err != nil {
				return err
			}
			notifier.Hub().Register(notifications.NewConsoleObserver("console", cmd.OutOrStdout()))

			if err := notifier.Publish(cmd.Context(), notifications.EventTest, nil); err != nil {
				return fmt.Errorf("send test notification: %w", err)
			}
			if cfg.Notifications.NtfyTopic == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "ntfy_topic is not configured; notification delivered to console only")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Test notification sent")
			}
			return nil
		},
	}
}
