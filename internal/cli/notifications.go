package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Notification feed commands",
	}

	cmd.AddCommand(newNotificationsListCmd())
	cmd.AddCommand(newNotificationsReadCmd())

	return cmd
}

func newNotificationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the notification feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NotificationList

			if err := client.Get("/api/v1/notifications", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newNotificationsReadCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [id]",
		Short: "Mark a notification (or all of them) as read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if err := client.Post("/api/v1/notifications/read-all", nil, nil); err != nil {
					return err
				}
				NewOutput(cfg.Output).PrintMessage("All notifications marked read")
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("notification id or --all is required")
			}

			if err := client.Post("/api/v1/notifications/"+args[0]+"/read", nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Notification marked read")
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Mark every notification as read")

	return cmd
}
