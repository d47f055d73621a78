package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/otonaba/otonaba-cli/notifications"
)

func newNotificationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notif",
		Short: "Notifications",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return app.RequireAuth()
		},
	}
	cmd.AddCommand(
		newNotifListCmd(app),
		newNotifUnreadCmd(app),
		newNotifReadCmd(app),
		newNotifReadAllCmd(app),
		newNotifDeleteCmd(app),
		newNotifWatchCmd(app),
	)
	return cmd
}

func newNotifListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := notifications.List(cmd.Context(), app.Client)
			if err != nil {
				return err
			}
			renderNotifications(app.Out, list)
			return nil
		},
	}
}

func newNotifUnreadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unread",
		Short: "Show the unread notification count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := notifications.UnreadCount(cmd.Context(), app.Client)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%d unread notification(s)\n", count)
			return nil
		},
	}
}

func newNotifReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "notification")
			if err != nil {
				return err
			}
			if err := notifications.MarkRead(cmd.Context(), app.Client, id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Notification #%d marked read.\n", id)
			return nil
		},
	}
}

func newNotifReadAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := notifications.MarkAllRead(cmd.Context(), app.Client); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "All notifications marked read.")
			return nil
		},
	}
}

func newNotifDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <notification-id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "notification")
			if err != nil {
				return err
			}
			if err := notifications.Delete(cmd.Context(), app.Client, id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Notification #%d deleted.\n", id)
			return nil
		},
	}
}

// newNotifWatchCmd polls the unread count at the configured interval, the same
// way the SPA's notification bell refetched every 30 seconds.
func newNotifWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Poll the unread notification count until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			report := func() error {
				count, err := notifications.UnreadCount(ctx, app.Client)
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "[%s] %d unread notification(s)\n",
					time.Now().Format("15:04:05"), count)
				return nil
			}

			if err := report(); err != nil {
				return err
			}

			ticker := time.NewTicker(app.Config.PollInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := report(); err != nil {
						return err
					}
				}
			}
		},
	}
}
