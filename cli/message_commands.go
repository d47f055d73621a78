package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otonaba/otonaba-cli/messages"
)

func newMessagesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "msg",
		Short:   "Direct messages",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return app.RequireAuth()
		},
	}
	cmd.AddCommand(
		newMsgInboxCmd(app),
		newMsgSentCmd(app),
		newMsgShowCmd(app),
		newMsgSendCmd(app),
		newMsgReplyCmd(app),
		newMsgDeleteCmd(app),
		newMsgUnreadCmd(app),
	)
	return cmd
}

func newMsgInboxCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inbox",
		Short: "List received messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := messages.Inbox(cmd.Context(), app.Client)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(app.Out, "inbox is empty")
				return nil
			}
			renderMessageList(app.Out, list, false)
			return nil
		},
	}
}

func newMsgSentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sent",
		Short: "List sent messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := messages.Sent(cmd.Context(), app.Client)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(app.Out, "no sent messages")
				return nil
			}
			renderMessageList(app.Out, list, true)
			return nil
		},
	}
}

func newMsgShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <message-id>",
		Short: "Read a message and its replies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "message")
			if err != nil {
				return err
			}
			detail, err := messages.Get(cmd.Context(), app.Client, id)
			if err != nil {
				return err
			}
			renderMessage(app.Out, detail)
			return nil
		},
	}
}

func newMsgSendCmd(app *App) *cobra.Command {
	var subject, body string

	cmd := &cobra.Command{
		Use:   "send <receiver-id>",
		Short: "Send a message to a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(subject) == "" {
				return fmt.Errorf("subject is required")
			}
			if strings.TrimSpace(body) == "" {
				return fmt.Errorf("body is required")
			}
			msg, err := messages.Send(cmd.Context(), app.Client, args[0], subject, body)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Message #%d sent.\n", msg.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&body, "body", "", "message body")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newMsgReplyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reply <message-id> <content>...",
		Short: "Reply in a message thread",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "message")
			if err != nil {
				return err
			}
			content := strings.Join(args[1:], " ")
			if _, err := messages.ReplyTo(cmd.Context(), app.Client, id, content); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Reply sent on message #%d.\n", id)
			return nil
		},
	}
}

func newMsgDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <message-id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "message")
			if err != nil {
				return err
			}
			if err := messages.Delete(cmd.Context(), app.Client, id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Message #%d deleted.\n", id)
			return nil
		},
	}
}

func newMsgUnreadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unread",
		Short: "Show the unread message count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := messages.UnreadCount(cmd.Context(), app.Client)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%d unread message(s)\n", count)
			return nil
		},
	}
}
