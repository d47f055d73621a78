package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otonaba/otonaba-cli/comments"
)

func newCommentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Manage comments on posts",
	}
	cmd.AddCommand(
		newCommentsAddCmd(app),
		newCommentsEditCmd(app),
		newCommentsDeleteCmd(app),
	)
	return cmd
}

func newCommentsAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "add <post-id> <content>...",
		Short:   "Comment on a post",
		Args:    cobra.MinimumNArgs(2),
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "post")
			if err != nil {
				return err
			}
			content := strings.Join(args[1:], " ")
			if strings.TrimSpace(content) == "" {
				return fmt.Errorf("comment content is required")
			}
			comment, err := comments.Create(cmd.Context(), app.Client, id, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Comment #%d added.\n", comment.ID)
			return nil
		},
	}
}

func newCommentsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "edit <comment-id> <content>...",
		Short:   "Rewrite a comment",
		Args:    cobra.MinimumNArgs(2),
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "comment")
			if err != nil {
				return err
			}
			content := strings.Join(args[1:], " ")
			comment, err := comments.Update(cmd.Context(), app.Client, id, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Comment #%d updated.\n", comment.ID)
			return nil
		},
	}
}

func newCommentsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <comment-id>",
		Short:   "Delete a comment",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "comment")
			if err != nil {
				return err
			}
			if err := comments.Delete(cmd.Context(), app.Client, id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Comment #%d deleted.\n", id)
			return nil
		},
	}
}
