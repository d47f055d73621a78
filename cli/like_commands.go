package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otonaba/otonaba-cli/likes"
)

func newLikeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "like <post-id>",
		Short:   "Toggle the like on a post",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "post")
			if err != nil {
				return err
			}
			result, err := likes.Toggle(cmd.Context(), app.Client, id)
			if err != nil {
				return err
			}
			if result.IsLiked {
				fmt.Fprintf(app.Out, "Liked post #%d (%d likes).\n", id, result.LikeCount)
			} else {
				fmt.Fprintf(app.Out, "Unliked post #%d (%d likes).\n", id, result.LikeCount)
			}
			return nil
		},
	}
	cmd.AddCommand(newLikeStatusCmd(app))
	return cmd
}

func newLikeStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "status <post-id>",
		Short:   "Show whether you like a post",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "post")
			if err != nil {
				return err
			}
			status, err := likes.Check(cmd.Context(), app.Client, id)
			if err != nil {
				return err
			}
			if status.IsLiked {
				fmt.Fprintf(app.Out, "You like post #%d.\n", id)
			} else {
				fmt.Fprintf(app.Out, "You have not liked post #%d.\n", id)
			}
			return nil
		},
	}
}
