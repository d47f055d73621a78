package cli

import (
	"github.com/spf13/cobra"

	"github.com/otonaba/otonaba-cli/users"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up other members",
	}
	cmd.AddCommand(newUserShowCmd(app))
	return cmd
}

func newUserShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <nickname>",
		Short: "Show a member's profile and their posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := users.GetByNickname(cmd.Context(), app.Client, args[0])
			if err != nil {
				return err
			}
			renderProfile(app.Out, profile)

			list, err := users.Posts(cmd.Context(), app.Client, profile.ID)
			if err != nil {
				return err
			}
			renderUserPosts(app.Out, list)
			return nil
		},
	}
}
