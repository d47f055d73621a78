package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otonaba/otonaba-cli/auth"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if email == "" {
				if email, err = promptLine("Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptLine("Password"); err != nil {
					return err
				}
			}

			user, err := app.Store.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Welcome back, %s!\n", user.Nickname)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var reg auth.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if reg.Password == "" {
				if reg.Password, err = promptLine("Password"); err != nil {
					return err
				}
			}

			user, err := app.Store.Register(cmd.Context(), reg)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Welcome, %s!\n", user.Nickname)
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "account password (prompted when omitted)")
	cmd.Flags().StringVar(&reg.Nickname, "nickname", "", "public nickname")
	cmd.Flags().StringVar(&reg.AgeGroup, "age-group", "", "age group, e.g. 40s")
	cmd.Flags().StringVar(&reg.Gender, "gender", "", "gender")
	cmd.Flags().StringVar(&reg.Region, "region", "", "region")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("nickname")
	_ = cmd.MarkFlagRequired("age-group")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session and the persisted credentials",
		RunE: func(_ *cobra.Command, _ []string) error {
			app.Store.Logout()
			fmt.Fprintln(app.Out, "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the locally stored session identity",
		RunE: func(_ *cobra.Command, _ []string) error {
			user := app.Store.Current()
			if user == nil {
				fmt.Fprintln(app.Out, "not logged in")
				return nil
			}
			renderUser(app.Out, user)
			return nil
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Short:   "Show the account profile as the backend sees it",
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := auth.GetProfile(cmd.Context(), app.Client)
			if err != nil {
				return err
			}
			renderUser(app.Out, user)
			return nil
		},
	}
	cmd.AddCommand(newProfileUpdateCmd(app))
	return cmd
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var update auth.ProfileUpdate

	cmd := &cobra.Command{
		Use:     "update",
		Short:   "Update profile fields",
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Unset flags keep the current values.
			if current := app.Store.Current(); current != nil {
				if update.Nickname == "" {
					update.Nickname = current.Nickname
				}
				if update.AgeGroup == "" {
					update.AgeGroup = current.AgeGroup
				}
				if update.Gender == "" {
					update.Gender = current.Gender
				}
				if update.Region == "" {
					update.Region = current.Region
				}
			}

			user, err := auth.UpdateProfile(cmd.Context(), app.Client, update)
			if err != nil {
				return err
			}
			// Patch the session in place rather than forcing a fresh login.
			if err := app.Store.SetUser(*user); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Profile updated.")
			renderUser(app.Out, user)
			return nil
		},
	}
	cmd.Flags().StringVar(&update.Nickname, "nickname", "", "public nickname")
	cmd.Flags().StringVar(&update.AgeGroup, "age-group", "", "age group")
	cmd.Flags().StringVar(&update.Gender, "gender", "", "gender")
	cmd.Flags().StringVar(&update.Region, "region", "", "region")
	return cmd
}

func newPasswdCmd(app *App) *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:     "passwd",
		Short:   "Change the account password",
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if current == "" {
				if current, err = promptLine("Current password"); err != nil {
					return err
				}
			}
			if next == "" {
				if next, err = promptLine("New password"); err != nil {
					return err
				}
			}
			if err := auth.ValidatePasswordChange(current, next); err != nil {
				return err
			}
			if err := auth.ChangePassword(cmd.Context(), app.Client, current, next); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Password changed.")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password (prompted when omitted)")
	cmd.Flags().StringVar(&next, "new", "", "new password (prompted when omitted)")
	return cmd
}
