package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/otonaba/otonaba-cli/uploads"
)

func newUploadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Manage hosted images for posts",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return app.RequireAuth()
		},
	}
	cmd.AddCommand(
		newUploadAddCmd(app),
		newUploadDeleteCmd(app),
	)
	return cmd
}

func newUploadAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Upload an image and print its URL and deletion id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close() //nolint:errcheck

			img, err := uploads.Upload(cmd.Context(), app.Client, filepath.Base(args[0]), file)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "uploaded: %s\n", img.URL)
			fmt.Fprintf(app.Out, "attach with: --image %s=%s\n", img.CloudinaryID, img.URL)
			return nil
		},
	}
}

func newUploadDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <cloudinary-id>",
		Short: "Delete a hosted image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := uploads.Delete(cmd.Context(), app.Client, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Image %s deleted.\n", args[0])
			return nil
		},
	}
}
