package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each subcommand maps to one screen of
// the original board client.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "otonaba",
		Short:         "Terminal client for the otonaba community board",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			displayAppname("otonaba")
			_ = cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newPasswdCmd(app),
		newPostsCmd(app),
		newCommentsCmd(app),
		newLikeCmd(app),
		newMessagesCmd(app),
		newNotificationsCmd(app),
		newUserCmd(app),
		newUploadCmd(app),
	)
	return root
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

// requireAuth is the PreRunE for commands gated on a session.
func requireAuth(app *App) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error {
		return app.RequireAuth()
	}
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

// promptLine asks for a value on stdin when it was not passed as a flag.
func promptLine(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
