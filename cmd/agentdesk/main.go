package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if code := exitCode(newRootCmd().Execute(), os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// reportedError marks an error the command has already shown to the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// exitCode prints err unless it was already reported and maps it to a process
// exit code. Leaving an editor or form early is not a failure.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, errEditorCancelled) || errors.Is(err, huh.ErrUserAborted) {
		return 0
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		_, _ = fmt.Fprintln(stderr, errorStyle.Render("error: "+err.Error()))
	}

	return 1
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "agentdesk",
		Short:         "Manage AI agents, their weighted parameters, and hiring projects",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", ".agentdesk", "path to the .agentdesk directory")
	flags.StringVar(&opts.configPath, "config", "", "path to configuration file (default: <dir>/config.yaml, else built-in data)")
	flags.StringVar(&opts.envFile, "env", ".env", "path to .env file (ignored if missing)")
	flags.BoolVar(&opts.verbose, "verbose", false, "log at debug level")

	root.AddCommand(
		newInitCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newAgentsCmd(opts),
		newProjectsCmd(opts),
		newFilesCmd(opts),
		newAgentCmd(opts),
		newDashboardCmd(opts),
		newMCPCmd(opts),
	)

	return root
}

// withApp builds the app, runs fn and flushes the logger. When authed is
// set the command is refused without a logged-in session.
func withApp(opts *options, authed bool, fn func(a *app) error) error {
	a, err := newApp(*opts)
	if err != nil {
		return err
	}
	defer a.close()

	if authed {
		if err := a.session.Require(); err != nil {
			return err
		}
	}

	return fn(a)
}
