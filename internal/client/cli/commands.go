package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/gophdiary/internal/buildinfo"
	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/client/tui"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/dmitrijs2005/gophdiary/internal/shared"
)

// annotations understood by the root PersistentPreRunE.
const (
	annotationNoApp   = "diary/no-app"
	annotationSession = "diary/session"
)

// env is the state shared by the command tree for one invocation.
type env struct {
	in          io.Reader
	out, errOut io.Writer
	getenv      func(string) string

	flags *config.Flags
	app   *App

	open   func(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error)
	runTUI func(ctx context.Context, a *App) error
}

func newEnv(in io.Reader, out, errOut io.Writer) *env {
	return &env{
		in:     in,
		out:    out,
		errOut: errOut,
		getenv: os.Getenv,
		open:   NewApp,
		runTUI: func(ctx context.Context, a *App) error {
			return tui.Run(ctx, tui.Options{
				Auth:     a.Auth(),
				Entries:  a.Entries(),
				Profiles: a.Profiles(),
				Router:   a.Router(),
				Logger:   a.Logger(),
			})
		},
	}
}

// Run executes the diary command line with args and releases the App
// afterwards.
func Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	e := newEnv(in, out, errOut)
	return e.execute(ctx, args)
}

func (e *env) execute(ctx context.Context, args []string) error {
	root := newRootCmd(e)
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if e.app != nil {
		if cerr := e.app.Close(); cerr != nil {
			e.app.Logger().Warn(ctx, "error closing app", "error", cerr)
		}
		e.app = nil
	}
	if err != nil && !errors.Is(err, ErrCommandFailed) {
		fmt.Fprintln(e.errOut, "Error:", err)
	}
	return err
}

func newRootCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Terminal client for the diary service",
		Example: strings.TrimSpace(`
  # Interactive shell
  diary

  # Full-screen interface
  diary tui

  # Scriptable commands
  diary login --username ann
  diary entries list
  diary entries add --title "Monday" --content - < note.md
`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildinfo.PrintBuildData(e.out)
			e.app.Run(cmd.Context())
			return nil
		},
	}
	cmd.SetIn(e.in)
	cmd.SetOut(e.out)
	cmd.SetErr(e.errOut)

	e.flags = config.RegisterFlags(cmd.PersistentFlags())

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if cmd.Annotations[annotationNoApp] != "" {
			return nil
		}
		return e.openApp(cmd)
	}

	cmd.AddCommand(
		newVersionCmd(e),
		newTUICmd(e),
		newLoginCmd(e),
		newSignupCmd(e),
		newLogoutCmd(e),
		newWhoamiCmd(e),
		newEntriesCmd(e),
		newProfileCmd(e),
	)
	return cmd
}

func (e *env) openApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := e.flags.Resolve(cmd.Flags(), e.getenv)
	if err != nil {
		return err
	}
	log, err := logging.New(e.errOut, cfg.LogOptions())
	if err != nil {
		return err
	}
	log.Debug(ctx, "configuration resolved", "api_url", cfg.BaseURL(), "cookie_db", cfg.CookieDB)

	a, err := e.open(ctx, cfg, log, e.in, e.out)
	if err != nil {
		return fmt.Errorf("start client: %w", err)
	}
	e.app = a

	if cmd.Annotations[annotationSession] != "" {
		a.CheckSession(ctx)
	}
	return nil
}

func sessionCmd(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationSession] = "true"
	return cmd
}

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: "true"},
		Run: func(*cobra.Command, []string) {
			buildinfo.PrintBuildData(e.out)
		},
	}
}

func newTUICmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runTUI(cmd.Context(), e.app)
		},
	}
}

func newLoginCmd(e *env) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := e.app
			if username == "" {
				return a.Login(cmd.Context())
			}
			password, err := getPassword(a.reader, "Enter password", a.out)
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(password)
			return failed(a.LoginWith(cmd.Context(), username, password))
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted when empty)")
	return cmd
}

func newSignupCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "signup",
		Aliases: []string{"register"},
		Short:   "Create an account and log into it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.app.Signup(cmd.Context())
		},
	}
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the cookies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.app.Logout(cmd.Context())
		},
	}
}

func newWhoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who the saved session belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.app.Whoami(cmd.Context())
		},
	}
}

func newEntriesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry", "e"},
		Short:   "Read and write diary entries",
	}
	cmd.AddCommand(
		sessionCmd(&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List entries",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return e.app.List(cmd.Context())
			},
		}),
		sessionCmd(&cobra.Command{
			Use:   "show <id>",
			Short: "Show one entry rendered as markdown",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return e.app.Show(cmd.Context(), args)
			},
		}),
		newEntriesAddCmd(e),
		newEntriesEditCmd(e),
		newEntriesDeleteCmd(e),
	)
	return cmd
}

func newEntriesAddCmd(e *env) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write a new entry",
		Long:  "Write a new entry. Without flags the title and content are prompted for; --content - reads the content from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := e.app
			ctx := cmd.Context()
			if title == "" && content == "" {
				return a.Add(ctx)
			}
			if !a.requireAuth() {
				return ErrCommandFailed
			}
			body, err := a.contentArg(content)
			if err != nil {
				return err
			}
			return a.AddWith(ctx, title, body)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title")
	cmd.Flags().StringVarP(&content, "content", "m", "", `entry content in markdown, "-" for stdin`)
	return sessionCmd(cmd)
}

func newEntriesEditCmd(e *env) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace an entry's title or content",
		Long:  "Replace an entry's title or content. Without flags both are prompted for; an omitted flag keeps the current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := e.app
			ctx := cmd.Context()
			if title == "" && content == "" {
				return a.Edit(ctx, args)
			}
			if !a.requireAuth() {
				return ErrCommandFailed
			}
			id, err := a.entryID(args, "")
			if err != nil {
				return err
			}
			body, err := a.contentArg(content)
			if err != nil {
				return err
			}
			return a.EditWith(ctx, id, title, body)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "m", "", `new content in markdown, "-" for stdin`)
	return sessionCmd(cmd)
}

func newEntriesDeleteCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := e.app
			ctx := cmd.Context()
			if !yes {
				return a.Delete(ctx, args)
			}
			if !a.requireAuth() {
				return ErrCommandFailed
			}
			id, err := a.entryID(args, "")
			if err != nil {
				return err
			}
			return a.DeleteWith(ctx, id)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return sessionCmd(cmd)
}

func newProfileCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the profile",
	}
	cmd.AddCommand(
		sessionCmd(&cobra.Command{
			Use:   "show",
			Short: "Show the profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return e.app.Profile(cmd.Context())
			},
		}),
		sessionCmd(&cobra.Command{
			Use:   "set-bio [bio...]",
			Short: "Replace the bio; prompted for when no words are given",
			RunE: func(cmd *cobra.Command, args []string) error {
				return e.app.SetBio(cmd.Context(), args)
			},
		}),
	)
	return cmd
}
