// Package cli is the diary command line.
//
// Without a subcommand it starts an interactive shell (see runREPL) over an
// App, which owns the cookie store, the HTTP client, the services and the
// view models. The same App backs the scriptable subcommands built with
// cobra (entries, profile, login, ...) and the full-screen "tui" command.
//
// Commands report failures to the user through the view notifications and
// return ErrCommandFailed, so callers only need to set the exit status.
package cli
