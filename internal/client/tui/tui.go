// Package tui is the full-screen front-end: a bubbletea program over the
// same services, router and view models the REPL uses.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/client/views"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// Options wires the program to the application.
type Options struct {
	Auth     services.AuthService
	Entries  services.EntryService
	Profiles services.ProfileService
	Router   *views.Router
	Logger   logging.Logger

	// Input and Output default to the terminal.
	Input  io.Reader
	Output io.Writer
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, o Options) error {
	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if o.Input != nil {
		popts = append(popts, tea.WithInput(o.Input))
	}
	if o.Output != nil {
		popts = append(popts, tea.WithOutput(o.Output))
	}

	_, err := tea.NewProgram(New(ctx, o), popts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
