package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/views"
)

// Every command runs its own view model with a private Recorder, so nothing
// the model renders is touched off the event loop. The results come back as
// messages.

type sessionCheckedMsg struct{}

type authDoneMsg struct {
	ok    bool
	notes []views.Note
}

type loggedOutMsg struct {
	notes []views.Note
}

// entriesMsg carries the list after a load, or after a mutation that
// succeeded and therefore reloaded.
type entriesMsg struct {
	ok       bool
	reloaded bool
	entries  []models.DiaryEntry
	loadErr  string
	notes    []views.Note
}

type profileMsg struct {
	ok      bool
	saved   bool
	profile *models.Profile
	notes   []views.Note
}

func checkSessionCmd(ctx context.Context, o Options) tea.Cmd {
	return func() tea.Msg {
		if err := o.Auth.CheckSession(ctx); err != nil {
			o.Logger.Debug(ctx, "no active session", "error", err)
		}
		return sessionCheckedMsg{}
	}
}

func loginCmd(ctx context.Context, o Options, username, password string) tea.Cmd {
	return func() tea.Msg {
		rec := &views.Recorder{}
		v := views.NewLoginView(o.Auth, o.Router, rec)
		v.Username, v.Password = username, password
		ok := v.Submit(ctx)
		return authDoneMsg{ok: ok, notes: rec.Drain()}
	}
}

func signupCmd(ctx context.Context, o Options, username, email, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		rec := &views.Recorder{}
		v := views.NewSignupView(o.Auth, o.Router, rec)
		v.Username, v.Email = username, email
		v.Password, v.ConfirmPassword = password, confirm
		ok := v.Submit(ctx)
		return authDoneMsg{ok: ok, notes: rec.Drain()}
	}
}

func logoutCmd(ctx context.Context, o Options) tea.Cmd {
	return func() tea.Msg {
		rec := &views.Recorder{}
		views.Logout(ctx, o.Auth, o.Router, rec)
		return loggedOutMsg{notes: rec.Drain()}
	}
}

func loadEntriesCmd(ctx context.Context, o Options) tea.Cmd {
	return func() tea.Msg {
		rec := &views.Recorder{}
		v := views.NewEntriesView(o.Entries, rec, o.Logger)
		v.Load(ctx)
		return entriesMsg{ok: v.Err == "", reloaded: true, entries: v.Entries, loadErr: v.Err, notes: rec.Drain()}
	}
}

// mutateEntriesCmd runs op (create, update or delete) on a fresh view.
func mutateEntriesCmd(ctx context.Context, o Options, op func(context.Context, *views.EntriesView) bool) tea.Cmd {
	return func() tea.Msg {
		rec := &views.Recorder{}
		v := views.NewEntriesView(o.Entries, rec, o.Logger)
		ok := op(ctx, v)
		return entriesMsg{ok: ok, reloaded: ok, entries: v.Entries, loadErr: v.Err, notes: rec.Drain()}
	}
}

func loadProfileCmd(ctx context.Context, o Options) tea.Cmd {
	return func() tea.Msg {
		rec := &views.Recorder{}
		v := views.NewProfileView(o.Profiles, rec, o.Logger)
		v.Load(ctx)
		return profileMsg{ok: v.Profile != nil, profile: v.Profile, notes: rec.Drain()}
	}
}

func saveBioCmd(ctx context.Context, o Options, current *models.Profile, bio string) tea.Cmd {
	var p *models.Profile
	if current != nil {
		cp := *current
		p = &cp
	}
	return func() tea.Msg {
		rec := &views.Recorder{}
		v := views.NewProfileView(o.Profiles, rec, o.Logger)
		v.Profile = p
		ok := v.SaveBio(ctx, bio)
		return profileMsg{ok: ok, saved: true, profile: v.Profile, notes: rec.Drain()}
	}
}
