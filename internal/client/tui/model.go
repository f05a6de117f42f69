package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/render"
	"github.com/dmitrijs2005/gophdiary/internal/client/views"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

type screen int

const (
	screenLogin screen = iota
	screenSignup
	screenDashboard
	screenEntry
	screenEditor
	screenProfile
	screenBio
)

// chrome is the number of lines taken by the header, status and footer.
const chrome = 5

// Model is the root bubbletea model.
type Model struct {
	ctx  context.Context
	opts Options

	screen        screen
	width, height int
	busy          bool
	note          *views.Note

	login  form
	signup form

	list    list.Model
	loadErr string

	reader  viewport.Model
	current models.DiaryEntry

	// editID is 0 while writing a new entry.
	editID      int64
	title       textinput.Model
	body        textarea.Model
	focusBody   bool
	confirmDrop int64

	profile *models.Profile
	bio     textarea.Model
}

// New builds the model. The session is checked by Init.
func New(ctx context.Context, o Options) Model {
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 60
	title.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ctx:  ctx,
		opts: o,
		busy: true,
		login: newForm(
			field{label: "Username"},
			field{label: "Password", secret: true},
		),
		signup: newForm(
			field{label: "Username"},
			field{label: "Email"},
			field{label: "Password", secret: true},
			field{label: "Confirm password", secret: true},
		),
		list:   newEntryList(),
		reader: viewport.New(80, 20),
		title:  title,
		body:   newTextarea("Write in markdown…"),
		bio:    newTextarea("Tell something about yourself…"),
	}
	m.screen = screenFor(o.Router.Current())
	m.resize(80, 24)
	return m
}

func newTextarea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Cursor.SetMode(cursor.CursorStatic)
	return ta
}

func screenFor(r views.Route) screen {
	switch r {
	case views.RouteSignup:
		return screenSignup
	case views.RouteDashboard:
		return screenDashboard
	case views.RouteProfile:
		return screenProfile
	default:
		return screenLogin
	}
}

func (m Model) Init() tea.Cmd {
	return checkSessionCmd(m.ctx, m.opts)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	inner := h - chrome
	if inner < 3 {
		inner = 3
	}
	m.list.SetSize(w, inner)
	m.reader.Width, m.reader.Height = w, inner
	m.body.SetWidth(w - 2)
	m.body.SetHeight(inner - 3)
	m.bio.SetWidth(w - 2)
	m.bio.SetHeight(inner - 3)
}

// follow moves to the page the router shows and starts its load.
func (m *Model) follow() tea.Cmd {
	next := screenFor(m.opts.Router.Current())
	prev := m.screen
	m.screen = next
	switch {
	case next == screenDashboard && prev != screenDashboard:
		m.busy = true
		return loadEntriesCmd(m.ctx, m.opts)
	case next == screenProfile && prev != screenProfile:
		m.busy = true
		return loadProfileCmd(m.ctx, m.opts)
	}
	return nil
}

func (m *Model) navigate(r views.Route) tea.Cmd {
	m.opts.Router.Navigate(r)
	return m.follow()
}

func (m *Model) show(notes []views.Note) {
	if len(notes) > 0 {
		n := notes[len(notes)-1]
		m.note = &n
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case sessionCheckedMsg:
		m.busy = false
		m.opts.Router.Navigate(views.RouteRoot)
		return m, m.follow()

	case authDoneMsg:
		m.busy = false
		m.show(msg.notes)
		if msg.ok {
			m.login.reset()
			m.signup.reset()
		} else {
			m.login.clearSecrets()
			m.signup.clearSecrets()
		}
		return m, m.follow()

	case loggedOutMsg:
		m.busy = false
		m.show(msg.notes)
		m.profile = nil
		m.list.SetItems(nil)
		return m, m.follow()

	case entriesMsg:
		m.busy = false
		m.show(msg.notes)
		var cmd tea.Cmd
		if msg.reloaded {
			m.loadErr = msg.loadErr
			cmd = m.list.SetItems(entryItems(msg.entries))
		}
		if msg.ok && m.screen == screenEditor {
			m.screen = screenDashboard
		}
		return m, cmd

	case profileMsg:
		m.busy = false
		m.show(msg.notes)
		if !msg.saved || msg.ok {
			m.profile = msg.profile
		}
		if msg.saved && msg.ok {
			m.screen = screenProfile
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

// forward passes non-key messages to the active component.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenDashboard:
		m.list, cmd = m.list.Update(msg)
	case screenEntry:
		m.reader, cmd = m.reader.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenLogin:
		return m.loginKey(k)
	case screenSignup:
		return m.signupKey(k)
	case screenDashboard:
		return m.dashboardKey(k)
	case screenEntry:
		return m.entryKey(k)
	case screenEditor:
		return m.editorKey(k)
	case screenProfile:
		return m.profileKey(k)
	case screenBio:
		return m.bioKey(k)
	}
	return m, nil
}

func (m Model) loginKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		return m, tea.Quit
	case "ctrl+n":
		m.note = nil
		return m, m.navigate(views.RouteSignup)
	case "tab", "down":
		m.login.next()
		return m, nil
	case "shift+tab", "up":
		m.login.prev()
		return m, nil
	case "enter":
		if !m.login.onLast() {
			m.login.next()
			return m, nil
		}
		m.busy = true
		return m, loginCmd(m.ctx, m.opts, m.login.value(0), m.login.value(1))
	}
	return m, m.login.update(k)
}

func (m Model) signupKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		m.note = nil
		return m, m.navigate(views.RouteLogin)
	case "tab", "down":
		m.signup.next()
		return m, nil
	case "shift+tab", "up":
		m.signup.prev()
		return m, nil
	case "enter":
		if !m.signup.onLast() {
			m.signup.next()
			return m, nil
		}
		m.busy = true
		f := &m.signup
		return m, signupCmd(m.ctx, m.opts, f.value(0), f.value(1), f.value(2), f.value(3))
	}
	return m, m.signup.update(k)
}

func (m Model) selected() (models.DiaryEntry, bool) {
	it, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return models.DiaryEntry{}, false
	}
	return it.entry, true
}

func (m Model) dashboardKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDrop != 0 {
		id := m.confirmDrop
		m.confirmDrop = 0
		if k.String() != "y" {
			return m, nil
		}
		m.busy = true
		return m, mutateEntriesCmd(m.ctx, m.opts, func(ctx context.Context, v *views.EntriesView) bool {
			return v.Delete(ctx, id)
		})
	}

	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(k)
		return m, cmd
	}

	switch k.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.busy = true
		return m, loadEntriesCmd(m.ctx, m.opts)
	case "n":
		return m, m.openEditor(models.DiaryEntry{})
	case "e":
		if e, ok := m.selected(); ok {
			return m, m.openEditor(e)
		}
		return m, nil
	case "d":
		if e, ok := m.selected(); ok {
			m.confirmDrop = e.ID
		}
		return m, nil
	case "enter":
		if e, ok := m.selected(); ok {
			m.current = e
			m.reader.SetContent(render.Entry(e, m.width))
			m.reader.GotoTop()
			m.screen = screenEntry
		}
		return m, nil
	case "p":
		return m, m.navigate(views.RouteProfile)
	case "x":
		m.busy = true
		return m, logoutCmd(m.ctx, m.opts)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(k)
	return m, cmd
}

func (m Model) entryKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc", "q":
		m.screen = screenDashboard
		return m, nil
	case "e":
		return m, m.openEditor(m.current)
	}
	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(k)
	return m, cmd
}

func (m *Model) openEditor(e models.DiaryEntry) tea.Cmd {
	m.editID = e.ID
	m.title.SetValue(e.Title)
	m.body.SetValue(e.Content)
	m.focusBody = false
	m.title.Focus()
	m.body.Blur()
	m.screen = screenEditor
	return nil
}

func (m Model) editorKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		m.screen = screenDashboard
		return m, nil
	case "tab":
		m.focusBody = !m.focusBody
		if m.focusBody {
			m.title.Blur()
			m.body.Focus()
		} else {
			m.body.Blur()
			m.title.Focus()
		}
		return m, nil
	case "ctrl+s":
		title, content, id := m.title.Value(), m.body.Value(), m.editID
		m.busy = true
		return m, mutateEntriesCmd(m.ctx, m.opts, func(ctx context.Context, v *views.EntriesView) bool {
			if id == 0 {
				return v.Create(ctx, title, content)
			}
			return v.Update(ctx, id, title, content)
		})
	}

	var cmd tea.Cmd
	if m.focusBody {
		m.body, cmd = m.body.Update(k)
	} else {
		m.title, cmd = m.title.Update(k)
	}
	return m, cmd
}

func (m Model) profileKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc", "q":
		return m, m.navigate(views.RouteDashboard)
	case "r":
		m.busy = true
		return m, loadProfileCmd(m.ctx, m.opts)
	case "e":
		bio := ""
		if m.profile != nil {
			bio = m.profile.Bio
		}
		m.bio.SetValue(bio)
		m.bio.Focus()
		m.screen = screenBio
		return m, nil
	case "x":
		m.busy = true
		return m, logoutCmd(m.ctx, m.opts)
	}
	return m, nil
}

func (m Model) bioKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "esc":
		m.bio.Blur()
		m.screen = screenProfile
		return m, nil
	case "ctrl+s":
		m.busy = true
		return m, saveBioCmd(m.ctx, m.opts, m.profile, m.bio.Value())
	}
	var cmd tea.Cmd
	m.bio, cmd = m.bio.Update(k)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header() + "\n\n")
	b.WriteString(m.page() + "\n")
	b.WriteString(m.status() + "\n")
	b.WriteString(render.FooterStyle.Render(m.help()))
	return b.String()
}

func (m Model) header() string {
	user := m.opts.Auth.Session().Username()
	title := render.HeaderStyle.Render("Diary")
	if user != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, render.MutedStyle.Render("  "+user))
	}
	return title
}

func (m Model) status() string {
	switch {
	case m.busy:
		return render.MutedStyle.Render("Loading…")
	case m.confirmDrop != 0:
		return render.Error("Are you sure you want to delete this entry? (y/N)")
	case m.note == nil:
		return ""
	case m.note.Err:
		return render.Error(m.note.Msg)
	default:
		return render.Success(m.note.Msg)
	}
}

func (m Model) page() string {
	switch m.screen {
	case screenLogin:
		return "Log in\n\n" + m.login.view()
	case screenSignup:
		return "Create an account\n\n" + m.signup.view()
	case screenDashboard:
		if m.loadErr != "" {
			return render.Error(m.loadErr) + "\n" + render.MutedStyle.Render("press r to retry")
		}
		if len(m.list.Items()) == 0 && !m.busy {
			return "No diary entries yet. Press n to write one."
		}
		return m.list.View()
	case screenEntry:
		return m.reader.View()
	case screenEditor:
		heading := "New entry"
		if m.editID != 0 {
			heading = fmt.Sprintf("Edit entry #%d", m.editID)
		}
		return heading + "\n\n" + m.title.View() + "\n\n" + m.body.View()
	case screenProfile:
		return m.profileView()
	case screenBio:
		return "Bio\n\n" + m.bio.View()
	}
	return ""
}

func (m Model) profileView() string {
	p := m.profile
	if p == nil {
		return render.MutedStyle.Render("No profile loaded. Press r to retry.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Username: %s\n\n", p.Username)
	if p.Bio == "" {
		b.WriteString(render.MutedStyle.Render("No bio yet. Press e to write one."))
	} else {
		b.WriteString(render.Markdown(p.Bio, m.width))
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "\n\nMember since %s", p.CreatedAt.Local().Format("2006-01-02"))
	}
	return b.String()
}

func (m Model) help() string {
	switch m.screen {
	case screenLogin:
		return "tab: next field • enter: log in • ctrl+n: sign up • esc: quit"
	case screenSignup:
		return "tab: next field • enter: create account • esc: back to login"
	case screenDashboard:
		return "enter: read • n: new • e: edit • d: delete • r: reload • /: filter • p: profile • x: logout • q: quit"
	case screenEntry:
		return "↑/↓: scroll • e: edit • esc: back"
	case screenEditor:
		return "tab: switch field • ctrl+s: save • esc: cancel"
	case screenProfile:
		return "e: edit bio • r: reload • x: logout • esc: back"
	case screenBio:
		return "ctrl+s: save • esc: cancel"
	}
	return ""
}
