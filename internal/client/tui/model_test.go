package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/client/clienttest"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/client/session"
	"github.com/dmitrijs2005/gophdiary/internal/client/views"
)

func newModel(t *testing.T, fc *clienttest.Fake) Model {
	t.Helper()
	t.Setenv("DIARY_MD_STYLE", "notty")
	s := session.New()
	r := views.NewRouter(s)
	t.Cleanup(r.Close)
	return New(context.Background(), Options{
		Auth:     services.NewAuthService(fc, s, nil),
		Entries:  services.NewEntryService(fc),
		Profiles: services.NewProfileService(fc),
		Router:   r,
	})
}

// step feeds msg to the model and then, synchronously, every message the
// returned commands produce for this package.
func step(m Model, msg tea.Msg) Model {
	next, cmd := m.Update(msg)
	m = next.(Model)
	for _, out := range collect(cmd) {
		m = step(m, out)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case sessionCheckedMsg, authDoneMsg, loggedOutMsg, entriesMsg, profileMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func start(m Model) Model {
	for _, msg := range collect(m.Init()) {
		m = step(m, msg)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func authedFake() *clienttest.Fake {
	return &clienttest.Fake{
		User: models.UserInfo{ID: 1, Username: "ann"},
		Entries: []models.DiaryEntry{
			{ID: 1, Title: "Monday", Content: "rain"},
			{ID: 2, Title: "Tuesday", Content: "sun"},
		},
		NextID:   2,
		Profiles: []models.Profile{{ID: 7, Username: "ann", Bio: "hi"}},
	}
}

func TestModel_StartsOnLoginWithoutSession(t *testing.T) {
	fc := &clienttest.Fake{UserInfoErr: &client.HTTPError{StatusCode: 403}}
	m := start(newModel(t, fc))

	assert.Equal(t, screenLogin, m.screen)
	assert.False(t, m.busy)
	assert.Contains(t, m.View(), "Log in")
	assert.Equal(t, []string{"UserInfo"}, fc.CallsSnapshot())
}

func TestModel_StartsOnDashboardWithSession(t *testing.T) {
	fc := authedFake()
	m := start(newModel(t, fc))

	require.Equal(t, screenDashboard, m.screen)
	assert.Len(t, m.list.Items(), 2)
	assert.Contains(t, m.View(), "ann")
}

func TestModel_Login(t *testing.T) {
	fc := authedFake()
	fc.UserInfoErr = &client.HTTPError{StatusCode: 401}
	m := start(newModel(t, fc))
	require.Equal(t, screenLogin, m.screen)

	m = step(m, runes("ann"))
	m = step(m, keyEnter)
	m = step(m, runes("secret"))
	m = step(m, keyEnter)

	assert.Equal(t, models.Credentials{Username: "ann", Password: "secret"}, fc.LastCreds)
	assert.Equal(t, screenDashboard, m.screen)
	assert.Len(t, m.list.Items(), 2)
	require.NotNil(t, m.note)
	assert.Equal(t, views.MsgLoginSuccess, m.note.Msg)
	assert.Empty(t, m.login.value(1))
}

func TestModel_LoginRejected(t *testing.T) {
	fc := &clienttest.Fake{
		UserInfoErr: &client.HTTPError{StatusCode: 401},
		LoginErr:    &client.HTTPError{StatusCode: 401, Message: "Invalid credentials"},
	}
	m := start(newModel(t, fc))

	m = step(m, runes("ann"))
	m = step(m, keyTab)
	m = step(m, runes("nope"))
	m = step(m, keyEnter)

	assert.Equal(t, screenLogin, m.screen)
	require.NotNil(t, m.note)
	assert.True(t, m.note.Err)
	assert.Equal(t, views.MsgInvalidLogin, m.note.Msg)
	assert.Equal(t, "ann", m.login.value(0))
	assert.Empty(t, m.login.value(1))
}

func TestModel_SignupPasswordsMismatch(t *testing.T) {
	fc := &clienttest.Fake{UserInfoErr: &client.HTTPError{StatusCode: 401}}
	m := start(newModel(t, fc))

	m = step(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	require.Equal(t, screenSignup, m.screen)

	for _, v := range []string{"bob", "bob@example.com", "pw1", "pw2"} {
		m = step(m, runes(v))
		m = step(m, keyEnter)
	}

	assert.Equal(t, screenSignup, m.screen)
	require.NotNil(t, m.note)
	assert.Equal(t, views.MsgPasswordsMismatch, m.note.Msg)
	assert.NotContains(t, fc.CallsSnapshot(), "Register")

	m = step(m, keyEsc)
	assert.Equal(t, screenLogin, m.screen)
}

func TestModel_CreateEntry(t *testing.T) {
	fc := authedFake()
	m := start(newModel(t, fc))

	m = step(m, runes("n"))
	require.Equal(t, screenEditor, m.screen)
	m = step(m, runes(" Trip "))
	m = step(m, keyTab)
	m = step(m, runes("went north"))
	m = step(m, keySave)

	assert.Equal(t, models.EntryInput{Title: "Trip", Content: "went north"}, fc.LastInput)
	assert.Equal(t, screenDashboard, m.screen)
	assert.Len(t, m.list.Items(), 3)
	assert.Equal(t, views.MsgEntryCreated, m.note.Msg)
}

func TestModel_EditorKeepsFormOnFailure(t *testing.T) {
	fc := authedFake()
	fc.UpdateErr = client.ErrUnavailable
	m := start(newModel(t, fc))

	m = step(m, runes("e"))
	require.Equal(t, screenEditor, m.screen)
	assert.Equal(t, int64(1), m.editID)
	assert.Equal(t, "Monday", m.title.Value())

	m = step(m, keySave)
	assert.Equal(t, screenEditor, m.screen)
	assert.Equal(t, views.MsgEntryUpdateFailed, m.note.Msg)
	assert.Len(t, m.list.Items(), 2)
}

func TestModel_DeleteNeedsConfirmation(t *testing.T) {
	fc := authedFake()
	m := start(newModel(t, fc))

	m = step(m, runes("d"))
	assert.Contains(t, m.View(), "Are you sure")
	m = step(m, runes("n"))
	assert.NotContains(t, fc.CallsSnapshot(), "DeleteEntry")

	m = step(m, runes("d"))
	m = step(m, runes("y"))
	assert.Equal(t, int64(1), fc.LastID)
	assert.Len(t, m.list.Items(), 1)
	assert.Equal(t, views.MsgEntryDeleted, m.note.Msg)
}

func TestModel_LoadFailureAndRetry(t *testing.T) {
	fc := authedFake()
	fc.ListErr = client.ErrUnavailable
	m := start(newModel(t, fc))

	assert.Equal(t, views.MsgLoadEntriesError, m.loadErr)
	assert.Contains(t, m.View(), "press r to retry")

	fc.ListErr = nil
	m = step(m, runes("r"))
	assert.Empty(t, m.loadErr)
	assert.Len(t, m.list.Items(), 2)
}

func TestModel_ReadEntry(t *testing.T) {
	fc := authedFake()
	m := start(newModel(t, fc))

	m = step(m, keyEnter)
	require.Equal(t, screenEntry, m.screen)
	assert.Contains(t, m.View(), "Monday")

	m = step(m, keyEsc)
	assert.Equal(t, screenDashboard, m.screen)
}

func TestModel_ProfileBio(t *testing.T) {
	fc := authedFake()
	m := start(newModel(t, fc))

	m = step(m, runes("p"))
	require.Equal(t, screenProfile, m.screen)
	require.NotNil(t, m.profile)
	assert.Contains(t, m.View(), "Username: ann")

	m = step(m, runes("e"))
	require.Equal(t, screenBio, m.screen)
	assert.Equal(t, "hi", m.bio.Value())
	m = step(m, runes(" there"))
	m = step(m, keySave)

	assert.Equal(t, "hi there", fc.LastBio)
	assert.Equal(t, screenProfile, m.screen)
	assert.Equal(t, "hi there", m.profile.Bio)

	m = step(m, keyEsc)
	assert.Equal(t, screenDashboard, m.screen)
}

func TestModel_Logout(t *testing.T) {
	fc := authedFake()
	m := start(newModel(t, fc))

	m = step(m, runes("x"))
	assert.Equal(t, screenLogin, m.screen)
	assert.True(t, fc.SessionClear)
	assert.Equal(t, views.MsgLogoutSuccess, m.note.Msg)
	assert.Empty(t, m.list.Items())
}

func TestModel_BusyIgnoresKeys(t *testing.T) {
	fc := authedFake()
	m := newModel(t, fc)
	require.True(t, m.busy)

	next, cmd := m.Update(runes("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, m.screen, next.(Model).screen)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
