// Package clienttest provides an in-memory client.Client for tests of the
// layers above the HTTP client.
package clienttest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// Fake is a scripted client.Client. Entries and Profiles act as the server
// state; the *Err fields make the matching call fail. Calls records the
// method names in order.
type Fake struct {
	mu sync.Mutex

	User     models.UserInfo
	Entries  []models.DiaryEntry
	Profiles []models.Profile
	NextID   int64

	UserInfoErr      error
	LoginErr         error
	LogoutErr        error
	RegisterErr      error
	ListErr          error
	CreateErr        error
	UpdateErr        error
	DeleteErr        error
	ListProfilesErr  error
	UpdateProfileErr error
	ClearSessionErr  error

	Calls        []string
	LastCreds    models.Credentials
	LastReg      models.Registration
	LastInput    models.EntryInput
	LastID       int64
	LastBio      string
	SessionClear bool
}

var _ client.Client = (*Fake)(nil)

func (f *Fake) record(name string) {
	f.Calls = append(f.Calls, name)
}

// CallsSnapshot returns a copy of Calls.
func (f *Fake) CallsSnapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Calls...)
}

func (f *Fake) UserInfo(context.Context) (*models.UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UserInfo")
	if f.UserInfoErr != nil {
		return nil, f.UserInfoErr
	}
	u := f.User
	return &u, nil
}

func (f *Fake) Login(_ context.Context, creds models.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Login")
	f.LastCreds = creds
	return f.LoginErr
}

func (f *Fake) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Logout")
	return f.LogoutErr
}

func (f *Fake) Register(_ context.Context, reg models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Register")
	f.LastReg = reg
	return f.RegisterErr
}

func (f *Fake) ListEntries(context.Context) ([]models.DiaryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListEntries")
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]models.DiaryEntry{}, f.Entries...), nil
}

func (f *Fake) CreateEntry(_ context.Context, in models.EntryInput) (*models.DiaryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateEntry")
	f.LastInput = in
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.NextID++
	e := models.DiaryEntry{ID: f.NextID, Title: in.Title, Content: in.Content, Username: f.User.Username}
	f.Entries = append(f.Entries, e)
	return &e, nil
}

func (f *Fake) UpdateEntry(_ context.Context, id int64, in models.EntryInput) (*models.DiaryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateEntry")
	f.LastID, f.LastInput = id, in
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	for i := range f.Entries {
		if f.Entries[i].ID == id {
			f.Entries[i].Title, f.Entries[i].Content = in.Title, in.Content
			e := f.Entries[i]
			return &e, nil
		}
	}
	return nil, &client.HTTPError{StatusCode: 404, Message: "HTTP error! status: 404"}
}

func (f *Fake) DeleteEntry(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteEntry")
	f.LastID = id
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.Entries {
		if f.Entries[i].ID == id {
			f.Entries = append(f.Entries[:i], f.Entries[i+1:]...)
			return nil
		}
	}
	return &client.HTTPError{StatusCode: 404, Message: "HTTP error! status: 404"}
}

func (f *Fake) ListProfiles(context.Context) ([]models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListProfiles")
	if f.ListProfilesErr != nil {
		return nil, f.ListProfilesErr
	}
	return append([]models.Profile{}, f.Profiles...), nil
}

func (f *Fake) UpdateProfile(_ context.Context, id int64, in models.ProfileInput) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateProfile")
	f.LastID, f.LastBio = id, in.Bio
	if f.UpdateProfileErr != nil {
		return nil, f.UpdateProfileErr
	}
	for i := range f.Profiles {
		if f.Profiles[i].ID == id {
			f.Profiles[i].Bio = in.Bio
			p := f.Profiles[i]
			return &p, nil
		}
	}
	return nil, &client.HTTPError{StatusCode: 404, Message: "HTTP error! status: 404"}
}

func (f *Fake) ClearSession(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ClearSession")
	f.SessionClear = true
	return f.ClearSessionErr
}

func (f *Fake) SaveSession(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SaveSession")
	return nil
}
