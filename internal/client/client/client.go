package client

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// Client is the typed contract of the diary backend. Cookies and CSRF
// handling stay behind it.
type Client interface {
	UserInfo(ctx context.Context) (*models.UserInfo, error)
	Login(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, reg models.Registration) error

	ListEntries(ctx context.Context) ([]models.DiaryEntry, error)
	CreateEntry(ctx context.Context, in models.EntryInput) (*models.DiaryEntry, error)
	UpdateEntry(ctx context.Context, id int64, in models.EntryInput) (*models.DiaryEntry, error)
	DeleteEntry(ctx context.Context, id int64) error

	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateProfile(ctx context.Context, id int64, in models.ProfileInput) (*models.Profile, error)

	// ClearSession drops the session and CSRF cookies locally and persists
	// the result.
	ClearSession(ctx context.Context) error
	// SaveSession persists the current cookies.
	SaveSession(ctx context.Context) error
}

var _ Client = (*HTTPClient)(nil)
