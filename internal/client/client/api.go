package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

const (
	PathUserInfo = "/api/user-info/"
	PathLogin    = "/api/login/"
	PathLogout   = "/api/logout/"
	PathRegister = "/api/register/"
	PathEntries  = "/api/entries/"
	PathProfile  = "/api/profile/"
)

// EntryPath returns the path of a single entry.
func EntryPath(id int64) string {
	return fmt.Sprintf("%s%d/", PathEntries, id)
}

// ProfilePath returns the path of a single profile.
func ProfilePath(id int64) string {
	return fmt.Sprintf("%s%d/", PathProfile, id)
}

// UserInfo fetches the current user. Success means the session cookie is
// valid; the decoded fields are best effort.
func (c *HTTPClient) UserInfo(ctx context.Context) (*models.UserInfo, error) {
	resp, err := c.Request(ctx, PathUserInfo, RequestOptions{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	info := &models.UserInfo{}
	if resp.JSON {
		if err := resp.Decode(info); err != nil {
			c.log.Debug(ctx, "user info has unexpected shape", "error", err)
			info = &models.UserInfo{}
		}
	}
	return info, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := c.Request(ctx, PathLogin, RequestOptions{Method: http.MethodPost, Body: creds})
	if err != nil {
		return err
	}
	var out models.LoginResponse
	if err := resp.Decode(&out); err != nil {
		return err
	}
	if out.Message != models.LoginSuccessMessage {
		return malformed("unexpected login message %q", out.Message)
	}
	if err := c.jar.Save(ctx); err != nil {
		c.log.Warn(ctx, "failed to persist session", "error", err)
	}
	return nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.Request(ctx, PathLogout, RequestOptions{Method: http.MethodPost})
	return err
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	_, err := c.Request(ctx, PathRegister, RequestOptions{Method: http.MethodPost, Body: reg})
	return err
}

func (c *HTTPClient) ListEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	resp, err := c.Request(ctx, PathEntries, RequestOptions{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	if _, ok := resp.Data.([]any); !ok {
		return nil, malformed("entries: expected an array")
	}
	var out []models.DiaryEntry
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, in models.EntryInput) (*models.DiaryEntry, error) {
	resp, err := c.Request(ctx, PathEntries, RequestOptions{Method: http.MethodPost, Body: in})
	if err != nil {
		return nil, err
	}
	obj, ok := resp.Data.(map[string]any)
	if !ok || obj["id"] == nil {
		return nil, malformed("created entry has no id")
	}
	var out models.DiaryEntry
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, id int64, in models.EntryInput) (*models.DiaryEntry, error) {
	resp, err := c.Request(ctx, EntryPath(id), RequestOptions{Method: http.MethodPut, Body: in})
	if err != nil {
		return nil, err
	}
	var out models.DiaryEntry
	if resp.JSON {
		if err := resp.Decode(&out); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id int64) error {
	_, err := c.Request(ctx, EntryPath(id), RequestOptions{Method: http.MethodDelete})
	return err
}

// ListProfiles returns the profile collection. The backend serves exactly
// one profile for the current user.
func (c *HTTPClient) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	resp, err := c.Request(ctx, PathProfile, RequestOptions{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	items, ok := resp.Data.([]any)
	if !ok || len(items) == 0 {
		return nil, malformed("profile: expected a non-empty array")
	}
	if first, ok := items[0].(map[string]any); !ok || !hasKey(first, "bio") {
		return nil, malformed("profile: missing bio")
	}
	var out []models.Profile
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, id int64, in models.ProfileInput) (*models.Profile, error) {
	resp, err := c.Request(ctx, ProfilePath(id), RequestOptions{Method: http.MethodPut, Body: in})
	if err != nil {
		return nil, err
	}
	obj, ok := resp.Data.(map[string]any)
	if !ok || !hasKey(obj, "bio") {
		return nil, malformed("updated profile: missing bio")
	}
	var out models.Profile
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func hasKey(m map[string]any, k string) bool {
	_, ok := m[k]
	return ok
}
