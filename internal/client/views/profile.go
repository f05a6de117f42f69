package views

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

const (
	MsgProfileFetchFailed  = "Failed to fetch profile"
	MsgProfileNotFound     = "Profile not found"
	MsgProfileUpdated      = "Profile updated successfully"
	MsgProfileUpdateFailed = "Failed to update profile"
)

// ProfileView shows the user's profile and edits its bio.
type ProfileView struct {
	// Profile is nil until a load succeeds.
	Profile *models.Profile
	// Bio is the edit buffer.
	Bio     string
	Loading bool

	profiles services.ProfileService
	notify   Notifier
	log      logging.Logger
}

func NewProfileView(svc services.ProfileService, n Notifier, log logging.Logger) *ProfileView {
	if log == nil {
		log = logging.Nop()
	}
	return &ProfileView{profiles: svc, notify: orNop(n), log: log}
}

func (v *ProfileView) Mount(ctx context.Context) { v.Load(ctx) }

// Load fetches the profile. On failure the profile and the buffer are reset.
func (v *ProfileView) Load(ctx context.Context) {
	v.Loading = true
	defer func() { v.Loading = false }()

	p, err := v.profiles.Get(ctx)
	if err != nil {
		v.log.Error(ctx, "error fetching profile", "error", err)
		v.notify.Error(MsgProfileFetchFailed)
		v.Profile = nil
		v.Bio = ""
		return
	}
	v.Profile = p
	v.Bio = p.Bio
}

// SaveBio stores bio and replaces the local profile with the server's copy.
func (v *ProfileView) SaveBio(ctx context.Context, bio string) bool {
	if v.Profile == nil || v.Profile.ID == 0 {
		v.notify.Error(MsgProfileNotFound)
		return false
	}
	v.Bio = bio

	p, err := v.profiles.UpdateBio(ctx, v.Profile.ID, bio)
	if err != nil {
		v.log.Error(ctx, "error updating profile", "error", err)
		v.notify.Error(MsgProfileUpdateFailed)
		return false
	}
	v.Profile = p
	v.Bio = p.Bio
	v.notify.Success(MsgProfileUpdated)
	return true
}
