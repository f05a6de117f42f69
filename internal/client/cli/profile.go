package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/views"
)

// Profile loads and prints the profile.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireAuth() {
		return ErrCommandFailed
	}
	a.router.Navigate(views.RouteProfile)
	a.profileView.Load(ctx)
	p := a.profileView.Profile
	if p == nil {
		return ErrCommandFailed
	}
	fmt.Fprintf(a.out, "Username: %s\n", p.Username)
	bio := p.Bio
	if bio == "" {
		bio = "(no bio yet)"
	}
	fmt.Fprintf(a.out, "Bio: %s\n", bio)
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, "Member since: %s\n", p.CreatedAt.Local().Format("2006-01-02"))
	}
	return nil
}

// SetBio replaces the bio with args joined, or with prompted text when no
// args are given.
func (a *App) SetBio(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return ErrCommandFailed
	}
	bio := strings.Join(args, " ")
	if len(args) == 0 {
		s, err := getMultiline(a.reader, "New bio", a.out)
		if err != nil {
			return err
		}
		bio = s
	}
	return a.SetBioWith(ctx, bio)
}

// SetBioWith saves bio, loading the profile first when needed.
func (a *App) SetBioWith(ctx context.Context, bio string) error {
	if a.profileView.Profile == nil {
		a.profileView.Load(ctx)
	}
	return failed(a.profileView.SaveBio(ctx, bio))
}
