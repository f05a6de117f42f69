package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// ProfileService reads and updates the current user's profile.
type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	UpdateBio(ctx context.Context, id int64, bio string) (*models.Profile, error)
}

type profileService struct {
	client client.Client
}

func NewProfileService(c client.Client) ProfileService {
	return &profileService{client: c}
}

// Get returns the first profile of the collection.
func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	profiles, err := s.client.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("error fetching profile: %w", client.ErrMalformedResponse)
	}
	p := profiles[0]
	return &p, nil
}

func (s *profileService) UpdateBio(ctx context.Context, id int64, bio string) (*models.Profile, error) {
	p, err := s.client.UpdateProfile(ctx, id, models.ProfileInput{Bio: bio})
	if err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return p, nil
}
