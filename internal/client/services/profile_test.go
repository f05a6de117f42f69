package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/client/clienttest"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetFirst(t *testing.T) {
	fc := &clienttest.Fake{Profiles: []models.Profile{
		{ID: 3, Username: "ann", Bio: "first"},
		{ID: 4, Username: "bob", Bio: "second"},
	}}
	svc := NewProfileService(fc)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "first", p.Bio)
}

func TestProfileService_GetEmpty(t *testing.T) {
	svc := NewProfileService(&clienttest.Fake{})

	_, err := svc.Get(context.Background())
	require.ErrorIs(t, err, client.ErrMalformedResponse)
}

func TestProfileService_UpdateBio(t *testing.T) {
	fc := &clienttest.Fake{Profiles: []models.Profile{{ID: 3, Bio: "old"}}}
	svc := NewProfileService(fc)

	p, err := svc.UpdateBio(context.Background(), 3, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", p.Bio)
	assert.Equal(t, "new", fc.LastBio)

	fc.UpdateProfileErr = client.ErrUnavailable
	_, err = svc.UpdateBio(context.Background(), 3, "x")
	require.ErrorIs(t, err, client.ErrUnavailable)
}
