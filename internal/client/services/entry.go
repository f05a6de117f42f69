package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// EntryService exposes the diary entry operations. It never caches: every
// List goes to the server.
type EntryService interface {
	List(ctx context.Context) ([]models.DiaryEntry, error)
	Get(ctx context.Context, id int64) (*models.DiaryEntry, error)
	Create(ctx context.Context, in models.EntryInput) (*models.DiaryEntry, error)
	Update(ctx context.Context, id int64, in models.EntryInput) (*models.DiaryEntry, error)
	Delete(ctx context.Context, id int64) error
}

// ErrEntryNotFound is returned by Get when the list has no such id.
var ErrEntryNotFound = errors.New("entry not found")

type entryService struct {
	client client.Client
}

func NewEntryService(c client.Client) EntryService {
	return &entryService{client: c}
}

func (s *entryService) List(ctx context.Context) ([]models.DiaryEntry, error) {
	entries, err := s.client.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return entries, nil
}

// Get looks the entry up in a fresh listing; the backend has no single-entry
// read endpoint.
func (s *entryService) Get(ctx context.Context, id int64) (*models.DiaryEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
}

func (s *entryService) Create(ctx context.Context, in models.EntryInput) (*models.DiaryEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e, err := s.client.CreateEntry(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}
	return e, nil
}

func (s *entryService) Update(ctx context.Context, id int64, in models.EntryInput) (*models.DiaryEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e, err := s.client.UpdateEntry(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("error updating entry: %w", err)
	}
	return e, nil
}

func (s *entryService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("error deleting entry: %w", err)
	}
	return nil
}
