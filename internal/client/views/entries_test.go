package views

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/client/clienttest"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntriesView(fc *clienttest.Fake) (*EntriesView, *Recorder) {
	rec := &Recorder{}
	return NewEntriesView(services.NewEntryService(fc), rec, nil), rec
}

func TestEntriesView_Mount(t *testing.T) {
	fc := &clienttest.Fake{Entries: []models.DiaryEntry{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}}
	v, rec := newEntriesView(fc)

	v.Mount(context.Background())
	assert.Len(t, v.Entries, 2)
	assert.Empty(t, v.Err)
	assert.False(t, v.Loading)
	assert.Empty(t, rec.Notes)
}

func TestEntriesView_LoadFailure(t *testing.T) {
	fc := &clienttest.Fake{
		Entries: []models.DiaryEntry{{ID: 1}},
		ListErr: fmt.Errorf("%w: entries: expected an array", client.ErrMalformedResponse),
	}
	v, rec := newEntriesView(fc)
	v.Entries = []models.DiaryEntry{{ID: 9}}

	v.Load(context.Background())
	assert.Equal(t, "Failed to load diary entries. Please try again.", v.Err)
	assert.NotNil(t, v.Entries)
	assert.Empty(t, v.Entries)
	assert.Equal(t, []Note{{Err: true, Msg: "Failed to load diary entries"}}, rec.Notes)

	fc.ListErr = nil
	v.Retry(context.Background())
	assert.Empty(t, v.Err)
	assert.Len(t, v.Entries, 1)
}

func TestEntriesView_CreateValidation(t *testing.T) {
	fc := &clienttest.Fake{}
	v, rec := newEntriesView(fc)

	assert.False(t, v.Create(context.Background(), "", "body"))
	assert.False(t, v.Create(context.Background(), "title", "   "))
	assert.Empty(t, fc.CallsSnapshot())
	assert.Equal(t, []Note{
		{Err: true, Msg: "Please fill in both title and content"},
		{Err: true, Msg: "Please fill in both title and content"},
	}, rec.Notes)
}

func TestEntriesView_CreateTrimsAndReloads(t *testing.T) {
	fc := &clienttest.Fake{}
	v, rec := newEntriesView(fc)

	require.True(t, v.Create(context.Background(), "  Monday ", "\nrain\n"))
	assert.Equal(t, models.EntryInput{Title: "Monday", Content: "rain"}, fc.LastInput)
	assert.Equal(t, []string{"CreateEntry", "ListEntries"}, fc.CallsSnapshot())
	require.Len(t, v.Entries, 1)
	assert.Equal(t, Note{Msg: "Entry created successfully!"}, rec.Notes[0])
}

func TestEntriesView_CreateFailure(t *testing.T) {
	fc := &clienttest.Fake{CreateErr: errors.New("boom")}
	v, rec := newEntriesView(fc)

	assert.False(t, v.Create(context.Background(), "T", "C"))
	assert.Equal(t, []string{"CreateEntry"}, fc.CallsSnapshot())
	assert.Equal(t, []Note{{Err: true, Msg: "Failed to create entry. Please try again."}}, rec.Notes)
}

func TestEntriesView_UpdateSendsAsTyped(t *testing.T) {
	fc := &clienttest.Fake{Entries: []models.DiaryEntry{{ID: 4, Title: "old", Content: "old"}}}
	v, rec := newEntriesView(fc)

	require.True(t, v.Update(context.Background(), 4, " new ", "body "))
	assert.Equal(t, models.EntryInput{Title: " new ", Content: "body "}, fc.LastInput)
	assert.Equal(t, []string{"UpdateEntry", "ListEntries"}, fc.CallsSnapshot())
	assert.Equal(t, " new ", v.Entries[0].Title)
	assert.Equal(t, Note{Msg: "Entry updated successfully"}, rec.Notes[0])

	fc.UpdateErr = errors.New("boom")
	assert.False(t, v.Update(context.Background(), 4, "x", "y"))
	last, _ := rec.Last()
	assert.Equal(t, Note{Err: true, Msg: "Failed to update entry"}, last)
}

func TestEntriesView_DeleteReloads(t *testing.T) {
	fc := &clienttest.Fake{Entries: []models.DiaryEntry{{ID: 5}, {ID: 6}}}
	v, rec := newEntriesView(fc)
	v.Mount(context.Background())

	require.True(t, v.Delete(context.Background(), 5))
	assert.Equal(t, int64(5), fc.LastID)
	assert.Equal(t, []string{"ListEntries", "DeleteEntry", "ListEntries"}, fc.CallsSnapshot())
	assert.Equal(t, []models.DiaryEntry{{ID: 6}}, v.Entries)
	assert.Equal(t, []Note{{Msg: "Entry deleted successfully"}}, rec.Notes)

	_, ok := v.Find(5)
	assert.False(t, ok)
}

func TestEntriesView_DeleteFailureKeepsList(t *testing.T) {
	fc := &clienttest.Fake{Entries: []models.DiaryEntry{{ID: 5}}}
	v, rec := newEntriesView(fc)
	v.Mount(context.Background())
	fc.DeleteErr = &client.HTTPError{StatusCode: 500, Message: "HTTP error! status: 500"}

	assert.False(t, v.Delete(context.Background(), 5))
	assert.Len(t, v.Entries, 1)
	assert.Equal(t, []Note{{Err: true, Msg: "Failed to delete entry"}}, rec.Notes)
}
