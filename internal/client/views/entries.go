package views

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/services"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

const (
	MsgLoadEntriesError  = "Failed to load diary entries. Please try again."
	MsgLoadEntriesFailed = "Failed to load diary entries"
	MsgFillTitleContent  = "Please fill in both title and content"
	MsgEntryCreated      = "Entry created successfully!"
	MsgEntryCreateFailed = "Failed to create entry. Please try again."
	MsgEntryUpdated      = "Entry updated successfully"
	MsgEntryUpdateFailed = "Failed to update entry"
	MsgEntryDeleted      = "Entry deleted successfully"
	MsgEntryDeleteFailed = "Failed to delete entry"
)

// EntriesView is the dashboard: the list of entries plus the create and
// edit forms. The list only ever changes by a full reload from the server.
type EntriesView struct {
	Entries []models.DiaryEntry
	// Err is the inline error shown with a retry action; "" when the last
	// load succeeded.
	Err     string
	Loading bool

	entries services.EntryService
	notify  Notifier
	log     logging.Logger
}

func NewEntriesView(svc services.EntryService, n Notifier, log logging.Logger) *EntriesView {
	if log == nil {
		log = logging.Nop()
	}
	return &EntriesView{entries: svc, notify: orNop(n), log: log}
}

// Mount loads the list when the page is shown.
func (v *EntriesView) Mount(ctx context.Context) { v.Load(ctx) }

// Retry reloads after a failed load.
func (v *EntriesView) Retry(ctx context.Context) { v.Load(ctx) }

// Load replaces the list with the server's. On failure the list is emptied
// and Err is set.
func (v *EntriesView) Load(ctx context.Context) {
	v.Loading = true
	v.Err = ""
	defer func() { v.Loading = false }()

	list, err := v.entries.List(ctx)
	if err != nil {
		v.log.Error(ctx, "error fetching entries", "error", err)
		v.Err = MsgLoadEntriesError
		v.notify.Error(MsgLoadEntriesFailed)
		v.Entries = []models.DiaryEntry{}
		return
	}
	v.Entries = list
}

// Find returns the loaded entry with id.
func (v *EntriesView) Find(id int64) (models.DiaryEntry, bool) {
	for _, e := range v.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.DiaryEntry{}, false
}

// Create sends the trimmed title and content, then reloads.
func (v *EntriesView) Create(ctx context.Context, title, content string) bool {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		v.notify.Error(MsgFillTitleContent)
		return false
	}
	in := models.EntryInput{Title: title, Content: content}.Trimmed()
	if _, err := v.entries.Create(ctx, in); err != nil {
		v.log.Error(ctx, "error creating entry", "error", err)
		v.notify.Error(MsgEntryCreateFailed)
		return false
	}
	v.notify.Success(MsgEntryCreated)
	v.Load(ctx)
	return true
}

// Update replaces entry id with title and content as typed, then reloads.
func (v *EntriesView) Update(ctx context.Context, id int64, title, content string) bool {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		v.notify.Error(MsgFillTitleContent)
		return false
	}
	if _, err := v.entries.Update(ctx, id, models.EntryInput{Title: title, Content: content}); err != nil {
		v.log.Error(ctx, "error updating entry", "id", id, "error", err)
		v.notify.Error(MsgEntryUpdateFailed)
		return false
	}
	v.notify.Success(MsgEntryUpdated)
	v.Load(ctx)
	return true
}

// Delete removes entry id, then reloads. Confirmation is the caller's job.
func (v *EntriesView) Delete(ctx context.Context, id int64) bool {
	if err := v.entries.Delete(ctx, id); err != nil {
		v.log.Error(ctx, "error deleting entry", "id", id, "error", err)
		v.notify.Error(MsgEntryDeleteFailed)
		return false
	}
	v.notify.Success(MsgEntryDeleted)
	v.Load(ctx)
	return true
}
