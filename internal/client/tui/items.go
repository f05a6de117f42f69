package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/shared"
)

const previewLen = 60

// entryItem adapts a diary entry to list.DefaultItem.
type entryItem struct {
	entry models.DiaryEntry
}

func (i entryItem) Title() string { return i.entry.Title }

func (i entryItem) Description() string {
	date := "-"
	if !i.entry.CreatedAt.IsZero() {
		date = i.entry.CreatedAt.Local().Format("2006-01-02")
	}
	return date + " · " + shared.Preview(i.entry.Content, previewLen)
}

func (i entryItem) FilterValue() string { return i.entry.Title }

func entryItems(entries []models.DiaryEntry) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{entry: e})
	}
	return items
}

func newEntryList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Diary entries"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("entry", "entries")
	// q and esc are handled by the model.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return l
}
