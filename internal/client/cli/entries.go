package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/render"
)

// List reloads and prints the entries.
func (a *App) List(ctx context.Context) error {
	if !a.requireAuth() {
		return ErrCommandFailed
	}
	a.entriesView.Load(ctx)
	return a.printEntries()
}

// Retry reloads after a failed list.
func (a *App) Retry(ctx context.Context) error {
	if !a.requireAuth() {
		return ErrCommandFailed
	}
	a.entriesView.Retry(ctx)
	return a.printEntries()
}

func (a *App) printEntries() error {
	v := a.entriesView
	if v.Err != "" {
		fmt.Fprintln(a.out, render.Error(v.Err))
		fmt.Fprintln(a.out, render.MutedStyle.Render("type 'retry' to load again"))
		return ErrCommandFailed
	}
	if len(v.Entries) == 0 {
		fmt.Fprintln(a.out, "No diary entries yet. Use 'add' to write one.")
		return nil
	}
	for _, e := range v.Entries {
		fmt.Fprintln(a.out, e.String())
	}
	return nil
}

// Show prints one entry, rendered as markdown.
func (a *App) Show(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return ErrCommandFailed
	}
	id, err := a.entryID(args, "Enter entry id to show")
	if err != nil {
		return err
	}
	e, ok := a.lookupEntry(ctx, id)
	if !ok {
		return ErrCommandFailed
	}
	fmt.Fprintln(a.out, render.Entry(e, a.width))
	return nil
}

// Add prompts for a title and content and creates the entry.
func (a *App) Add(ctx context.Context) error {
	if !a.requireAuth() {
		return ErrCommandFailed
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Content (markdown)", a.out)
	if err != nil {
		return err
	}
	return failed(a.entriesView.Create(ctx, title, content))
}

// AddWith creates an entry without prompting.
func (a *App) AddWith(ctx context.Context, title, content string) error {
	return failed(a.entriesView.Create(ctx, title, content))
}

// Edit prompts for a new title and content; empty answers keep the current
// values.
func (a *App) Edit(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return ErrCommandFailed
	}
	id, err := a.entryID(args, "Enter entry id to edit")
	if err != nil {
		return err
	}
	e, ok := a.lookupEntry(ctx, id)
	if !ok {
		return ErrCommandFailed
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", e.Title), a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = e.Title
	}
	content, err := getMultiline(a.reader, "Content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = e.Content
	}
	return failed(a.entriesView.Update(ctx, id, title, content))
}

// EditWith replaces entry id. Empty title or content keep the current
// values.
func (a *App) EditWith(ctx context.Context, id int64, title, content string) error {
	if title == "" || content == "" {
		e, ok := a.lookupEntry(ctx, id)
		if !ok {
			return ErrCommandFailed
		}
		if title == "" {
			title = e.Title
		}
		if content == "" {
			content = e.Content
		}
	}
	return failed(a.entriesView.Update(ctx, id, title, content))
}

// Delete removes an entry after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return ErrCommandFailed
	}
	id, err := a.entryID(args, "Enter entry id to delete")
	if err != nil {
		return err
	}
	ok, err := getConfirm(a.reader, "Are you sure you want to delete this entry?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	return a.DeleteWith(ctx, id)
}

// contentArg resolves a --content value; "-" reads the rest of the input.
func (a *App) contentArg(v string) (string, error) {
	if v != "-" {
		return v, nil
	}
	raw, err := io.ReadAll(a.reader)
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}

// DeleteWith removes entry id without asking.
func (a *App) DeleteWith(ctx context.Context, id int64) error {
	return failed(a.entriesView.Delete(ctx, id))
}

// entryID takes the id from the first argument or asks for it.
func (a *App) entryID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		s, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		raw = s
	}
	id, err := ParseID(raw)
	if err != nil {
		fmt.Fprintln(a.out, render.Error(err.Error()))
		return 0, ErrCommandFailed
	}
	return id, nil
}

// ParseID parses a positive entry or profile id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// lookupEntry finds id in the loaded list, loading it first when empty.
func (a *App) lookupEntry(ctx context.Context, id int64) (models.DiaryEntry, bool) {
	if e, ok := a.entriesView.Find(id); ok {
		return e, true
	}
	a.entriesView.Load(ctx)
	if a.entriesView.Err != "" {
		return models.DiaryEntry{}, false
	}
	e, ok := a.entriesView.Find(id)
	if !ok {
		fmt.Fprintln(a.out, render.Error(fmt.Sprintf("Entry #%d not found", id)))
	}
	return e, ok
}
