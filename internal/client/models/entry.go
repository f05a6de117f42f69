package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyField reports a required text field that is empty after trimming.
var ErrEmptyField = errors.New("required field is empty")

// DiaryEntry is a single diary record owned by the authenticated user.
// The id is assigned by the server.
type DiaryEntry struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `json:"username"`
}

// String renders a one-line overview used by list views.
func (e DiaryEntry) String() string {
	date := "-"
	if !e.CreatedAt.IsZero() {
		date = e.CreatedAt.Local().Format("2006-01-02")
	}
	return fmt.Sprintf("#%d  %s  (%s by %s)", e.ID, e.Title, date, e.Username)
}

// EntryInput is the request body for creating or replacing an entry.
type EntryInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks that both title and content are non-empty after trimming.
func (in EntryInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title: %w", ErrEmptyField)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("content: %w", ErrEmptyField)
	}
	return nil
}

// Trimmed returns a copy with surrounding whitespace removed.
func (in EntryInput) Trimmed() EntryInput {
	return EntryInput{Title: strings.TrimSpace(in.Title), Content: strings.TrimSpace(in.Content)}
}
