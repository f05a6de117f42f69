package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      EntryInput
		wantErr bool
	}{
		{name: "ok", in: EntryInput{Title: "Monday", Content: "rain"}},
		{name: "empty title", in: EntryInput{Title: "", Content: "rain"}, wantErr: true},
		{name: "blank title", in: EntryInput{Title: "   ", Content: "rain"}, wantErr: true},
		{name: "blank content", in: EntryInput{Title: "Monday", Content: "\n\t"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEmptyField)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEntryInput_Trimmed(t *testing.T) {
	got := EntryInput{Title: "  a ", Content: "\nb\n"}.Trimmed()
	assert.Equal(t, EntryInput{Title: "a", Content: "b"}, got)
}

func TestDiaryEntry_DecodesBackendJSON(t *testing.T) {
	raw := `{"id":5,"title":"T","content":"C","created_at":"2024-03-01T10:00:00Z","updated_at":"2024-03-02T10:00:00Z","username":"ann"}`
	var e DiaryEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))

	want := DiaryEntry{
		ID:        5,
		Title:     "T",
		Content:   "C",
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		Username:  "ann",
	}
	assert.Empty(t, cmp.Diff(want, e))
	assert.Contains(t, e.String(), "#5  T")
}

func TestProfile_NullBioIsEmpty(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"username":"ann","bio":null}`), &p))
	assert.Equal(t, "", p.Bio)
	assert.Equal(t, int64(1), p.ID)
}
