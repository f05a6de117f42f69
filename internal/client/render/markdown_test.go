package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/glamour/styles"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestMarkdownStyle(t *testing.T) {
	t.Setenv(EnvMarkdownStyle, "")
	assert.Equal(t, styles.DarkStyle, markdownStyle())

	t.Setenv(EnvMarkdownStyle, "light")
	assert.Equal(t, "light", markdownStyle())
}

func TestMarkdown_Empty(t *testing.T) {
	assert.Equal(t, "", Markdown("   \n", 80))
}

func TestEntry_ContainsTitleAndContent(t *testing.T) {
	t.Setenv(EnvMarkdownStyle, styles.NoTTYStyle)
	e := models.DiaryEntry{
		ID:        5,
		Title:     "Monday",
		Content:   "It rained all day.",
		Username:  "ann",
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	out := Entry(e, 80)
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "It rained all day.")
	assert.Contains(t, out, "by ann")
}

func TestEntryMarkdown_SkipsUnchangedUpdate(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	md := EntryMarkdown(models.DiaryEntry{ID: 1, Title: "T", CreatedAt: ts, UpdatedAt: ts})
	assert.True(t, strings.HasPrefix(md, "# T\n"))
	assert.NotContains(t, md, "updated")
}

func TestNotifications(t *testing.T) {
	assert.Contains(t, Success("done"), "done")
	assert.Contains(t, Error("failed"), "failed")
}
