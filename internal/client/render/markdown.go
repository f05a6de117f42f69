// Package render turns diary data into terminal output: glamour markdown for
// entry bodies and lipgloss styles shared by the REPL and the TUI.
package render

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// EnvMarkdownStyle selects a glamour standard style (dark, light, notty...).
const EnvMarkdownStyle = "DIARY_MD_STYLE"

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width; building one is not free.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func markdownStyle() string {
	if s := strings.TrimSpace(os.Getenv(EnvMarkdownStyle)); s != "" {
		return s
	}
	return styles.DarkStyle
}

// Markdown renders md wrapped at width. Rendering errors fall back to the
// raw text.
func Markdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	style := markdownStyle()
	key := fmt.Sprintf("%s:%d", style, width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// EntryMarkdown is the markdown document shown for a single entry.
func EntryMarkdown(e models.DiaryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title)
	meta := []string{fmt.Sprintf("#%d", e.ID)}
	if e.Username != "" {
		meta = append(meta, "by "+e.Username)
	}
	if !e.CreatedAt.IsZero() {
		meta = append(meta, "created "+e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if !e.UpdatedAt.IsZero() && !e.UpdatedAt.Equal(e.CreatedAt) {
		meta = append(meta, "updated "+e.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "*%s*\n\n", strings.Join(meta, " · "))
	b.WriteString(e.Content)
	return b.String()
}

// Entry renders e for a terminal of the given width.
func Entry(e models.DiaryEntry, width int) string {
	return Markdown(EntryMarkdown(e), width)
}
