package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical stack of text inputs with one focused field.
type form struct {
	inputs []textinput.Model
	labels []string
	focus  int
}

type field struct {
	label  string
	secret bool
}

func newForm(fields ...field) form {
	f := form{}
	for _, fl := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 150
		ti.Width = 40
		ti.Cursor.SetMode(cursor.CursorStatic)
		if fl.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.inputs = append(f.inputs, ti)
		f.labels = append(f.labels, fl.label)
	}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *form) next() { f.setFocus(f.focus + 1) }
func (f *form) prev() { f.setFocus(f.focus - 1) }

func (f *form) onLast() bool { return f.focus == len(f.inputs)-1 }

func (f *form) value(i int) string { return f.inputs[i].Value() }

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.setFocus(0)
}

// clearSecrets empties the password fields.
func (f *form) clearSecrets() {
	for i := range f.inputs {
		if f.inputs[i].EchoMode == textinput.EchoPassword {
			f.inputs[i].Reset()
		}
	}
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker + f.labels[i] + "\n")
		b.WriteString("  " + in.View() + "\n\n")
	}
	return b.String()
}
