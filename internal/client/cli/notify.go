package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophdiary/internal/client/render"
)

// termNotifier prints view notifications as styled lines.
type termNotifier struct {
	w io.Writer
}

func (n *termNotifier) Success(msg string) { fmt.Fprintln(n.w, render.Success(msg)) }
func (n *termNotifier) Error(msg string)   { fmt.Fprintln(n.w, render.Error(msg)) }
