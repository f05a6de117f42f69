package views

// Notifier shows short user-facing messages, the terminal counterpart of
// toast notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Note is a recorded notification.
type Note struct {
	Err bool
	Msg string
}

// Recorder is a Notifier that keeps every message. The TUI drains it after
// each action.
type Recorder struct {
	Notes []Note
}

func (r *Recorder) Success(msg string) { r.Notes = append(r.Notes, Note{Msg: msg}) }
func (r *Recorder) Error(msg string)   { r.Notes = append(r.Notes, Note{Err: true, Msg: msg}) }

// Last returns the most recent note.
func (r *Recorder) Last() (Note, bool) {
	if len(r.Notes) == 0 {
		return Note{}, false
	}
	return r.Notes[len(r.Notes)-1], true
}

// Drain returns and forgets the recorded notes.
func (r *Recorder) Drain() []Note {
	out := r.Notes
	r.Notes = nil
	return out
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

func orNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
