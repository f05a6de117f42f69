// Package session tracks whether the client believes it holds a valid
// server session.
package session

import "sync"

// State is the client-side view of the server session.
type State int

const (
	// Unknown is the initial state, before the first user-info probe.
	Unknown State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session holds the current State and the username it belongs to.
// Subscribers are called synchronously on every change. The zero value is
// an Unknown session ready for use.
type Session struct {
	mu       sync.RWMutex
	state    State
	username string
	nextID   int
	subs     map[int]func(State)
}

func New() *Session {
	return &Session{subs: make(map[int]func(State))}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Username returns the user of an authenticated session, "" otherwise.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Set moves the session to st. Leaving Authenticated forgets the username.
func (s *Session) Set(st State, username string) {
	s.mu.Lock()
	if st != Authenticated {
		username = ""
	}
	changed := s.state != st || s.username != username
	s.state = st
	s.username = username
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(st)
	}
}

// Subscribe registers fn for state changes and returns a func removing it.
func (s *Session) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	if s.subs == nil {
		s.subs = make(map[int]func(State))
	}
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
