package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_StartsUnknown(t *testing.T) {
	s := New()
	assert.Equal(t, Unknown, s.State())
	assert.Equal(t, "", s.Username())
}

func TestSession_SetNotifiesSubscribers(t *testing.T) {
	s := New()
	var got []State
	unsubscribe := s.Subscribe(func(st State) { got = append(got, st) })

	s.Set(Authenticated, "ann")
	assert.Equal(t, "ann", s.Username())

	s.Set(Authenticated, "ann")
	s.Set(Unauthenticated, "ann")
	assert.Equal(t, "", s.Username())

	unsubscribe()
	s.Set(Authenticated, "bob")

	assert.Equal(t, []State{Authenticated, Unauthenticated}, got)
}

func TestSession_ZeroValueUsable(t *testing.T) {
	var s Session
	assert.Equal(t, Unknown, s.State())

	var got []State
	unsubscribe := s.Subscribe(func(st State) { got = append(got, st) })
	s.Set(Authenticated, "ann")
	unsubscribe()
	s.Set(Unauthenticated, "")

	assert.Equal(t, []State{Authenticated}, got)
	assert.Equal(t, "", s.Username())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
}
