// Package models defines the client-side data models of the diary client:
// the REST resources exchanged with the backend and the rows kept in the
// local cookie store.
package models

import "time"

// StoredCookie is a cookie persisted in the local cookie store for one API
// origin. Only name and value survive a round-trip through the jar.
type StoredCookie struct {
	Name  string
	Value string

	// UpdatedAt is the time the row was last written (UTC).
	UpdatedAt time.Time
}
