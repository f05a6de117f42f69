package models

import "time"

// Profile is the single profile record of a user. The backend serves it as a
// one-element collection; a null bio decodes to "".
type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileInput is the request body for updating a profile.
type ProfileInput struct {
	Bio string `json:"bio"`
}
