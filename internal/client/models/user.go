// Package models defines typed records exchanged with the EventHub backend.
// Server responses are decoded into these types and validated at the gateway
// boundary; malformed payloads are rejected instead of propagating undefined
// fields.
package models

import "fmt"

// UserProfile is the authenticated user's profile as returned by the auth
// backend on login, register, and verify actions.
type UserProfile struct {
	ID        int64  `json:"id"`
	Phone     string `json:"phone"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Validate reports whether the profile carries the fields every auth
// response must include.
func (u *UserProfile) Validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("user profile: missing id")
	}
	if u.FullName == "" {
		return fmt.Errorf("user profile: missing full_name")
	}
	return nil
}
