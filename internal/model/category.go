package model

import "time"

// Category is a grouping label under which items are organized.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, repository, provider) without coupling to persistence.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IconRef     string    `json:"icon_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
