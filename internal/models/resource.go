package models

import "time"

// Resource is a learning material exposed through the resources library.
type Resource struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Type        string    `db:"type" json:"type"`
	URL         string    `db:"url" json:"url"`
	Category    string    `db:"category" json:"category"`
	Description *string   `db:"description" json:"description,omitempty"`
	FileSize    *string   `db:"file_size" json:"fileSize,omitempty"`
	AddedAt     time.Time `db:"added_at" json:"addedAt"`
}

// ResourceFilter narrows the library listing. Category matches exactly,
// Search substring-matches title or description.
type ResourceFilter struct {
	Category string
	Search   string
}
