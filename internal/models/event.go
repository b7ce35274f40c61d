package models

import "time"

// Event is a campus happening students can register for.
type Event struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	Date        Date      `db:"date" json:"date"`
	StartTime   string    `db:"start_time" json:"startTime"`
	EndTime     *string   `db:"end_time" json:"endTime,omitempty"`
	Location    string    `db:"location" json:"location"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	IsFeatured  bool      `db:"is_featured" json:"isFeatured"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// EventWithTags combines an event with its tag strings, the shape every
// events view consumes.
type EventWithTags struct {
	Event
	Tags []string `json:"tags"`
}

// EventRegistration records a user signing up for an event. Registering
// again returns the existing row.
type EventRegistration struct {
	ID           int       `db:"id" json:"id"`
	EventID      int       `db:"event_id" json:"eventId"`
	UserID       int       `db:"user_id" json:"userId"`
	RegisteredAt time.Time `db:"registered_at" json:"registeredAt"`
}
