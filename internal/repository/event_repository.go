package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/campusai-api/internal/models"
)

// EventRepository provides persistence for events, their tags, and
// registrations.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = "id, title, description, date, start_time, end_time, location, image_url, is_featured, created_at"

// List returns all events ordered by date ascending, each with its tags.
func (r *EventRepository) List(ctx context.Context) ([]models.EventWithTags, error) {
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, "SELECT "+eventColumns+" FROM events ORDER BY date ASC"); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		return []models.EventWithTags{}, nil
	}

	ids := make([]int, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	tagsByEvent, err := r.tagsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.EventWithTags, len(events))
	for i, ev := range events {
		tags := tagsByEvent[ev.ID]
		if tags == nil {
			tags = []string{}
		}
		result[i] = models.EventWithTags{Event: ev, Tags: tags}
	}
	return result, nil
}

// FindFeatured returns the first featured event with its tags, nil when no
// event is featured.
func (r *EventRepository) FindFeatured(ctx context.Context) (*models.EventWithTags, error) {
	var event models.Event
	err := r.db.GetContext(ctx, &event, "SELECT "+eventColumns+" FROM events WHERE is_featured = true LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find featured event: %w", err)
	}

	tagsByEvent, err := r.tagsFor(ctx, []int{event.ID})
	if err != nil {
		return nil, err
	}
	tags := tagsByEvent[event.ID]
	if tags == nil {
		tags = []string{}
	}
	return &models.EventWithTags{Event: event, Tags: tags}, nil
}

type eventTagRow struct {
	EventID int    `db:"event_id"`
	Tag     string `db:"tag"`
}

func (r *EventRepository) tagsFor(ctx context.Context, eventIDs []int) (map[int][]string, error) {
	var rows []eventTagRow
	const query = `SELECT event_id, tag FROM event_tags WHERE event_id = ANY($1) ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(eventIDs)); err != nil {
		return nil, fmt.Errorf("list event tags: %w", err)
	}

	byEvent := make(map[int][]string, len(eventIDs))
	for _, row := range rows {
		byEvent[row.EventID] = append(byEvent[row.EventID], row.Tag)
	}
	return byEvent, nil
}

// Register signs a user up for an event. The write is idempotent: a repeat
// registration returns the existing row untouched.
func (r *EventRepository) Register(ctx context.Context, eventID, userID int) (*models.EventRegistration, error) {
	const insert = `INSERT INTO event_registrations (event_id, user_id)
VALUES ($1, $2)
ON CONFLICT (event_id, user_id) DO NOTHING
RETURNING id, event_id, user_id, registered_at`

	var reg models.EventRegistration
	err := r.db.GetContext(ctx, &reg, insert, eventID, userID)
	if err == nil {
		return &reg, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("register for event: %w", err)
	}

	// Conflict path: the row already exists, return it.
	const find = `SELECT id, event_id, user_id, registered_at FROM event_registrations WHERE event_id = $1 AND user_id = $2`
	if err := r.db.GetContext(ctx, &reg, find, eventID, userID); err != nil {
		return nil, fmt.Errorf("load existing registration: %w", err)
	}
	return &reg, nil
}
