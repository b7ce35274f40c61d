package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campusai-api/internal/models"
)

// ChatRepository provides persistence for chat messages.
type ChatRepository struct {
	db *sqlx.DB
}

// NewChatRepository creates a new chat repository.
func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// ListByUser returns a user's conversation in chronological order.
func (r *ChatRepository) ListByUser(ctx context.Context, userID int) ([]models.ChatMessage, error) {
	const query = `SELECT id, user_id, content, is_user_message, created_at
FROM chat_messages WHERE user_id = $1 ORDER BY created_at ASC, id ASC`

	var messages []models.ChatMessage
	if err := r.db.SelectContext(ctx, &messages, query, userID); err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	return messages, nil
}

// Create stores one message and returns the persisted row.
func (r *ChatRepository) Create(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	const query = `INSERT INTO chat_messages (user_id, content, is_user_message)
VALUES ($1, $2, $3)
RETURNING id, user_id, content, is_user_message, created_at`

	var stored models.ChatMessage
	if err := r.db.GetContext(ctx, &stored, query, msg.UserID, msg.Content, msg.IsUserMessage); err != nil {
		return nil, fmt.Errorf("create chat message: %w", err)
	}
	return &stored, nil
}
