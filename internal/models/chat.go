package models

import "time"

// ChatMessage is one turn in a user's conversation with the assistant.
type ChatMessage struct {
	ID            int       `db:"id" json:"id"`
	UserID        int       `db:"user_id" json:"userId"`
	Content       string    `db:"content" json:"content"`
	IsUserMessage bool      `db:"is_user_message" json:"isUserMessage"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// SendMessageRequest is the payload for sending a chat message.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// ChatExchange is the response to a send: the stored user message and the
// assistant's stored reply.
type ChatExchange struct {
	UserMessage ChatMessage `json:"userMessage"`
	AIResponse  ChatMessage `json:"aiResponse"`
}
