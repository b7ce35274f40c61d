package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campusai-api/internal/ai"
	"github.com/noah-isme/campusai-api/internal/models"
)

type mockChatRepo struct {
	stored    []models.ChatMessage
	createErr error
}

func (m *mockChatRepo) ListByUser(_ context.Context, _ int) ([]models.ChatMessage, error) {
	return m.stored, nil
}

func (m *mockChatRepo) Create(_ context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *msg
	stored.ID = len(m.stored) + 1
	m.stored = append(m.stored, stored)
	return &stored, nil
}

type stubResponder struct {
	reply string
	err   error
	names []string
}

func (s *stubResponder) Reply(_ context.Context, userName, _ string) (string, error) {
	s.names = append(s.names, userName)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestChatSend(t *testing.T) {
	repo := &mockChatRepo{}
	users := &mockUserRepo{byID: map[int]*models.User{
		1: {ID: 1, FullName: "Pulkit Sharma"},
	}}
	responder := &stubResponder{reply: "You have Data Structures at 09:00."}
	svc := NewChatService(repo, users, responder, nil, nil, nil)

	exchange, err := svc.Send(context.Background(), 1, models.SendMessageRequest{Content: "What classes do I have today?"})
	require.NoError(t, err)
	assert.True(t, exchange.UserMessage.IsUserMessage)
	assert.False(t, exchange.AIResponse.IsUserMessage)
	assert.Equal(t, "You have Data Structures at 09:00.", exchange.AIResponse.Content)
	// Only the first name is handed to the assistant.
	assert.Equal(t, []string{"Pulkit"}, responder.names)
	require.Len(t, repo.stored, 2)
	assert.True(t, repo.stored[0].IsUserMessage)
}

func TestChatSendAssistantFailure(t *testing.T) {
	repo := &mockChatRepo{}
	users := &mockUserRepo{}
	responder := &stubResponder{err: errors.New("upstream timeout")}
	svc := NewChatService(repo, users, responder, nil, nil, nil)

	exchange, err := svc.Send(context.Background(), 1, models.SendMessageRequest{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, ai.FallbackReply, exchange.AIResponse.Content)
	// The user's message is stored before the assistant is consulted.
	require.Len(t, repo.stored, 2)
	assert.Equal(t, "hello", repo.stored[0].Content)
	// Unknown users are addressed generically.
	assert.Equal(t, []string{"there"}, responder.names)
}

func TestChatSendEmptyContent(t *testing.T) {
	repo := &mockChatRepo{}
	svc := NewChatService(repo, &mockUserRepo{}, &stubResponder{}, nil, nil, nil)

	_, err := svc.Send(context.Background(), 1, models.SendMessageRequest{})
	require.Error(t, err)
	assert.Empty(t, repo.stored)
}

func TestChatHistory(t *testing.T) {
	repo := &mockChatRepo{stored: []models.ChatMessage{
		{ID: 1, UserID: 1, Content: "hi", IsUserMessage: true},
		{ID: 2, UserID: 1, Content: "hey there!", IsUserMessage: false},
	}}
	svc := NewChatService(repo, &mockUserRepo{}, &stubResponder{}, nil, nil, nil)

	history, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
