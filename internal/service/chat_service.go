package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campusai-api/internal/ai"
	"github.com/noah-isme/campusai-api/internal/models"
)

type chatRepository interface {
	ListByUser(ctx context.Context, userID int) ([]models.ChatMessage, error)
	Create(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error)
}

type chatUserRepository interface {
	FindByID(ctx context.Context, id int) (*models.User, error)
}

// ChatService runs the assistant conversation flow.
type ChatService struct {
	repo      chatRepository
	users     chatUserRepository
	responder ai.Responder
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewChatService constructs a ChatService.
func NewChatService(repo chatRepository, users chatUserRepository, responder ai.Responder, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ChatService{repo: repo, users: users, responder: responder, validator: validate, logger: logger, metrics: metrics}
}

// History returns the user's conversation in chronological order.
func (s *ChatService) History(ctx context.Context, userID int) ([]models.ChatMessage, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Send stores the user's message, asks the assistant for a reply, stores
// that too, and returns both rows. An assistant failure never reaches the
// caller: the stored reply degrades to a fixed apology so the chat UI
// always has something to display.
func (s *ChatService) Send(ctx context.Context, userID int, req models.SendMessageRequest) (*models.ChatExchange, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	userMessage, err := s.repo.Create(ctx, &models.ChatMessage{
		UserID:        userID,
		Content:       req.Content,
		IsUserMessage: true,
	})
	if err != nil {
		return nil, err
	}

	replyContent := s.reply(ctx, userID, req.Content)

	aiMessage, err := s.repo.Create(ctx, &models.ChatMessage{
		UserID:        userID,
		Content:       replyContent,
		IsUserMessage: false,
	})
	if err != nil {
		return nil, err
	}

	return &models.ChatExchange{UserMessage: *userMessage, AIResponse: *aiMessage}, nil
}

func (s *ChatService) reply(ctx context.Context, userID int, message string) string {
	userName := "there"
	if user, err := s.users.FindByID(ctx, userID); err == nil && user != nil {
		if first := user.FirstName(); first != "" {
			userName = first
		}
	}

	reply, err := s.metrics.ObserveAICall(func() (string, error) {
		return s.responder.Reply(ctx, userName, message)
	})
	if err != nil {
		s.logger.Warn("assistant call failed", zap.Int("user_id", userID), zap.Error(err))
		return ai.FallbackReply
	}
	return reply
}
