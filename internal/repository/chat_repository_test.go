package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campusai-api/internal/models"
)

func TestListChatMessages(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewChatRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "is_user_message", "created_at"}).
		AddRow(1, 1, "What classes do I have today?", true, now.Add(-time.Minute)).
		AddRow(2, 1, "You have Data Structures at 09:00.", false, now)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, id ASC")).
		WithArgs(1).
		WillReturnRows(rows)

	messages, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.True(t, messages[0].IsUserMessage)
	assert.False(t, messages[1].IsUserMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateChatMessage(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewChatRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO chat_messages").
		WithArgs(1, "hello", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "is_user_message", "created_at"}).
			AddRow(9, 1, "hello", true, now))

	stored, err := repo.Create(context.Background(), &models.ChatMessage{UserID: 1, Content: "hello", IsUserMessage: true})
	require.NoError(t, err)
	assert.Equal(t, 9, stored.ID)
	assert.Equal(t, "hello", stored.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}
