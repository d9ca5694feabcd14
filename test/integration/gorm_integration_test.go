package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"agroadvisor-be/internal/entity"
	"agroadvisor-be/internal/repository/specification"
	"agroadvisor-be/internal/repository/unitofwork"
	"agroadvisor-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.SystemLogRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Chat Message Repository", func(t *testing.T) {
		count, err := uow.ChatMessageRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ChatMessage count: %d", count)
	})

	t.Run("Session Message Ordering Round Trip", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:           uuid.New(),
			Email:        uuid.NewString() + "@integration.test",
			PasswordHash: "not-a-real-hash",
			Status:       entity.UserStatusActive,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    user.Id,
			Title:     entity.DefaultSessionTitle,
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

		for i, text := range []string{"first", "second", "third"} {
			msg := &entity.ChatMessage{
				Id:            uuid.New(),
				ChatSessionId: session.Id,
				Sender:        entity.ChatSenderUser,
				Text:          text,
				CreatedAt:     time.Now().Add(time.Duration(i) * time.Millisecond),
			}
			require.NoError(t, uow.ChatMessageRepository().Create(ctx, msg))
		}

		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatSessionID{ChatSessionID: session.Id},
			specification.OrderBy{Field: "created_at", Desc: false},
		)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "first", messages[0].Text)
		assert.Equal(t, "third", messages[2].Text)
	})
}
