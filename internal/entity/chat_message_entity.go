package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatSenderUser = "user"
	ChatSenderAI   = "ai"
)

// ChatMessage is immutable once created: there is no edit or delete path.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Sender        string
	Text          string
	ImageFilename *string
	CreatedAt     time.Time
}
