package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTitle is the placeholder title a session carries until the
// first user message names it.
const DefaultSessionTitle = "New Chat"

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
