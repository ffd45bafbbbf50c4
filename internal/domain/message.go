package domain

import (
	"context"
	"time"
)

// Message is one entry in a project conversation. Messages are append-only:
// nothing but the IsRead flag is ever updated.
type Message struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined data for list responses
	SenderName *string `json:"sender_name,omitempty"`
}

type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	GetByID(ctx context.Context, id int64) (*Message, error)
	// GetByProjectID returns messages ordered by created_at, ties broken by id.
	GetByProjectID(ctx context.Context, projectID int64) ([]Message, error)
	MarkRead(ctx context.Context, id int64) error
}

type MessageUsecase interface {
	PostMessage(ctx context.Context, senderID string, projectID int64, receiverID, content string) (*Message, error)
	ListByProject(ctx context.Context, actorID string, projectID int64) ([]Message, error)
	MarkRead(ctx context.Context, readerID string, messageID int64) error
}
