package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	// Conversation returns every message whose unordered {sender, recipient}
	// pair is {userA, userB}, oldest first. Note the order is the opposite of
	// the feed queries.
	Conversation(ctx context.Context, userA, userB string) ([]model.MessageView, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository { return &messageRepository{db: db} }

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) Conversation(ctx context.Context, userA, userB string) ([]model.MessageView, error) {
	var rows []model.MessageView
	err := r.db.WithContext(ctx).
		Table("messages").
		Select(
			"messages.id",
			"senders.username AS sender_username",
			"senders.picture_url AS sender_picture_url",
			"recipients.username AS recipient_username",
			"recipients.picture_url AS recipient_picture_url",
			"messages.text",
			"messages.created_at",
		).
		Joins("JOIN users senders ON senders.id = messages.sender_id").
		Joins("JOIN users recipients ON recipients.id = messages.recipient_id").
		Where("(messages.sender_id = ? AND messages.recipient_id = ?) OR (messages.sender_id = ? AND messages.recipient_id = ?)",
			userA, userB, userB, userA).
		Order("messages.created_at ASC, messages.id ASC").
		Scan(&rows).Error
	return rows, err
}
