package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/lazybook/internal/model"
	"github.com/d60-Lab/lazybook/internal/repository"
)

// ChatService persists direct messages and reads conversations. Realtime
// delivery is the caller's concern (the chat handler pushes the returned
// view through the connection hub).
type ChatService interface {
	// SendMessage resolves both parties, persists the message and returns the
	// view to deliver. senderID comes from the connection's authenticated
	// principal, never from the payload.
	SendMessage(ctx context.Context, senderID, recipientUsername, text string) (*model.MessageView, string, error)
	GetConversation(ctx context.Context, viewerID, otherUsername string) ([]model.MessageView, error)
}

type chatService struct {
	userRepo repository.UserRepository
	msgRepo  repository.MessageRepository
}

func NewChatService(userRepo repository.UserRepository, msgRepo repository.MessageRepository) ChatService {
	return &chatService{userRepo: userRepo, msgRepo: msgRepo}
}

// SendMessage returns the persisted view plus the recipient's user id so the
// handler knows which connection set to push to.
func (s *chatService) SendMessage(ctx context.Context, senderID, recipientUsername, text string) (*model.MessageView, string, error) {
	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	recipient, err := s.userRepo.FindByUsername(ctx, recipientUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if sender.ID == recipient.ID {
		return nil, "", ErrSelfMessage
	}
	msg := &model.Message{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Text:        strings.TrimSpace(text),
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, "", err
	}
	view := &model.MessageView{
		ID:                  msg.ID,
		SenderUsername:      sender.Username,
		SenderPictureURL:    sender.PictureURL,
		RecipientUsername:   recipient.Username,
		RecipientPictureURL: recipient.PictureURL,
		Text:                msg.Text,
		CreatedAt:           msg.CreatedAt,
	}
	return view, recipient.ID, nil
}

func (s *chatService) GetConversation(ctx context.Context, viewerID, otherUsername string) ([]model.MessageView, error) {
	viewer, err := s.userRepo.FindByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	other, err := s.userRepo.FindByUsername(ctx, otherUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if viewer.ID == other.ID {
		return nil, ErrSelfConversation
	}
	return s.msgRepo.Conversation(ctx, viewer.ID, other.ID)
}
