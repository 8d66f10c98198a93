package services

import (
	"context"
	"errors"
	"log"

	"biasharaBack/internal/models"
)

type ChatStore interface {
	FindByEntityAndUser(ctx context.Context, entityID, userID string) (models.Chat, error)
	Create(ctx context.Context, chat models.Chat) (string, error)
	Get(ctx context.Context, id string) (models.Chat, error)
	AddMessage(ctx context.Context, chatID string, msg models.ChatMessage) (string, error)
	Messages(ctx context.Context, chatID string) ([]models.ChatMessage, error)
	ListByUser(ctx context.Context, userID string) ([]models.Chat, error)
	ListByEntity(ctx context.Context, entityID string) ([]models.Chat, error)
}

// Broadcaster pushes a payload to a connected user, dropping it silently
// when the user has no open socket.
type Broadcaster interface {
	Send(userID string, payload interface{})
}

type ChatService struct {
	Chats    ChatStore
	Hub      Broadcaster
	ErrorLog *log.Logger
}

// CreateChat reuses the existing conversation between the user and the
// entity when there is one.
func (s *ChatService) CreateChat(ctx context.Context, chat models.Chat) (models.Chat, error) {
	existing, err := s.Chats.FindByEntityAndUser(ctx, chat.EntityID, chat.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, models.ErrNoRecord) {
		return models.Chat{}, err
	}

	id, err := s.Chats.Create(ctx, chat)
	if err != nil {
		return models.Chat{}, err
	}
	chat.ID = id
	return chat, nil
}

// SendMessage persists the message and pushes it to the other side of the
// conversation over the websocket hub.
func (s *ChatService) SendMessage(ctx context.Context, chatID string, msg models.ChatMessage) (models.ChatMessage, error) {
	id, err := s.Chats.AddMessage(ctx, chatID, msg)
	if err != nil {
		return models.ChatMessage{}, err
	}
	msg.ID = id
	msg.ChatID = chatID

	chat, err := s.Chats.Get(ctx, chatID)
	if err != nil {
		s.ErrorLog.Printf("load chat %s for delivery: %v", chatID, err)
		return msg, nil
	}
	if s.Hub != nil && chat.UserID != msg.SenderID {
		s.Hub.Send(chat.UserID, msg)
	}
	return msg, nil
}

func (s *ChatService) ChatMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	return s.Chats.Messages(ctx, chatID)
}

func (s *ChatService) UserChats(ctx context.Context, userID string) ([]models.Chat, error) {
	return s.Chats.ListByUser(ctx, userID)
}

func (s *ChatService) EntityChats(ctx context.Context, entityID string) ([]models.Chat, error) {
	return s.Chats.ListByEntity(ctx, entityID)
}
