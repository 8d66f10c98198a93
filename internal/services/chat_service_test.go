package services

import (
	"context"
	"log"
	"os"
	"testing"

	"biasharaBack/internal/models"
)

type stubChatStore struct {
	chats    map[string]models.Chat
	byPair   map[string]models.Chat
	created  []models.Chat
	messages []models.ChatMessage
}

func newStubChatStore() *stubChatStore {
	return &stubChatStore{chats: map[string]models.Chat{}, byPair: map[string]models.Chat{}}
}

func (s *stubChatStore) FindByEntityAndUser(ctx context.Context, entityID, userID string) (models.Chat, error) {
	if c, ok := s.byPair[entityID+"/"+userID]; ok {
		return c, nil
	}
	return models.Chat{}, models.ErrNoRecord
}

func (s *stubChatStore) Create(ctx context.Context, chat models.Chat) (string, error) {
	s.created = append(s.created, chat)
	chat.ID = "chat-1"
	s.chats[chat.ID] = chat
	return chat.ID, nil
}

func (s *stubChatStore) Get(ctx context.Context, id string) (models.Chat, error) {
	if c, ok := s.chats[id]; ok {
		return c, nil
	}
	return models.Chat{}, models.ErrNoRecord
}

func (s *stubChatStore) AddMessage(ctx context.Context, chatID string, msg models.ChatMessage) (string, error) {
	s.messages = append(s.messages, msg)
	return "msg-1", nil
}

func (s *stubChatStore) Messages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	return s.messages, nil
}

func (s *stubChatStore) ListByUser(ctx context.Context, userID string) ([]models.Chat, error) {
	return nil, nil
}

func (s *stubChatStore) ListByEntity(ctx context.Context, entityID string) ([]models.Chat, error) {
	return nil, nil
}

type stubHub struct {
	sent []string
}

func (s *stubHub) Send(userID string, payload interface{}) {
	s.sent = append(s.sent, userID)
}

func newTestChatService(store *stubChatStore, hub *stubHub) *ChatService {
	return &ChatService{Chats: store, Hub: hub, ErrorLog: log.New(os.Stderr, "", 0)}
}

func TestCreateChatReusesExisting(t *testing.T) {
	store := newStubChatStore()
	store.byPair["e1/u1"] = models.Chat{ID: "chat-old", EntityID: "e1", UserID: "u1"}
	svc := newTestChatService(store, &stubHub{})

	chat, err := svc.CreateChat(context.Background(), models.Chat{EntityID: "e1", UserID: "u1"})
	if err != nil {
		t.Fatalf("CreateChat: %v", err)
	}
	if chat.ID != "chat-old" {
		t.Errorf("chat.ID = %q, want existing chat", chat.ID)
	}
	if len(store.created) != 0 {
		t.Errorf("created = %v, want none", store.created)
	}
}

func TestSendMessageDeliversToChatOwner(t *testing.T) {
	store := newStubChatStore()
	store.chats["chat-1"] = models.Chat{ID: "chat-1", UserID: "u1", EntityID: "e1"}
	hub := &stubHub{}
	svc := newTestChatService(store, hub)

	msg, err := svc.SendMessage(context.Background(), "chat-1", models.ChatMessage{
		SenderID: "owner-1",
		Message:  "habari",
	})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.ID != "msg-1" || msg.ChatID != "chat-1" {
		t.Errorf("unexpected message %+v", msg)
	}
	if len(hub.sent) != 1 || hub.sent[0] != "u1" {
		t.Errorf("hub deliveries = %v, want [u1]", hub.sent)
	}
}

func TestSendMessageSkipsSender(t *testing.T) {
	store := newStubChatStore()
	store.chats["chat-1"] = models.Chat{ID: "chat-1", UserID: "u1"}
	hub := &stubHub{}
	svc := newTestChatService(store, hub)

	if _, err := svc.SendMessage(context.Background(), "chat-1", models.ChatMessage{SenderID: "u1"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if len(hub.sent) != 0 {
		t.Errorf("own message echoed back: %v", hub.sent)
	}
}
