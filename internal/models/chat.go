package models

import "time"

type Chat struct {
	ID            string    `json:"id" firestore:"id"`
	EntityID      string    `json:"entity_id" firestore:"entityId"`
	EntityName    string    `json:"entity_name" firestore:"entityName"`
	UserID        string    `json:"user_id" firestore:"userId"`
	UserName      string    `json:"user_name" firestore:"userName"`
	LastMessage   string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"last_message_at,omitempty" firestore:"lastMessageAt,omitempty"`
	UnreadCount   int       `json:"unread_count" firestore:"unreadCount"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}

type ChatMessage struct {
	ID           string    `json:"id" firestore:"id"`
	ChatID       string    `json:"chat_id" firestore:"chatId"`
	SenderID     string    `json:"sender_id" firestore:"senderId"`
	SenderName   string    `json:"sender_name" firestore:"senderName"`
	SenderAvatar string    `json:"sender_avatar,omitempty" firestore:"senderAvatar,omitempty"`
	Message      string    `json:"message" firestore:"message"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp"`
	Read         bool      `json:"read" firestore:"read"`
}
