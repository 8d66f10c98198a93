package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type ChatRepository struct {
	Client *firestore.Client
}

func (r *ChatRepository) FindByEntityAndUser(ctx context.Context, entityID, userID string) (models.Chat, error) {
	iter := r.Client.Collection(colChats).
		Where("entityId", "==", entityID).
		Where("userId", "==", userID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return models.Chat{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Chat{}, mapStoreError(err)
	}
	return decodeChat(doc)
}

func (r *ChatRepository) Create(ctx context.Context, chat models.Chat) (string, error) {
	ref, _, err := r.Client.Collection(colChats).Add(ctx, map[string]interface{}{
		"entityId":    chat.EntityID,
		"entityName":  chat.EntityName,
		"userId":      chat.UserID,
		"userName":    chat.UserName,
		"unreadCount": 0,
		"createdAt":   firestore.ServerTimestamp,
	})
	if err != nil {
		return "", mapStoreError(err)
	}
	return ref.ID, nil
}

func (r *ChatRepository) Get(ctx context.Context, id string) (models.Chat, error) {
	snap, err := r.Client.Collection(colChats).Doc(id).Get(ctx)
	if err != nil {
		return models.Chat{}, mapStoreError(err)
	}
	return decodeChat(snap)
}

// AddMessage appends to the chat's messages subcollection and bumps the
// denormalized preview fields on the parent. The two writes are not atomic,
// matching the rest of the multi-document writes here.
func (r *ChatRepository) AddMessage(ctx context.Context, chatID string, msg models.ChatMessage) (string, error) {
	chatRef := r.Client.Collection(colChats).Doc(chatID)

	ref, _, err := chatRef.Collection(colChatMessages).Add(ctx, map[string]interface{}{
		"chatId":       chatID,
		"senderId":     msg.SenderID,
		"senderName":   msg.SenderName,
		"senderAvatar": msg.SenderAvatar,
		"message":      msg.Message,
		"read":         false,
		"timestamp":    firestore.ServerTimestamp,
	})
	if err != nil {
		return "", mapStoreError(err)
	}

	chat, err := r.Get(ctx, chatID)
	if err != nil {
		return ref.ID, err
	}
	_, err = chatRef.Update(ctx, []firestore.Update{
		{Path: "lastMessage", Value: msg.Message},
		{Path: "lastMessageAt", Value: firestore.ServerTimestamp},
		{Path: "unreadCount", Value: chat.UnreadCount + 1},
	})
	return ref.ID, mapStoreError(err)
}

func (r *ChatRepository) Messages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	iter := r.Client.Collection(colChats).Doc(chatID).Collection(colChatMessages).
		OrderBy("timestamp", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	messages := []models.ChatMessage{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var m models.ChatMessage
		if err := doc.DataTo(&m); err != nil {
			return nil, err
		}
		m.ID = doc.Ref.ID
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *ChatRepository) listByField(ctx context.Context, field, value string) ([]models.Chat, error) {
	iter := r.Client.Collection(colChats).
		Where(field, "==", value).
		OrderBy("lastMessageAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	chats := []models.Chat{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		chat, err := decodeChat(doc)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID string) ([]models.Chat, error) {
	return r.listByField(ctx, "userId", userID)
}

func (r *ChatRepository) ListByEntity(ctx context.Context, entityID string) ([]models.Chat, error) {
	return r.listByField(ctx, "entityId", entityID)
}

func decodeChat(doc *firestore.DocumentSnapshot) (models.Chat, error) {
	var chat models.Chat
	if err := doc.DataTo(&chat); err != nil {
		return models.Chat{}, err
	}
	chat.ID = doc.Ref.ID
	return chat, nil
}
