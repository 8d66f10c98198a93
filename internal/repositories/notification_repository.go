package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type NotificationRepository struct {
	Client *firestore.Client
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	iter := r.Client.Collection(colNotifications).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	notifications := []models.Notification{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var n models.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		n.ID = doc.Ref.ID
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n models.Notification) (string, error) {
	ref, _, err := r.Client.Collection(colNotifications).Add(ctx, map[string]interface{}{
		"userId":    n.UserID,
		"type":      n.Type,
		"title":     n.Title,
		"message":   n.Message,
		"read":      false,
		"actionUrl": n.ActionURL,
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return "", mapStoreError(err)
	}
	return ref.ID, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.Client.Collection(colNotifications).Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	return mapStoreError(err)
}
