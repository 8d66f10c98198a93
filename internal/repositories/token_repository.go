package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type TokenRepository struct {
	Client *firestore.Client
}

// SaveToken registers an FCM device token, keyed by the token itself so
// re-registration is a no-op overwrite.
func (r *TokenRepository) SaveToken(ctx context.Context, t models.DeviceToken) error {
	_, err := r.Client.Collection(colDeviceTokens).Doc(t.Token).Set(ctx, map[string]interface{}{
		"userId":    t.UserID,
		"token":     t.Token,
		"createdAt": firestore.ServerTimestamp,
	})
	return mapStoreError(err)
}

func (r *TokenRepository) TokensByUser(ctx context.Context, userID string) ([]string, error) {
	iter := r.Client.Collection(colDeviceTokens).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	tokens := []string{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var t models.DeviceToken
		if err := doc.DataTo(&t); err != nil {
			return nil, err
		}
		tokens = append(tokens, t.Token)
	}
	return tokens, nil
}
