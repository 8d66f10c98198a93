package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type FollowRepository struct {
	Client *firestore.Client
}

func (r *FollowRepository) listByField(ctx context.Context, field, userID string) ([]models.Follow, error) {
	iter := r.Client.Collection(colFollows).Where(field, "==", userID).Documents(ctx)
	defer iter.Stop()

	follows := []models.Follow{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var f models.Follow
		if err := doc.DataTo(&f); err != nil {
			return nil, err
		}
		f.ID = doc.Ref.ID
		follows = append(follows, f)
	}
	return follows, nil
}

// ListFollowers returns follow records pointing at the user.
func (r *FollowRepository) ListFollowers(ctx context.Context, userID string) ([]models.Follow, error) {
	return r.listByField(ctx, "followingId", userID)
}

// ListFollowing returns follow records created by the user.
func (r *FollowRepository) ListFollowing(ctx context.Context, userID string) ([]models.Follow, error) {
	return r.listByField(ctx, "followerId", userID)
}

func (r *FollowRepository) Create(ctx context.Context, f models.Follow) (string, error) {
	ref, _, err := r.Client.Collection(colFollows).Add(ctx, map[string]interface{}{
		"followerId":  f.FollowerID,
		"followingId": f.FollowingID,
		"status":      f.Status,
		"createdAt":   firestore.ServerTimestamp,
	})
	if err != nil {
		return "", mapStoreError(err)
	}
	return ref.ID, nil
}

func (r *FollowRepository) FindByPair(ctx context.Context, followerID, followingID string) (models.Follow, error) {
	iter := r.Client.Collection(colFollows).
		Where("followerId", "==", followerID).
		Where("followingId", "==", followingID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return models.Follow{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Follow{}, mapStoreError(err)
	}
	var f models.Follow
	if err := doc.DataTo(&f); err != nil {
		return models.Follow{}, err
	}
	f.ID = doc.Ref.ID
	return f, nil
}

func (r *FollowRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Client.Collection(colFollows).Doc(id).Delete(ctx)
	return mapStoreError(err)
}
