package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type ActivityRepository struct {
	Client *firestore.Client
}

// ListByUsers returns the newest activities produced by any of the given
// users. Callers are expected to short-circuit on an empty id set.
func (r *ActivityRepository) ListByUsers(ctx context.Context, userIDs []string, limit int) ([]models.Activity, error) {
	iter := r.Client.Collection(colActivities).
		Where("userId", "in", userIDs).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	activities := []models.Activity{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var a models.Activity
		if err := doc.DataTo(&a); err != nil {
			return nil, err
		}
		a.ID = doc.Ref.ID
		activities = append(activities, a)
	}
	return activities, nil
}
