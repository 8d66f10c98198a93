package repositories

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type StatsRepository struct {
	Client *firestore.Client
}

// GetStats returns zeroed counters when the stats document has not been
// created yet; absence is an expected state, not a failure.
func (r *StatsRepository) GetStats(ctx context.Context, userID string) (models.UserStats, error) {
	snap, err := r.Client.Collection(colUserStats).Doc(userID).Get(ctx)
	if err != nil {
		if errors.Is(mapStoreError(err), models.ErrNoRecord) {
			return models.UserStats{}, nil
		}
		return models.UserStats{}, mapStoreError(err)
	}
	var stats models.UserStats
	if err := snap.DataTo(&stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

func (r *StatsRepository) SetTotalPoints(ctx context.Context, userID string, total int) error {
	_, err := r.Client.Collection(colUserStats).Doc(userID).Set(ctx, map[string]interface{}{
		"totalPoints": total,
	}, firestore.MergeAll)
	return mapStoreError(err)
}

func (r *StatsRepository) ListBadges(ctx context.Context, userID string) ([]models.Badge, error) {
	iter := r.Client.Collection(colBadges).Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	badges := []models.Badge{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var b models.Badge
		if err := doc.DataTo(&b); err != nil {
			return nil, err
		}
		b.ID = doc.Ref.ID
		badges = append(badges, b)
	}
	return badges, nil
}
