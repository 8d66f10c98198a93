package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type EntityRepository struct {
	Client *firestore.Client
}

func (r *EntityRepository) List(ctx context.Context) ([]models.Entity, error) {
	iter := r.Client.Collection(colEntities).Documents(ctx)
	defer iter.Stop()

	entities := []models.Entity{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var e models.Entity
		if err := doc.DataTo(&e); err != nil {
			return nil, err
		}
		e.ID = doc.Ref.ID
		entities = append(entities, e)
	}
	return entities, nil
}

func (r *EntityRepository) Get(ctx context.Context, id string) (models.Entity, error) {
	snap, err := r.Client.Collection(colEntities).Doc(id).Get(ctx)
	if err != nil {
		return models.Entity{}, mapStoreError(err)
	}
	var e models.Entity
	if err := snap.DataTo(&e); err != nil {
		return models.Entity{}, err
	}
	e.ID = snap.Ref.ID
	return e, nil
}

func (r *EntityRepository) Save(ctx context.Context, e models.Entity) error {
	_, err := r.Client.Collection(colEntities).Doc(e.ID).Set(ctx, e)
	return mapStoreError(err)
}

func (r *EntityRepository) UpdateAggregates(ctx context.Context, id string, score float64, totalReviews int) error {
	_, err := r.Client.Collection(colEntities).Doc(id).Update(ctx, []firestore.Update{
		{Path: "biasharaScore", Value: score},
		{Path: "totalReviews", Value: totalReviews},
	})
	return mapStoreError(err)
}
