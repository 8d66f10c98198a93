package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type DraftRepository struct {
	Client *firestore.Client
}

func (r *DraftRepository) ListByUser(ctx context.Context, userID string) ([]models.ReviewDraft, error) {
	iter := r.Client.Collection(colReviewDrafts).
		Where("userId", "==", userID).
		OrderBy("updatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	drafts := []models.ReviewDraft{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var d models.ReviewDraft
		if err := doc.DataTo(&d); err != nil {
			return nil, err
		}
		d.ID = doc.Ref.ID
		drafts = append(drafts, d)
	}
	return drafts, nil
}

func (r *DraftRepository) Create(ctx context.Context, d models.ReviewDraft) (string, error) {
	ref, _, err := r.Client.Collection(colReviewDrafts).Add(ctx, map[string]interface{}{
		"userId":           d.UserID,
		"entityId":         d.EntityID,
		"entityName":       d.EntityName,
		"rating":           d.Rating,
		"reviewText":       d.ReviewText,
		"photoUrls":        d.PhotoURLs,
		"dateOfExperience": d.DateOfExperience,
		"createdAt":        firestore.ServerTimestamp,
		"updatedAt":        firestore.ServerTimestamp,
	})
	if err != nil {
		return "", mapStoreError(err)
	}
	return ref.ID, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Client.Collection(colReviewDrafts).Doc(id).Delete(ctx)
	return mapStoreError(err)
}
