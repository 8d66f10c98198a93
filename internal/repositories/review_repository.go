package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type ReviewRepository struct {
	Client *firestore.Client
}

func (r *ReviewRepository) Create(ctx context.Context, rev models.Review) error {
	_, err := r.Client.Collection(colReviews).Doc(rev.ID).Set(ctx, map[string]interface{}{
		"id":               rev.ID,
		"entityId":         rev.EntityID,
		"userId":           rev.UserID,
		"userName":         rev.UserName,
		"userAvatar":       rev.UserAvatar,
		"rating":           rev.Rating,
		"reviewText":       rev.ReviewText,
		"dateOfExperience": rev.DateOfExperience,
		"photoUrls":        rev.PhotoURLs,
		"isVerified":       rev.IsVerified,
		"likes":            rev.Likes,
		"reports":          rev.Reports,
		"createdAt":        firestore.ServerTimestamp,
	})
	return mapStoreError(err)
}

func (r *ReviewRepository) listByField(ctx context.Context, field, value string) ([]models.Review, error) {
	iter := r.Client.Collection(colReviews).
		Where(field, "==", value).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	reviews := []models.Review{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var rev models.Review
		if err := doc.DataTo(&rev); err != nil {
			return nil, err
		}
		rev.ID = doc.Ref.ID
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

func (r *ReviewRepository) ListByEntity(ctx context.Context, entityID string) ([]models.Review, error) {
	return r.listByField(ctx, "entityId", entityID)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return r.listByField(ctx, "userId", userID)
}

// AggregateByEntity recomputes the denormalized rating aggregate for an
// entity from its review documents.
func (r *ReviewRepository) AggregateByEntity(ctx context.Context, entityID string) (count int, avg float64, err error) {
	iter := r.Client.Collection(colReviews).Where("entityId", "==", entityID).Documents(ctx)
	defer iter.Stop()

	var sum int
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, 0, mapStoreError(err)
		}
		var rev models.Review
		if err := doc.DataTo(&rev); err != nil {
			return 0, 0, err
		}
		sum += rev.Rating
		count++
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}
