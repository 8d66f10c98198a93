package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"biasharaBack/internal/models"
)

type ReviewStore interface {
	Create(ctx context.Context, rev models.Review) error
	ListByEntity(ctx context.Context, entityID string) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	AggregateByEntity(ctx context.Context, entityID string) (count int, avg float64, err error)
}

type Storage interface {
	Upload(file []byte, path string) (string, error)
}

type AggregateWriter interface {
	ApplyReviewAggregates(ctx context.Context, id string, score float64, totalReviews int) error
}

type ReviewService struct {
	Reviews    ReviewStore
	Storage    Storage
	Aggregates AggregateWriter
	ErrorLog   *log.Logger
}

// CreateReview uploads the attached photos, writes the review document and
// recomputes the entity's rating aggregate. Aggregate failures are logged;
// the review itself already stands.
func (s *ReviewService) CreateReview(ctx context.Context, rev models.Review, photos [][]byte) (models.Review, error) {
	rev.ID = uuid.New().String()

	for i, photo := range photos {
		url, err := s.Storage.Upload(photo, fmt.Sprintf("reviews/%s/%d.jpg", rev.ID, i))
		if err != nil {
			return models.Review{}, fmt.Errorf("upload review photo: %w", err)
		}
		rev.PhotoURLs = append(rev.PhotoURLs, url)
	}

	if err := s.Reviews.Create(ctx, rev); err != nil {
		return models.Review{}, err
	}

	count, avg, err := s.Reviews.AggregateByEntity(ctx, rev.EntityID)
	if err != nil {
		s.ErrorLog.Printf("aggregate reviews for %s: %v", rev.EntityID, err)
		return rev, nil
	}
	if err := s.Aggregates.ApplyReviewAggregates(ctx, rev.EntityID, avg, count); err != nil {
		s.ErrorLog.Printf("apply aggregates for %s: %v", rev.EntityID, err)
	}
	return rev, nil
}

func (s *ReviewService) ReviewsByEntity(ctx context.Context, entityID string) ([]models.Review, error) {
	return s.Reviews.ListByEntity(ctx, entityID)
}

func (s *ReviewService) ReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.Reviews.ListByUser(ctx, userID)
}
