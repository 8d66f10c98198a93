package services

import (
	"context"

	"biasharaBack/internal/models"
)

type ListingStore interface {
	CreateListing(ctx context.Context, l models.ListingSubmission) (string, error)
	ListByUser(ctx context.Context, userID string) ([]models.ListingSubmission, error)
	CreateClaim(ctx context.Context, c models.ClaimRequest) (string, error)
}

type ListingService struct {
	Listings ListingStore
}

func (s *ListingService) SubmitListing(ctx context.Context, l models.ListingSubmission) (string, error) {
	return s.Listings.CreateListing(ctx, l)
}

func (s *ListingService) UserListings(ctx context.Context, userID string) ([]models.ListingSubmission, error) {
	return s.Listings.ListByUser(ctx, userID)
}

func (s *ListingService) SubmitClaimRequest(ctx context.Context, c models.ClaimRequest) (string, error) {
	return s.Listings.CreateClaim(ctx, c)
}
