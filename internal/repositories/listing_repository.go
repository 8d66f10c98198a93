package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"biasharaBack/internal/models"
)

type ListingRepository struct {
	Client *firestore.Client
}

// CreateListing files a submission for moderation; status always starts
// out pending regardless of what the caller sent.
func (r *ListingRepository) CreateListing(ctx context.Context, l models.ListingSubmission) (string, error) {
	ref, _, err := r.Client.Collection(colListingSubmissions).Add(ctx, map[string]interface{}{
		"userId":          l.UserID,
		"planId":          l.PlanID,
		"name":            l.Name,
		"description":     l.Description,
		"entityType":      l.EntityType,
		"categories":      l.Categories,
		"location":        l.Location,
		"contactInfo":     l.ContactInfo,
		"profilePhotoUrl": l.ProfilePhotoURL,
		"status":          models.SubmissionStatusPending,
		"submittedAt":     firestore.ServerTimestamp,
	})
	if err != nil {
		return "", mapStoreError(err)
	}
	return ref.ID, nil
}

func (r *ListingRepository) ListByUser(ctx context.Context, userID string) ([]models.ListingSubmission, error) {
	iter := r.Client.Collection(colListingSubmissions).
		Where("userId", "==", userID).
		OrderBy("submittedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	listings := []models.ListingSubmission{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err)
		}
		var l models.ListingSubmission
		if err := doc.DataTo(&l); err != nil {
			return nil, err
		}
		l.ID = doc.Ref.ID
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *ListingRepository) CreateClaim(ctx context.Context, c models.ClaimRequest) (string, error) {
	ref, _, err := r.Client.Collection(colClaimRequests).Add(ctx, map[string]interface{}{
		"userId":       c.UserID,
		"entityId":     c.EntityID,
		"businessName": c.BusinessName,
		"contactName":  c.ContactName,
		"email":        c.Email,
		"phone":        c.Phone,
		"message":      c.Message,
		"status":       models.SubmissionStatusPending,
		"submittedAt":  firestore.ServerTimestamp,
	})
	if err != nil {
		return "", mapStoreError(err)
	}
	return ref.ID, nil
}
