package repositories

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"biasharaBack/internal/models"
)

// Collection names match the documents the mobile clients already write.
const (
	colUsers              = "users"
	colEntities           = "entities"
	colReviews            = "reviews"
	colUserStats          = "userStats"
	colBadges             = "badges"
	colActivities         = "activities"
	colFollows            = "follows"
	colBookmarkLists      = "bookmarkLists"
	colReviewDrafts       = "reviewDrafts"
	colNotifications      = "notifications"
	colChats              = "chats"
	colChatMessages       = "messages"
	colListingSubmissions = "listingSubmissions"
	colClaimRequests      = "claimRequests"
	colDeviceTokens       = "deviceTokens"
)

// mapStoreError folds gRPC status codes into the model sentinels so callers
// can branch with errors.Is instead of importing grpc.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.NotFound:
		return models.ErrNoRecord
	case codes.Unavailable, codes.FailedPrecondition:
		return fmt.Errorf("%w: %v", models.ErrUnavailable, err)
	}
	return err
}
