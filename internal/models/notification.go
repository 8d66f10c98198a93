package models

import "time"

type Notification struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Type      string    `json:"type" firestore:"type"`
	Title     string    `json:"title" firestore:"title"`
	Message   string    `json:"message" firestore:"message"`
	Read      bool      `json:"read" firestore:"read"`
	ActionURL string    `json:"action_url,omitempty" firestore:"actionUrl,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

const (
	NotificationNewFollower = "new_follower"
	NotificationReviewLike  = "review_like"
	NotificationReviewReply = "review_reply"
	NotificationBadgeEarned = "badge_earned"
	NotificationPromotion   = "promotion"
)

// DeviceToken ties an FCM registration token to a user for push delivery.
type DeviceToken struct {
	UserID    string    `json:"user_id" firestore:"userId"`
	Token     string    `json:"token" firestore:"token"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
