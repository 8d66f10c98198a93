package models

import "time"

type Activity struct {
	ID         string    `json:"id" firestore:"id"`
	UserID     string    `json:"user_id" firestore:"userId"`
	UserName   string    `json:"user_name" firestore:"userName"`
	UserAvatar string    `json:"user_avatar,omitempty" firestore:"userAvatar,omitempty"`
	Type       string    `json:"type" firestore:"type"`
	EntityID   string    `json:"entity_id,omitempty" firestore:"entityId,omitempty"`
	EntityName string    `json:"entity_name,omitempty" firestore:"entityName,omitempty"`
	ReviewID   string    `json:"review_id,omitempty" firestore:"reviewId,omitempty"`
	Rating     int       `json:"rating,omitempty" firestore:"rating,omitempty"`
	Text       string    `json:"text,omitempty" firestore:"text,omitempty"`
	PhotoURL   string    `json:"photo_url,omitempty" firestore:"photoUrl,omitempty"`
	BadgeID    string    `json:"badge_id,omitempty" firestore:"badgeId,omitempty"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

type Follow struct {
	ID          string    `json:"id" firestore:"id"`
	FollowerID  string    `json:"follower_id" firestore:"followerId"`
	FollowingID string    `json:"following_id" firestore:"followingId"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

const (
	FollowStatusPending  = "pending"
	FollowStatusAccepted = "accepted"
)
