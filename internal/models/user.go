package models

import "time"

type User struct {
	ID                    string               `json:"id" firestore:"id"`
	Name                  string               `json:"name" firestore:"name"`
	Email                 string               `json:"email" firestore:"email"`
	Avatar                string               `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Favorites             []string             `json:"favorites" firestore:"favorites"`
	ReviewsCount          int                  `json:"reviews_count" firestore:"reviewsCount"`
	IsEntityOwner         bool                 `json:"is_entity_owner" firestore:"isEntityOwner"`
	OwnedEntityIDs        []string             `json:"owned_entity_ids" firestore:"ownedEntityIds"`
	Bio                   string               `json:"bio,omitempty" firestore:"bio,omitempty"`
	City                  string               `json:"city,omitempty" firestore:"city,omitempty"`
	Username              string               `json:"username,omitempty" firestore:"username,omitempty"`
	PhoneNumber           string               `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	JoinedAt              time.Time            `json:"joined_at" firestore:"-"`
	IsPublicProfile       bool                 `json:"is_public_profile" firestore:"isPublicProfile"`
	RequireFollowApproval bool                 `json:"require_follow_approval" firestore:"requireFollowApproval"`
	ShowActivity          bool                 `json:"show_activity" firestore:"showActivity"`
	NotificationSettings  NotificationSettings `json:"notification_settings" firestore:"notificationSettings"`
	Role                  string               `json:"role,omitempty" firestore:"user_role,omitempty"`
}

type NotificationSettings struct {
	ReviewLikes   bool `json:"review_likes" firestore:"reviewLikes"`
	ReviewReplies bool `json:"review_replies" firestore:"reviewReplies"`
	NewFollowers  bool `json:"new_followers" firestore:"newFollowers"`
	Promotions    bool `json:"promotions" firestore:"promotions"`
}

// DefaultNotificationSettings mirrors what a fresh profile document gets.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		ReviewLikes:   true,
		ReviewReplies: true,
		NewFollowers:  true,
		Promotions:    false,
	}
}

// ProfileUpdate is a partial update to a profile document. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Bio                   *string               `json:"bio,omitempty"`
	City                  *string               `json:"city,omitempty"`
	Username              *string               `json:"username,omitempty"`
	PhoneNumber           *string               `json:"phone_number,omitempty"`
	IsPublicProfile       *bool                 `json:"is_public_profile,omitempty"`
	RequireFollowApproval *bool                 `json:"require_follow_approval,omitempty"`
	ShowActivity          *bool                 `json:"show_activity,omitempty"`
	NotificationSettings  *NotificationSettings `json:"notification_settings,omitempty"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ResetPasswordResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
