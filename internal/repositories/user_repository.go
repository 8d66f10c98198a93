package repositories

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"biasharaBack/internal/models"
)

type UserRepository struct {
	Client *firestore.Client
}

// userDoc is the raw profile document shape. Older clients wrote
// displayName/photoURL, newer ones name/avatar; preference booleans may be
// missing entirely, so they decode through pointers and get defaulted in
// decodeUser rather than at call sites.
type userDoc struct {
	Name                  string                       `firestore:"name"`
	DisplayName           string                       `firestore:"displayName"`
	Email                 string                       `firestore:"email"`
	Avatar                string                       `firestore:"avatar"`
	PhotoURL              string                       `firestore:"photoURL"`
	Favorites             []string                     `firestore:"favorites"`
	ReviewsCount          int                          `firestore:"reviewsCount"`
	IsEntityOwner         bool                         `firestore:"isEntityOwner"`
	OwnedEntityIDs        []string                     `firestore:"ownedEntityIds"`
	Bio                   string                       `firestore:"bio"`
	City                  string                       `firestore:"city"`
	Username              string                       `firestore:"username"`
	PhoneNumber           string                       `firestore:"phoneNumber"`
	CreatedAt             time.Time                    `firestore:"created_at"`
	IsPublicProfile       *bool                        `firestore:"isPublicProfile"`
	RequireFollowApproval *bool                        `firestore:"requireFollowApproval"`
	ShowActivity          *bool                        `firestore:"showActivity"`
	NotificationSettings  *models.NotificationSettings `firestore:"notificationSettings"`
	Role                  string                       `firestore:"user_role"`
}

func decodeUser(id string, d userDoc, now time.Time) models.User {
	u := models.User{
		ID:             id,
		Name:           d.DisplayName,
		Email:          d.Email,
		Avatar:         d.PhotoURL,
		Favorites:      d.Favorites,
		ReviewsCount:   d.ReviewsCount,
		IsEntityOwner:  d.IsEntityOwner,
		OwnedEntityIDs: d.OwnedEntityIDs,
		Bio:            d.Bio,
		City:           d.City,
		Username:       d.Username,
		PhoneNumber:    d.PhoneNumber,
		JoinedAt:       d.CreatedAt,
		Role:           d.Role,

		IsPublicProfile:       true,
		RequireFollowApproval: false,
		ShowActivity:          true,
		NotificationSettings:  models.DefaultNotificationSettings(),
	}
	if u.Name == "" {
		u.Name = d.Name
	}
	if u.Name == "" {
		u.Name = "User"
	}
	if u.Avatar == "" {
		u.Avatar = d.Avatar
	}
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	if u.OwnedEntityIDs == nil {
		u.OwnedEntityIDs = []string{}
	}
	if u.JoinedAt.IsZero() {
		u.JoinedAt = now
	}
	if d.IsPublicProfile != nil {
		u.IsPublicProfile = *d.IsPublicProfile
	}
	if d.RequireFollowApproval != nil {
		u.RequireFollowApproval = *d.RequireFollowApproval
	}
	if d.ShowActivity != nil {
		u.ShowActivity = *d.ShowActivity
	}
	if d.NotificationSettings != nil {
		u.NotificationSettings = *d.NotificationSettings
	}
	return u
}

func (r *UserRepository) GetUser(ctx context.Context, id string) (models.User, error) {
	snap, err := r.Client.Collection(colUsers).Doc(id).Get(ctx)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	var d userDoc
	if err := snap.DataTo(&d); err != nil {
		return models.User{}, err
	}
	return decodeUser(id, d, time.Now()), nil
}

// CreateUser writes the initial profile document for a fresh principal.
func (r *UserRepository) CreateUser(ctx context.Context, u models.User) error {
	_, err := r.Client.Collection(colUsers).Doc(u.ID).Set(ctx, map[string]interface{}{
		"id":                    u.ID,
		"name":                  u.Name,
		"email":                 u.Email,
		"avatar":                u.Avatar,
		"favorites":             u.Favorites,
		"reviewsCount":          u.ReviewsCount,
		"isEntityOwner":         u.IsEntityOwner,
		"ownedEntityIds":        u.OwnedEntityIDs,
		"created_at":            firestore.ServerTimestamp,
		"user_role":             "user",
		"isPublicProfile":       u.IsPublicProfile,
		"requireFollowApproval": u.RequireFollowApproval,
		"showActivity":          u.ShowActivity,
		"notificationSettings":  u.NotificationSettings,
	})
	return mapStoreError(err)
}

// SaveUser overwrites the whole profile document (favorite toggles and
// profile edits go through here).
func (r *UserRepository) SaveUser(ctx context.Context, u models.User) error {
	_, err := r.Client.Collection(colUsers).Doc(u.ID).Set(ctx, map[string]interface{}{
		"id":                    u.ID,
		"name":                  u.Name,
		"email":                 u.Email,
		"avatar":                u.Avatar,
		"favorites":             u.Favorites,
		"reviewsCount":          u.ReviewsCount,
		"isEntityOwner":         u.IsEntityOwner,
		"ownedEntityIds":        u.OwnedEntityIDs,
		"bio":                   u.Bio,
		"city":                  u.City,
		"username":              u.Username,
		"phoneNumber":           u.PhoneNumber,
		"created_at":            u.JoinedAt,
		"user_role":             u.Role,
		"isPublicProfile":       u.IsPublicProfile,
		"requireFollowApproval": u.RequireFollowApproval,
		"showActivity":          u.ShowActivity,
		"notificationSettings":  u.NotificationSettings,
	})
	return mapStoreError(err)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) error {
	var updates []firestore.Update
	if upd.Bio != nil {
		updates = append(updates, firestore.Update{Path: "bio", Value: *upd.Bio})
	}
	if upd.City != nil {
		updates = append(updates, firestore.Update{Path: "city", Value: *upd.City})
	}
	if upd.Username != nil {
		updates = append(updates, firestore.Update{Path: "username", Value: *upd.Username})
	}
	if upd.PhoneNumber != nil {
		updates = append(updates, firestore.Update{Path: "phoneNumber", Value: *upd.PhoneNumber})
	}
	if upd.IsPublicProfile != nil {
		updates = append(updates, firestore.Update{Path: "isPublicProfile", Value: *upd.IsPublicProfile})
	}
	if upd.RequireFollowApproval != nil {
		updates = append(updates, firestore.Update{Path: "requireFollowApproval", Value: *upd.RequireFollowApproval})
	}
	if upd.ShowActivity != nil {
		updates = append(updates, firestore.Update{Path: "showActivity", Value: *upd.ShowActivity})
	}
	if upd.NotificationSettings != nil {
		updates = append(updates, firestore.Update{Path: "notificationSettings", Value: *upd.NotificationSettings})
	}
	if len(updates) == 0 {
		return nil
	}
	_, err := r.Client.Collection(colUsers).Doc(id).Update(ctx, updates)
	return mapStoreError(err)
}
