package repositories

import (
	"testing"
	"time"

	"biasharaBack/internal/models"
)

func TestDecodeUserAppliesDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	u := decodeUser("u1", userDoc{Email: "amina@example.com"}, now)

	if u.ID != "u1" {
		t.Errorf("ID = %q", u.ID)
	}
	if u.Name != "User" {
		t.Errorf("Name = %q, want default", u.Name)
	}
	if u.Favorites == nil || len(u.Favorites) != 0 {
		t.Errorf("Favorites = %v, want empty slice", u.Favorites)
	}
	if !u.JoinedAt.Equal(now) {
		t.Errorf("JoinedAt = %v, want now", u.JoinedAt)
	}
	if !u.IsPublicProfile || !u.ShowActivity {
		t.Errorf("visibility defaults wrong: %+v", u)
	}
	if u.RequireFollowApproval {
		t.Error("RequireFollowApproval should default to false")
	}
	if u.NotificationSettings != models.DefaultNotificationSettings() {
		t.Errorf("NotificationSettings = %+v", u.NotificationSettings)
	}
}

func TestDecodeUserPrefersNewFieldNames(t *testing.T) {
	f := false
	doc := userDoc{
		Name:                  "Old Name",
		DisplayName:           "Amina",
		Avatar:                "http://old",
		PhotoURL:              "http://new",
		IsPublicProfile:       &f,
		RequireFollowApproval: &f,
		CreatedAt:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	u := decodeUser("u1", doc, time.Now())

	if u.Name != "Amina" {
		t.Errorf("Name = %q, want displayName to win", u.Name)
	}
	if u.Avatar != "http://new" {
		t.Errorf("Avatar = %q, want photoURL to win", u.Avatar)
	}
	if u.IsPublicProfile {
		t.Error("explicit isPublicProfile=false was overridden")
	}
	if !u.JoinedAt.Equal(doc.CreatedAt) {
		t.Errorf("JoinedAt = %v, want stored created_at", u.JoinedAt)
	}
}

func TestDecodeUserFallsBackToLegacyNames(t *testing.T) {
	u := decodeUser("u1", userDoc{Name: "Legacy", Avatar: "http://legacy"}, time.Now())
	if u.Name != "Legacy" || u.Avatar != "http://legacy" {
		t.Errorf("legacy fields dropped: %+v", u)
	}
}
