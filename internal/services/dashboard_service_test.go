package services

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"testing"

	"biasharaBack/internal/models"
)

type stubReviews struct {
	reviews []models.Review
	err     error
}

func (s *stubReviews) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviews, s.err
}

type stubStats struct {
	mu     sync.Mutex
	stats  models.UserStats
	badges []models.Badge
	err    error
	total  int
	sets   int
}

func (s *stubStats) GetStats(ctx context.Context, userID string) (models.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats, s.err
}

func (s *stubStats) SetTotalPoints(ctx context.Context, userID string, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = total
	s.sets++
	return nil
}

func (s *stubStats) ListBadges(ctx context.Context, userID string) ([]models.Badge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badges, s.err
}

type stubFollows struct {
	mu        sync.Mutex
	followers []models.Follow
	following []models.Follow
	existing  map[string]models.Follow
	created   []models.Follow
	deleted   []string
	err       error
}

func (s *stubFollows) ListFollowers(ctx context.Context, userID string) ([]models.Follow, error) {
	return s.followers, s.err
}

func (s *stubFollows) ListFollowing(ctx context.Context, userID string) ([]models.Follow, error) {
	return s.following, s.err
}

func (s *stubFollows) Create(ctx context.Context, f models.Follow) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, f)
	return "follow-1", nil
}

func (s *stubFollows) FindByPair(ctx context.Context, followerID, followingID string) (models.Follow, error) {
	if f, ok := s.existing[followerID+"/"+followingID]; ok {
		return f, nil
	}
	return models.Follow{}, models.ErrNoRecord
}

func (s *stubFollows) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	return nil
}

type stubActivities struct {
	mu         sync.Mutex
	activities []models.Activity
	err        error
	calls      int
	lastIDs    []string
}

func (s *stubActivities) ListByUsers(ctx context.Context, userIDs []string, limit int) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastIDs = userIDs
	return s.activities, s.err
}

type stubBookmarks struct {
	mu    sync.Mutex
	lists []models.BookmarkList
	list  models.BookmarkList
	sets  [][]string
}

func (s *stubBookmarks) ListByUser(ctx context.Context, userID string) ([]models.BookmarkList, error) {
	return s.lists, nil
}

func (s *stubBookmarks) Create(ctx context.Context, l models.BookmarkList) (string, error) {
	return "list-1", nil
}

func (s *stubBookmarks) Get(ctx context.Context, id string) (models.BookmarkList, error) {
	return s.list, nil
}

func (s *stubBookmarks) SetEntities(ctx context.Context, id string, entityIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets = append(s.sets, entityIDs)
	return nil
}

type stubDrafts struct {
	drafts []models.ReviewDraft
}

func (s *stubDrafts) ListByUser(ctx context.Context, userID string) ([]models.ReviewDraft, error) {
	return s.drafts, nil
}

func (s *stubDrafts) Create(ctx context.Context, d models.ReviewDraft) (string, error) {
	return "draft-1", nil
}

func (s *stubDrafts) Delete(ctx context.Context, id string) error { return nil }

type stubNotifications struct {
	mu            sync.Mutex
	notifications []models.Notification
	created       []models.Notification
	marked        []string
}

func (s *stubNotifications) ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	return s.notifications, nil
}

func (s *stubNotifications) Create(ctx context.Context, n models.Notification) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, n)
	return "notification-1", nil
}

func (s *stubNotifications) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, id)
	return nil
}

type stubProfiles struct {
	users map[string]models.User
}

func (s *stubProfiles) GetUser(ctx context.Context, id string) (models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return models.User{}, models.ErrNoRecord
}

func (s *stubProfiles) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) error {
	return nil
}

type stubPusher struct {
	mu    sync.Mutex
	calls int
}

func (s *stubPusher) PushToUser(ctx context.Context, userID, title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return nil
}

type dashboardFixture struct {
	svc           *DashboardService
	reviews       *stubReviews
	stats         *stubStats
	follows       *stubFollows
	activities    *stubActivities
	bookmarks     *stubBookmarks
	drafts        *stubDrafts
	notifications *stubNotifications
	profiles      *stubProfiles
	pusher        *stubPusher
}

func newDashboardFixture() *dashboardFixture {
	quiet := log.New(os.Stderr, "", 0)
	f := &dashboardFixture{
		reviews:       &stubReviews{},
		stats:         &stubStats{},
		follows:       &stubFollows{existing: map[string]models.Follow{}},
		activities:    &stubActivities{},
		bookmarks:     &stubBookmarks{},
		drafts:        &stubDrafts{},
		notifications: &stubNotifications{},
		profiles:      &stubProfiles{users: map[string]models.User{}},
		pusher:        &stubPusher{},
	}
	svc := NewDashboardService()
	svc.Reviews = f.reviews
	svc.Stats = f.stats
	svc.Follows = f.follows
	svc.Activities = f.activities
	svc.Bookmarks = f.bookmarks
	svc.Drafts = f.drafts
	svc.Notifications = f.notifications
	svc.Profiles = f.profiles
	svc.Push = f.pusher
	svc.InfoLog = quiet
	svc.ErrorLog = quiet
	f.svc = svc
	return f
}

func TestRefreshLoadsAllSlices(t *testing.T) {
	f := newDashboardFixture()
	f.reviews.reviews = []models.Review{{ID: "r1"}}
	f.stats.stats = models.UserStats{TotalPoints: 160}
	f.stats.badges = []models.Badge{{ID: "b1"}}
	f.follows.following = []models.Follow{{FollowingID: "u2", Status: models.FollowStatusAccepted}}
	f.activities.activities = []models.Activity{{ID: "a1"}}

	state := f.svc.Refresh(context.Background(), "u1")

	if len(state.Reviews) != 1 || state.Stats.TotalPoints != 160 || state.Level != 3 {
		t.Errorf("unexpected state %+v", state)
	}
	if len(state.Activities) != 1 || len(state.Badges) != 1 {
		t.Errorf("unexpected state %+v", state)
	}
	if f.activities.lastIDs[0] != "u2" {
		t.Errorf("activity query ids = %v", f.activities.lastIDs)
	}
}

func TestRefreshKeepsPriorValueOnSliceFailure(t *testing.T) {
	f := newDashboardFixture()
	f.follows.following = []models.Follow{{FollowingID: "u2", Status: models.FollowStatusAccepted}}
	f.activities.activities = []models.Activity{{ID: "a1"}}
	f.svc.Refresh(context.Background(), "u1")

	f.activities.err = errors.New("index building")
	f.reviews.reviews = []models.Review{{ID: "r1"}}
	state := f.svc.Refresh(context.Background(), "u1")

	if len(state.Activities) != 1 || state.Activities[0].ID != "a1" {
		t.Errorf("failed slice should keep prior value, got %v", state.Activities)
	}
	if len(state.Reviews) != 1 {
		t.Errorf("healthy slices should still update, got %v", state.Reviews)
	}
}

func TestRefreshSkipsActivityQueryWhenFollowingNobody(t *testing.T) {
	f := newDashboardFixture()
	state := f.svc.Refresh(context.Background(), "u1")

	if f.activities.calls != 0 {
		t.Errorf("activity store queried %d times for empty following", f.activities.calls)
	}
	if state.Activities == nil || len(state.Activities) != 0 {
		t.Errorf("expected empty feed, got %v", state.Activities)
	}
}

func TestRefreshIgnoresPendingFollowsInFeed(t *testing.T) {
	f := newDashboardFixture()
	f.follows.following = []models.Follow{
		{FollowingID: "u2", Status: models.FollowStatusAccepted},
		{FollowingID: "u3", Status: models.FollowStatusPending},
	}
	f.svc.Refresh(context.Background(), "u1")

	if len(f.activities.lastIDs) != 1 || f.activities.lastIDs[0] != "u2" {
		t.Errorf("feed ids = %v, want only accepted follows", f.activities.lastIDs)
	}
}

func TestFollowUserRespectsApprovalSetting(t *testing.T) {
	t.Run("approval required", func(t *testing.T) {
		f := newDashboardFixture()
		f.profiles.users["u1"] = models.User{ID: "u1", Name: "Amina"}
		f.profiles.users["u2"] = models.User{ID: "u2", RequireFollowApproval: true}

		status, err := f.svc.FollowUser(context.Background(), "u1", "u2")
		if err != nil {
			t.Fatalf("FollowUser: %v", err)
		}
		if status != models.FollowStatusPending {
			t.Errorf("status = %q, want pending", status)
		}
		if len(f.notifications.created) != 0 {
			t.Errorf("pending follow must not notify, got %v", f.notifications.created)
		}
		if f.pusher.calls != 0 {
			t.Error("pending follow must not push")
		}
	})

	t.Run("auto accepted", func(t *testing.T) {
		f := newDashboardFixture()
		f.profiles.users["u1"] = models.User{ID: "u1", Name: "Amina"}
		f.profiles.users["u2"] = models.User{ID: "u2"}

		status, err := f.svc.FollowUser(context.Background(), "u1", "u2")
		if err != nil {
			t.Fatalf("FollowUser: %v", err)
		}
		if status != models.FollowStatusAccepted {
			t.Errorf("status = %q, want accepted", status)
		}
		if len(f.notifications.created) != 1 {
			t.Fatalf("notifications = %d, want 1", len(f.notifications.created))
		}
		n := f.notifications.created[0]
		if n.UserID != "u2" || n.Type != models.NotificationNewFollower {
			t.Errorf("unexpected notification %+v", n)
		}
		if f.pusher.calls != 1 {
			t.Errorf("push calls = %d, want 1", f.pusher.calls)
		}
	})

	t.Run("already following", func(t *testing.T) {
		f := newDashboardFixture()
		f.follows.existing["u1/u2"] = models.Follow{ID: "f1", Status: models.FollowStatusAccepted}

		status, err := f.svc.FollowUser(context.Background(), "u1", "u2")
		if err != nil {
			t.Fatalf("FollowUser: %v", err)
		}
		if status != models.FollowStatusAccepted {
			t.Errorf("status = %q, want existing status", status)
		}
		if len(f.follows.created) != 0 {
			t.Errorf("duplicate follow created: %v", f.follows.created)
		}
	})
}

func TestUnfollowUnknownPairIsNoop(t *testing.T) {
	f := newDashboardFixture()
	if err := f.svc.UnfollowUser(context.Background(), "u1", "u2"); err != nil {
		t.Fatalf("UnfollowUser: %v", err)
	}
	if len(f.follows.deleted) != 0 {
		t.Errorf("deleted = %v, want none", f.follows.deleted)
	}
}

func TestAddToBookmarkListIsIdempotent(t *testing.T) {
	f := newDashboardFixture()
	f.bookmarks.list = models.BookmarkList{ID: "l1", EntityIDs: []string{"e1"}}

	if err := f.svc.AddToBookmarkList(context.Background(), "u1", "l1", "e1"); err != nil {
		t.Fatalf("AddToBookmarkList: %v", err)
	}
	if len(f.bookmarks.sets) != 0 {
		t.Errorf("duplicate add should not write, got %v", f.bookmarks.sets)
	}

	if err := f.svc.AddToBookmarkList(context.Background(), "u1", "l1", "e2"); err != nil {
		t.Fatalf("AddToBookmarkList: %v", err)
	}
	if len(f.bookmarks.sets) != 1 || len(f.bookmarks.sets[0]) != 2 {
		t.Errorf("sets = %v, want one write with two ids", f.bookmarks.sets)
	}
}

func TestMarkNotificationAsReadUpdatesSnapshot(t *testing.T) {
	f := newDashboardFixture()
	f.notifications.notifications = []models.Notification{
		{ID: "n1", UserID: "u1", Read: false},
		{ID: "n2", UserID: "u1", Read: false},
	}
	f.svc.Refresh(context.Background(), "u1")

	if err := f.svc.MarkNotificationAsRead(context.Background(), "u1", "n1"); err != nil {
		t.Fatalf("MarkNotificationAsRead: %v", err)
	}
	if len(f.notifications.marked) != 1 || f.notifications.marked[0] != "n1" {
		t.Errorf("marked = %v, want [n1]", f.notifications.marked)
	}
	state, _ := f.svc.Snapshot("u1")
	if !state.Notifications[0].Read {
		t.Error("snapshot still shows n1 unread")
	}
	if state.Notifications[1].Read {
		t.Error("n2 should stay unread")
	}
}

func TestFollowMutationsUpdateSnapshot(t *testing.T) {
	f := newDashboardFixture()
	f.profiles.users["u1"] = models.User{ID: "u1", Name: "Amina"}
	f.profiles.users["u2"] = models.User{ID: "u2"}
	f.svc.Refresh(context.Background(), "u1")

	if _, err := f.svc.FollowUser(context.Background(), "u1", "u2"); err != nil {
		t.Fatalf("FollowUser: %v", err)
	}
	state, _ := f.svc.Snapshot("u1")
	if len(state.Following) != 1 || state.Following[0].FollowingID != "u2" {
		t.Errorf("snapshot following = %v, want the new follow", state.Following)
	}

	f.follows.existing["u1/u2"] = models.Follow{ID: "follow-1"}
	if err := f.svc.UnfollowUser(context.Background(), "u1", "u2"); err != nil {
		t.Fatalf("UnfollowUser: %v", err)
	}
	state, _ = f.svc.Snapshot("u1")
	if len(state.Following) != 0 {
		t.Errorf("snapshot following = %v after unfollow, want empty", state.Following)
	}
}

func TestBookmarkMutationsUpdateSnapshot(t *testing.T) {
	f := newDashboardFixture()
	f.svc.Refresh(context.Background(), "u1")

	id, err := f.svc.CreateBookmarkList(context.Background(), models.BookmarkList{UserID: "u1", Name: "Weekend spots"})
	if err != nil {
		t.Fatalf("CreateBookmarkList: %v", err)
	}
	state, _ := f.svc.Snapshot("u1")
	if len(state.BookmarkLists) != 1 || state.BookmarkLists[0].ID != id {
		t.Fatalf("snapshot lists = %v, want the new list", state.BookmarkLists)
	}

	f.bookmarks.list = models.BookmarkList{ID: id, UserID: "u1", EntityIDs: []string{}}
	if err := f.svc.AddToBookmarkList(context.Background(), "u1", id, "e1"); err != nil {
		t.Fatalf("AddToBookmarkList: %v", err)
	}
	state, _ = f.svc.Snapshot("u1")
	if len(state.BookmarkLists[0].EntityIDs) != 1 || state.BookmarkLists[0].EntityIDs[0] != "e1" {
		t.Errorf("snapshot list entities = %v, want [e1]", state.BookmarkLists[0].EntityIDs)
	}
}

func TestDraftMutationsUpdateSnapshot(t *testing.T) {
	f := newDashboardFixture()
	f.svc.Refresh(context.Background(), "u1")

	id, err := f.svc.SaveDraft(context.Background(), models.ReviewDraft{UserID: "u1", EntityID: "e1"})
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	state, _ := f.svc.Snapshot("u1")
	if len(state.Drafts) != 1 || state.Drafts[0].ID != id {
		t.Fatalf("snapshot drafts = %v, want the new draft", state.Drafts)
	}

	if err := f.svc.DeleteDraft(context.Background(), "u1", id); err != nil {
		t.Fatalf("DeleteDraft: %v", err)
	}
	state, _ = f.svc.Snapshot("u1")
	if len(state.Drafts) != 0 {
		t.Errorf("snapshot drafts = %v after delete, want empty", state.Drafts)
	}
}

func TestAddPointsRecomputesLevel(t *testing.T) {
	f := newDashboardFixture()
	f.stats.stats = models.UserStats{TotalPoints: 140}
	f.svc.Refresh(context.Background(), "u1")

	total, err := f.svc.AddPoints(context.Background(), "u1", 20, "review posted")
	if err != nil {
		t.Fatalf("AddPoints: %v", err)
	}
	if total != 160 {
		t.Errorf("total = %d, want 160", total)
	}
	if f.stats.total != 160 {
		t.Errorf("persisted total = %d, want 160", f.stats.total)
	}
	state, ok := f.svc.Snapshot("u1")
	if !ok || state.Level != 3 {
		t.Errorf("snapshot level = %d ok=%v, want 3", state.Level, ok)
	}
}
