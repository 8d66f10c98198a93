package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"biasharaBack/internal/models"
)

const (
	activityFeedLimit  = 50
	notificationsLimit = 50
)

type ReviewLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
}

type StatsStore interface {
	GetStats(ctx context.Context, userID string) (models.UserStats, error)
	SetTotalPoints(ctx context.Context, userID string, total int) error
	ListBadges(ctx context.Context, userID string) ([]models.Badge, error)
}

type FollowStore interface {
	ListFollowers(ctx context.Context, userID string) ([]models.Follow, error)
	ListFollowing(ctx context.Context, userID string) ([]models.Follow, error)
	Create(ctx context.Context, f models.Follow) (string, error)
	FindByPair(ctx context.Context, followerID, followingID string) (models.Follow, error)
	Delete(ctx context.Context, id string) error
}

type ActivityStore interface {
	ListByUsers(ctx context.Context, userIDs []string, limit int) ([]models.Activity, error)
}

type BookmarkStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.BookmarkList, error)
	Create(ctx context.Context, l models.BookmarkList) (string, error)
	Get(ctx context.Context, id string) (models.BookmarkList, error)
	SetEntities(ctx context.Context, id string, entityIDs []string) error
}

type DraftStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.ReviewDraft, error)
	Create(ctx context.Context, d models.ReviewDraft) (string, error)
	Delete(ctx context.Context, id string) error
}

type NotificationStore interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	Create(ctx context.Context, n models.Notification) (string, error)
	MarkRead(ctx context.Context, id string) error
}

type ProfileStore interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) error
}

// Pusher delivers a push notification to all of a user's devices.
type Pusher interface {
	PushToUser(ctx context.Context, userID, title, body string) error
}

// DashboardState is everything the home screen shows for one user.
type DashboardState struct {
	Reviews       []models.Review       `json:"reviews"`
	Stats         models.UserStats      `json:"stats"`
	Level         int                   `json:"level"`
	Badges        []models.Badge        `json:"badges"`
	Activities    []models.Activity     `json:"activities"`
	Followers     []models.Follow       `json:"followers"`
	Following     []models.Follow       `json:"following"`
	BookmarkLists []models.BookmarkList `json:"bookmark_lists"`
	Drafts        []models.ReviewDraft  `json:"drafts"`
	Notifications []models.Notification `json:"notifications"`
}

func emptyDashboardState() DashboardState {
	return DashboardState{
		Reviews:       []models.Review{},
		Level:         1,
		Badges:        []models.Badge{},
		Activities:    []models.Activity{},
		Followers:     []models.Follow{},
		Following:     []models.Follow{},
		BookmarkLists: []models.BookmarkList{},
		Drafts:        []models.ReviewDraft{},
		Notifications: []models.Notification{},
	}
}

type DashboardService struct {
	Reviews       ReviewLister
	Stats         StatsStore
	Follows       FollowStore
	Activities    ActivityStore
	Bookmarks     BookmarkStore
	Drafts        DraftStore
	Notifications NotificationStore
	Profiles      ProfileStore
	Push          Pusher
	InfoLog       *log.Logger
	ErrorLog      *log.Logger

	mu     sync.RWMutex
	states map[string]DashboardState
}

func NewDashboardService() *DashboardService {
	return &DashboardService{states: make(map[string]DashboardState)}
}

// Refresh loads all dashboard slices concurrently. A slice that fails keeps
// its previous value and the refresh still resolves; errors only reach the
// log.
func (s *DashboardService) Refresh(ctx context.Context, userID string) DashboardState {
	s.mu.Lock()
	state, ok := s.states[userID]
	if !ok {
		state = emptyDashboardState()
	}
	s.mu.Unlock()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	load := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				s.ErrorLog.Printf("dashboard %s for %s: %v", name, userID, err)
			}
		}()
	}

	load("reviews", func() error {
		reviews, err := s.Reviews.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		state.Reviews = reviews
		mu.Unlock()
		return nil
	})
	load("stats", func() error {
		stats, err := s.Stats.GetStats(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		state.Stats = stats
		state.Level = models.LevelForPoints(stats.TotalPoints)
		mu.Unlock()
		return nil
	})
	load("badges", func() error {
		badges, err := s.Stats.ListBadges(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		state.Badges = badges
		mu.Unlock()
		return nil
	})
	load("activities", func() error {
		activities, err := s.loadActivities(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		state.Activities = activities
		mu.Unlock()
		return nil
	})
	load("followers", func() error {
		followers, err := s.Follows.ListFollowers(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		state.Followers = followers
		mu.Unlock()
		return nil
	})
	load("following", func() error {
		following, err := s.Follows.ListFollowing(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		state.Following = following
		mu.Unlock()
		return nil
	})
	load("bookmarks", func() error {
		lists, err := s.Bookmarks.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		state.BookmarkLists = lists
		mu.Unlock()
		return nil
	})
	load("drafts", func() error {
		drafts, err := s.Drafts.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		state.Drafts = drafts
		mu.Unlock()
		return nil
	})
	load("notifications", func() error {
		notifications, err := s.Notifications.ListByUser(ctx, userID, notificationsLimit)
		if err != nil {
			return err
		}
		mu.Lock()
		state.Notifications = notifications
		mu.Unlock()
		return nil
	})
	wg.Wait()

	s.mu.Lock()
	s.states[userID] = state
	s.mu.Unlock()
	return state
}

// loadActivities builds the feed from the accepted accounts the user
// follows. Nobody followed means an empty feed, no query.
func (s *DashboardService) loadActivities(ctx context.Context, userID string) ([]models.Activity, error) {
	following, err := s.Follows.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, f := range following {
		if f.Status == models.FollowStatusAccepted {
			ids = append(ids, f.FollowingID)
		}
	}
	if len(ids) == 0 {
		return []models.Activity{}, nil
	}
	return s.Activities.ListByUsers(ctx, ids, activityFeedLimit)
}

func (s *DashboardService) Snapshot(userID string) (DashboardState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[userID]
	return state, ok
}

// mutate applies an optimistic local update to the user's snapshot after a
// successful remote write, so reads between refreshes stay current. Users
// without a loaded snapshot have nothing to patch.
func (s *DashboardService) mutate(userID string, fn func(*DashboardState)) {
	s.mu.Lock()
	if state, ok := s.states[userID]; ok {
		fn(&state)
		s.states[userID] = state
	}
	s.mu.Unlock()
}

// FollowUser creates the follow record. Targets requiring approval get a
// pending request; otherwise the follow is accepted immediately and the
// target is notified. Following someone twice returns the existing status.
func (s *DashboardService) FollowUser(ctx context.Context, followerID, targetID string) (string, error) {
	if existing, err := s.Follows.FindByPair(ctx, followerID, targetID); err == nil {
		return existing.Status, nil
	} else if !errors.Is(err, models.ErrNoRecord) {
		return "", err
	}

	follower, err := s.Profiles.GetUser(ctx, followerID)
	if err != nil {
		return "", err
	}

	target, err := s.Profiles.GetUser(ctx, targetID)
	if err != nil {
		return "", err
	}

	status := models.FollowStatusAccepted
	if target.RequireFollowApproval {
		status = models.FollowStatusPending
	}
	follow := models.Follow{
		FollowerID:  followerID,
		FollowingID: targetID,
		Status:      status,
	}
	id, err := s.Follows.Create(ctx, follow)
	if err != nil {
		return "", err
	}
	follow.ID = id
	follow.CreatedAt = time.Now()
	s.mutate(followerID, func(state *DashboardState) {
		state.Following = append(state.Following, follow)
	})

	if status == models.FollowStatusAccepted {
		if _, err := s.Notifications.Create(ctx, models.Notification{
			UserID:  targetID,
			Type:    models.NotificationNewFollower,
			Title:   "New Follower",
			Message: fmt.Sprintf("%s started following you", follower.Name),
		}); err != nil {
			s.ErrorLog.Printf("follower notification for %s: %v", targetID, err)
		}
		if s.Push != nil {
			if err := s.Push.PushToUser(ctx, targetID, "New Follower",
				fmt.Sprintf("%s started following you", follower.Name)); err != nil {
				s.ErrorLog.Printf("follower push for %s: %v", targetID, err)
			}
		}
	}
	return status, nil
}

func (s *DashboardService) UnfollowUser(ctx context.Context, followerID, targetID string) error {
	f, err := s.Follows.FindByPair(ctx, followerID, targetID)
	if errors.Is(err, models.ErrNoRecord) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.Follows.Delete(ctx, f.ID); err != nil {
		return err
	}
	s.mutate(followerID, func(state *DashboardState) {
		kept := make([]models.Follow, 0, len(state.Following))
		for _, fl := range state.Following {
			if fl.ID != f.ID {
				kept = append(kept, fl)
			}
		}
		state.Following = kept
	})
	return nil
}

func (s *DashboardService) CreateBookmarkList(ctx context.Context, l models.BookmarkList) (string, error) {
	id, err := s.Bookmarks.Create(ctx, l)
	if err != nil {
		return "", err
	}
	l.ID = id
	l.EntityIDs = []string{}
	now := time.Now()
	l.CreatedAt, l.UpdatedAt = now, now
	s.mutate(l.UserID, func(state *DashboardState) {
		state.BookmarkLists = append([]models.BookmarkList{l}, state.BookmarkLists...)
	})
	return id, nil
}

// AddToBookmarkList is idempotent; adding an entity already in the list is
// a no-op.
func (s *DashboardService) AddToBookmarkList(ctx context.Context, userID, listID, entityID string) error {
	list, err := s.Bookmarks.Get(ctx, listID)
	if err != nil {
		return err
	}
	if slices.Contains(list.EntityIDs, entityID) {
		return nil
	}
	ids := append(append([]string{}, list.EntityIDs...), entityID)
	if err := s.Bookmarks.SetEntities(ctx, listID, ids); err != nil {
		return err
	}
	s.mutate(userID, func(state *DashboardState) {
		for i := range state.BookmarkLists {
			if state.BookmarkLists[i].ID == listID {
				state.BookmarkLists[i].EntityIDs = ids
				break
			}
		}
	})
	return nil
}

func (s *DashboardService) SaveDraft(ctx context.Context, d models.ReviewDraft) (string, error) {
	id, err := s.Drafts.Create(ctx, d)
	if err != nil {
		return "", err
	}
	d.ID = id
	now := time.Now()
	d.CreatedAt, d.UpdatedAt = now, now
	s.mutate(d.UserID, func(state *DashboardState) {
		state.Drafts = append([]models.ReviewDraft{d}, state.Drafts...)
	})
	return id, nil
}

func (s *DashboardService) DeleteDraft(ctx context.Context, userID, id string) error {
	if err := s.Drafts.Delete(ctx, id); err != nil {
		return err
	}
	s.mutate(userID, func(state *DashboardState) {
		kept := make([]models.ReviewDraft, 0, len(state.Drafts))
		for _, d := range state.Drafts {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		state.Drafts = kept
	})
	return nil
}

func (s *DashboardService) MarkNotificationAsRead(ctx context.Context, userID, id string) error {
	if err := s.Notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	s.mutate(userID, func(state *DashboardState) {
		for i := range state.Notifications {
			if state.Notifications[i].ID == id {
				state.Notifications[i].Read = true
				break
			}
		}
	})
	return nil
}

// AddPoints bumps the running total and recomputes the level. The reason
// is logged for audit, never stored.
func (s *DashboardService) AddPoints(ctx context.Context, userID string, points int, reason string) (int, error) {
	stats, err := s.Stats.GetStats(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := stats.TotalPoints + points
	if err := s.Stats.SetTotalPoints(ctx, userID, total); err != nil {
		return 0, err
	}
	s.InfoLog.Printf("awarded %d points to %s: %s", points, userID, reason)

	s.mu.Lock()
	if state, ok := s.states[userID]; ok {
		state.Stats.TotalPoints = total
		state.Level = models.LevelForPoints(total)
		s.states[userID] = state
	}
	s.mu.Unlock()
	return total, nil
}

func (s *DashboardService) UpdateUserProfile(ctx context.Context, userID string, upd models.ProfileUpdate) error {
	return s.Profiles.UpdateProfile(ctx, userID, upd)
}
