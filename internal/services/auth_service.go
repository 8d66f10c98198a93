package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"biasharaBack/internal/models"
)

// Principal is the identity the auth provider vouches for. It carries only
// token claims; the profile document is loaded separately.
type Principal struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoURL"`
}

// AuthProvider owns credentials. Sessions delivers a pointer per auth
// change: a principal on sign-in, nil on sign-out.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (Principal, error)
	SignUp(ctx context.Context, name, email, password string) (Principal, error)
	SignInWithGoogle(ctx context.Context, idToken string) (Principal, error)
	SendPasswordReset(ctx context.Context, email string) error
	SignOut()
	Sessions() <-chan *Principal
}

type UserStore interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, u models.User) error
	SaveUser(ctx context.Context, u models.User) error
}

type SyncClient interface {
	SyncUser(ctx context.Context, p Principal) (bool, error)
}

type AuthService struct {
	Provider AuthProvider
	Users    UserStore
	Sync     SyncClient
	InfoLog  *log.Logger
	ErrorLog *log.Logger

	SettleDelay   time.Duration
	RetryDelay    time.Duration
	RetryAttempts int

	mu      sync.RWMutex
	current *models.User
	loading bool

	// cancelEvent tears down the previous event's bootstrap so a stale
	// retry chain cannot publish over a newer sign-in.
	cancelEvent context.CancelFunc
}

// Run consumes session changes until ctx is cancelled. It is the only
// writer of the current-user state besides Signup and ToggleFavorite.
func (s *AuthService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-s.Provider.Sessions():
			if !ok {
				return
			}
			s.handleSession(ctx, p)
		}
	}
}

func (s *AuthService) handleSession(ctx context.Context, p *Principal) {
	if s.cancelEvent != nil {
		s.cancelEvent()
		s.cancelEvent = nil
	}
	if p == nil {
		s.setCurrent(nil)
		s.setLoading(false)
		return
	}

	eventCtx, cancel := context.WithCancel(ctx)
	s.cancelEvent = cancel
	s.setLoading(true)
	go s.bootstrap(eventCtx, *p)
}

// bootstrap runs the post-sign-in sequence: backend sync, settle delay on
// success, then profile load. All steps respect the event context.
func (s *AuthService) bootstrap(ctx context.Context, p Principal) {
	defer s.setLoading(false)

	synced, err := s.Sync.SyncUser(ctx, p)
	if err != nil {
		s.ErrorLog.Printf("user sync for %s failed: %v", p.UID, err)
	}
	if synced {
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.SettleDelay):
		}
	}

	u, ok := s.loadProfile(ctx, p)
	if !ok {
		return
	}
	s.setCurrent(&u)
}

// loadProfile fetches the profile document, retrying while it is absent
// (the backend may still be creating it) or the store is briefly down.
// ok is false only when the event context was cancelled mid-chain.
func (s *AuthService) loadProfile(ctx context.Context, p Principal) (models.User, bool) {
	for attempt := 1; ; attempt++ {
		u, err := s.Users.GetUser(ctx, p.UID)
		if err == nil {
			return u, true
		}
		if ctx.Err() != nil {
			return models.User{}, false
		}

		var delay time.Duration
		switch {
		case errors.Is(err, models.ErrNoRecord):
			if attempt >= s.RetryAttempts {
				s.InfoLog.Printf("profile for %s absent after %d attempts, using fallback", p.UID, attempt)
				return s.fallbackUser(p), true
			}
			delay = s.RetryDelay
		case errors.Is(err, models.ErrUnavailable):
			if attempt >= s.RetryAttempts {
				s.ErrorLog.Printf("profile load for %s gave up: %v", p.UID, err)
				return s.fallbackUser(p), true
			}
			delay = s.RetryDelay * time.Duration(attempt)
		default:
			s.ErrorLog.Printf("profile load for %s: %v", p.UID, err)
			return s.fallbackUser(p), true
		}

		select {
		case <-ctx.Done():
			return models.User{}, false
		case <-time.After(delay):
		}
	}
}

// fallbackUser synthesizes a usable profile from token claims alone, with
// zeroed counters and default preferences.
func (s *AuthService) fallbackUser(p Principal) models.User {
	name := p.DisplayName
	if name == "" {
		if at := strings.IndexByte(p.Email, '@'); at > 0 {
			name = p.Email[:at]
		}
	}
	if name == "" {
		name = "User"
	}
	return models.User{
		ID:                   p.UID,
		Name:                 name,
		Email:                p.Email,
		Avatar:               p.PhotoURL,
		Favorites:            []string{},
		OwnedEntityIDs:       []string{},
		JoinedAt:             time.Now(),
		IsPublicProfile:      true,
		ShowActivity:         true,
		NotificationSettings: models.DefaultNotificationSettings(),
		Role:                 "user",
	}
}

func (s *AuthService) setCurrent(u *models.User) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
}

func (s *AuthService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// CurrentUser returns a snapshot of the session. The copy keeps callers
// from mutating shared state.
func (s *AuthService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

func (s *AuthService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Login reports whether the credentials were accepted. The session itself
// is established by the provider's session event.
func (s *AuthService) Login(ctx context.Context, email, password string) bool {
	if _, err := s.Provider.SignIn(ctx, email, password); err != nil {
		s.ErrorLog.Printf("sign in failed: %v", err)
		return false
	}
	return true
}

// Signup creates the credential and the profile document, then publishes
// the new user synchronously so callers see a session without waiting for
// the event-driven bootstrap.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) models.SignUpResult {
	p, err := s.Provider.SignUp(ctx, name, email, password)
	if err != nil {
		return models.SignUpResult{Success: false, Message: signupMessage(err)}
	}

	u := s.fallbackUser(p)
	u.Name = name
	if err := s.Users.CreateUser(ctx, u); err != nil {
		s.ErrorLog.Printf("create profile for %s: %v", p.UID, err)
	}
	s.setCurrent(&u)
	return models.SignUpResult{Success: true}
}

func signupMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		return "This email is already registered. Please login instead."
	case errors.Is(err, models.ErrWeakPassword):
		return "Password is too weak. Please use at least 6 characters."
	case errors.Is(err, models.ErrInvalidEmail):
		return "Invalid email address."
	}
	return "Signup failed. Please try again."
}

// LoginWithGoogle exchanges the Google ID token for a session. First-time
// Google users have no profile document yet, so one is created from the
// token claims before the event-driven bootstrap goes looking for it.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) bool {
	p, err := s.Provider.SignInWithGoogle(ctx, idToken)
	if err != nil {
		s.ErrorLog.Printf("google sign in failed: %v", err)
		return false
	}
	if _, err := s.Users.GetUser(ctx, p.UID); errors.Is(err, models.ErrNoRecord) {
		if err := s.Users.CreateUser(ctx, s.fallbackUser(p)); err != nil {
			s.ErrorLog.Printf("create profile for %s: %v", p.UID, err)
		}
	}
	return true
}

func (s *AuthService) ResetPassword(ctx context.Context, email string) models.ResetPasswordResult {
	err := s.Provider.SendPasswordReset(ctx, email)
	if err == nil {
		return models.ResetPasswordResult{
			Success: true,
			Message: "Password reset email sent. Please check your inbox.",
		}
	}
	if errors.Is(err, models.ErrUserNotFound) {
		return models.ResetPasswordResult{
			Success: false,
			Message: "No account found with this email address.",
		}
	}
	s.ErrorLog.Printf("password reset for %s: %v", email, err)
	return models.ResetPasswordResult{
		Success: false,
		Message: "Failed to send password reset email. Please try again.",
	}
}

func (s *AuthService) Logout() {
	s.Provider.SignOut()
	s.setCurrent(nil)
}

// ToggleFavorite flips the entity in the user's favorites and persists the
// whole profile document. The updated list is returned for the response.
func (s *AuthService) ToggleFavorite(ctx context.Context, entityID string) ([]string, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, models.ErrNotAuthenticated
	}
	u := *s.current

	if i := slices.Index(u.Favorites, entityID); i >= 0 {
		u.Favorites = append(append([]string{}, u.Favorites[:i]...), u.Favorites[i+1:]...)
	} else {
		u.Favorites = append(append([]string{}, u.Favorites...), entityID)
	}
	s.current = &u
	s.mu.Unlock()

	if err := s.Users.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u.Favorites, nil
}
