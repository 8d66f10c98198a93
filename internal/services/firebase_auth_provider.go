package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"biasharaBack/internal/models"
)

// FirebaseAuthProvider drives the Identity Toolkit REST API with the web
// API key, the same surface the mobile clients use.
type FirebaseAuthProvider struct {
	rp     *identitytoolkit.RelyingpartyService
	events chan *Principal
}

func NewFirebaseAuthProvider(ctx context.Context, apiKey string) (*FirebaseAuthProvider, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit service: %w", err)
	}
	return &FirebaseAuthProvider{
		rp:     svc.Relyingparty,
		events: make(chan *Principal, 8),
	}, nil
}

func (p *FirebaseAuthProvider) Sessions() <-chan *Principal {
	return p.events
}

func (p *FirebaseAuthProvider) SignIn(ctx context.Context, email, password string) (Principal, error) {
	resp, err := p.rp.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return Principal{}, mapAuthError(err)
	}
	pr := Principal{
		UID:         resp.LocalId,
		DisplayName: resp.DisplayName,
		Email:       resp.Email,
		PhotoURL:    resp.PhotoUrl,
	}
	p.events <- &pr
	return pr, nil
}

func (p *FirebaseAuthProvider) SignUp(ctx context.Context, name, email, password string) (Principal, error) {
	resp, err := p.rp.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		DisplayName: name,
		Email:       email,
		Password:    password,
	}).Context(ctx).Do()
	if err != nil {
		return Principal{}, mapAuthError(err)
	}
	pr := Principal{
		UID:         resp.LocalId,
		DisplayName: name,
		Email:       resp.Email,
	}
	p.events <- &pr
	return pr, nil
}

func (p *FirebaseAuthProvider) SignInWithGoogle(ctx context.Context, idToken string) (Principal, error) {
	resp, err := p.rp.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          "id_token=" + idToken + "&providerId=google.com",
		RequestUri:        "http://localhost",
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return Principal{}, mapAuthError(err)
	}
	pr := Principal{
		UID:         resp.LocalId,
		DisplayName: resp.DisplayName,
		Email:       resp.Email,
		PhotoURL:    resp.PhotoUrl,
	}
	p.events <- &pr
	return pr, nil
}

func (p *FirebaseAuthProvider) SendPasswordReset(ctx context.Context, email string) error {
	_, err := p.rp.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}).Context(ctx).Do()
	return mapAuthError(err)
}

func (p *FirebaseAuthProvider) SignOut() {
	p.events <- nil
}

// mapAuthError folds Identity Toolkit error codes into the model
// sentinels. The REST API reports codes through the googleapi message.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}
	msg := gerr.Message
	switch {
	case strings.Contains(msg, "EMAIL_EXISTS"):
		return models.ErrDuplicateEmail
	case strings.Contains(msg, "WEAK_PASSWORD"):
		return models.ErrWeakPassword
	case strings.Contains(msg, "INVALID_EMAIL"):
		return models.ErrInvalidEmail
	case strings.Contains(msg, "EMAIL_NOT_FOUND"):
		return models.ErrUserNotFound
	case strings.Contains(msg, "INVALID_PASSWORD"),
		strings.Contains(msg, "INVALID_LOGIN_CREDENTIALS"):
		return models.ErrInvalidCredentials
	}
	return err
}
