package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"biasharaBack/internal/models"
)

type TokenStore interface {
	SaveToken(ctx context.Context, t models.DeviceToken) error
	TokensByUser(ctx context.Context, userID string) ([]string, error)
}

// PushService fans a notification out to every registered device token of
// a user through FCM. Per-token failures are logged and skipped.
type PushService struct {
	Client   *messaging.Client
	Tokens   TokenStore
	ErrorLog *log.Logger
}

func (s *PushService) RegisterToken(ctx context.Context, userID, token string) error {
	return s.Tokens.SaveToken(ctx, models.DeviceToken{UserID: userID, Token: token})
}

func (s *PushService) PushToUser(ctx context.Context, userID, title, body string) error {
	tokens, err := s.Tokens.TokensByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, token := range tokens {
		_, err := s.Client.Send(ctx, &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
		})
		if err != nil {
			s.ErrorLog.Printf("push to token of %s: %v", userID, err)
		}
	}
	return nil
}
