package main

import (
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/messaging"
	"github.com/redis/go-redis/v9"

	"biasharaBack/internal/config"
	"biasharaBack/internal/handlers"
	"biasharaBack/internal/repositories"
	"biasharaBack/internal/services"
	"biasharaBack/utils"
)

type application struct {
	cfg      config.Config
	errorLog *log.Logger
	infoLog  *log.Logger

	verifier TokenVerifier
	wsHub    *WebSocketHub

	authService      *services.AuthService
	dashboardService *services.DashboardService

	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
	entityHandler    *handlers.EntityHandler
	reviewHandler    *handlers.ReviewHandler
	listingHandler   *handlers.ListingHandler
	chatHandler      *handlers.ChatHandler
	pushHandler      *handlers.PushHandler
	syncHandler      *handlers.SyncHandler
}

func initializeApp(
	cfg config.Config,
	fs *firestore.Client,
	verifier TokenVerifier,
	fcm *messaging.Client,
	rdb *redis.Client,
	provider services.AuthProvider,
	tokens *utils.Manager,
	errorLog, infoLog *log.Logger,
) *application {
	// Repositories
	userRepo := repositories.UserRepository{Client: fs}
	statsRepo := repositories.StatsRepository{Client: fs}
	followRepo := repositories.FollowRepository{Client: fs}
	activityRepo := repositories.ActivityRepository{Client: fs}
	bookmarkRepo := repositories.BookmarkRepository{Client: fs}
	draftRepo := repositories.DraftRepository{Client: fs}
	notificationRepo := repositories.NotificationRepository{Client: fs}
	reviewRepo := repositories.ReviewRepository{Client: fs}
	entityRepo := repositories.EntityRepository{Client: fs}
	listingRepo := repositories.ListingRepository{Client: fs}
	chatRepo := repositories.ChatRepository{Client: fs}
	tokenRepo := repositories.TokenRepository{Client: fs}
	entityCache := repositories.EntityCache{RDB: rdb, TTL: cfg.Redis.EntityCacheTTL}

	storage := utils.NewS3Storage(
		cfg.Storage.Endpoint,
		cfg.Storage.Region,
		cfg.Storage.Bucket,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
	)

	// Services
	syncClient := &services.HTTPSyncClient{
		URL:      cfg.Sync.URL,
		Tokens:   tokens,
		TokenTTL: cfg.Sync.TokenTTL,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
	authService := &services.AuthService{
		Provider:      provider,
		Users:         &userRepo,
		Sync:          syncClient,
		InfoLog:       infoLog,
		ErrorLog:      errorLog,
		SettleDelay:   cfg.Auth.SettleDelay,
		RetryDelay:    cfg.Auth.RetryDelay,
		RetryAttempts: cfg.Auth.RetryAttempts,
	}
	pushService := &services.PushService{
		Client:   fcm,
		Tokens:   &tokenRepo,
		ErrorLog: errorLog,
	}
	dashboardService := services.NewDashboardService()
	dashboardService.Reviews = &reviewRepo
	dashboardService.Stats = &statsRepo
	dashboardService.Follows = &followRepo
	dashboardService.Activities = &activityRepo
	dashboardService.Bookmarks = &bookmarkRepo
	dashboardService.Drafts = &draftRepo
	dashboardService.Notifications = &notificationRepo
	dashboardService.Profiles = &userRepo
	dashboardService.Push = pushService
	dashboardService.InfoLog = infoLog
	dashboardService.ErrorLog = errorLog

	entityService := &services.EntityService{
		Entities: &entityRepo,
		Cache:    &entityCache,
		ErrorLog: errorLog,
	}
	reviewService := &services.ReviewService{
		Reviews:    &reviewRepo,
		Storage:    storage,
		Aggregates: entityService,
		ErrorLog:   errorLog,
	}
	listingService := &services.ListingService{Listings: &listingRepo}

	wsHub := NewWebSocketHub()
	chatService := &services.ChatService{
		Chats:    &chatRepo,
		Hub:      wsHub,
		ErrorLog: errorLog,
	}

	return &application{
		cfg:              cfg,
		errorLog:         errorLog,
		infoLog:          infoLog,
		verifier:         verifier,
		wsHub:            wsHub,
		authService:      authService,
		dashboardService: dashboardService,
		authHandler:      &handlers.AuthHandler{Auth: authService},
		dashboardHandler: &handlers.DashboardHandler{Dashboard: dashboardService},
		entityHandler:    &handlers.EntityHandler{Service: entityService},
		reviewHandler:    &handlers.ReviewHandler{Service: reviewService},
		listingHandler:   &handlers.ListingHandler{Service: listingService},
		chatHandler:      &handlers.ChatHandler{Service: chatService},
		pushHandler:      &handlers.PushHandler{Service: pushService},
		syncHandler:      &handlers.SyncHandler{Tokens: tokens},
	}
}
