package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.firebaseAuth)

	mux := pat.New()

	// Auth
	mux.Post("/auth/sign_up", standardMiddleware.ThenFunc(app.authHandler.SignUp))
	mux.Post("/auth/sign_in", standardMiddleware.ThenFunc(app.authHandler.SignIn))
	mux.Post("/auth/google", standardMiddleware.ThenFunc(app.authHandler.SignInWithGoogle))
	mux.Post("/auth/reset_password", standardMiddleware.ThenFunc(app.authHandler.ResetPassword))
	mux.Post("/auth/sign_out", standardMiddleware.ThenFunc(app.authHandler.SignOut))
	mux.Get("/auth/session", standardMiddleware.ThenFunc(app.authHandler.Session))
	mux.Post("/user/favorites/toggle", authMiddleware.ThenFunc(app.authHandler.ToggleFavorite))

	// Dashboard
	mux.Get("/dashboard", authMiddleware.ThenFunc(app.dashboardHandler.GetDashboard))
	mux.Post("/dashboard/refresh", authMiddleware.ThenFunc(app.dashboardHandler.RefreshDashboard))
	mux.Post("/follow", authMiddleware.ThenFunc(app.dashboardHandler.Follow))
	mux.Del("/follow/:target_id", authMiddleware.ThenFunc(app.dashboardHandler.Unfollow))
	mux.Post("/bookmark_lists", authMiddleware.ThenFunc(app.dashboardHandler.CreateBookmarkList))
	mux.Post("/bookmark_lists/:id/entities", authMiddleware.ThenFunc(app.dashboardHandler.AddToBookmarkList))
	mux.Post("/drafts", authMiddleware.ThenFunc(app.dashboardHandler.SaveDraft))
	mux.Del("/drafts/:id", authMiddleware.ThenFunc(app.dashboardHandler.DeleteDraft))
	mux.Put("/notifications/:id/read", authMiddleware.ThenFunc(app.dashboardHandler.MarkNotificationRead))
	mux.Post("/points", authMiddleware.ThenFunc(app.dashboardHandler.AddPoints))
	mux.Put("/profile", authMiddleware.ThenFunc(app.dashboardHandler.UpdateProfile))

	// Catalog
	mux.Get("/entities", standardMiddleware.ThenFunc(app.entityHandler.GetEntities))
	mux.Get("/entities/:id", standardMiddleware.ThenFunc(app.entityHandler.GetEntityByID))
	mux.Post("/entities", authMiddleware.ThenFunc(app.entityHandler.CreateEntity))

	// Reviews
	mux.Post("/review", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/review/entity/:entity_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByEntity))
	mux.Get("/review/user/:user_id", authMiddleware.ThenFunc(app.reviewHandler.GetReviewsByUser))

	// Listings and claims
	mux.Post("/listings", authMiddleware.ThenFunc(app.listingHandler.SubmitListing))
	mux.Get("/listings/user/:user_id", authMiddleware.ThenFunc(app.listingHandler.GetUserListings))
	mux.Post("/claims", authMiddleware.ThenFunc(app.listingHandler.SubmitClaim))

	// Chats
	mux.Post("/api/chats", authMiddleware.ThenFunc(app.chatHandler.CreateChat))
	mux.Get("/api/chats/user/:user_id", authMiddleware.ThenFunc(app.chatHandler.GetUserChats))
	mux.Get("/api/chats/entity/:entity_id", authMiddleware.ThenFunc(app.chatHandler.GetEntityChats))
	mux.Get("/api/messages/:chat_id", authMiddleware.ThenFunc(app.chatHandler.GetChatMessages))
	mux.Post("/api/messages", authMiddleware.ThenFunc(app.chatHandler.SendMessage))
	mux.Get("/ws", http.HandlerFunc(app.WebSocketHandler))

	// Push
	mux.Post("/push/token", authMiddleware.ThenFunc(app.pushHandler.RegisterToken))

	// Internal
	mux.Post("/internal/sync_user", standardMiddleware.ThenFunc(app.syncHandler.SyncUser))

	return mux
}
