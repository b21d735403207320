package router

import (
	"database/sql"
	"net/http"

	"github.com/linkvaultapp/linkvault/auth"
	"github.com/linkvaultapp/linkvault/cliparse"
	"github.com/linkvaultapp/linkvault/handlers"
	"github.com/linkvaultapp/linkvault/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)

	// Initialize handlers
	linkHandler := handlers.NewLinkHandler(db)
	commentHandler := handlers.NewCommentHandler(db)
	authHandler := handlers.NewAuthHandler(db, cfg)
	socialHandler := handlers.NewSocialHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	public := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(h)
	}
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSession(tokens, middleware.RequireUser(h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Link browsing (public) and mutation (authenticated)
	mux.HandleFunc("GET /links", public(linkHandler.List))
	mux.HandleFunc("GET /links/{id}", public(linkHandler.Get))
	mux.HandleFunc("POST /links", authed(linkHandler.Create))
	mux.HandleFunc("PUT /links/{id}", authed(linkHandler.Update))
	mux.HandleFunc("DELETE /links/{id}", authed(linkHandler.Delete))
	mux.HandleFunc("POST /links/{id}/vote", public(linkHandler.Vote))
	mux.HandleFunc("GET /tags", public(linkHandler.Tags))

	// Comments
	mux.HandleFunc("POST /links/{id}/comments", authed(commentHandler.Add))
	mux.HandleFunc("GET /comments/recent", public(commentHandler.Recent))

	// Sessions and identity
	mux.HandleFunc("POST /auth/signup", public(authHandler.SignUp))
	mux.HandleFunc("POST /auth/login", public(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", public(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", authed(authHandler.Me))
	mux.HandleFunc("POST /auth/reset-password", public(authHandler.ResetPassword))
	mux.HandleFunc("POST /auth/reset-password/confirm", public(authHandler.ResetPasswordConfirm))
	mux.HandleFunc("GET /auth/social/{provider}", public(socialHandler.Start))
	mux.HandleFunc("GET /auth/social/{provider}/callback", public(socialHandler.Callback))

	// Profiles
	mux.HandleFunc("PUT /profile", authed(profileHandler.Update))
	mux.HandleFunc("GET /users/{id}/username", public(profileHandler.Username))

	// Admin settings (reads are public, writes admin-only)
	mux.HandleFunc("GET /admin/settings/{key}", public(adminHandler.GetSetting))
	mux.HandleFunc("PUT /admin/settings/{key}", authed(adminHandler.PutSetting))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("linkvault API v1"))
	})

	return mux
}
