package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/linkvaultapp/linkvault/auth"
	"github.com/linkvaultapp/linkvault/cliparse"
	"github.com/linkvaultapp/linkvault/middleware"
	"github.com/linkvaultapp/linkvault/models"
	"github.com/linkvaultapp/linkvault/store"
)

type AuthHandler struct {
	profiles *store.ProfileStore
	tokens   *auth.TokenManager
	cfg      cliparse.Config

	// Mailer is swappable for tests and real deployments.
	Mailer Mailer
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{
		profiles: store.NewProfileStore(db),
		tokens:   auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL),
		cfg:      cfg,
		Mailer:   LogMailer{},
	}
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.profiles.Create(req.Email, req.Password, req.Username)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("account created", "user_id", profile.ID)

	h.respondWithSession(w, http.StatusCreated, profile)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	profile, err := h.profiles.Authenticate(req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("login", "user_id", profile.ID)

	h.respondWithSession(w, http.StatusOK, profile)
}

// Logout handles POST /auth/logout. Session tokens are stateless, so
// the server only acknowledges; the client discards its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "You have been logged out"})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.SessionFrom(r)

	profile, err := h.profiles.GetByID(claims.UserID())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// ResetPassword handles POST /auth/reset-password. The response never
// reveals whether the account exists.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	token, err := h.profiles.CreateReset(req.Email)
	if err != nil && !store.IsValidation(err) {
		writeStoreError(w, err)
		return
	}

	if token != "" {
		resetURL := h.cfg.BaseURL + "/reset-password?token=" + token
		if err := h.Mailer.SendPasswordReset(req.Email, resetURL); err != nil {
			slog.Error("failed to send reset mail", "error", err)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "If that account exists, a reset link has been sent",
	})
}

// ResetPasswordConfirm handles POST /auth/reset-password/confirm
func (h *AuthHandler) ResetPasswordConfirm(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordConfirmRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.profiles.ResetPassword(req.Token, req.Password); err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Password updated"})
}

func (h *AuthHandler) respondWithSession(w http.ResponseWriter, status int, profile *models.Profile) {
	token, expiresAt, err := h.tokens.Issue(profile.ID, profile.IsAdmin)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	middleware.JSONResponse(w, status, models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *profile,
	})
}
