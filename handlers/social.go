package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/linkvaultapp/linkvault/auth"
	"github.com/linkvaultapp/linkvault/cliparse"
	"github.com/linkvaultapp/linkvault/middleware"
	"github.com/linkvaultapp/linkvault/store"
)

const stateCookie = "oauth_state"

// SocialHandler implements the OAuth 2.0 authorization-code flow for
// social sign-in. The browser is redirected to the provider and resumes
// at the callback, where a profile is provisioned on first login.
type SocialHandler struct {
	profiles  *store.ProfileStore
	tokens    *auth.TokenManager
	cfg       cliparse.Config
	providers map[string]*oauth2.Config
}

func NewSocialHandler(db *sql.DB, cfg cliparse.Config) *SocialHandler {
	providers := make(map[string]*oauth2.Config)
	if cfg.GoogleClientID != "" {
		providers["google"] = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     endpoints.Google,
			RedirectURL:  cfg.BaseURL + "/auth/social/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
		}
	}
	if cfg.GitHubClientID != "" {
		providers["github"] = &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			Endpoint:     endpoints.GitHub,
			RedirectURL:  cfg.BaseURL + "/auth/social/github/callback",
			Scopes:       []string{"read:user", "user:email"},
		}
	}

	return &SocialHandler{
		profiles:  store.NewProfileStore(db),
		tokens:    auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL),
		cfg:       cfg,
		providers: providers,
	}
}

// Start handles GET /auth/social/{provider}
func (h *SocialHandler) Start(w http.ResponseWriter, r *http.Request) {
	provider, ok := h.providers[r.PathValue("provider")]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown or unconfigured provider")
		return
	}

	state, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate OAuth state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusFound)
}

// Callback handles GET /auth/social/{provider}/callback
func (h *SocialHandler) Callback(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("provider")
	provider, ok := h.providers[name]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown or unconfigured provider")
		return
	}

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "OAuth state mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing authorization code")
		return
	}

	token, err := provider.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("OAuth code exchange failed", "provider", name, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Login failed")
		return
	}

	email, username, err := fetchIdentity(r, provider, name, token)
	if err != nil {
		slog.Error("failed to fetch provider identity", "provider", name, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Login failed")
		return
	}

	profile, err := h.profiles.EnsureSocial(email, username)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	signed, _, err := h.tokens.Issue(profile.ID, profile.IsAdmin)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	slog.Info("social login", "provider", name, "user_id", profile.ID)

	// Hand the token back to the SPA via a URL fragment so it never
	// reaches server logs.
	http.Redirect(w, r, h.cfg.BaseURL+"/auth/callback#token="+signed, http.StatusFound)
}

func fetchIdentity(r *http.Request, provider *oauth2.Config, name string, token *oauth2.Token) (email, username string, err error) {
	client := provider.Client(r.Context(), token)

	switch name {
	case "google":
		var info struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := fetchJSON(client, "https://www.googleapis.com/oauth2/v2/userinfo", &info); err != nil {
			return "", "", err
		}
		return info.Email, info.Name, nil
	default: // github
		var user struct {
			Login string `json:"login"`
			Email string `json:"email"`
		}
		if err := fetchJSON(client, "https://api.github.com/user", &user); err != nil {
			return "", "", err
		}
		if user.Email == "" {
			// Most GitHub accounts hide the public email field
			var emails []struct {
				Email   string `json:"email"`
				Primary bool   `json:"primary"`
			}
			if err := fetchJSON(client, "https://api.github.com/user/emails", &emails); err != nil {
				return "", "", err
			}
			for _, e := range emails {
				if e.Primary {
					user.Email = e.Email
					break
				}
			}
		}
		return user.Email, user.Login, nil
	}
}

func fetchJSON(client *http.Client, url string, v any) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}
