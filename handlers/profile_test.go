package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/linkvaultapp/linkvault/models"
	"github.com/linkvaultapp/linkvault/testutil"
)

func TestUpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProfileHandler(db)

	userID := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)
	token := testutil.TokenFor(t, cfg, userID, false)

	t.Run("username change", func(t *testing.T) {
		name := "alice2"
		req := testutil.MakeRequest("PUT", "/profile", models.UpdateProfileRequest{Username: &name}, testutil.AuthHeader(token))
		w := httptest.NewRecorder()

		withSession(t, handler.Update)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var profile models.Profile
		testutil.AssertJSON(t, w, &profile)
		if profile.Username != "alice2" {
			t.Errorf("Expected username 'alice2', got '%s'", profile.Username)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/profile", models.UpdateProfileRequest{}, testutil.AuthHeader(token))
		w := httptest.NewRecorder()

		withSession(t, handler.Update)(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		name := "ghost"
		req := testutil.MakeRequest("PUT", "/profile", models.UpdateProfileRequest{Username: &name}, nil)
		w := httptest.NewRecorder()

		withSession(t, handler.Update)(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestResolveUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewProfileHandler(db)
	userID := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)

	resolve := func(id string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/users/"+id+"/username", nil, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.Username(w, req)
		return w
	}

	t.Run("known user", func(t *testing.T) {
		w := resolve(userID)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.UsernameResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Username != "alice" {
			t.Errorf("Expected 'alice', got '%s'", resp.Username)
		}
	})

	t.Run("unknown user falls back to anonymous", func(t *testing.T) {
		w := resolve("missing-id")
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.UsernameResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Username != "anonymous" {
			t.Errorf("Expected 'anonymous', got '%s'", resp.Username)
		}
	})
}
