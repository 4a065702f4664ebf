package handler

import (
	"net/http"
	"testing"

	"littlelemon/internal/app/auth"
)

func TestWithAuthCheckNoCredentials(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "GET", "/api/me", "")

	h.WithAuthCheck()(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if !c.IsAborted() {
		t.Error("Expected chain to be aborted")
	}
}

func TestWithStaffCheckBadBearerNoCookie(t *testing.T) {
	h := &Handler{JWTSecret: "secret"}
	c, w := newTestContext(t, "POST", "/api/categories", "")
	c.Request.Header.Set("Authorization", "Bearer not-a-token")

	h.WithStaffCheck()(c)

	// bad token falls through to the cookie check, which also has nothing
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if !c.IsAborted() {
		t.Error("Expected chain to be aborted")
	}
}

func TestWithOptionalAuthAnonymous(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "GET", "/", "")

	h.WithOptionalAuth()(c)

	if c.IsAborted() {
		t.Error("Expected anonymous request to pass through")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if _, err := auth.GetUserFromContext(c); err == nil {
		t.Error("Expected no user in context for anonymous request")
	}
}
