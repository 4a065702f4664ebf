package auth

import (
	"testing"
	"time"

	"littlelemon/internal/app/repository"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := repository.PublicUser{
		ID:        42,
		Username:  "maria",
		IsStaff:   false,
		IsManager: true,
	}

	token, err := GenerateToken(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Expected non-empty token")
	}

	claims, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("Expected user id 42, got %d", claims.UserID)
	}
	if claims.Username != "maria" {
		t.Errorf("Expected username 'maria', got '%s'", claims.Username)
	}
	if !claims.IsManager {
		t.Error("Expected is_manager to be true")
	}
	if claims.IsStaff {
		t.Error("Expected is_staff to be false")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := repository.PublicUser{ID: 1, Username: "maria"}
	token, err := GenerateToken(user, "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := ParseToken(token, "wrong-secret"); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	user := repository.PublicUser{ID: 1, Username: "maria"}
	token, err := GenerateToken(user, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := ParseToken(token, "test-secret"); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", "test-secret"); err == nil {
		t.Error("Expected error for malformed token")
	}
}
