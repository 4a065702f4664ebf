package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContextWithBody(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	return c
}

func TestCheckForbiddenJSONKeysClean(t *testing.T) {
	c := testContextWithBody(t, `{"title":"Greek Salad","price":12.99}`)

	bad, key, err := checkForbiddenJSONKeys(c, []string{"id", "is_deleted"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bad {
		t.Errorf("Expected no forbidden key, got '%s'", key)
	}
}

func TestCheckForbiddenJSONKeysFound(t *testing.T) {
	c := testContextWithBody(t, `{"id":7,"title":"Greek Salad"}`)

	bad, key, err := checkForbiddenJSONKeys(c, []string{"id", "is_deleted"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bad {
		t.Error("Expected forbidden key to be detected")
	}
	if key != "id" {
		t.Errorf("Expected key 'id', got '%s'", key)
	}
}

func TestCheckForbiddenJSONKeysEmptyBody(t *testing.T) {
	c := testContextWithBody(t, "")

	bad, _, err := checkForbiddenJSONKeys(c, []string{"id"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if bad {
		t.Error("Expected empty body to pass")
	}
}

func TestCheckForbiddenJSONKeysRestoresBody(t *testing.T) {
	c := testContextWithBody(t, `{"title":"Greek Salad"}`)

	if _, _, err := checkForbiddenJSONKeys(c, []string{"id"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// body must still bind after the check
	var in struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(c.Request.Body).Decode(&in); err != nil {
		t.Fatalf("Body was not restored: %v", err)
	}
	if in.Title != "Greek Salad" {
		t.Errorf("Expected title 'Greek Salad', got '%s'", in.Title)
	}
}
