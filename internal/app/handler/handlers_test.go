package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp["error"]
}

func TestApiRegisterBadJSON(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "POST", "/api/auth/register", "not json")

	h.ApiRegister(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if msg := decodeError(t, w); msg != "bad json" {
		t.Errorf("Expected error 'bad json', got '%s'", msg)
	}
}

func TestApiRegisterMissingFields(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "POST", "/api/auth/register", `{"username":"maria"}`)

	h.ApiRegister(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestApiGetMenuItemInvalidID(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "GET", "/api/menu-items/abc", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.ApiGetMenuItem(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if msg := decodeError(t, w); msg != "invalid id" {
		t.Errorf("Expected error 'invalid id', got '%s'", msg)
	}
}

func TestApiGetMenuItemNegativeID(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "GET", "/api/menu-items/-3", "")
	c.Params = gin.Params{{Key: "id", Value: "-3"}}

	h.ApiGetMenuItem(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestApiCreateMenuItemForbiddenField(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "POST", "/api/menu-items", `{"id":5,"title":"Greek Salad","price":12.99}`)

	h.ApiCreateMenuItem(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestApiUpdateMenuItemForbiddenImageURL(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "PUT", "/api/menu-items/1", `{"image_url":"http://evil/x.jpg"}`)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	h.ApiUpdateMenuItem(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestApiGetMeUnauthorized(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "GET", "/api/me", "")

	h.ApiGetMe(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestApiAddToCartUnauthorized(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "POST", "/api/cart/menu-items", `{"menuitem":1,"quantity":2}`)

	h.ApiAddToCart(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestApiCreateReservationUnauthorized(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "POST", "/api/reservations", `{"name":"Maria","numberOfGuests":2,"reservationDate":"2030-01-01","reservationTime":"19:00"}`)

	h.ApiCreateReservation(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestApiUpdateFeaturedMissingFlag(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "PATCH", "/api/menu-items/1/update-featured", `{}`)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	h.ApiUpdateFeatured(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if msg := decodeError(t, w); msg != "featured field is required" {
		t.Errorf("Expected error 'featured field is required', got '%s'", msg)
	}
}

func TestApiAssignDeliveryCrewMissingID(t *testing.T) {
	h := &Handler{}
	c, w := newTestContext(t, "PATCH", "/api/orders/1/assign-delivery-crew", `{}`)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	h.ApiAssignDeliveryCrew(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if msg := decodeError(t, w); msg != "delivery_crew_id is required" {
		t.Errorf("Expected error 'delivery_crew_id is required', got '%s'", msg)
	}
}
