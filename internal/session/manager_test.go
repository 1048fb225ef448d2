package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestManager_CreateAndResolve(t *testing.T) {
	manager := NewManager(time.Hour)

	token := manager.Create("user-1")
	if token == "" {
		t.Fatal("Expected non-empty token")
	}

	userID, ok := manager.UserID(token)
	if !ok || userID != "user-1" {
		t.Errorf("Expected user-1, got %q (ok=%v)", userID, ok)
	}
	if !manager.Validate(token) {
		t.Error("Expected token to validate")
	}
}

func TestManager_UnknownToken(t *testing.T) {
	manager := NewManager(time.Hour)

	if _, ok := manager.UserID("bogus"); ok {
		t.Error("Expected unknown token to fail")
	}
	if _, ok := manager.UserID(""); ok {
		t.Error("Expected empty token to fail")
	}
}

func TestManager_Invalidate(t *testing.T) {
	manager := NewManager(time.Hour)

	token := manager.Create("user-1")
	manager.Invalidate(token)

	if manager.Validate(token) {
		t.Error("Expected invalidated token to fail")
	}
}

func TestManager_Expiry(t *testing.T) {
	manager := NewManager(time.Minute)

	current := time.Now()
	manager.now = func() time.Time { return current }

	token := manager.Create("user-1")
	if !manager.Validate(token) {
		t.Fatal("Expected fresh token to validate")
	}

	current = current.Add(2 * time.Minute)
	if manager.Validate(token) {
		t.Error("Expected expired token to fail")
	}

	// Expired sessions are dropped on access, not merely hidden.
	manager.mu.RLock()
	_, present := manager.sessions[token]
	manager.mu.RUnlock()
	if present {
		t.Error("Expected expired session to be removed")
	}
}

func TestMiddleware_RejectsWithoutSession(t *testing.T) {
	manager := NewManager(time.Hour)
	handler := Middleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run without a session")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/groups", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestMiddleware_PassesUserID(t *testing.T) {
	manager := NewManager(time.Hour)
	token := manager.Create("user-1")

	var seen string
	handler := Middleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/groups", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if seen != "user-1" {
		t.Errorf("Expected user-1 in context, got %q", seen)
	}
}
