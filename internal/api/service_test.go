package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"coincollector/internal/config"
	"coincollector/internal/database"
	"coincollector/internal/session"
	"coincollector/internal/store"
)

func setupTestServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	cfg := config.DatabaseConfig{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PingTimeout:  5 * time.Second,
	}
	dbService, err := database.NewService(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sessions := session.NewManager(time.Hour)
	server := httptest.NewServer(NewService(dbService, sessions).Router())

	cleanup := func() {
		server.Close()
		dbService.Close()
	}
	return server, cleanup
}

// newClient returns an http client with its own cookie jar, so each client
// acts as a distinct browser session.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func register(t *testing.T, client *http.Client, baseURL, name string) string {
	t.Helper()
	resp := postJSON(t, client, baseURL+"/api/register", map[string]string{"name": name})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Register returned %d", resp.StatusCode)
	}
	var body struct {
		UserID string `json:"userId"`
	}
	decodeJSON(t, resp, &body)
	return body.UserID
}

func TestAPI_EndToEnd(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient(t)
	register(t, client, server.URL, "Alice")

	// Create a group.
	resp := postJSON(t, client, server.URL+"/api/groups", map[string]string{"name": "Euro Coins"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create group returned %d", resp.StatusCode)
	}
	var group store.GroupResponse
	decodeJSON(t, resp, &group)

	// Create a collection in it.
	resp = postJSON(t, client, server.URL+"/api/collections", map[string]string{
		"name":    "2024 Starter Set",
		"groupId": group.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create collection returned %d", resp.StatusCode)
	}
	var collection store.CollectionResponse
	decodeJSON(t, resp, &collection)

	// Add a coin.
	resp = postJSON(t, client, server.URL+"/api/coins", map[string]any{
		"year":         2024,
		"value":        100,
		"country":      "DE",
		"mint":         "A",
		"collectionId": collection.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Create coin returned %d", resp.StatusCode)
	}
	var coin store.CoinResponse
	decodeJSON(t, resp, &coin)
	if coin.Description != "1 Euro coin from Germany from the year 2024 from mint A" {
		t.Errorf("Unexpected generated description: %q", coin.Description)
	}

	// The group projection shows the whole subtree.
	listResp, err := client.Get(server.URL + "/api/groups")
	if err != nil {
		t.Fatalf("List groups failed: %v", err)
	}
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("List groups returned %d", listResp.StatusCode)
	}
	var groups []store.GroupResponse
	decodeJSON(t, listResp, &groups)

	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Collections) != 1 {
		t.Fatalf("Expected 1 collection, got %d", len(groups[0].Collections))
	}
	coins := groups[0].Collections[0].Coins
	if len(coins) != 1 || coins[0].Value != 100 || coins[0].Country != "DE" {
		t.Errorf("Unexpected coins in projection: %+v", coins)
	}
}

func TestAPI_RequiresSession(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := http.Get(server.URL + "/api/groups")
	if err != nil {
		t.Fatalf("List groups failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 without session, got %d", resp.StatusCode)
	}
}

func TestAPI_LogoutEndsSession(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient(t)
	register(t, client, server.URL, "Alice")

	resp := postJSON(t, client, server.URL+"/api/logout", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("Logout returned %d", resp.StatusCode)
	}

	listResp, err := client.Get(server.URL + "/api/groups")
	if err != nil {
		t.Fatalf("List groups failed: %v", err)
	}
	defer listResp.Body.Close()
	if listResp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 after logout, got %d", listResp.StatusCode)
	}
}

func TestAPI_OwnershipEnforced(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	alice := newClient(t)
	register(t, alice, server.URL, "Alice")

	resp := postJSON(t, alice, server.URL+"/api/groups", map[string]string{"name": "Euro Coins"})
	var group store.GroupResponse
	decodeJSON(t, resp, &group)

	bob := newClient(t)
	register(t, bob, server.URL, "Bob")

	getResp, err := bob.Get(server.URL + "/api/groups/" + group.ID)
	if err != nil {
		t.Fatalf("Get group failed: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected 403 for foreign group, got %d", getResp.StatusCode)
	}
}

func TestAPI_ValidationErrors(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	client := newClient(t)
	register(t, client, server.URL, "Alice")

	resp := postJSON(t, client, server.URL+"/api/groups", map[string]string{"name": "Euro Coins"})
	var group store.GroupResponse
	decodeJSON(t, resp, &group)

	// Duplicate group name.
	resp = postJSON(t, client, server.URL+"/api/groups", map[string]string{"name": "Euro Coins"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Expected 409 for duplicate group name, got %d", resp.StatusCode)
	}

	resp = postJSON(t, client, server.URL+"/api/collections", map[string]string{
		"name":    "Starter Set",
		"groupId": group.ID,
	})
	var collection store.CollectionResponse
	decodeJSON(t, resp, &collection)

	// Unknown country code.
	resp = postJSON(t, client, server.URL+"/api/coins", map[string]any{
		"year":         2024,
		"value":        100,
		"country":      "XX",
		"collectionId": collection.ID,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown country, got %d", resp.StatusCode)
	}

	// Missing year.
	resp = postJSON(t, client, server.URL+"/api/coins", map[string]any{
		"value":        100,
		"country":      "DE",
		"collectionId": collection.ID,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing year, got %d", resp.StatusCode)
	}
}
