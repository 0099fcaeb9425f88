// End-to-end tests over the assembled router, with an in-memory store standing
// in for Postgres.
package wire

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"item-catalog/internal/data/entity"
	"item-catalog/internal/data/repository/repotest"
	"item-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	demoToken = "fake-token-user-1"
	janeToken = "fake-token-user-2"
)

func newTestServer(t *testing.T) (*httptest.Server, *repotest.Store) {
	t.Helper()

	store := repotest.New()
	now := time.Now().UTC()
	store.AddUser(&entity.User{
		Base:     entity.Base{ID: "user-1", CreatedAt: now},
		Email:    "demo@example.com",
		Name:     "Demo User",
		Password: "demo123",
	})
	store.AddUser(&entity.User{
		Base:     entity.Base{ID: "user-2", CreatedAt: now},
		Email:    "jane@example.com",
		Name:     "Jane Smith",
		Password: "jane123",
	})

	config := &utils.Config{
		Auth: utils.AuthConfig{TokenPrefix: "fake-token-"},
	}

	app := Wiring(store.Repository(), config, zap.NewNop())
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)

	return srv, store
}

// do sends a request with an optional bearer token and JSON body, returning
// the status code and decoded body.
func do(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded
}

func firstErrorField(t *testing.T, body map[string]any) (string, string) {
	t.Helper()
	errs, ok := body["errors"].([]any)
	require.True(t, ok, "expected errors list, got %v", body)
	require.NotEmpty(t, errs)
	first := errs[0].(map[string]any)
	return first["field"].(string), first["message"].(string)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("demo credentials yield the demo token", func(t *testing.T) {
		status, body := do(t, srv, http.MethodPost, "/auth/login", "",
			map[string]any{"email": "demo@example.com", "password": "demo123"})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, demoToken, body["token"])
		user := body["user"].(map[string]any)
		assert.Equal(t, "user-1", user["id"])
		assert.Equal(t, "demo@example.com", user["email"])
		assert.Equal(t, "Demo User", user["name"])
	})

	t.Run("wrong password", func(t *testing.T) {
		status, body := do(t, srv, http.MethodPost, "/auth/login", "",
			map[string]any{"email": "demo@example.com", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("invalid email shape", func(t *testing.T) {
		status, body := do(t, srv, http.MethodPost, "/auth/login", "",
			map[string]any{"email": "not-an-email", "password": "demo123"})
		require.Equal(t, http.StatusBadRequest, status)
		field, message := firstErrorField(t, body)
		assert.Equal(t, "email", field)
		assert.Equal(t, "email must be a valid email address", message)
	})
}

func TestAuthMe(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("resolved identity", func(t *testing.T) {
		status, body := do(t, srv, http.MethodGet, "/auth/me", demoToken, nil)
		require.Equal(t, http.StatusOK, status)
		user := body["user"].(map[string]any)
		assert.Equal(t, "demo@example.com", user["email"])
	})

	t.Run("no token", func(t *testing.T) {
		status, body := do(t, srv, http.MethodGet, "/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("unknown prefix", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
		req.Header.Set("Authorization", "Bearer other-scheme-user-1")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestItemLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	// Create
	status, body := do(t, srv, http.MethodPost, "/items", demoToken, map[string]any{
		"name":        "Mechanical Keyboard",
		"description": "hot-swappable switches",
		"category":    "electronics",
		"year":        2023,
	})
	require.Equal(t, http.StatusCreated, status)
	item := body["item"].(map[string]any)
	itemID := item["id"].(string)
	require.NotEmpty(t, itemID)
	assert.NotEmpty(t, item["createdAt"])

	// Short name rejected with a field-tagged error
	status, body = do(t, srv, http.MethodPost, "/items", demoToken, map[string]any{"name": "a"})
	require.Equal(t, http.StatusBadRequest, status)
	field, _ := firstErrorField(t, body)
	assert.Equal(t, "name", field)

	// Read with ratings
	status, body = do(t, srv, http.MethodGet, "/items/"+itemID, demoToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Mechanical Keyboard", body["item"].(map[string]any)["name"])
	assert.Empty(t, body["ratings"])

	// List with filters; any authenticated user sees it
	status, body = do(t, srv, http.MethodGet, "/items?search=keyboard", janeToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["items"].([]any), 1)

	status, body = do(t, srv, http.MethodGet, "/items?category=kitchen", demoToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["items"])

	// Full replace by another user (items carry no ownership)
	status, body = do(t, srv, http.MethodPut, "/items/"+itemID, janeToken, map[string]any{
		"name": "Keyboard v2",
	})
	require.Equal(t, http.StatusOK, status)
	updated := body["item"].(map[string]any)
	assert.Equal(t, "Keyboard v2", updated["name"])
	assert.Nil(t, updated["description"])

	// Delete, then everything about it is gone
	status, _ = do(t, srv, http.MethodDelete, "/items/"+itemID, demoToken, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = do(t, srv, http.MethodGet, "/items/"+itemID, demoToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, srv, http.MethodGet, "/items/"+itemID+"/ratings", demoToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, srv, http.MethodDelete, "/items/"+itemID, demoToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRatingLifecycle(t *testing.T) {
	srv, store := newTestServer(t)

	status, body := do(t, srv, http.MethodPost, "/items", demoToken, map[string]any{
		"name": "Espresso Grinder",
	})
	require.Equal(t, http.StatusCreated, status)
	itemID := body["item"].(map[string]any)["id"].(string)

	// Score out of range
	status, body = do(t, srv, http.MethodPost, "/items/"+itemID+"/ratings", demoToken,
		map[string]any{"score": 6})
	require.Equal(t, http.StatusBadRequest, status)
	field, _ := firstErrorField(t, body)
	assert.Equal(t, "score", field)

	// Rating on a missing item
	status, _ = do(t, srv, http.MethodPost, "/items/item-0/ratings", demoToken,
		map[string]any{"score": 3})
	assert.Equal(t, http.StatusNotFound, status)

	// Create as jane
	status, body = do(t, srv, http.MethodPost, "/items/"+itemID+"/ratings", janeToken,
		map[string]any{"score": 5, "comment": "grinds beautifully"})
	require.Equal(t, http.StatusCreated, status)
	rating := body["rating"].(map[string]any)
	ratingID := rating["id"].(string)
	assert.Equal(t, "user-2", rating["userId"])
	assert.Equal(t, float64(5), rating["score"])

	// Listed under the item
	status, body = do(t, srv, http.MethodGet, "/items/"+itemID+"/ratings", demoToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["ratings"].([]any), 1)

	// Non-author delete is forbidden and leaves the rating intact
	status, body = do(t, srv, http.MethodDelete, "/ratings/"+ratingID, demoToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You can only delete your own ratings", body["error"])
	assert.Equal(t, 1, store.RatingCount())

	// Author delete succeeds; repeating it is a miss
	status, _ = do(t, srv, http.MethodDelete, "/ratings/"+ratingID, janeToken, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = do(t, srv, http.MethodDelete, "/ratings/"+ratingID, janeToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
