package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openblogger/blog-backend/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer spins up the full router over a fresh in-memory database.
func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	router := newRouter(database.New(db),
		withConfig(map[string]string{"SECRET_KEY": "test-secret"}),
		withStartupTime(time.Now()),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, db
}

// doJSON performs a request and decodes the response body into out when it
// is non-nil and the body is non-empty. Returns the status code.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("Failed to decode response %q: %v", raw, err)
		}
	}
	return resp.StatusCode
}

// signupAndLogin registers a user and returns its id and a bearer token.
func signupAndLogin(t *testing.T, srv *httptest.Server, username, password string) (uint, string) {
	t.Helper()

	var user userResponse
	status := doJSON(t, srv, http.MethodPost, "/signup", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	}, &user)
	if status != http.StatusOK {
		t.Fatalf("Signup for %q returned status %d", username, status)
	}

	var token tokenResponse
	status = doJSON(t, srv, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	}, &token)
	if status != http.StatusOK {
		t.Fatalf("Login for %q returned status %d", username, status)
	}
	return user.ID, token.AccessToken
}

// createTag creates a tag through the API and returns its id.
func createTag(t *testing.T, srv *httptest.Server, token, name string) uint {
	t.Helper()

	var tag tagResponse
	status := doJSON(t, srv, http.MethodPost, "/tags", token, map[string]string{"name": name}, &tag)
	if status != http.StatusCreated {
		t.Fatalf("Create tag %q returned status %d", name, status)
	}
	return tag.ID
}

// createPost creates a post through the API and returns its response shape.
func createPost(t *testing.T, srv *httptest.Server, token, title string, tagIDs []uint) postResponse {
	t.Helper()

	var post postResponse
	status := doJSON(t, srv, http.MethodPost, "/posts", token, map[string]any{
		"title":   title,
		"content": "content of " + title,
		"tags":    tagIDs,
	}, &post)
	if status != http.StatusCreated {
		t.Fatalf("Create post %q returned status %d", title, status)
	}
	return post
}
