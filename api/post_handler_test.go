package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/openblogger/blog-backend/models"
)

func TestCreatePostSetsOwnerAndResolvesTags(t *testing.T) {
	srv, db := newTestServer(t)
	aliceID, token := signupAndLogin(t, srv, "alice", "correct-pw")
	goTag := createTag(t, srv, token, "go")

	// A non-existent tag id in the list is silently dropped.
	post := createPost(t, srv, token, "tagged", []uint{goTag, 9999})
	if len(post.Tags) != 1 || post.Tags[0].ID != goTag {
		t.Fatalf("Expected only the resolved tag, got %+v", post.Tags)
	}

	var stored models.Post
	if err := db.First(&stored, post.ID).Error; err != nil {
		t.Fatalf("Failed to load stored post: %v", err)
	}
	if stored.UserID == nil || *stored.UserID != aliceID {
		t.Fatalf("Expected owner %d, got %v", aliceID, stored.UserID)
	}
}

func TestCreatePostRequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	body := map[string]any{"title": "t", "content": "c"}
	if status := doJSON(t, srv, http.MethodPost, "/posts", "", body, nil); status != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", status)
	}
	if status := doJSON(t, srv, http.MethodPost, "/posts", "garbage", body, nil); status != http.StatusUnauthorized {
		t.Fatalf("Expected 401 with invalid token, got %d", status)
	}
}

func TestCreatePostValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	_, token := signupAndLogin(t, srv, "alice", "correct-pw")

	status := doJSON(t, srv, http.MethodPost, "/posts", token, map[string]any{"content": "c"}, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("Expected 400 for missing title, got %d", status)
	}
}

func TestListPostsPublicAndOrdered(t *testing.T) {
	srv, _ := newTestServer(t)
	_, token := signupAndLogin(t, srv, "alice", "correct-pw")
	for _, title := range []string{"first", "second", "third"} {
		createPost(t, srv, token, title, nil)
	}

	var posts []postResponse
	if status := doJSON(t, srv, http.MethodGet, "/posts", "", nil, &posts); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i-1].ID >= posts[i].ID {
			t.Fatalf("Expected id-ascending order, got %+v", posts)
		}
	}

	// Offset/limit paging, trailing slash tolerated.
	posts = nil
	if status := doJSON(t, srv, http.MethodGet, "/posts/?skip=1&limit=1", "", nil, &posts); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if len(posts) != 1 || posts[0].Title != "second" {
		t.Fatalf("Expected page [second], got %+v", posts)
	}
}

func TestGetPost(t *testing.T) {
	srv, _ := newTestServer(t)
	_, token := signupAndLogin(t, srv, "alice", "correct-pw")
	created := createPost(t, srv, token, "hello", nil)

	var post postResponse
	path := fmt.Sprintf("/posts/%d", created.ID)
	if status := doJSON(t, srv, http.MethodGet, path, "", nil, &post); status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if post.Title != "hello" {
		t.Fatalf("Expected title hello, got %q", post.Title)
	}

	if status := doJSON(t, srv, http.MethodGet, "/posts/9999", "", nil, nil); status != http.StatusNotFound {
		t.Fatalf("Expected 404 for unknown post, got %d", status)
	}
	if status := doJSON(t, srv, http.MethodGet, "/posts/abc", "", nil, nil); status != http.StatusBadRequest {
		t.Fatalf("Expected 400 for non-numeric id, got %d", status)
	}
}

func TestUpdatePostOwnershipScoped(t *testing.T) {
	srv, _ := newTestServer(t)
	_, aliceToken := signupAndLogin(t, srv, "alice", "correct-pw")
	_, bobToken := signupAndLogin(t, srv, "bob", "correct-pw")
	created := createPost(t, srv, aliceToken, "alice's", nil)
	path := fmt.Sprintf("/posts/%d", created.ID)

	// A non-owner sees not-found, never forbidden.
	newTitle := "stolen"
	status := doJSON(t, srv, http.MethodPut, path, bobToken, map[string]any{"title": newTitle}, nil)
	if status != http.StatusNotFound {
		t.Fatalf("Expected 404 for non-owner update, got %d", status)
	}

	var updated postResponse
	status = doJSON(t, srv, http.MethodPut, path, aliceToken, map[string]any{"title": "renamed"}, &updated)
	if status != http.StatusOK {
		t.Fatalf("Expected 200 for owner update, got %d", status)
	}
	if updated.Title != "renamed" {
		t.Fatalf("Expected renamed title, got %q", updated.Title)
	}
	if updated.Content != created.Content {
		t.Fatalf("Expected content preserved when omitted, got %q", updated.Content)
	}
}

func TestUpdatePostTagSemantics(t *testing.T) {
	srv, _ := newTestServer(t)
	_, token := signupAndLogin(t, srv, "alice", "correct-pw")
	goTag := createTag(t, srv, token, "go")
	webTag := createTag(t, srv, token, "web")
	created := createPost(t, srv, token, "tagged", []uint{goTag})
	path := fmt.Sprintf("/posts/%d", created.ID)

	// Omitted tags keep the current set.
	var updated postResponse
	status := doJSON(t, srv, http.MethodPut, path, token, map[string]any{"title": "renamed"}, &updated)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].ID != goTag {
		t.Fatalf("Expected tag set untouched, got %+v", updated.Tags)
	}

	// A non-empty list replaces the set.
	updated = postResponse{}
	status = doJSON(t, srv, http.MethodPut, path, token, map[string]any{"tags": []uint{webTag}}, &updated)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].ID != webTag {
		t.Fatalf("Expected tag set [web], got %+v", updated.Tags)
	}

	// An explicit empty list clears the set.
	updated = postResponse{}
	status = doJSON(t, srv, http.MethodPut, path, token, map[string]any{"tags": []uint{}}, &updated)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if len(updated.Tags) != 0 {
		t.Fatalf("Expected empty tag set, got %+v", updated.Tags)
	}
}

func TestUpdatePostEmptyFieldRejected(t *testing.T) {
	srv, _ := newTestServer(t)
	_, token := signupAndLogin(t, srv, "alice", "correct-pw")
	created := createPost(t, srv, token, "hello", nil)
	path := fmt.Sprintf("/posts/%d", created.ID)

	status := doJSON(t, srv, http.MethodPut, path, token, map[string]any{"title": ""}, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("Expected 400 for empty title, got %d", status)
	}
}

func TestDeletePost(t *testing.T) {
	srv, db := newTestServer(t)
	_, aliceToken := signupAndLogin(t, srv, "alice", "correct-pw")
	_, bobToken := signupAndLogin(t, srv, "bob", "correct-pw")
	goTag := createTag(t, srv, aliceToken, "go")
	created := createPost(t, srv, aliceToken, "doomed", []uint{goTag})
	path := fmt.Sprintf("/posts/%d", created.ID)

	if status := doJSON(t, srv, http.MethodDelete, path, bobToken, nil, nil); status != http.StatusNotFound {
		t.Fatalf("Expected 404 for non-owner delete, got %d", status)
	}

	if status := doJSON(t, srv, http.MethodDelete, path, aliceToken, nil, nil); status != http.StatusNoContent {
		t.Fatalf("Expected 204 for owner delete, got %d", status)
	}

	if status := doJSON(t, srv, http.MethodGet, path, "", nil, nil); status != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", status)
	}

	var joinRows int64
	if err := db.Table("post_tag").Count(&joinRows).Error; err != nil {
		t.Fatalf("Failed to count join rows: %v", err)
	}
	if joinRows != 0 {
		t.Fatalf("Expected no orphaned join rows, got %d", joinRows)
	}
}
