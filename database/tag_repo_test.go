package database

import (
	"testing"

	"github.com/openblogger/blog-backend/models"
)

func TestTagRepoFindByIDsDropsUnknown(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagRepo(db)

	go1 := addTag(t, tags, "go")
	web := addTag(t, tags, "web")

	resolved, err := tags.FindByIDs([]uint{go1.ID, web.ID, 9999})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("Expected 2 resolved tags, got %d", len(resolved))
	}

	resolved, err = tags.FindByIDs(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("Expected no tags for empty id set, got %d", len(resolved))
	}
}

func TestTagRepoUniqueName(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagRepo(db)

	addTag(t, tags, "go")
	dup := &models.Tag{Name: "go"}
	if err := tags.Add(dup); err == nil {
		t.Fatal("Expected unique violation for duplicate tag name, got nil")
	}
}

func TestTagRepoFindPosts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	posts := NewPostRepo(db)
	tags := NewTagRepo(db)

	alice := addUser(t, users, "alice")
	go1 := addTag(t, tags, "go")
	first := addPost(t, posts, alice, "first", *go1)
	second := addPost(t, posts, alice, "second", *go1)
	addPost(t, posts, alice, "untagged")

	tagged, err := tags.FindPosts(go1.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tagged) != 2 {
		t.Fatalf("Expected exactly the 2 tagged posts, got %d", len(tagged))
	}
	if tagged[0].ID != first.ID || tagged[1].ID != second.ID {
		t.Fatalf("Expected posts [%d %d], got [%d %d]", first.ID, second.ID, tagged[0].ID, tagged[1].ID)
	}

	// Soft-deleted posts drop out of the tag's listing.
	if err := posts.Delete(first); err != nil {
		t.Fatalf("Failed to delete post: %v", err)
	}
	tagged, err = tags.FindPosts(go1.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tagged) != 1 || tagged[0].ID != second.ID {
		t.Fatalf("Expected only the remaining post, got %+v", tagged)
	}

	// Unknown tag is reported as nil, not an empty list.
	tagged, err = tags.FindPosts(9999)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tagged != nil {
		t.Fatalf("Expected nil for unknown tag, got %+v", tagged)
	}
}

func TestTagRepoDeleteRemovesJoinRows(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	posts := NewPostRepo(db)
	tags := NewTagRepo(db)

	alice := addUser(t, users, "alice")
	go1 := addTag(t, tags, "go")
	addPost(t, posts, alice, "first", *go1)
	addPost(t, posts, alice, "second", *go1)

	if got := joinRowCount(t, db); got != 2 {
		t.Fatalf("Expected 2 join rows, got %d", got)
	}

	if err := tags.Delete(go1); err != nil {
		t.Fatalf("Failed to delete tag: %v", err)
	}

	if got := joinRowCount(t, db); got != 0 {
		t.Fatalf("Expected no join rows after tag delete, got %d", got)
	}

	found, err := tags.FindByID(go1.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if found != nil {
		t.Fatal("Expected soft-deleted tag to be excluded from FindByID")
	}
}
