package platform

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a post does not exist on the remote
// platform (nonexistent ID, or deleted).
var ErrNotFound = errors.New("post not found")

// Kind is the post variant, determining which submission call is used.
type Kind string

const (
	KindText  Kind = "text"
	KindLink  Kind = "link"
	KindImage Kind = "image"
)

// ParseKind validates a user-supplied kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindText, KindLink, KindImage:
		return Kind(s), nil
	}
	return "", fmt.Errorf("invalid post kind %q (must be 'text', 'link', or 'image')", s)
}

// Post is a remote-owned submission. The local system only holds
// transient copies fetched from the platform.
type Post struct {
	ID           string
	Title        string
	Body         string
	Score        int
	URL          string
	Author       string
	Subreddit    string
	CommentCount int
	CreatedAt    time.Time
}

// PostRef is a lightweight (title, id) reference to a post, as
// returned by recent-post listings.
type PostRef struct {
	ID    string
	Title string
}

// Platform is the interface for managing posts on a social media
// platform. Implementations return errors as-is; collapsing them into
// the uniform no-result contract is the manager's job.
type Platform interface {
	// Name returns the name of the platform.
	Name() string

	// Submit creates a post and returns its platform-assigned ID.
	// For text posts content is the body, for link posts the URL,
	// for image posts a local file path.
	Submit(ctx context.Context, target, title, content string, kind Kind) (string, error)

	// Fetch retrieves the current state of a post by ID. Returns
	// ErrNotFound if the post does not exist.
	Fetch(ctx context.Context, postID string) (*Post, error)

	// Edit replaces the body of an existing post.
	Edit(ctx context.Context, postID, body string) error

	// Remove deletes a post.
	Remove(ctx context.Context, postID string) error

	// Recent lists up to limit of the authenticated account's own
	// most recent posts, newest first.
	Recent(ctx context.Context, limit int) ([]PostRef, error)
}
