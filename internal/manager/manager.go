// Package manager exposes post CRUD operations with a uniform outcome
// contract: every remote failure is logged and collapsed into a typed
// no-result value. No error ever crosses this boundary, so callers can
// tell that an operation failed but never why.
package manager

import (
	"context"
	"log/slog"

	"github.com/abdulachik/postline/internal/platform"
)

// Manager wraps a platform behind the uniform outcome contract.
type Manager struct {
	platform platform.Platform
	logger   *slog.Logger
}

// New creates a manager for the given platform.
func New(p platform.Platform, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		platform: p,
		logger:   logger.With("platform", p.Name()),
	}
}

// Platform returns the name of the underlying platform.
func (m *Manager) Platform() string {
	return m.platform.Name()
}

// CreatePost submits a new post and returns its ID. The kind string
// is validated locally; an invalid kind never reaches the platform.
// Returns ("", false) on any failure.
func (m *Manager) CreatePost(ctx context.Context, target, title, content, kind string) (string, bool) {
	k, err := platform.ParseKind(kind)
	if err != nil {
		m.logger.Error("error creating post", "error", err)
		return "", false
	}

	id, err := m.platform.Submit(ctx, target, title, content, k)
	if err != nil {
		m.logger.Error("error creating post", "target", target, "error", err)
		return "", false
	}

	m.logger.Info("created post", "id", id)
	return id, true
}

// ReadPost fetches the current state of a post. Returns nil on any
// failure, including a nonexistent or deleted post.
func (m *Manager) ReadPost(ctx context.Context, postID string) *platform.Post {
	post, err := m.platform.Fetch(ctx, postID)
	if err != nil {
		m.logger.Error("error reading post", "id", postID, "error", err)
		return nil
	}
	return post
}

// UpdatePost replaces the body of an existing post. Returns false if
// the post does not exist, is not owned by the account, or the remote
// call fails.
func (m *Manager) UpdatePost(ctx context.Context, postID, newContent string) bool {
	if err := m.platform.Edit(ctx, postID, newContent); err != nil {
		m.logger.Error("error updating post", "id", postID, "error", err)
		return false
	}

	m.logger.Info("updated post", "id", postID)
	return true
}

// DeletePost removes a post, with the same failure collapsing as
// UpdatePost.
func (m *Manager) DeletePost(ctx context.Context, postID string) bool {
	if err := m.platform.Remove(ctx, postID); err != nil {
		m.logger.Error("error deleting post", "id", postID, "error", err)
		return false
	}

	m.logger.Info("deleted post", "id", postID)
	return true
}

// RecentPosts lists up to limit of the account's own most recent
// posts, newest first. Returns an empty slice on any failure.
func (m *Manager) RecentPosts(ctx context.Context, limit int) []platform.PostRef {
	refs, err := m.platform.Recent(ctx, limit)
	if err != nil {
		m.logger.Error("error fetching recent posts", "error", err)
		return []platform.PostRef{}
	}
	if refs == nil {
		refs = []platform.PostRef{}
	}
	if limit >= 0 && len(refs) > limit {
		refs = refs[:limit]
	}
	return refs
}
