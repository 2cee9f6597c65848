package reddit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulachik/postline/internal/platform"
)

func TestClient_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("text post", func(t *testing.T) {
		fake := newFakeReddit(t)
		client := fake.client()

		id, err := client.Submit(ctx, "test", "Hello", "Hi there", platform.KindText)
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		fake.mu.Lock()
		defer fake.mu.Unlock()
		assert.Equal(t, "Hi there", fake.posts[id].body)
	})

	t.Run("link post", func(t *testing.T) {
		fake := newFakeReddit(t)
		client := fake.client()

		id, err := client.Submit(ctx, "test", "A link", "https://example.com", platform.KindLink)
		require.NoError(t, err)

		fake.mu.Lock()
		defer fake.mu.Unlock()
		assert.Equal(t, "https://example.com", fake.posts[id].url)
	})

	t.Run("remote validation error", func(t *testing.T) {
		fake := newFakeReddit(t)
		client := fake.client()

		_, err := client.Submit(ctx, "", "title", "body", platform.KindText)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SUBREDDIT_REQUIRED")
	})
}

func TestClient_Fetch(t *testing.T) {
	ctx := context.Background()
	fake := newFakeReddit(t)
	client := fake.client()

	t.Run("existing post", func(t *testing.T) {
		id, err := client.Submit(ctx, "golang", "Hello", "Hi there", platform.KindText)
		require.NoError(t, err)

		post, err := client.Fetch(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, id, post.ID)
		assert.Equal(t, "Hello", post.Title)
		assert.Equal(t, "Hi there", post.Body)
		assert.Equal(t, "golang", post.Subreddit)
		assert.Equal(t, "testuser", post.Author)
		assert.WithinDuration(t, time.Now(), post.CreatedAt, time.Minute)
	})

	t.Run("nonexistent post", func(t *testing.T) {
		_, err := client.Fetch(ctx, "doesnotexist")
		assert.ErrorIs(t, err, platform.ErrNotFound)
	})

	t.Run("deleted post tombstone", func(t *testing.T) {
		// Reddit keeps serving deleted submissions from /api/info as
		// tombstone rows; those must read as not found, not as posts.
		fake.mu.Lock()
		fake.posts["gone1"] = &fakePost{
			id: "gone1", title: "Hello", author: "testuser", removed: true,
		}
		fake.mu.Unlock()

		post, err := client.Fetch(ctx, "gone1")
		assert.ErrorIs(t, err, platform.ErrNotFound)
		assert.Nil(t, post)
	})

	t.Run("deleted author sentinel alone", func(t *testing.T) {
		fake.mu.Lock()
		fake.posts["gone2"] = &fakePost{
			id: "gone2", title: "Hello", author: "[deleted]",
		}
		fake.mu.Unlock()

		_, err := client.Fetch(ctx, "gone2")
		assert.ErrorIs(t, err, platform.ErrNotFound)
	})
}

func TestClient_Edit(t *testing.T) {
	ctx := context.Background()
	fake := newFakeReddit(t)
	client := fake.client()

	t.Run("own post", func(t *testing.T) {
		id, err := client.Submit(ctx, "test", "Hello", "original", platform.KindText)
		require.NoError(t, err)

		require.NoError(t, client.Edit(ctx, id, "edited"))

		post, err := client.Fetch(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "edited", post.Body)
	})

	t.Run("foreign post", func(t *testing.T) {
		fake.mu.Lock()
		fake.posts["foreign1"] = &fakePost{
			id: "foreign1", title: "not ours", author: "someoneelse",
		}
		fake.mu.Unlock()

		err := client.Edit(ctx, "foreign1", "edited")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NOT_AUTHOR")
	})

	t.Run("missing post", func(t *testing.T) {
		assert.Error(t, client.Edit(ctx, "doesnotexist", "edited"))
	})
}

func TestClient_Remove(t *testing.T) {
	ctx := context.Background()
	fake := newFakeReddit(t)
	client := fake.client()

	t.Run("own post", func(t *testing.T) {
		id, err := client.Submit(ctx, "test", "Hello", "body", platform.KindText)
		require.NoError(t, err)

		require.NoError(t, client.Remove(ctx, id))

		_, err = client.Fetch(ctx, id)
		assert.ErrorIs(t, err, platform.ErrNotFound)
	})

	t.Run("foreign post", func(t *testing.T) {
		fake.mu.Lock()
		fake.posts["foreign2"] = &fakePost{
			id: "foreign2", title: "not ours", author: "someoneelse",
		}
		fake.mu.Unlock()

		assert.Error(t, client.Remove(ctx, "foreign2"))
	})
}

func TestClient_Recent(t *testing.T) {
	ctx := context.Background()
	fake := newFakeReddit(t)
	client := fake.client()

	// Seed posts with distinct timestamps so ordering is deterministic.
	fake.mu.Lock()
	base := time.Now().Unix()
	for i, title := range []string{"oldest", "middle", "newest"} {
		id := "seed" + string(rune('a'+i))
		fake.posts[id] = &fakePost{
			id:      id,
			title:   title,
			author:  "testuser",
			created: base + int64(i),
		}
	}
	// A post by someone else should never show up.
	fake.posts["other"] = &fakePost{
		id: "other", title: "not ours", author: "someoneelse", created: base + 100,
	}
	fake.mu.Unlock()

	t.Run("newest first", func(t *testing.T) {
		refs, err := client.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, refs, 3)

		assert.Equal(t, "newest", refs[0].Title)
		assert.Equal(t, "middle", refs[1].Title)
		assert.Equal(t, "oldest", refs[2].Title)
	})

	t.Run("limit respected", func(t *testing.T) {
		refs, err := client.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "newest", refs[0].Title)
	})
}

// TestClient_PostLifecycle walks a post through create, read, update,
// and delete against the fake server.
func TestClient_PostLifecycle(t *testing.T) {
	ctx := context.Background()
	fake := newFakeReddit(t)
	client := fake.client()

	id, err := client.Submit(ctx, "test", "Hello", "Hi there", platform.KindText)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	post, err := client.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "Hi there", post.Body)

	require.NoError(t, client.Edit(ctx, id, "Edited"))

	post, err = client.Fetch(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Edited", post.Body)

	require.NoError(t, client.Remove(ctx, id))

	_, err = client.Fetch(ctx, id)
	assert.ErrorIs(t, err, platform.ErrNotFound)
}
