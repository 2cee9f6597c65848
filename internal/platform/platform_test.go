package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Run("valid kinds", func(t *testing.T) {
		for _, s := range []string{"text", "link", "image"} {
			kind, err := ParseKind(s)
			require.NoError(t, err)
			assert.Equal(t, Kind(s), kind)
		}
	})

	t.Run("invalid kinds", func(t *testing.T) {
		for _, s := range []string{"", "video", "TEXT", "selftext"} {
			_, err := ParseKind(s)
			assert.Error(t, err, "kind %q should be rejected", s)
		}
	})
}

func TestStub(t *testing.T) {
	ctx := context.Background()
	stub := NewStub("twitter")

	assert.Equal(t, "twitter", stub.Name())

	_, err := stub.Submit(ctx, "target", "title", "content", KindText)
	assert.Error(t, err)

	_, err = stub.Fetch(ctx, "abc123")
	assert.Error(t, err)

	assert.Error(t, stub.Edit(ctx, "abc123", "body"))
	assert.Error(t, stub.Remove(ctx, "abc123"))

	_, err = stub.Recent(ctx, 10)
	assert.Error(t, err)
}
