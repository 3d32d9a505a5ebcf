package notifications

import (
	"context"
	"testing"

	"eventwall/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_PushAndUnread(t *testing.T) {
	t.Parallel()
	c := NewCenter(nil)
	ctx := context.Background()

	first := c.Push(ctx, models.NotificationLike, "Someone liked Sarah Chen's post")
	second := c.Push(ctx, models.NotificationLike, "Someone liked Tech Team Alpha's post")

	assert.Equal(t, 2, c.Unread())

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID, "newest first")
	assert.Equal(t, first.ID, entries[1].ID)
	assert.False(t, entries[0].Read)
}

func TestCenter_MarkAllRead(t *testing.T) {
	t.Parallel()
	c := NewCenter(nil)
	ctx := context.Background()

	c.Push(ctx, models.NotificationLike, "one")
	c.Push(ctx, models.NotificationLike, "two")
	c.MarkAllRead()

	assert.Equal(t, 0, c.Unread())
	for _, e := range c.Entries() {
		assert.True(t, e.Read)
	}

	// entries are retained; nothing is deleted
	assert.Len(t, c.Entries(), 2)
}

func TestCenter_EntriesAreCopies(t *testing.T) {
	t.Parallel()
	c := NewCenter(nil)
	c.Push(context.Background(), models.NotificationLike, "one")

	entries := c.Entries()
	entries[0].Read = true
	entries[0].Message = "tampered"

	fresh := c.Entries()
	assert.False(t, fresh[0].Read)
	assert.Equal(t, "one", fresh[0].Message)
	assert.Equal(t, 1, c.Unread())
}
