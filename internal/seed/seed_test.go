package seed

import (
	"testing"

	"eventwall/internal/feed"
	"eventwall/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoFeed(t *testing.T) {
	t.Parallel()
	store := feed.NewStore()
	DemoFeed(store)

	posts := store.Posts()
	require.Len(t, posts, 3)

	// newest first: text, image, poll
	assert.Equal(t, models.PostTypeText, posts[0].Type)
	assert.Equal(t, models.PostTypeImage, posts[1].Type)
	assert.Equal(t, models.PostTypePoll, posts[2].Type)

	assert.True(t, posts[0].CreatedAt.After(posts[1].CreatedAt))
	assert.True(t, posts[1].CreatedAt.After(posts[2].CreatedAt))

	poll := posts[2].Poll
	require.NotNil(t, poll)
	sum := 0
	for _, o := range poll.Options {
		sum += o.Votes
	}
	assert.Equal(t, poll.TotalVotes, sum, "seeded poll honors the vote invariant")
	require.NotNil(t, poll.VotedOption)
	assert.Equal(t, 2, *poll.VotedOption)

	// a seeded poll with a recorded vote absorbs further votes silently
	voted, err := store.CastVote(posts[2].ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 50, voted.Poll.TotalVotes)
	assert.Equal(t, 2, *voted.Poll.VotedOption)
}

func TestFactory_FillFeed(t *testing.T) {
	t.Parallel()
	store := feed.NewStore()
	f := NewFactory(42)
	f.FillFeed(store, 10)

	posts := store.Posts()
	require.Len(t, posts, 10)

	for _, p := range posts {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Author.Name)
		switch p.Type {
		case models.PostTypeText:
			assert.NotEmpty(t, p.Content)
		case models.PostTypeImage:
			assert.NotEmpty(t, p.ImageURL)
		case models.PostTypePoll:
			require.NotNil(t, p.Poll)
			assert.GreaterOrEqual(t, len(p.Poll.Options), 2)
			sum := 0
			for _, o := range p.Poll.Options {
				sum += o.Votes
			}
			assert.Equal(t, p.Poll.TotalVotes, sum)
		default:
			t.Fatalf("unexpected post type %q", p.Type)
		}
	}
}
