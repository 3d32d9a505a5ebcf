package feed

import (
	"fmt"
	"testing"

	"eventwall/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPoll(t *testing.T, s *Store) *models.Post {
	t.Helper()
	post, err := s.CreatePost(CreatePostInput{
		Author:       models.Author{Name: "Event Organizers"},
		Type:         models.PostTypePoll,
		PollQuestion: "What's your biggest challenge so far?",
		PollOptions:  []string{"Technical implementation", "Team coordination"},
	})
	require.NoError(t, err)
	return post
}

func TestCreatePost_Ordering(t *testing.T) {
	t.Parallel()
	s := NewStore()

	first, err := s.CreatePost(CreatePostInput{
		Author:  models.Author{Name: "Sarah Chen"},
		Type:    models.PostTypeText,
		Content: "first",
	})
	require.NoError(t, err)
	second, err := s.CreatePost(CreatePostInput{
		Author:  models.Author{Name: "Mike Johnson"},
		Type:    models.PostTypeText,
		Content: "second",
	})
	require.NoError(t, err)

	posts := s.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestCreatePost_VariantValidation(t *testing.T) {
	t.Parallel()
	s := NewStore()

	tests := []struct {
		name string
		in   CreatePostInput
	}{
		{
			name: "unknown type",
			in:   CreatePostInput{Type: "video", Content: "x"},
		},
		{
			name: "image without url",
			in:   CreatePostInput{Type: models.PostTypeImage, Content: "x"},
		},
		{
			name: "poll without question",
			in:   CreatePostInput{Type: models.PostTypePoll, PollOptions: []string{"a", "b"}},
		},
		{
			name: "poll with one option",
			in:   CreatePostInput{Type: models.PostTypePoll, PollQuestion: "q", PollOptions: []string{"a"}},
		},
		{
			name: "poll with blank option",
			in:   CreatePostInput{Type: models.PostTypePoll, PollQuestion: "q", PollOptions: []string{"a", "  "}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreatePost(tt.in)
			require.Error(t, err)
			assert.True(t, models.IsCode(err, models.CodeValidation))
		})
	}
	assert.Equal(t, 0, s.Len())
}

func TestToggleLike_Involution(t *testing.T) {
	t.Parallel()
	s := NewStore()
	post, err := s.CreatePost(CreatePostInput{
		Author:  models.Author{Name: "Sarah Chen"},
		Type:    models.PostTypeText,
		Content: "hello wall",
	})
	require.NoError(t, err)

	liked, err := s.ToggleLike(post.ID)
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, post.Likes+1, liked.Likes)

	unliked, err := s.ToggleLike(post.ID)
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, post.Likes, unliked.Likes)
}

func TestToggleLike_UnknownPost(t *testing.T) {
	t.Parallel()
	s := NewStore()
	seedPoll(t, s)
	before := s.Posts()

	_, err := s.ToggleLike("nope")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
	assert.Equal(t, before, s.Posts())
}

func TestAddComment(t *testing.T) {
	t.Parallel()
	s := NewStore()
	post, err := s.CreatePost(CreatePostInput{
		Author:  models.Author{Name: "Sarah Chen"},
		Type:    models.PostTypeText,
		Content: "hello wall",
	})
	require.NoError(t, err)

	updated, err := s.AddComment(post.ID, models.Author{Name: "Mike Johnson"}, "Nice!")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "Nice!", updated.Comments[0].Content)

	// earlier comments keep their content and order
	updated, err = s.AddComment(post.ID, models.Author{Name: "Alex Rivera"}, "Agreed")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 2)
	assert.Equal(t, "Nice!", updated.Comments[0].Content)
	assert.Equal(t, "Agreed", updated.Comments[1].Content)
}

func TestAddComment_Validation(t *testing.T) {
	t.Parallel()
	s := NewStore()
	post, err := s.CreatePost(CreatePostInput{
		Author:  models.Author{Name: "Sarah Chen"},
		Type:    models.PostTypeText,
		Content: "hello wall",
	})
	require.NoError(t, err)

	_, err = s.AddComment(post.ID, models.Author{Name: "Mike"}, "   ")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeValidation))

	_, err = s.AddComment("nope", models.Author{Name: "Mike"}, "hi")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestCastVote_Scenario(t *testing.T) {
	t.Parallel()
	s := NewStore()
	s.Seed(&models.Post{
		ID:     "poll-1",
		Type:   models.PostTypePoll,
		Author: models.Author{Name: "Event Organizers"},
		Poll: &models.Poll{
			Question: "Pick one",
			Options: []models.PollOption{
				{ID: 0, Text: "A", Votes: 15},
				{ID: 1, Text: "B", Votes: 8},
			},
			TotalVotes: 23,
		},
	})

	// first vote counts
	post, err := s.CastVote("poll-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 16, post.Poll.Options[0].Votes)
	assert.Equal(t, 8, post.Poll.Options[1].Votes)
	assert.Equal(t, 24, post.Poll.TotalVotes)
	require.NotNil(t, post.Poll.VotedOption)
	assert.Equal(t, 0, *post.Poll.VotedOption)

	// second vote by the same session is silently absorbed
	post, err = s.CastVote("poll-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 16, post.Poll.Options[0].Votes)
	assert.Equal(t, 8, post.Poll.Options[1].Votes)
	assert.Equal(t, 24, post.Poll.TotalVotes)
	require.NotNil(t, post.Poll.VotedOption)
	assert.Equal(t, 0, *post.Poll.VotedOption)
}

func TestCastVote_Invariant(t *testing.T) {
	t.Parallel()
	s := NewStore()
	post := seedPoll(t, s)

	for _, optionID := range []int{1, 0, 1, 1} {
		if _, err := s.CastVote(post.ID, optionID); err != nil {
			t.Fatalf("cast vote: %v", err)
		}
		current, err := s.Get(post.ID)
		require.NoError(t, err)
		sum := 0
		for _, o := range current.Poll.Options {
			sum += o.Votes
		}
		assert.Equal(t, current.Poll.TotalVotes, sum)
	}
}

func TestCastVote_Errors(t *testing.T) {
	t.Parallel()
	s := NewStore()
	poll := seedPoll(t, s)
	text, err := s.CreatePost(CreatePostInput{
		Author:  models.Author{Name: "Sarah Chen"},
		Type:    models.PostTypeText,
		Content: "not a poll",
	})
	require.NoError(t, err)

	_, err = s.CastVote("nope", 0)
	assert.True(t, models.IsCode(err, models.CodeNotFound))

	_, err = s.CastVote(text.ID, 0)
	assert.True(t, models.IsCode(err, models.CodeNotFound))

	_, err = s.CastVote(poll.ID, 99)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestBoost(t *testing.T) {
	t.Parallel()
	s := NewStore()
	post, err := s.CreatePost(CreatePostInput{
		Author:  models.Author{Name: "Sarah Chen"},
		Type:    models.PostTypeText,
		Content: "hello wall",
	})
	require.NoError(t, err)

	boosted, err := s.Boost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Likes+1, boosted.Likes)
	assert.False(t, boosted.Liked, "synthetic likes must not touch the user's liked flag")

	_, err = s.Boost("nope")
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestPosts_ReturnsCopies(t *testing.T) {
	t.Parallel()
	s := NewStore()
	post := seedPoll(t, s)

	snapshot := s.Posts()
	snapshot[0].Likes = 1000
	snapshot[0].Poll.Options[0].Votes = 1000

	current, err := s.Get(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Likes)
	assert.Equal(t, 0, current.Poll.Options[0].Votes)
}

func TestPostIDs(t *testing.T) {
	t.Parallel()
	s := NewStore()
	for i := 0; i < 3; i++ {
		_, err := s.CreatePost(CreatePostInput{
			Author:  models.Author{Name: "Sarah Chen"},
			Type:    models.PostTypeText,
			Content: fmt.Sprintf("post %d", i),
		})
		require.NoError(t, err)
	}
	assert.Len(t, s.PostIDs(), 3)
}
