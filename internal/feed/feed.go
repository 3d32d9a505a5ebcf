// Package feed owns the ordered post collection of the event wall and
// every mutation that can touch it.
package feed

import (
	"strings"
	"sync"
	"time"

	"eventwall/internal/models"
	"eventwall/internal/observability"

	"github.com/google/uuid"
)

// CreatePostInput is the payload for creating a post. Variant-specific
// fields are only read for the matching post type.
type CreatePostInput struct {
	Author       models.Author
	Type         string
	Content      string
	ImageURL     string
	PollQuestion string
	PollOptions  []string
}

// Store holds the wall's posts, newest first. All mutations go through
// the store; callers only ever see copies of the posts.
type Store struct {
	mu    sync.Mutex
	posts []*models.Post

	now    func() time.Time
	newID  func() string
	logger *observability.StoreLogger
}

// NewStore creates an empty feed store.
func NewStore() *Store {
	return &Store{
		now:    time.Now,
		newID:  uuid.NewString,
		logger: observability.NewStoreLogger("feed"),
	}
}

// CreatePost prepends a new post to the feed and returns a copy of it.
// Only variant-required fields are validated; anything deeper is the
// caller's concern.
func (s *Store) CreatePost(in CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		ID:      s.newID(),
		Type:    in.Type,
		Author:  in.Author,
		Content: in.Content,
	}

	switch in.Type {
	case models.PostTypeText:
		// no extra fields
	case models.PostTypeImage:
		if strings.TrimSpace(in.ImageURL) == "" {
			return nil, models.NewValidationError("Image posts require an image URL")
		}
		post.ImageURL = in.ImageURL
	case models.PostTypePoll:
		if strings.TrimSpace(in.PollQuestion) == "" {
			return nil, models.NewValidationError("Poll posts require a question")
		}
		options := make([]models.PollOption, 0, len(in.PollOptions))
		for _, text := range in.PollOptions {
			if strings.TrimSpace(text) == "" {
				return nil, models.NewValidationError("Poll options must not be empty")
			}
			options = append(options, models.PollOption{ID: len(options), Text: text})
		}
		if len(options) < 2 {
			return nil, models.NewValidationError("Polls require at least two options")
		}
		post.Poll = &models.Poll{Question: in.PollQuestion, Options: options}
	default:
		return nil, models.NewValidationError("Invalid post type")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post.CreatedAt = s.now()
	s.posts = append([]*models.Post{post}, s.posts...)

	observability.FeedMutations.WithLabelValues("create_post").Inc()
	s.logger.LogMutation("create_post", map[string]interface{}{
		"post_id": post.ID,
		"type":    post.Type,
	})
	return post.Clone(), nil
}

// ToggleLike flips the current user's liked flag on the post and moves
// the like count by one in the matching direction. Applying it twice
// restores the original state.
func (s *Store) ToggleLike(postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.find(postID)
	if post == nil {
		return nil, models.NewNotFoundError("post", postID)
	}

	if post.Liked {
		post.Liked = false
		post.Likes--
	} else {
		post.Liked = true
		post.Likes++
	}

	observability.FeedMutations.WithLabelValues("toggle_like").Inc()
	return post.Clone(), nil
}

// AddComment appends a comment to the post and returns the updated post.
func (s *Store) AddComment(postID string, author models.Author, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.NewValidationError("Comment content must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.find(postID)
	if post == nil {
		return nil, models.NewNotFoundError("post", postID)
	}

	comment := models.Comment{
		ID:        s.newID(),
		Author:    author,
		Content:   content,
		CreatedAt: s.now(),
	}
	post.Comments = append(post.Comments, comment)

	observability.FeedMutations.WithLabelValues("add_comment").Inc()
	s.logger.LogMutation("add_comment", map[string]interface{}{
		"post_id":    postID,
		"comment_id": comment.ID,
	})
	return post.Clone(), nil
}

// CastVote records the current session's vote on a poll post. Voting is
// write-once per post: repeated attempts are silently absorbed and the
// unchanged post is returned.
func (s *Store) CastVote(postID string, optionID int) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.find(postID)
	if post == nil || post.Poll == nil {
		return nil, models.NewNotFoundError("poll post", postID)
	}

	if post.Poll.VotedOption != nil {
		return post.Clone(), nil
	}

	option := post.Option(optionID)
	if option == nil {
		return nil, models.NewNotFoundError("poll option", optionID)
	}

	option.Votes++
	post.Poll.TotalVotes++
	voted := optionID
	post.Poll.VotedOption = &voted

	observability.FeedMutations.WithLabelValues("cast_vote").Inc()
	s.logger.LogMutation("cast_vote", map[string]interface{}{
		"post_id":   postID,
		"option_id": optionID,
	})
	return post.Clone(), nil
}

// Boost applies a synthetic "someone else liked it" increment. It never
// touches the current user's liked flag.
func (s *Store) Boost(postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.find(postID)
	if post == nil {
		return nil, models.NewNotFoundError("post", postID)
	}

	post.Likes++

	observability.FeedMutations.WithLabelValues("boost").Inc()
	return post.Clone(), nil
}

// Get returns a copy of the post with the given id.
func (s *Store) Get(postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.find(postID)
	if post == nil {
		return nil, models.NewNotFoundError("post", postID)
	}
	return post.Clone(), nil
}

// Posts returns copies of all posts, newest first.
func (s *Store) Posts() []*models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

// PostIDs returns the ids of all posts, newest first.
func (s *Store) PostIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.posts))
	for i, p := range s.posts {
		ids[i] = p.ID
	}
	return ids
}

// Len returns the number of posts in the feed.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

// Seed installs pre-built posts at the end of the feed. It is intended
// for demo data and tests; posts are expected newest first.
func (s *Store) Seed(posts ...*models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range posts {
		s.posts = append(s.posts, p.Clone())
	}
}

// find returns the live post with the given id; callers must hold s.mu.
func (s *Store) find(postID string) *models.Post {
	for _, p := range s.posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}
