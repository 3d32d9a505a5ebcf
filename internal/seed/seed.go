// Package seed provides helpers to create demo feed data. These helpers
// are intended for development and demos only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"eventwall/internal/feed"
	"eventwall/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// DemoFeed seeds the store with the reference wall: a fresh text post
// with a comment, a liked image post, and a poll already carrying votes
// including the current session's.
func DemoFeed(store *feed.Store) {
	now := time.Now()
	votedOption := 2

	posts := []*models.Post{
		{
			ID:   uuid.NewString(),
			Type: models.PostTypeText,
			Author: models.Author{
				Name:   "Sarah Chen",
				Avatar: "https://i.pravatar.cc/100?u=sarah.chen",
			},
			Content: "Just submitted our project! Working on an AI-powered sustainability tracker. Super excited to present tomorrow!",
			Likes:   12,
			Comments: []models.Comment{
				{
					ID: uuid.NewString(),
					Author: models.Author{
						Name:   "Mike Johnson",
						Avatar: "https://i.pravatar.cc/100?u=mike.johnson",
					},
					Content:   "Awesome work Sarah! Can't wait to see the demo",
					CreatedAt: now.Add(-10 * time.Minute),
				},
			},
			CreatedAt: now.Add(-15 * time.Minute),
		},
		{
			ID:   uuid.NewString(),
			Type: models.PostTypeImage,
			Author: models.Author{
				Name:   "Tech Team Alpha",
				Avatar: "https://i.pravatar.cc/100?u=team.alpha",
			},
			Content:   "Our workspace is getting intense! Coffee count: 5 and climbing",
			ImageURL:  "https://picsum.photos/seed/hackathon/1080/720",
			Likes:     8,
			Liked:     true,
			CreatedAt: now.Add(-45 * time.Minute),
		},
		{
			ID:   uuid.NewString(),
			Type: models.PostTypePoll,
			Author: models.Author{
				Name:   "Event Organizers",
				Avatar: "https://i.pravatar.cc/100?u=organizers",
			},
			Poll: &models.Poll{
				Question: "What's your biggest challenge so far?",
				Options: []models.PollOption{
					{ID: 0, Text: "Technical implementation", Votes: 15},
					{ID: 1, Text: "Team coordination", Votes: 8},
					{ID: 2, Text: "Time management", Votes: 23},
					{ID: 3, Text: "Scope creep", Votes: 4},
				},
				TotalVotes:  50,
				VotedOption: &votedOption,
			},
			Likes: 5,
			Comments: []models.Comment{
				{
					ID: uuid.NewString(),
					Author: models.Author{
						Name:   "Alex Rivera",
						Avatar: "https://i.pravatar.cc/100?u=alex.rivera",
					},
					Content:   "Time management is definitely the hardest part!",
					CreatedAt: now.Add(-80 * time.Minute),
				},
			},
			CreatedAt: now.Add(-90 * time.Minute),
		},
	}

	store.Seed(posts...)
}

// Factory builds randomized wall posts. It is a thin helper used to pad
// demo feeds.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a Factory seeded for repeatable content.
func NewFactory(seedVal int64) *Factory {
	gofakeit.Seed(seedVal)
	return &Factory{rng: rand.New(rand.NewSource(seedVal))}
}

// Post builds a random post of a random type with a realistic
// created-at spread over the past day.
func (f *Factory) Post() *models.Post {
	author := models.Author{
		Name:   gofakeit.Name(),
		Avatar: fmt.Sprintf("https://i.pravatar.cc/100?u=%s", gofakeit.Username()),
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		Author:    author,
		Likes:     f.rng.Intn(30),
		CreatedAt: time.Now().Add(-time.Duration(f.rng.Intn(24*60)) * time.Minute),
	}

	switch f.rng.Intn(3) {
	case 0:
		post.Type = models.PostTypeText
		post.Content = gofakeit.Sentence(12)
	case 1:
		post.Type = models.PostTypeImage
		post.Content = gofakeit.Sentence(6)
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	default:
		post.Type = models.PostTypePoll
		optionCount := 2 + f.rng.Intn(3)
		options := make([]models.PollOption, optionCount)
		total := 0
		for i := range options {
			votes := f.rng.Intn(20)
			options[i] = models.PollOption{ID: i, Text: gofakeit.Sentence(3), Votes: votes}
			total += votes
		}
		post.Poll = &models.Poll{
			Question:   gofakeit.Question(),
			Options:    options,
			TotalVotes: total,
		}
	}

	for i := 0; i < f.rng.Intn(3); i++ {
		post.Comments = append(post.Comments, models.Comment{
			ID: uuid.NewString(),
			Author: models.Author{
				Name:   gofakeit.Name(),
				Avatar: fmt.Sprintf("https://i.pravatar.cc/100?u=%s", gofakeit.Username()),
			},
			Content:   gofakeit.Sentence(8),
			CreatedAt: post.CreatedAt.Add(time.Duration(1+f.rng.Intn(30)) * time.Minute),
		})
	}

	return post
}

// FillFeed seeds the store with n factory-built posts.
func (f *Factory) FillFeed(store *feed.Store, n int) {
	posts := make([]*models.Post, n)
	for i := range posts {
		posts[i] = f.Post()
	}
	store.Seed(posts...)
}
