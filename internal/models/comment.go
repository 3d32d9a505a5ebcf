package models

import "time"

// Comment represents a comment on a post. Comments are immutable once
// created and ordered by creation time within their post.
type Comment struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
