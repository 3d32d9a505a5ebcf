package models

import "time"

// Post type discriminators. The set is closed: every post is exactly one
// of text, image, or poll.
const (
	PostTypeText  = "text"
	PostTypeImage = "image"
	PostTypePoll  = "poll"
)

// Author identifies who a post or comment is attributed to on the wall.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// PollOption is a single answer in a poll post.
type PollOption struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Poll carries the poll-specific state of a poll post. VotedOption is
// the option the current session voted for; nil means not yet voted.
// Vote-recorded status is kept explicit rather than inferred from counts.
type Poll struct {
	Question    string       `json:"question"`
	Options     []PollOption `json:"options"`
	TotalVotes  int          `json:"total_votes"`
	VotedOption *int         `json:"voted_option,omitempty"`
}

// Post represents a post on the event wall.
type Post struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Poll      *Poll     `json:"poll,omitempty"`
	Likes     int       `json:"likes"`
	Liked     bool      `json:"liked"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// Option returns the poll option with the given id, or nil if the post
// is not a poll or the id is unknown.
func (p *Post) Option(optionID int) *PollOption {
	if p.Poll == nil {
		return nil
	}
	for i := range p.Poll.Options {
		if p.Poll.Options[i].ID == optionID {
			return &p.Poll.Options[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the post.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Comments != nil {
		cp.Comments = append([]Comment(nil), p.Comments...)
	}
	if p.Poll != nil {
		poll := *p.Poll
		poll.Options = append([]PollOption(nil), p.Poll.Options...)
		if p.Poll.VotedOption != nil {
			voted := *p.Poll.VotedOption
			poll.VotedOption = &voted
		}
		cp.Poll = &poll
	}
	return &cp
}
