package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          int64      `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Published reports whether the post is visible to everyone. A nil
// PublishedAt means the post is still a draft.
func (p *Post) Published() bool {
	return p.PublishedAt != nil
}
