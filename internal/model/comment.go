package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        int64     `json:"id"`
	ParentID  *int64    `json:"parent_id"`
	PostID    int64     `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reply reports whether the comment is attached to another comment
// rather than directly to a post. Replies may not be replied to.
func (c *Comment) Reply() bool {
	return c.ParentID != nil
}

type CommentThread struct {
	Comment Comment    `json:"comment"`
	Replies []*Comment `json:"replies"`
}
