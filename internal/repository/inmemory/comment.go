package inmemory

import (
	"context"
	"sort"
	"time"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/model"
)

type CommentStore struct {
	s *Store
}

func (r *CommentStore) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextCommentID++
	comment.ID = r.s.nextCommentID
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	stored := comment
	r.s.comments[comment.ID] = &stored
	if comment.ParentID == nil {
		r.s.commentsByPost[comment.PostID] = append(r.s.commentsByPost[comment.PostID], comment.ID)
	} else {
		r.s.repliesByComment[*comment.ParentID] = append(r.s.repliesByComment[*comment.ParentID], comment.ID)
	}
	return &comment, nil
}

func (r *CommentStore) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comment, ok := r.s.comments[id]
	if !ok {
		return nil, apperror.NotFound("comment not found")
	}
	copied := *comment
	return &copied, nil
}

func (r *CommentStore) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.commentsByPost[postID]
	comments := make([]*model.Comment, 0, len(ids))
	for _, id := range ids {
		copied := *r.s.comments[id]
		comments = append(comments, &copied)
	}
	// Ids are monotonic, so newest-first is descending id order.
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].ID > comments[j].ID
	})
	return pageOf(comments, limit, offset), nil
}

func (r *CommentStore) CountPostComments(ctx context.Context, postID int64) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.commentsByPost[postID]), nil
}

func (r *CommentStore) FindReplies(ctx context.Context, commentID int64) ([]*model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.repliesByComment[commentID]
	replies := make([]*model.Comment, 0, len(ids))
	for _, id := range ids {
		copied := *r.s.comments[id]
		replies = append(replies, &copied)
	}
	sort.Slice(replies, func(i, j int) bool {
		return replies[i].ID < replies[j].ID
	})
	return replies, nil
}

func (r *CommentStore) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comment, ok := r.s.comments[id]
	if !ok {
		return apperror.NotFound("comment not found")
	}

	for _, replyID := range r.s.repliesByComment[id] {
		delete(r.s.comments, replyID)
	}
	delete(r.s.repliesByComment, id)

	if comment.ParentID == nil {
		r.s.commentsByPost[comment.PostID] = removeID(r.s.commentsByPost[comment.PostID], id)
	} else {
		r.s.repliesByComment[*comment.ParentID] = removeID(r.s.repliesByComment[*comment.ParentID], id)
	}
	delete(r.s.comments, id)
	return nil
}
