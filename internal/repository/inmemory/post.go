package inmemory

import (
	"context"
	"time"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/google/uuid"
)

type PostStore struct {
	s *Store
}

func (r *PostStore) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextPostID++
	post.ID = r.s.nextPostID
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.PublishedAt != nil {
		publishedAt := now
		post.PublishedAt = &publishedAt
	}

	stored := post
	r.s.posts[post.ID] = &stored
	return &post, nil
}

func (r *PostStore) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return nil, apperror.NotFound("post not found")
	}
	copied := *post
	return &copied, nil
}

func (r *PostStore) FindAll(ctx context.Context, publishedOnly bool, limit int, offset int) ([]*model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.s.sortedPosts(func(p *model.Post) bool {
		return !publishedOnly || p.Published()
	})
	return pageOf(all, limit, offset), nil
}

func (r *PostStore) Count(ctx context.Context, publishedOnly bool) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, p := range r.s.posts {
		if !publishedOnly || p.Published() {
			count++
		}
	}
	return count, nil
}

func (r *PostStore) FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.s.sortedPosts(func(p *model.Post) bool {
		return p.AuthorID == authorID
	})
	return pageOf(all, limit, offset), nil
}

func (r *PostStore) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, p := range r.s.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (r *PostStore) Update(ctx context.Context, post *model.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.posts[post.ID]
	if !ok {
		return apperror.NotFound("post not found")
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.PublishedAt = post.PublishedAt
	stored.UpdatedAt = time.Now().UTC()
	post.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *PostStore) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return apperror.NotFound("post not found")
	}
	for commentID, comment := range r.s.comments {
		if comment.PostID == id {
			delete(r.s.comments, commentID)
			delete(r.s.repliesByComment, commentID)
		}
	}
	delete(r.s.commentsByPost, id)
	delete(r.s.posts, id)
	return nil
}
