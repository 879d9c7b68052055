package repository

import (
	"context"

	"github.com/BloggingApp/content-service/internal/model"
	"github.com/BloggingApp/content-service/internal/repository/inmemory"
	"github.com/BloggingApp/content-service/internal/repository/postgres"
	"github.com/BloggingApp/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	// FindAll returns posts ordered by created_at descending. With
	// publishedOnly set, drafts are excluded.
	FindAll(ctx context.Context, publishedOnly bool, limit int, offset int) ([]*model.Post, error)
	Count(ctx context.Context, publishedOnly bool) (int, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	// Update persists title, content, published_at and updated_at.
	Update(ctx context.Context, post *model.Post) error
	// Delete removes the post and every comment attached to it in one
	// atomic operation.
	Delete(ctx context.Context, id int64) error
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	// FindPostComments returns top-level comments of a post, newest
	// first.
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.Comment, error)
	CountPostComments(ctx context.Context, postID int64) (int, error)
	// FindReplies returns the direct replies of a comment, oldest
	// first.
	FindReplies(ctx context.Context, commentID int64) ([]*model.Comment, error)
	// Delete removes the comment together with its direct replies.
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	Post    Post
	Comment Comment
	Redis   *redisrepo.Repository // nil when caching is disabled
}

func NewPostgres(db *pgxpool.Pool, rdb *redis.Client) *Repository {
	pg := postgres.New(db)
	return &Repository{
		Post:    pg.Post,
		Comment: pg.Comment,
		Redis:   redisrepo.New(rdb),
	}
}

// NewInMemory backs the repository with the process-local store; used
// in dev mode and by the service tests.
func NewInMemory() *Repository {
	store := inmemory.New()
	return &Repository{
		Post:    store.Posts(),
		Comment: store.Comments(),
	}
}
