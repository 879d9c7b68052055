package postgres

import (
	"context"

	"github.com/BloggingApp/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindAll(ctx context.Context, publishedOnly bool, limit int, offset int) ([]*model.Post, error)
	Count(ctx context.Context, publishedOnly bool) (int, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id int64) error
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.Comment, error)
	CountPostComments(ctx context.Context, postID int64) (int, error)
	FindReplies(ctx context.Context, commentID int64) ([]*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresRepository struct {
	Post
	Comment
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:    newPostRepo(db),
		Comment: newCommentRepo(db),
	}
}
