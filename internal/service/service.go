package service

import (
	"context"

	"github.com/BloggingApp/content-service/internal/dto"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/BloggingApp/content-service/internal/pagination"
	"github.com/BloggingApp/content-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, id int64, caller model.Identity) (*model.Post, error)
	FindAll(ctx context.Context, caller model.Identity, page int, limit int) (pagination.Page[*model.Post], error)
	FindAuthorPosts(ctx context.Context, authorID uuid.UUID, page int, limit int) (pagination.Page[*model.Post], error)
	Edit(ctx context.Context, id int64, caller model.Identity, input dto.EditPostRequest) (*model.Post, error)
	Delete(ctx context.Context, id int64, caller model.Identity) error
	Publish(ctx context.Context, id int64, caller model.Identity) (*model.Post, error)
	Unpublish(ctx context.Context, id int64, caller model.Identity) (*model.Post, error)
}

type Comment interface {
	Create(ctx context.Context, postID int64, caller model.Identity, content string) (*model.Comment, error)
	CreateReply(ctx context.Context, parentID int64, caller model.Identity, content string) (*model.Comment, error)
	FindWithReplies(ctx context.Context, id int64) (*model.CommentThread, error)
	FindPostComments(ctx context.Context, postID int64, page int, limit int) (pagination.Page[*model.Comment], error)
	Delete(ctx context.Context, id int64, caller model.Identity) error
}

type Service struct {
	Post
	Comment
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Post:    newPostService(logger, repo),
		Comment: newCommentService(logger, repo),
	}
}
