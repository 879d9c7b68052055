package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/BloggingApp/content-service/internal/pagination"
	"github.com/BloggingApp/content-service/internal/policy"
	"github.com/BloggingApp/content-service/internal/repository"
	"go.uber.org/zap"
)

const maxCommentLen = 2000

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", apperror.Validation("comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return "", apperror.Validation("comment content is too long")
	}
	return content, nil
}

func (s *commentService) Create(ctx context.Context, postID int64, caller model.Identity, content string) (*model.Comment, error) {
	if !policy.CanComment(caller) {
		return nil, apperror.Forbidden("authentication required to comment")
	}

	content, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Post.FindByID(ctx, postID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	return s.create(ctx, model.Comment{
		PostID:   postID,
		AuthorID: caller.UserID,
		Content:  content,
	})
}

func (s *commentService) CreateReply(ctx context.Context, parentID int64, caller model.Identity, content string) (*model.Comment, error) {
	if !policy.CanComment(caller) {
		return nil, apperror.Forbidden("authentication required to comment")
	}

	content, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}

	parent, err := s.findByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.Reply() {
		return nil, apperror.Validation("cannot reply to a reply")
	}

	// The reply lives on the same post as its parent.
	return s.create(ctx, model.Comment{
		ParentID: &parent.ID,
		PostID:   parent.PostID,
		AuthorID: caller.UserID,
		Content:  content,
	})
}

func (s *commentService) FindWithReplies(ctx context.Context, id int64) (*model.CommentThread, error) {
	comment, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	replies, err := s.repo.Comment.FindReplies(ctx, id)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comment(%d) replies: %s", id, err.Error())
		return nil, ErrInternal
	}

	return &model.CommentThread{
		Comment: *comment,
		Replies: replies,
	}, nil
}

func (s *commentService) FindPostComments(ctx context.Context, postID int64, page int, limit int) (pagination.Page[*model.Comment], error) {
	params := pagination.Clamp(page, limit)

	if _, err := s.repo.Post.FindByID(ctx, postID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return pagination.Page[*model.Comment]{}, err
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", postID, err.Error())
		return pagination.Page[*model.Comment]{}, ErrInternal
	}

	comments, err := s.repo.Comment.FindPostComments(ctx, postID, params.Limit, params.Offset())
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments: %s", postID, err.Error())
		return pagination.Page[*model.Comment]{}, ErrInternal
	}

	total, err := s.repo.Comment.CountPostComments(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count post(%d) comments: %s", postID, err.Error())
		return pagination.Page[*model.Comment]{}, ErrInternal
	}

	return pagination.NewPage(comments, total, params), nil
}

func (s *commentService) Delete(ctx context.Context, id int64, caller model.Identity) error {
	comment, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanDeleteComment(caller, comment) {
		return apperror.Forbidden("you can only delete your own comments")
	}

	if err := s.repo.Comment.Delete(ctx, id); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		s.logger.Sugar().Errorf("failed to delete comment(%d): %s", id, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *commentService) create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	createdComment, err := s.repo.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) comment: %s", comment.AuthorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}

func (s *commentService) findByID(ctx context.Context, id int64) (*model.Comment, error) {
	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Sugar().Errorf("failed to find comment(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return comment, nil
}
