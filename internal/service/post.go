package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/dto"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/BloggingApp/content-service/internal/pagination"
	"github.com/BloggingApp/content-service/internal/policy"
	"github.com/BloggingApp/content-service/internal/repository"
	"github.com/BloggingApp/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	minTitleLen   = 3
	maxTitleLen   = 200
	minContentLen = 10

	postCacheTTL = time.Minute * 10
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func validateTitle(title string) error {
	length := utf8.RuneCountInString(title)
	if length < minTitleLen || length > maxTitleLen {
		return apperror.Validation("title must be between %d and %d characters", minTitleLen, maxTitleLen)
	}
	return nil
}

func validatePostContent(content string) error {
	if utf8.RuneCountInString(content) < minContentLen {
		return apperror.Validation("content must be at least %d characters", minContentLen)
	}
	return nil
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validatePostContent(input.Content); err != nil {
		return nil, err
	}

	post := model.Post{
		AuthorID: authorID,
		Title:    input.Title,
		Content:  input.Content,
	}
	if input.Publish {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	createdPost, err := s.repo.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", authorID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

func (s *postService) FindByID(ctx context.Context, id int64, caller model.Identity) (*model.Post, error) {
	post, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Drafts must be indistinguishable from absent posts for everyone
	// but their author.
	if !policy.CanReadPost(caller, post) {
		return nil, apperror.NotFound("post not found")
	}

	return post, nil
}

func (s *postService) findByID(ctx context.Context, id int64) (*model.Post, error) {
	if s.repo.Redis != nil {
		cachedPost, err := redisrepo.Get[model.Post](s.repo.Redis.Default, ctx, redisrepo.PostKey(id))
		if err == nil && cachedPost != nil {
			return cachedPost, nil
		}
		if err != nil && err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get post(%d) from redis: %s", id, err.Error())
		}
	}

	post, err := s.repo.Post.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	// Only published posts are cached; draft reads always hit the
	// store so an author's edits show up immediately after publishing.
	if s.repo.Redis != nil && post.Published() {
		if err := s.repo.Redis.SetJSON(ctx, redisrepo.PostKey(id), post, postCacheTTL); err != nil {
			s.logger.Sugar().Errorf("failed to cache post(%d): %s", id, err.Error())
		}
	}

	return post, nil
}

func (s *postService) FindAll(ctx context.Context, caller model.Identity, page int, limit int) (pagination.Page[*model.Post], error) {
	params := pagination.Clamp(page, limit)
	publishedOnly := caller.Anonymous()

	posts, err := s.repo.Post.FindAll(ctx, publishedOnly, params.Limit, params.Offset())
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts: %s", err.Error())
		return pagination.Page[*model.Post]{}, ErrInternal
	}

	total, err := s.repo.Post.Count(ctx, publishedOnly)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count posts: %s", err.Error())
		return pagination.Page[*model.Post]{}, ErrInternal
	}

	return pagination.NewPage(posts, total, params), nil
}

func (s *postService) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, page int, limit int) (pagination.Page[*model.Post], error) {
	params := pagination.Clamp(page, limit)

	posts, err := s.repo.Post.FindByAuthor(ctx, authorID, params.Limit, params.Offset())
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) posts: %s", authorID.String(), err.Error())
		return pagination.Page[*model.Post]{}, ErrInternal
	}

	total, err := s.repo.Post.CountByAuthor(ctx, authorID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count user(%s) posts: %s", authorID.String(), err.Error())
		return pagination.Page[*model.Post]{}, ErrInternal
	}

	return pagination.NewPage(posts, total, params), nil
}

func (s *postService) Edit(ctx context.Context, id int64, caller model.Identity, input dto.EditPostRequest) (*model.Post, error) {
	post, err := s.ownedPost(ctx, id, caller)
	if err != nil {
		return nil, err
	}

	if input.Title == nil && input.Content == nil {
		return post, nil
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		post.Title = *input.Title
	}
	if input.Content != nil {
		if err := validatePostContent(*input.Content); err != nil {
			return nil, err
		}
		post.Content = *input.Content
	}

	return s.save(ctx, post)
}

func (s *postService) Delete(ctx context.Context, id int64, caller model.Identity) error {
	post, err := s.ownedPost(ctx, id, caller)
	if err != nil {
		return err
	}

	if err := s.repo.Post.Delete(ctx, post.ID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *postService) Publish(ctx context.Context, id int64, caller model.Identity) (*model.Post, error) {
	post, err := s.ownedPost(ctx, id, caller)
	if err != nil {
		return nil, err
	}

	if post.Published() {
		return nil, apperror.Validation("Post is already published")
	}

	now := time.Now().UTC()
	post.PublishedAt = &now
	return s.save(ctx, post)
}

func (s *postService) Unpublish(ctx context.Context, id int64, caller model.Identity) (*model.Post, error) {
	post, err := s.ownedPost(ctx, id, caller)
	if err != nil {
		return nil, err
	}

	if !post.Published() {
		return nil, apperror.Validation("Post is already unpublished")
	}

	post.PublishedAt = nil
	return s.save(ctx, post)
}

// ownedPost loads the post and gates mutation on authorship. The
// ownership failure is a plain forbidden error: unlike reads, failed
// mutations do not hide the post's existence for published posts, but
// drafts still come back as not found to non-owners.
func (s *postService) ownedPost(ctx context.Context, id int64, caller model.Identity) (*model.Post, error) {
	post, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanReadPost(caller, post) {
		return nil, apperror.NotFound("post not found")
	}
	if !policy.CanModifyPost(caller, post) {
		return nil, apperror.Forbidden("you are not the author of this post")
	}

	return post, nil
}

func (s *postService) save(ctx context.Context, post *model.Post) (*model.Post, error) {
	if err := s.repo.Post.Update(ctx, post); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Sugar().Errorf("failed to update post(%d): %s", post.ID, err.Error())
		return nil, ErrInternal
	}

	s.invalidate(ctx, post.ID)
	return post, nil
}

func (s *postService) invalidate(ctx context.Context, id int64) {
	if s.repo.Redis == nil {
		return
	}
	if err := s.repo.Redis.Del(ctx, redisrepo.PostKey(id)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate post(%d) cache: %s", id, err.Error())
	}
}
