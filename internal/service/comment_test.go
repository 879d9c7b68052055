package service

import (
	"context"
	"strings"
	"testing"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Create(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)
	author := uuid.New()

	comment, err := s.Comment.Create(ctx, post.ID, model.Authenticated(author), "First comment!")
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, author, comment.AuthorID)
	assert.Nil(t, comment.ParentID)
}

func TestCommentService_Create_AnonymousForbidden(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	_, err := s.Comment.Create(ctx, post.ID, model.Identity{}, "Anonymous comment")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCommentService_Create_PostNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.Comment.Create(context.Background(), 9999, model.Authenticated(uuid.New()), "A comment")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCommentService_Create_EmptyContent(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	_, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "   ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCommentService_Create_ContentTooLong(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	_, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), strings.Repeat("a", 2001))
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCommentService_Create_TrimsContent(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	comment, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "  trimmed  ")
	require.NoError(t, err)
	assert.Equal(t, "trimmed", comment.Content)
}

func TestCommentService_CreateReply(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	parent, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "Parent comment")
	require.NoError(t, err)

	reply, err := s.Comment.CreateReply(ctx, parent.ID, model.Authenticated(uuid.New()), "A reply")
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
	// The reply inherits the parent's post.
	assert.Equal(t, post.ID, reply.PostID)
}

func TestCommentService_CreateReply_ToReplyRejected(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	parent, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "Parent comment")
	require.NoError(t, err)

	reply, err := s.Comment.CreateReply(ctx, parent.ID, model.Authenticated(uuid.New()), "A reply")
	require.NoError(t, err)

	_, err = s.Comment.CreateReply(ctx, reply.ID, model.Authenticated(uuid.New()), "A reply to a reply")
	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, "cannot reply to a reply", err.Error())
}

func TestCommentService_CreateReply_ParentNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.Comment.CreateReply(context.Background(), 9999, model.Authenticated(uuid.New()), "A reply")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCommentService_FindWithReplies(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	parent, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "Parent comment")
	require.NoError(t, err)
	r1, err := s.Comment.CreateReply(ctx, parent.ID, model.Authenticated(uuid.New()), "first reply")
	require.NoError(t, err)
	r2, err := s.Comment.CreateReply(ctx, parent.ID, model.Authenticated(uuid.New()), "second reply")
	require.NoError(t, err)

	thread, err := s.Comment.FindWithReplies(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, thread.Comment.ID)
	require.Len(t, thread.Replies, 2)
	assert.Equal(t, r1.ID, thread.Replies[0].ID)
	assert.Equal(t, r2.ID, thread.Replies[1].ID)

	// Reading twice with no intervening mutation yields identical data.
	again, err := s.Comment.FindWithReplies(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, thread, again)
}

func TestCommentService_FindPostComments_NewestFirst(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	first, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "first")
	require.NoError(t, err)
	second, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "second")
	require.NoError(t, err)

	page, err := s.Comment.FindPostComments(ctx, post.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, second.ID, page.Items[0].ID)
	assert.Equal(t, first.ID, page.Items[1].ID)
	assert.Equal(t, 2, page.Total)
}

func TestCommentService_FindPostComments_PostNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.Comment.FindPostComments(context.Background(), 9999, 1, 10)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCommentService_Delete_CascadesReplies(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)
	author := uuid.New()

	parent, err := s.Comment.Create(ctx, post.ID, model.Authenticated(author), "Parent comment")
	require.NoError(t, err)
	reply, err := s.Comment.CreateReply(ctx, parent.ID, model.Authenticated(uuid.New()), "A reply")
	require.NoError(t, err)

	require.NoError(t, s.Comment.Delete(ctx, parent.ID, model.Authenticated(author)))

	_, err = s.Comment.FindWithReplies(ctx, parent.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = s.Comment.FindWithReplies(ctx, reply.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCommentService_Delete_ForbiddenForNonAuthor(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	comment, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "A comment")
	require.NoError(t, err)

	err = s.Comment.Delete(ctx, comment.ID, model.Authenticated(uuid.New()))
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	err = s.Comment.Delete(ctx, comment.ID, model.Identity{})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

// Every comment reachable through the service keeps nesting depth at
// most one: a comment with a parent always points at a top-level
// comment.
func TestCommentService_NestingDepthInvariant(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	post := createPost(t, s, uuid.New(), true)

	for i := 0; i < 3; i++ {
		parent, err := s.Comment.Create(ctx, post.ID, model.Authenticated(uuid.New()), "top-level")
		require.NoError(t, err)
		_, err = s.Comment.CreateReply(ctx, parent.ID, model.Authenticated(uuid.New()), "reply")
		require.NoError(t, err)
	}

	page, err := s.Comment.FindPostComments(ctx, post.ID, 1, 100)
	require.NoError(t, err)
	for _, top := range page.Items {
		assert.Nil(t, top.ParentID)

		thread, err := s.Comment.FindWithReplies(ctx, top.ID)
		require.NoError(t, err)
		for _, reply := range thread.Replies {
			require.NotNil(t, reply.ParentID)
			parentThread, err := s.Comment.FindWithReplies(ctx, *reply.ParentID)
			require.NoError(t, err)
			assert.Nil(t, parentThread.Comment.ParentID)
		}
	}
}
