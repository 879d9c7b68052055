package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*PostStore, *CommentStore, *model.Post) {
	store := New()
	posts, comments := store.Posts(), store.Comments()

	post, err := posts.Create(context.Background(), model.Post{
		AuthorID: uuid.New(),
		Title:    "Test Post",
		Content:  "Post content for tests",
	})
	require.NoError(t, err)
	return posts, comments, post
}

func TestStore_CreateAndFindPost(t *testing.T) {
	posts, _, post := newTestStore(t)
	ctx := context.Background()

	retrieved, err := posts.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, retrieved.Title)
	assert.False(t, retrieved.CreatedAt.IsZero())

	_, err = posts.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestStore_CreatePublished(t *testing.T) {
	posts, _, _ := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	post, err := posts.Create(ctx, model.Post{
		AuthorID:    uuid.New(),
		Title:       "Published",
		Content:     "Published content",
		PublishedAt: &now,
	})
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.False(t, post.PublishedAt.Before(post.CreatedAt))
}

func TestStore_FindAllPublishedOnly(t *testing.T) {
	posts, _, published := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	published.PublishedAt = &now
	require.NoError(t, posts.Update(ctx, published))

	_, err := posts.Create(ctx, model.Post{
		AuthorID: uuid.New(),
		Title:    "Draft",
		Content:  "Draft contentposting",
	})
	require.NoError(t, err)

	all, err := posts.FindAll(ctx, false, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	publishedOnly, err := posts.FindAll(ctx, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, publishedOnly, 1)
	assert.Equal(t, published.ID, publishedOnly[0].ID)

	count, err := posts.Count(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_PostDeleteCascadesComments(t *testing.T) {
	posts, comments, post := newTestStore(t)
	ctx := context.Background()

	parent, err := comments.Create(ctx, model.Comment{PostID: post.ID, AuthorID: uuid.New(), Content: "Parent"})
	require.NoError(t, err)

	_, err = comments.Create(ctx, model.Comment{PostID: post.ID, ParentID: &parent.ID, AuthorID: uuid.New(), Content: "Reply"})
	require.NoError(t, err)

	require.NoError(t, posts.Delete(ctx, post.ID))

	_, err = posts.FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = comments.FindByID(ctx, parent.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	count, err := comments.CountPostComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_CommentDeleteCascadesReplies(t *testing.T) {
	_, comments, post := newTestStore(t)
	ctx := context.Background()

	parent, err := comments.Create(ctx, model.Comment{PostID: post.ID, AuthorID: uuid.New(), Content: "Parent"})
	require.NoError(t, err)

	reply, err := comments.Create(ctx, model.Comment{PostID: post.ID, ParentID: &parent.ID, AuthorID: uuid.New(), Content: "Reply"})
	require.NoError(t, err)

	require.NoError(t, comments.Delete(ctx, parent.ID))

	_, err = comments.FindByID(ctx, parent.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = comments.FindByID(ctx, reply.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestStore_CommentOrdering(t *testing.T) {
	_, comments, post := newTestStore(t)
	ctx := context.Background()

	first, err := comments.Create(ctx, model.Comment{PostID: post.ID, AuthorID: uuid.New(), Content: "first"})
	require.NoError(t, err)
	second, err := comments.Create(ctx, model.Comment{PostID: post.ID, AuthorID: uuid.New(), Content: "second"})
	require.NoError(t, err)

	// Top-level comments come back newest first.
	topLevel, err := comments.FindPostComments(ctx, post.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, topLevel, 2)
	assert.Equal(t, second.ID, topLevel[0].ID)
	assert.Equal(t, first.ID, topLevel[1].ID)

	// Replies come back oldest first.
	r1, err := comments.Create(ctx, model.Comment{PostID: post.ID, ParentID: &first.ID, AuthorID: uuid.New(), Content: "r1"})
	require.NoError(t, err)
	r2, err := comments.Create(ctx, model.Comment{PostID: post.ID, ParentID: &first.ID, AuthorID: uuid.New(), Content: "r2"})
	require.NoError(t, err)

	replies, err := comments.FindReplies(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, r1.ID, replies[0].ID)
	assert.Equal(t, r2.ID, replies[1].ID)
}

func TestStore_Pagination(t *testing.T) {
	_, comments, post := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := comments.Create(ctx, model.Comment{PostID: post.ID, AuthorID: uuid.New(), Content: "some comment"})
		require.NoError(t, err)
	}

	firstPage, err := comments.FindPostComments(ctx, post.ID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, firstPage, 2)

	lastPage, err := comments.FindPostComments(ctx, post.ID, 2, 4)
	require.NoError(t, err)
	assert.Len(t, lastPage, 1)

	beyond, err := comments.FindPostComments(ctx, post.ID, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}
