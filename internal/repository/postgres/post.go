package postgres

import (
	"context"
	"errors"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

const postColumns = "id, author_id, title, content, published_at, created_at, updated_at"

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	// published_at is assigned by the database so it can never precede
	// the row's created_at.
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO posts(author_id, title, content, published_at)
		VALUES($1, $2, $3, CASE WHEN $4::boolean THEN now() END)
		RETURNING id, published_at, created_at, updated_at`,
		post.AuthorID,
		post.Title,
		post.Content,
		post.Published(),
	).Scan(&post.ID, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = $1",
		id,
	).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("post not found")
		}
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindAll(ctx context.Context, publishedOnly bool, limit int, offset int) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+postColumns+`
		FROM posts
		WHERE NOT $1 OR published_at IS NOT NULL
		ORDER BY created_at DESC, id DESC
		LIMIT $2
		OFFSET $3`,
		publishedOnly,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepo) Count(ctx context.Context, publishedOnly bool) (int, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM posts WHERE NOT $1 OR published_at IS NOT NULL",
		publishedOnly,
	).Scan(&count)
	return count, err
}

func (r *postRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+postColumns+`
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
		OFFSET $3`,
		authorID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM posts WHERE author_id = $1",
		authorID,
	).Scan(&count)
	return count, err
}

func (r *postRepo) Update(ctx context.Context, post *model.Post) error {
	if err := r.db.QueryRow(
		ctx,
		`UPDATE posts
		SET title = $2, content = $3, published_at = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		post.ID,
		post.Title,
		post.Content,
		post.PublishedAt,
	).Scan(&post.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("post not found")
		}
		return err
	}

	return nil
}

// Delete removes the post's comments and then the post itself within
// one transaction, so a reader can never observe a comment whose post
// is already gone.
func (r *postRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM comments WHERE post_id = $1 AND parent_id IS NOT NULL", id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM comments WHERE post_id = $1", id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("post not found")
	}

	return tx.Commit(ctx)
}

func scanPosts(rows pgx.Rows) ([]*model.Post, error) {
	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Content,
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
