package postgres

import (
	"context"
	"errors"

	"github.com/BloggingApp/content-service/internal/apperror"
	"github.com/BloggingApp/content-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

const commentColumns = "id, parent_id, post_id, author_id, content, created_at, updated_at"

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO comments(parent_id, post_id, author_id, content)
		VALUES($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		comment.ParentID,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.QueryRow(
		ctx,
		"SELECT "+commentColumns+" FROM comments WHERE id = $1",
		id,
	).Scan(
		&comment.ID,
		&comment.ParentID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("comment not found")
		}
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.Comment, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+commentColumns+`
		FROM comments
		WHERE post_id = $1 AND parent_id IS NULL
		ORDER BY created_at DESC, id DESC
		LIMIT $2
		OFFSET $3`,
		postID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComments(rows)
}

func (r *commentRepo) CountPostComments(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM comments WHERE post_id = $1 AND parent_id IS NULL",
		postID,
	).Scan(&count)
	return count, err
}

func (r *commentRepo) FindReplies(ctx context.Context, commentID int64) ([]*model.Comment, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+commentColumns+`
		FROM comments
		WHERE parent_id = $1
		ORDER BY created_at ASC, id ASC`,
		commentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanComments(rows)
}

// Delete removes the comment's replies and then the comment itself in
// one transaction. Replies cannot have replies of their own, so the
// cascade is exactly one level deep.
func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM comments WHERE parent_id = $1", id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("comment not found")
	}

	return tx.Commit(ctx)
}

func scanComments(rows pgx.Rows) ([]*model.Comment, error) {
	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.ParentID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		); err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
