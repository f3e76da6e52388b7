package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"coderrBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

// CreateReview inserts a review after checking that the reviewer has not
// already reviewed this business user. The existence check and the insert
// share a transaction, and the unique constraint on
// (reviewer_id, business_user_id) closes the remaining race.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Review{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE reviewer_id = $1 AND business_user_id = $2`,
		rev.ReviewerID, rev.BusinessUserID,
	).Scan(&count)
	if err != nil {
		return models.Review{}, err
	}
	if count > 0 {
		err = models.ErrAlreadyReviewed
		return models.Review{}, err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO reviews (business_user_id, reviewer_id, rating, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, rev.BusinessUserID, rev.ReviewerID, rev.Rating, rev.Description).Scan(&rev.ID, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = models.ErrAlreadyReviewed
		}
		return models.Review{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviews(ctx context.Context, filter models.ReviewFilterRequest) ([]models.Review, error) {
	where := []string{}
	args := []interface{}{}

	if filter.BusinessUserID > 0 {
		args = append(args, filter.BusinessUserID)
		where = append(where, fmt.Sprintf("business_user_id = $%d", len(args)))
	}
	if filter.ReviewerID > 0 {
		args = append(args, filter.ReviewerID)
		where = append(where, fmt.Sprintf("reviewer_id = $%d", len(args)))
	}

	query := `
		SELECT id, business_user_id, reviewer_id, rating, description, created_at, updated_at
		FROM reviews
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	switch filter.Ordering {
	case "rating":
		query += " ORDER BY rating ASC"
	case "-rating":
		query += " ORDER BY rating DESC"
	case "updated_at":
		query += " ORDER BY updated_at ASC"
	default:
		query += " ORDER BY updated_at DESC"
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.ID, &rev.BusinessUserID, &rev.ReviewerID, &rev.Rating, &rev.Description, &rev.CreatedAt, &rev.UpdatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id int) (models.Review, error) {
	query := `
		SELECT id, business_user_id, reviewer_id, rating, description, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`
	var rev models.Review
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rev.ID, &rev.BusinessUserID, &rev.ReviewerID, &rev.Rating, &rev.Description, &rev.CreatedAt, &rev.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, models.ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) UpdateReview(ctx context.Context, id int, patch models.ReviewPatch) (models.Review, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	if patch.Rating != nil {
		args = append(args, *patch.Rating)
		sets = append(sets, fmt.Sprintf("rating = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE reviews SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Review{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Review{}, err
	}
	if affected == 0 {
		return models.Review{}, models.ErrReviewNotFound
	}
	return r.GetReviewByID(ctx, id)
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}
