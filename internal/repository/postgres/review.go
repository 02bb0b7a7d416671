package postgres

import (
	"context"
	"database/sql"
	"time"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (user_id, book_id, point, comment, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rv.UserID, rv.BookID, rv.Point, rv.Comment, time.Now()).Scan(&rv.ID)
}

func (r *reviewRepository) ListByBook(ctx context.Context, bookID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, user_id, book_id, point, COALESCE(comment, ''), created_on FROM reviews WHERE book_id = $1`

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, bookID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, bookID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.BookID, &rv.Point, &rv.Comment, &rv.CreatedOn); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, count, rows.Err()
}

func (r *reviewRepository) AverageByBook(ctx context.Context, bookID int32) (float64, error) {
	var avg sql.NullFloat64
	query := `SELECT AVG(point) FROM reviews WHERE book_id = $1`
	if err := r.db.QueryRowContext(ctx, query, bookID).Scan(&avg); err != nil {
		return 0, err
	}
	return avg.Float64, nil
}
