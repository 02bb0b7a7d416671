package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/repository"
)

type borrowingRepository struct {
	db *sql.DB
}

func NewBorrowingRepository(db *sql.DB) repository.BorrowingRepository {
	return &borrowingRepository{db: db}
}

func (r *borrowingRepository) Create(ctx context.Context, b *domain.Borrowing) error {
	query := `INSERT INTO borrowings (borrower_id, copy_id, start_date, due_date, status, decline_reason, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	b.CreatedOn = now
	b.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, b.BorrowerID, b.CopyID, b.StartDate, b.DueDate, b.Status, b.DeclineReason, now, now).Scan(&b.ID)
}

func (r *borrowingRepository) GetByID(ctx context.Context, id int32) (*domain.Borrowing, error) {
	b := &domain.Borrowing{}
	query := `SELECT id, borrower_id, copy_id, start_date, due_date, status, COALESCE(decline_reason, ''), created_on, updated_on FROM borrowings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.BorrowerID, &b.CopyID, &b.StartDate, &b.DueDate, &b.Status, &b.DeclineReason, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *borrowingRepository) Update(ctx context.Context, b *domain.Borrowing) error {
	query := `UPDATE borrowings SET status=$1, decline_reason=$2, updated_on=$3 WHERE id=$4`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, b.Status, b.DeclineReason, now, b.ID)
	if err == nil {
		b.UpdatedOn = now
	}
	return err
}

func (r *borrowingRepository) ListByBorrower(ctx context.Context, borrowerID int32, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, borrower_id, copy_id, start_date, due_date, status, COALESCE(decline_reason, ''), created_on, updated_on
	          FROM borrowings WHERE borrower_id = $1`

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, borrowerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY updated_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, borrowerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	borrowings, err := scanBorrowings(rows)
	if err != nil {
		return nil, 0, err
	}
	return borrowings, count, nil
}

func (r *borrowingRepository) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, borrower_id, copy_id, start_date, due_date, status, COALESCE(decline_reason, ''), created_on, updated_on
	          FROM borrowings WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY updated_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	borrowings, err := scanBorrowings(rows)
	if err != nil {
		return nil, 0, err
	}
	return borrowings, count, nil
}

func (r *borrowingRepository) ListOverdue(ctx context.Context, today string) ([]domain.Borrowing, error) {
	query := `SELECT id, borrower_id, copy_id, start_date, due_date, status, COALESCE(decline_reason, ''), created_on, updated_on
	          FROM borrowings WHERE status = 'BORROWING' AND due_date < $1 ORDER BY due_date`
	rows, err := r.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBorrowings(rows)
}

func (r *borrowingRepository) CountActiveByCopy(ctx context.Context, copyID string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM borrowings WHERE copy_id = $1 AND status IN ('PENDING', 'APPROVED', 'BORROWING')`
	err := r.db.QueryRowContext(ctx, query, copyID).Scan(&count)
	return count, err
}

func scanBorrowings(rows *sql.Rows) ([]domain.Borrowing, error) {
	var borrowings []domain.Borrowing
	for rows.Next() {
		var b domain.Borrowing
		if err := rows.Scan(&b.ID, &b.BorrowerID, &b.CopyID, &b.StartDate, &b.DueDate, &b.Status, &b.DeclineReason, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		borrowings = append(borrowings, b)
	}
	return borrowings, rows.Err()
}
