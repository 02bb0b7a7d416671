package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/repository"
)

type copyRepository struct {
	db *sql.DB
}

func NewCopyRepository(db *sql.DB) repository.CopyRepository {
	return &copyRepository{db: db}
}

func (r *copyRepository) Create(ctx context.Context, c *domain.BookCopy) error {
	query := `INSERT INTO book_copies (id, book_id, publisher, published_date, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.BookID, c.Publisher, c.PublishedDate, c.Status, time.Now(), time.Now())
	return err
}

func (r *copyRepository) GetByID(ctx context.Context, id string) (*domain.BookCopy, error) {
	c := &domain.BookCopy{}
	query := `SELECT id, book_id, COALESCE(publisher, ''), published_date, status, created_on, updated_on FROM book_copies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.BookID, &c.Publisher, &c.PublishedDate, &c.Status, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *copyRepository) Update(ctx context.Context, c *domain.BookCopy) error {
	query := `UPDATE book_copies SET book_id=$1, publisher=$2, published_date=$3, status=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.BookID, c.Publisher, c.PublishedDate, c.Status, time.Now(), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *copyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM book_copies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *copyRepository) ListByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error) {
	query := `SELECT id, book_id, COALESCE(publisher, ''), published_date, status, created_on, updated_on FROM book_copies WHERE book_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var copies []domain.BookCopy
	for rows.Next() {
		var c domain.BookCopy
		if err := rows.Scan(&c.ID, &c.BookID, &c.Publisher, &c.PublishedDate, &c.Status, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		copies = append(copies, c)
	}
	return copies, rows.Err()
}

func (r *copyRepository) CountAvailableByBook(ctx context.Context, bookID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM book_copies WHERE book_id = $1 AND status = 'AVAILABLE'`
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(&count)
	return count, err
}

func (r *copyRepository) SetStatus(ctx context.Context, id string, status domain.CopyStatus) error {
	query := `UPDATE book_copies SET status=$1, updated_on=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CompareAndSwapStatus is the guard for the workflow's approve step: the
// WHERE clause makes the read-check-write a single atomic statement per
// copy row, so two concurrent approvals can never both observe AVAILABLE.
func (r *copyRepository) CompareAndSwapStatus(ctx context.Context, id string, expect, next domain.CopyStatus) (bool, error) {
	query := `UPDATE book_copies SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`
	res, err := r.db.ExecContext(ctx, query, next, time.Now(), id, expect)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		// Distinguish a lost swap from an unknown id.
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM book_copies WHERE id = $1)`, id).Scan(&exists); err != nil {
			return false, err
		}
		if !exists {
			return false, domain.ErrNotFound
		}
		return false, nil
	}
	return true, nil
}
