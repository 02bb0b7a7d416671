package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/repository"

	"github.com/lib/pq"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author_id, summary, isbn, genres, language, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Title, b.AuthorID, b.Summary, b.ISBN, pq.Array(b.Genres), b.Language, time.Now(), time.Now()).Scan(&b.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT id, title, author_id, COALESCE(summary, ''), isbn, genres, COALESCE(language, ''), created_on, updated_on FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&b.Genres), &b.Language, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET title=$1, author_id=$2, summary=$3, isbn=$4, genres=$5, language=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, b.Title, b.AuthorID, b.Summary, b.ISBN, pq.Array(b.Genres), b.Language, time.Now(), b.ID)
	return err
}

func (r *bookRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookRepository) Search(ctx context.Context, f domain.BookSearchFilter, page, pageSize int32) ([]domain.Book, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT b.id, b.title, b.author_id, COALESCE(b.summary, ''), b.isbn, b.genres, COALESCE(b.language, ''), b.created_on, b.updated_on
	          FROM books b
	          LEFT JOIN authors a ON b.author_id = a.id
	          WHERE b.title ILIKE '%' || $1 || '%'`

	args := []interface{}{f.Title}
	argIdx := 2
	if f.AuthorName != "" {
		query += fmt.Sprintf(" AND a.name ILIKE '%%' || $%d || '%%'", argIdx)
		args = append(args, f.AuthorName)
		argIdx++
	}
	if f.ISBN != "" {
		query += fmt.Sprintf(" AND b.isbn ILIKE '%%' || $%d || '%%'", argIdx)
		args = append(args, f.ISBN)
		argIdx++
	}
	if f.Genre != "" {
		query += fmt.Sprintf(" AND $%d = ANY(b.genres)", argIdx)
		args = append(args, f.Genre)
		argIdx++
	}
	if f.Language != "" {
		query += fmt.Sprintf(" AND b.language ILIKE $%d", argIdx)
		args = append(args, f.Language)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY b.title LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&b.Genres), &b.Language, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, count, rows.Err()
}

func (r *bookRepository) GetStats(ctx context.Context) (*domain.LibraryStats, error) {
	stats := &domain.LibraryStats{}
	query := `SELECT
	            (SELECT count(*) FROM books),
	            (SELECT count(*) FROM book_copies),
	            (SELECT count(*) FROM book_copies WHERE status = 'AVAILABLE'),
	            (SELECT count(*) FROM authors),
	            (SELECT count(DISTINCT g) FROM books, unnest(genres) AS g)`
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.NumBooks, &stats.NumCopies, &stats.NumCopiesAvailable, &stats.NumAuthors, &stats.NumGenres)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *bookRepository) ListTopRated(ctx context.Context, limit int32) ([]domain.Book, []float64, error) {
	query := `SELECT b.id, b.title, b.author_id, COALESCE(b.summary, ''), b.isbn, b.genres, COALESCE(b.language, ''), b.created_on, b.updated_on,
	                 COALESCE(AVG(r.point), 0)
	          FROM books b
	          LEFT JOIN reviews r ON r.book_id = b.id
	          GROUP BY b.id
	          ORDER BY COALESCE(AVG(r.point), 0) DESC
	          LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var books []domain.Book
	var ratings []float64
	for rows.Next() {
		var b domain.Book
		var rating float64
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&b.Genres), &b.Language, &b.CreatedOn, &b.UpdatedOn, &rating); err != nil {
			return nil, nil, err
		}
		books = append(books, b)
		ratings = append(ratings, rating)
	}
	return books, ratings, rows.Err()
}
