package postgres

import (
	"context"
	"database/sql"
	"errors"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/repository"
)

type authorRepository struct {
	db *sql.DB
}

func NewAuthorRepository(db *sql.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *domain.Author) error {
	query := `INSERT INTO authors (name, date_of_birth, date_of_death) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Name, a.DateOfBirth, a.DateOfDeath).Scan(&a.ID)
}

func (r *authorRepository) GetByID(ctx context.Context, id int32) (*domain.Author, error) {
	a := &domain.Author{}
	query := `SELECT id, name, date_of_birth, date_of_death FROM authors WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.DateOfBirth, &a.DateOfDeath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *authorRepository) Update(ctx context.Context, a *domain.Author) error {
	query := `UPDATE authors SET name=$1, date_of_birth=$2, date_of_death=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, a.Name, a.DateOfBirth, a.DateOfDeath, a.ID)
	return err
}

func (r *authorRepository) Delete(ctx context.Context, id int32) error {
	// books.author_id is ON DELETE SET NULL, matching catalog semantics.
	res, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *authorRepository) List(ctx context.Context, nameQuery string, page, pageSize int32) ([]domain.Author, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, name, date_of_birth, date_of_death FROM authors WHERE name ILIKE '%' || $1 || '%'`

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, nameQuery).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, nameQuery, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.DateOfBirth, &a.DateOfDeath); err != nil {
			return nil, 0, err
		}
		authors = append(authors, a)
	}
	return authors, count, rows.Err()
}
