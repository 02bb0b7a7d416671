package postgres

import (
	"database/sql"

	"locallibrary-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AuthorRepository
	repository.BookRepository
	repository.CopyRepository
	repository.BorrowingRepository
	repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		AuthorRepository:    NewAuthorRepository(db),
		BookRepository:      NewBookRepository(db),
		CopyRepository:      NewCopyRepository(db),
		BorrowingRepository: NewBorrowingRepository(db),
		ReviewRepository:    NewReviewRepository(db),
	}
}
