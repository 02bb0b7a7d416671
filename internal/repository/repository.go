package repository

import (
	"context"

	"locallibrary-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	GetByID(ctx context.Context, id int32) (*domain.Author, error)
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, nameQuery string, page, pageSize int32) ([]domain.Author, int32, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int32) error
	Search(ctx context.Context, filter domain.BookSearchFilter, page, pageSize int32) ([]domain.Book, int32, error)
	GetStats(ctx context.Context) (*domain.LibraryStats, error)
	ListTopRated(ctx context.Context, limit int32) ([]domain.Book, []float64, error)
}

type CopyRepository interface {
	Create(ctx context.Context, copy *domain.BookCopy) error
	GetByID(ctx context.Context, id string) (*domain.BookCopy, error)
	Update(ctx context.Context, copy *domain.BookCopy) error
	Delete(ctx context.Context, id string) error
	ListByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error)
	CountAvailableByBook(ctx context.Context, bookID int32) (int32, error)

	// SetStatus unconditionally writes the copy's status.
	SetStatus(ctx context.Context, id string, status domain.CopyStatus) error
	// CompareAndSwapStatus writes next only if the current status equals
	// expect, as a single atomic statement. It reports whether the swap
	// happened. Unknown ids return domain.ErrNotFound.
	CompareAndSwapStatus(ctx context.Context, id string, expect, next domain.CopyStatus) (bool, error)
}

type BorrowingRepository interface {
	Create(ctx context.Context, b *domain.Borrowing) error
	GetByID(ctx context.Context, id int32) (*domain.Borrowing, error)
	Update(ctx context.Context, b *domain.Borrowing) error
	ListByBorrower(ctx context.Context, borrowerID int32, page, pageSize int32) ([]domain.Borrowing, int32, error)
	ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Borrowing, int32, error)
	// ListOverdue returns borrowings in BORROWING status whose due date is
	// strictly before the given date.
	ListOverdue(ctx context.Context, today string) ([]domain.Borrowing, error)
	// CountActiveByCopy counts borrowings in a non-terminal status that
	// reference the copy. Used to restrict administrative copy deletion.
	CountActiveByCopy(ctx context.Context, copyID string) (int32, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByBook(ctx context.Context, bookID int32, page, pageSize int32) ([]domain.Review, int32, error)
	AverageByBook(ctx context.Context, bookID int32) (float64, error)
}
