package service

import (
	"context"

	"locallibrary-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, phone, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
}

type CatalogService interface {
	// Authors
	CreateAuthor(ctx context.Context, actorID int32, author *domain.Author) error
	GetAuthor(ctx context.Context, id int32) (*domain.Author, error)
	UpdateAuthor(ctx context.Context, actorID int32, author *domain.Author) error
	DeleteAuthor(ctx context.Context, actorID, id int32) error
	ListAuthors(ctx context.Context, nameQuery string, page, pageSize int32) ([]domain.Author, int32, error)

	// Books
	CreateBook(ctx context.Context, actorID int32, book *domain.Book) error
	GetBook(ctx context.Context, id int32) (*domain.Book, int32, float64, error) // book, available copies, avg rating
	UpdateBook(ctx context.Context, actorID int32, book *domain.Book) error
	DeleteBook(ctx context.Context, actorID, id int32) error
	SearchBooks(ctx context.Context, filter domain.BookSearchFilter, page, pageSize int32) ([]domain.Book, int32, error)

	// Home page aggregates
	GetStats(ctx context.Context) (*domain.LibraryStats, []domain.Book, []float64, error)
}

// CopyRegistryService is the single source of truth for a copy's
// availability. It performs no transition validation; legality of status
// changes is the borrowing workflow's responsibility.
type CopyRegistryService interface {
	CreateCopy(ctx context.Context, actorID int32, bookID int32, publisher string, publishedDate *string) (*domain.BookCopy, error)
	GetCopy(ctx context.Context, id string) (*domain.BookCopy, error)
	UpdateCopy(ctx context.Context, actorID int32, copy *domain.BookCopy) error
	// DeleteCopy is restricted while any non-terminal borrowing references
	// the copy.
	DeleteCopy(ctx context.Context, actorID int32, id string) error
	ListCopiesByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error)

	GetStatus(ctx context.Context, id string) (domain.CopyStatus, error)
	SetStatus(ctx context.Context, actorID int32, id string, status domain.CopyStatus) error
}

type BorrowingService interface {
	Create(ctx context.Context, borrowerID int32, copyID string, startDate, dueDate string) (*domain.Borrowing, error)
	Cancel(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error)
	Approve(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error)
	Decline(ctx context.Context, actorID, borrowingID int32, reason string) (*domain.Borrowing, error)
	Start(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error)
	End(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error)
	RequestReturnReminder(ctx context.Context, actorID, borrowingID int32) error
	Get(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error)
	ListMine(ctx context.Context, userID, page, pageSize int32) ([]domain.Borrowing, int32, error)
	ListAll(ctx context.Context, actorID int32, status string, page, pageSize int32) ([]domain.Borrowing, int32, error)
}

type ReviewService interface {
	AddReview(ctx context.Context, userID, bookID, point int32, comment string) (*domain.Review, error)
	ListByBook(ctx context.Context, bookID int32, page, pageSize int32) ([]domain.Review, int32, error)
}

type EmailService interface {
	SendBorrowingApprovedNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, startDate, dueDate string) error
	SendBorrowingDeclinedNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, reason string) error
	SendOverdueReminderNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, dueDate string) error
}
