package unit

import (
	"context"

	"locallibrary-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockAuthorRepo
type MockAuthorRepo struct {
	mock.Mock
}

func (m *MockAuthorRepo) Create(ctx context.Context, author *domain.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}
func (m *MockAuthorRepo) GetByID(ctx context.Context, id int32) (*domain.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}
func (m *MockAuthorRepo) Update(ctx context.Context, author *domain.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}
func (m *MockAuthorRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAuthorRepo) List(ctx context.Context, nameQuery string, page, pageSize int32) ([]domain.Author, int32, error) {
	args := m.Called(ctx, nameQuery, page, pageSize)
	return args.Get(0).([]domain.Author), args.Get(1).(int32), args.Error(2)
}

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) Search(ctx context.Context, filter domain.BookSearchFilter, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookRepo) GetStats(ctx context.Context) (*domain.LibraryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LibraryStats), args.Error(1)
}
func (m *MockBookRepo) ListTopRated(ctx context.Context, limit int32) ([]domain.Book, []float64, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Book), args.Get(1).([]float64), args.Error(2)
}

// MockCopyRepo
type MockCopyRepo struct {
	mock.Mock
}

func (m *MockCopyRepo) Create(ctx context.Context, copy *domain.BookCopy) error {
	args := m.Called(ctx, copy)
	return args.Error(0)
}
func (m *MockCopyRepo) GetByID(ctx context.Context, id string) (*domain.BookCopy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookCopy), args.Error(1)
}
func (m *MockCopyRepo) Update(ctx context.Context, copy *domain.BookCopy) error {
	args := m.Called(ctx, copy)
	return args.Error(0)
}
func (m *MockCopyRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCopyRepo) ListByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]domain.BookCopy), args.Error(1)
}
func (m *MockCopyRepo) CountAvailableByBook(ctx context.Context, bookID int32) (int32, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockCopyRepo) SetStatus(ctx context.Context, id string, status domain.CopyStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCopyRepo) CompareAndSwapStatus(ctx context.Context, id string, expect, next domain.CopyStatus) (bool, error) {
	args := m.Called(ctx, id, expect, next)
	return args.Bool(0), args.Error(1)
}

// MockBorrowingRepo
type MockBorrowingRepo struct {
	mock.Mock
}

func (m *MockBorrowingRepo) Create(ctx context.Context, b *domain.Borrowing) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBorrowingRepo) GetByID(ctx context.Context, id int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) Update(ctx context.Context, b *domain.Borrowing) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBorrowingRepo) ListByBorrower(ctx context.Context, borrowerID int32, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	args := m.Called(ctx, borrowerID, page, pageSize)
	return args.Get(0).([]domain.Borrowing), args.Get(1).(int32), args.Error(2)
}
func (m *MockBorrowingRepo) ListAll(ctx context.Context, status string, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Borrowing), args.Get(1).(int32), args.Error(2)
}
func (m *MockBorrowingRepo) ListOverdue(ctx context.Context, today string) ([]domain.Borrowing, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingRepo) CountActiveByCopy(ctx context.Context, copyID string) (int32, error) {
	args := m.Called(ctx, copyID)
	return args.Get(0).(int32), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) ListByBook(ctx context.Context, bookID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	args := m.Called(ctx, bookID, page, pageSize)
	return args.Get(0).([]domain.Review), args.Get(1).(int32), args.Error(2)
}
func (m *MockReviewRepo) AverageByBook(ctx context.Context, bookID int32) (float64, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(float64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBorrowingApprovedNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, startDate, dueDate string) error {
	args := m.Called(ctx, borrowerEmail, borrowerName, bookTitle, startDate, dueDate)
	return args.Error(0)
}
func (m *MockEmailService) SendBorrowingDeclinedNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, reason string) error {
	args := m.Called(ctx, borrowerEmail, borrowerName, bookTitle, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReminderNotification(ctx context.Context, borrowerEmail, borrowerName, bookTitle, dueDate string) error {
	args := m.Called(ctx, borrowerEmail, borrowerName, bookTitle, dueDate)
	return args.Error(0)
}
