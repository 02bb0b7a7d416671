package handlers

import (
	"context"

	"locallibrary-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, phone, password string) (*domain.User, string, error) {
	args := m.Called(ctx, name, email, phone, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateAuthor(ctx context.Context, actorID int32, author *domain.Author) error {
	args := m.Called(ctx, actorID, author)
	return args.Error(0)
}
func (m *MockCatalogService) GetAuthor(ctx context.Context, id int32) (*domain.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}
func (m *MockCatalogService) UpdateAuthor(ctx context.Context, actorID int32, author *domain.Author) error {
	args := m.Called(ctx, actorID, author)
	return args.Error(0)
}
func (m *MockCatalogService) DeleteAuthor(ctx context.Context, actorID, id int32) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}
func (m *MockCatalogService) ListAuthors(ctx context.Context, nameQuery string, page, pageSize int32) ([]domain.Author, int32, error) {
	args := m.Called(ctx, nameQuery, page, pageSize)
	return args.Get(0).([]domain.Author), args.Get(1).(int32), args.Error(2)
}
func (m *MockCatalogService) CreateBook(ctx context.Context, actorID int32, book *domain.Book) error {
	args := m.Called(ctx, actorID, book)
	return args.Error(0)
}
func (m *MockCatalogService) GetBook(ctx context.Context, id int32) (*domain.Book, int32, float64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, 0, 0, args.Error(3)
	}
	return args.Get(0).(*domain.Book), args.Get(1).(int32), args.Get(2).(float64), args.Error(3)
}
func (m *MockCatalogService) UpdateBook(ctx context.Context, actorID int32, book *domain.Book) error {
	args := m.Called(ctx, actorID, book)
	return args.Error(0)
}
func (m *MockCatalogService) DeleteBook(ctx context.Context, actorID, id int32) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}
func (m *MockCatalogService) SearchBooks(ctx context.Context, filter domain.BookSearchFilter, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
func (m *MockCatalogService) GetStats(ctx context.Context) (*domain.LibraryStats, []domain.Book, []float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*domain.LibraryStats), args.Get(1).([]domain.Book), args.Get(2).([]float64), args.Error(3)
}

// MockCopyRegistryService
type MockCopyRegistryService struct {
	mock.Mock
}

func (m *MockCopyRegistryService) CreateCopy(ctx context.Context, actorID int32, bookID int32, publisher string, publishedDate *string) (*domain.BookCopy, error) {
	args := m.Called(ctx, actorID, bookID, publisher, publishedDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookCopy), args.Error(1)
}
func (m *MockCopyRegistryService) GetCopy(ctx context.Context, id string) (*domain.BookCopy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookCopy), args.Error(1)
}
func (m *MockCopyRegistryService) UpdateCopy(ctx context.Context, actorID int32, copy *domain.BookCopy) error {
	args := m.Called(ctx, actorID, copy)
	return args.Error(0)
}
func (m *MockCopyRegistryService) DeleteCopy(ctx context.Context, actorID int32, id string) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}
func (m *MockCopyRegistryService) ListCopiesByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]domain.BookCopy), args.Error(1)
}
func (m *MockCopyRegistryService) GetStatus(ctx context.Context, id string) (domain.CopyStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.CopyStatus), args.Error(1)
}
func (m *MockCopyRegistryService) SetStatus(ctx context.Context, actorID int32, id string, status domain.CopyStatus) error {
	args := m.Called(ctx, actorID, id, status)
	return args.Error(0)
}

// MockBorrowingService
type MockBorrowingService struct {
	mock.Mock
}

func (m *MockBorrowingService) Create(ctx context.Context, borrowerID int32, copyID string, startDate, dueDate string) (*domain.Borrowing, error) {
	args := m.Called(ctx, borrowerID, copyID, startDate, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) Cancel(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, actorID, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) Approve(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, actorID, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) Decline(ctx context.Context, actorID, borrowingID int32, reason string) (*domain.Borrowing, error) {
	args := m.Called(ctx, actorID, borrowingID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) Start(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, actorID, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) End(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, actorID, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) RequestReturnReminder(ctx context.Context, actorID, borrowingID int32) error {
	args := m.Called(ctx, actorID, borrowingID)
	return args.Error(0)
}
func (m *MockBorrowingService) Get(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	args := m.Called(ctx, actorID, borrowingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Borrowing), args.Error(1)
}
func (m *MockBorrowingService) ListMine(ctx context.Context, userID, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Borrowing), args.Get(1).(int32), args.Error(2)
}
func (m *MockBorrowingService) ListAll(ctx context.Context, actorID int32, status string, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	args := m.Called(ctx, actorID, status, page, pageSize)
	return args.Get(0).([]domain.Borrowing), args.Get(1).(int32), args.Error(2)
}

// MockReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) AddReview(ctx context.Context, userID, bookID, point int32, comment string) (*domain.Review, error) {
	args := m.Called(ctx, userID, bookID, point, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewService) ListByBook(ctx context.Context, bookID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	args := m.Called(ctx, bookID, page, pageSize)
	return args.Get(0).([]domain.Review), args.Get(1).(int32), args.Error(2)
}
