package unit

import (
	"context"
	"testing"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type catalogMocks struct {
	bookRepo   *MockBookRepo
	authorRepo *MockAuthorRepo
	copyRepo   *MockCopyRepo
	reviewRepo *MockReviewRepo
	userRepo   *MockUserRepo
}

func newCatalogService() (service.CatalogService, *catalogMocks) {
	m := &catalogMocks{
		bookRepo:   new(MockBookRepo),
		authorRepo: new(MockAuthorRepo),
		copyRepo:   new(MockCopyRepo),
		reviewRepo: new(MockReviewRepo),
		userRepo:   new(MockUserRepo),
	}
	svc := service.NewCatalogService(m.bookRepo, m.authorRepo, m.copyRepo, m.reviewRepo, m.userRepo)
	return svc, m
}

func TestCatalogService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, m := newCatalogService()
		m.userRepo.On("GetByID", ctx, staffUser.ID).Return(staffUser, nil)
		m.bookRepo.On("Create", ctx, mock.AnythingOfType("*domain.Book")).Return(nil)

		b := &domain.Book{Title: "Dune", ISBN: "9780441172719", Genres: []string{"Science Fiction"}}
		assert.NoError(t, svc.CreateBook(ctx, staffUser.ID, b))
	})

	t.Run("Missing title", func(t *testing.T) {
		svc, m := newCatalogService()
		m.userRepo.On("GetByID", ctx, staffUser.ID).Return(staffUser, nil)

		err := svc.CreateBook(ctx, staffUser.ID, &domain.Book{ISBN: "9780441172719"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("ISBN must be 13 characters", func(t *testing.T) {
		svc, m := newCatalogService()
		m.userRepo.On("GetByID", ctx, staffUser.ID).Return(staffUser, nil)

		err := svc.CreateBook(ctx, staffUser.ID, &domain.Book{Title: "Dune", ISBN: "1234"})
		assert.True(t, domain.IsValidation(err))
		m.bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Member cannot manage the catalog", func(t *testing.T) {
		svc, m := newCatalogService()
		m.userRepo.On("GetByID", ctx, memberUser.ID).Return(memberUser, nil)

		err := svc.CreateBook(ctx, memberUser.ID, &domain.Book{Title: "Dune", ISBN: "9780441172719"})
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func TestCatalogService_GetBook(t *testing.T) {
	ctx := context.Background()
	authorID := int32(3)

	svc, m := newCatalogService()
	m.bookRepo.On("GetByID", ctx, int32(7)).Return(&domain.Book{ID: 7, Title: "Dune", AuthorID: &authorID}, nil)
	m.authorRepo.On("GetByID", ctx, authorID).Return(&domain.Author{ID: authorID, Name: "Frank Herbert"}, nil)
	m.copyRepo.On("CountAvailableByBook", ctx, int32(7)).Return(int32(2), nil)
	m.reviewRepo.On("AverageByBook", ctx, int32(7)).Return(4.5, nil)

	b, available, avg, err := svc.GetBook(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Frank Herbert", b.Author.Name)
	assert.Equal(t, int32(2), available)
	assert.Equal(t, 4.5, avg)
}

func TestCatalogService_Authors(t *testing.T) {
	ctx := context.Background()

	t.Run("Create requires a name", func(t *testing.T) {
		svc, m := newCatalogService()
		m.userRepo.On("GetByID", ctx, staffUser.ID).Return(staffUser, nil)

		err := svc.CreateAuthor(ctx, staffUser.ID, &domain.Author{})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("List is public", func(t *testing.T) {
		svc, m := newCatalogService()
		m.authorRepo.On("List", ctx, "herbert", int32(1), int32(10)).
			Return([]domain.Author{{ID: 3, Name: "Frank Herbert"}}, int32(1), nil)

		authors, total, err := svc.ListAuthors(ctx, "herbert", 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, authors, 1)
		m.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_GetStats(t *testing.T) {
	ctx := context.Background()

	svc, m := newCatalogService()
	stats := &domain.LibraryStats{NumBooks: 12, NumCopies: 30, NumCopiesAvailable: 9, NumAuthors: 5, NumGenres: 7}
	m.bookRepo.On("GetStats", ctx).Return(stats, nil)
	m.bookRepo.On("ListTopRated", ctx, int32(10)).
		Return([]domain.Book{{ID: 7, Title: "Dune"}}, []float64{4.8}, nil)

	got, topRated, ratings, err := svc.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, stats, got)
	assert.Len(t, topRated, 1)
	assert.Equal(t, 4.8, ratings[0])
}
