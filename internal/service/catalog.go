package service

import (
	"context"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/repository"
)

const topRatedLimit = 10

type catalogService struct {
	bookRepo   repository.BookRepository
	authorRepo repository.AuthorRepository
	copyRepo   repository.CopyRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
}

func NewCatalogService(
	bookRepo repository.BookRepository,
	authorRepo repository.AuthorRepository,
	copyRepo repository.CopyRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) CatalogService {
	return &catalogService{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
		copyRepo:   copyRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func (s *catalogService) CreateAuthor(ctx context.Context, actorID int32, a *domain.Author) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	if a.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	return s.authorRepo.Create(ctx, a)
}

func (s *catalogService) GetAuthor(ctx context.Context, id int32) (*domain.Author, error) {
	return s.authorRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateAuthor(ctx context.Context, actorID int32, a *domain.Author) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	if a.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if _, err := s.authorRepo.GetByID(ctx, a.ID); err != nil {
		return err
	}
	return s.authorRepo.Update(ctx, a)
}

func (s *catalogService) DeleteAuthor(ctx context.Context, actorID, id int32) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	return s.authorRepo.Delete(ctx, id)
}

func (s *catalogService) ListAuthors(ctx context.Context, nameQuery string, page, pageSize int32) ([]domain.Author, int32, error) {
	return s.authorRepo.List(ctx, nameQuery, page, pageSize)
}

func (s *catalogService) CreateBook(ctx context.Context, actorID int32, b *domain.Book) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	if err := validateBook(b); err != nil {
		return err
	}
	return s.bookRepo.Create(ctx, b)
}

func (s *catalogService) GetBook(ctx context.Context, id int32) (*domain.Book, int32, float64, error) {
	b, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, 0, 0, err
	}
	if b.AuthorID != nil {
		if author, err := s.authorRepo.GetByID(ctx, *b.AuthorID); err == nil {
			b.Author = author
		}
	}
	available, err := s.copyRepo.CountAvailableByBook(ctx, id)
	if err != nil {
		return nil, 0, 0, err
	}
	avg, err := s.reviewRepo.AverageByBook(ctx, id)
	if err != nil {
		return nil, 0, 0, err
	}
	return b, available, avg, nil
}

func (s *catalogService) UpdateBook(ctx context.Context, actorID int32, b *domain.Book) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	if err := validateBook(b); err != nil {
		return err
	}
	if _, err := s.bookRepo.GetByID(ctx, b.ID); err != nil {
		return err
	}
	return s.bookRepo.Update(ctx, b)
}

func (s *catalogService) DeleteBook(ctx context.Context, actorID, id int32) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	return s.bookRepo.Delete(ctx, id)
}

func (s *catalogService) SearchBooks(ctx context.Context, filter domain.BookSearchFilter, page, pageSize int32) ([]domain.Book, int32, error) {
	return s.bookRepo.Search(ctx, filter, page, pageSize)
}

func (s *catalogService) GetStats(ctx context.Context) (*domain.LibraryStats, []domain.Book, []float64, error) {
	stats, err := s.bookRepo.GetStats(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	topRated, ratings, err := s.bookRepo.ListTopRated(ctx, topRatedLimit)
	if err != nil {
		return nil, nil, nil, err
	}
	return stats, topRated, ratings, nil
}

func (s *catalogService) requirePermission(ctx context.Context, actorID int32, perm domain.Permission) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(perm) {
		return nil, domain.ErrPermissionDenied
	}
	return user, nil
}

func validateBook(b *domain.Book) error {
	if b.Title == "" {
		return domain.NewValidationError("title", "is required")
	}
	if len(b.ISBN) != 13 {
		return domain.NewValidationError("isbn", "must be 13 characters")
	}
	return nil
}
