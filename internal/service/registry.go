package service

import (
	"context"
	"fmt"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/repository"

	"github.com/google/uuid"
)

type copyRegistryService struct {
	copyRepo      repository.CopyRepository
	bookRepo      repository.BookRepository
	borrowingRepo repository.BorrowingRepository
	userRepo      repository.UserRepository
}

func NewCopyRegistryService(
	copyRepo repository.CopyRepository,
	bookRepo repository.BookRepository,
	borrowingRepo repository.BorrowingRepository,
	userRepo repository.UserRepository,
) CopyRegistryService {
	return &copyRegistryService{
		copyRepo:      copyRepo,
		bookRepo:      bookRepo,
		borrowingRepo: borrowingRepo,
		userRepo:      userRepo,
	}
}

// CreateCopy registers a new physical copy. New copies default to
// MAINTENANCE until an administrator explicitly marks them available.
func (s *copyRegistryService) CreateCopy(ctx context.Context, actorID int32, bookID int32, publisher string, publishedDate *string) (*domain.BookCopy, error) {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return nil, err
	}
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}

	c := &domain.BookCopy{
		ID:            uuid.New().String(),
		BookID:        bookID,
		Publisher:     publisher,
		PublishedDate: publishedDate,
		Status:        domain.CopyStatusMaintenance,
	}
	if err := s.copyRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *copyRegistryService) GetCopy(ctx context.Context, id string) (*domain.BookCopy, error) {
	c, err := s.copyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book, err := s.bookRepo.GetByID(ctx, c.BookID); err == nil {
		c.Book = book
	}
	return c, nil
}

func (s *copyRegistryService) UpdateCopy(ctx context.Context, actorID int32, c *domain.BookCopy) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	if !domain.ValidCopyStatus(c.Status) {
		return domain.NewValidationError("status", fmt.Sprintf("%q is not a copy status", c.Status))
	}
	return s.copyRepo.Update(ctx, c)
}

// DeleteCopy refuses to remove a copy that any non-terminal borrowing still
// references; deletion is restricted, not cascaded.
func (s *copyRegistryService) DeleteCopy(ctx context.Context, actorID int32, id string) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	active, err := s.borrowingRepo.CountActiveByCopy(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.NewValidationError("copy", "cannot be deleted while borrowing requests reference it")
	}
	return s.copyRepo.Delete(ctx, id)
}

func (s *copyRegistryService) ListCopiesByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error) {
	return s.copyRepo.ListByBook(ctx, bookID)
}

func (s *copyRegistryService) GetStatus(ctx context.Context, id string) (domain.CopyStatus, error) {
	c, err := s.copyRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return c.Status, nil
}

// SetStatus is the administrative override (maintenance toggling). It does
// no transition validation: the registry is a dumb cell and the borrowing
// workflow tolerates copies changing status underneath it.
func (s *copyRegistryService) SetStatus(ctx context.Context, actorID int32, id string, status domain.CopyStatus) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermManageCatalog); err != nil {
		return err
	}
	if !domain.ValidCopyStatus(status) {
		return domain.NewValidationError("status", fmt.Sprintf("%q is not a copy status", status))
	}
	return s.copyRepo.SetStatus(ctx, id, status)
}

func (s *copyRegistryService) requirePermission(ctx context.Context, actorID int32, perm domain.Permission) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(perm) {
		return nil, domain.ErrPermissionDenied
	}
	return user, nil
}
