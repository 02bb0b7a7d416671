package service

import (
	"context"
	"time"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/logger"
	"locallibrary-backend/internal/repository"
)

// borrowingService owns the borrow request lifecycle:
//
//	pending -> cancelled | approved -> declined | borrowing -> returned
//
// and keeps the referenced copy's availability consistent with request
// state on each transition. Copy status is never mutated by a borrower
// action directly.
type borrowingService struct {
	borrowingRepo repository.BorrowingRepository
	copyRepo      repository.CopyRepository
	bookRepo      repository.BookRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
}

func NewBorrowingService(
	borrowingRepo repository.BorrowingRepository,
	copyRepo repository.CopyRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BorrowingService {
	return &borrowingService{
		borrowingRepo: borrowingRepo,
		copyRepo:      copyRepo,
		bookRepo:      bookRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
	}
}

func (s *borrowingService) Create(ctx context.Context, borrowerID int32, copyID string, startDateStr, dueDateStr string) (*domain.Borrowing, error) {
	if _, err := s.copyRepo.GetByID(ctx, copyID); err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		return nil, domain.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
	}
	due, err := time.Parse("2006-01-02", dueDateStr)
	if err != nil {
		return nil, domain.NewValidationError("due_date", "must be a date in YYYY-MM-DD format")
	}

	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))
	if start.Before(today) {
		return nil, domain.NewValidationError("start_date", "cannot be in the past")
	}
	if due.Before(today) {
		return nil, domain.NewValidationError("due_date", "cannot be in the past")
	}
	if due.Before(start) {
		return nil, domain.NewValidationError("due_date", "cannot be earlier than start date")
	}

	b := &domain.Borrowing{
		BorrowerID: borrowerID,
		CopyID:     copyID,
		StartDate:  start,
		DueDate:    due,
		Status:     domain.BorrowingStatusPending,
	}
	if err := s.borrowingRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel is the one borrower-initiated transition. It is legal only from
// PENDING and only for the owning borrower, and never touches copy status
// because a pending request has not claimed its copy yet.
func (s *borrowingService) Cancel(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	b, err := s.borrowingRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	if b.BorrowerID != actorID {
		return nil, domain.ErrPermissionDenied
	}
	if b.Status != domain.BorrowingStatusPending {
		return nil, domain.ErrIllegalTransition
	}

	b.Status = domain.BorrowingStatusCancelled
	if err := s.borrowingRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Approve claims the request's copy. The copy swap AVAILABLE -> RESERVED is
// a single atomic compare-and-swap, so two staff approving concurrent
// requests against the same copy can never both succeed: the loser gets
// ErrCopyUnavailable and its request stays pending.
func (s *borrowingService) Approve(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	if _, err := s.requirePermission(ctx, actorID, domain.PermApproveBorrowing); err != nil {
		return nil, err
	}

	b, err := s.borrowingRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BorrowingStatusPending {
		return nil, domain.ErrIllegalTransition
	}

	swapped, err := s.copyRepo.CompareAndSwapStatus(ctx, b.CopyID, domain.CopyStatusAvailable, domain.CopyStatusReserved)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, domain.ErrCopyUnavailable
	}

	b.Status = domain.BorrowingStatusApproved
	if err := s.borrowingRepo.Update(ctx, b); err != nil {
		// Release the claim so the copy is not stranded in RESERVED.
		if _, rbErr := s.copyRepo.CompareAndSwapStatus(ctx, b.CopyID, domain.CopyStatusReserved, domain.CopyStatusAvailable); rbErr != nil {
			logger.Error("Failed to release copy after approve rollback", "copy_id", b.CopyID, "error", rbErr)
		}
		return nil, err
	}

	s.notifyApproved(ctx, b)
	return b, nil
}

func (s *borrowingService) Decline(ctx context.Context, actorID, borrowingID int32, reason string) (*domain.Borrowing, error) {
	if _, err := s.requirePermission(ctx, actorID, domain.PermDeclineBorrowing); err != nil {
		return nil, err
	}

	b, err := s.borrowingRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BorrowingStatusPending {
		return nil, domain.ErrIllegalTransition
	}
	if reason == "" {
		return nil, domain.NewValidationError("decline_reason", "is required")
	}

	b.Status = domain.BorrowingStatusDeclined
	b.DeclineReason = reason
	if err := s.borrowingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.notifyDeclined(ctx, b)
	return b, nil
}

func (s *borrowingService) Start(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	if _, err := s.requirePermission(ctx, actorID, domain.PermMarkBorrowing); err != nil {
		return nil, err
	}

	b, err := s.borrowingRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BorrowingStatusApproved {
		return nil, domain.ErrIllegalTransition
	}

	if err := s.copyRepo.SetStatus(ctx, b.CopyID, domain.CopyStatusBorrowed); err != nil {
		return nil, err
	}

	b.Status = domain.BorrowingStatusBorrowing
	if err := s.borrowingRepo.Update(ctx, b); err != nil {
		if rbErr := s.copyRepo.SetStatus(ctx, b.CopyID, domain.CopyStatusReserved); rbErr != nil {
			logger.Error("Failed to restore copy status after start rollback", "copy_id", b.CopyID, "error", rbErr)
		}
		return nil, err
	}
	return b, nil
}

func (s *borrowingService) End(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	if _, err := s.requirePermission(ctx, actorID, domain.PermMarkReturned); err != nil {
		return nil, err
	}

	b, err := s.borrowingRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BorrowingStatusBorrowing {
		return nil, domain.ErrIllegalTransition
	}

	if err := s.copyRepo.SetStatus(ctx, b.CopyID, domain.CopyStatusAvailable); err != nil {
		return nil, err
	}

	b.Status = domain.BorrowingStatusReturned
	if err := s.borrowingRepo.Update(ctx, b); err != nil {
		if rbErr := s.copyRepo.SetStatus(ctx, b.CopyID, domain.CopyStatusBorrowed); rbErr != nil {
			logger.Error("Failed to restore copy status after end rollback", "copy_id", b.CopyID, "error", rbErr)
		}
		return nil, err
	}
	return b, nil
}

// RequestReturnReminder nudges the borrower about an overdue copy. It is
// purely a notification: it mutates neither the borrowing nor the copy,
// so it is idempotent and safe to repeat.
func (s *borrowingService) RequestReturnReminder(ctx context.Context, actorID, borrowingID int32) error {
	if _, err := s.requirePermission(ctx, actorID, domain.PermViewAllBorrowings); err != nil {
		return err
	}

	b, err := s.borrowingRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return err
	}

	borrower, err := s.userRepo.GetByID(ctx, b.BorrowerID)
	if err != nil {
		return err
	}

	title := s.bookTitleForCopy(ctx, b.CopyID)
	if err := s.emailSvc.SendOverdueReminderNotification(ctx, borrower.Email, borrower.Name, title, b.DueDate.Format("2006-01-02")); err != nil {
		logger.Warn("Failed to send overdue reminder", "borrowing_id", b.ID, "borrower_id", borrower.ID, "error", err)
	}
	return nil
}

func (s *borrowingService) Get(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error) {
	b, err := s.borrowingRepo.GetByID(ctx, borrowingID)
	if err != nil {
		return nil, err
	}
	if b.BorrowerID != actorID {
		if _, err := s.requirePermission(ctx, actorID, domain.PermViewAllBorrowings); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (s *borrowingService) ListMine(ctx context.Context, userID, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	return s.borrowingRepo.ListByBorrower(ctx, userID, page, pageSize)
}

func (s *borrowingService) ListAll(ctx context.Context, actorID int32, status string, page, pageSize int32) ([]domain.Borrowing, int32, error) {
	if _, err := s.requirePermission(ctx, actorID, domain.PermViewAllBorrowings); err != nil {
		return nil, 0, err
	}
	return s.borrowingRepo.ListAll(ctx, status, page, pageSize)
}

// requirePermission is the capability check run at the top of every
// staff-initiated transition, independent of request ownership.
func (s *borrowingService) requirePermission(ctx context.Context, actorID int32, perm domain.Permission) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(perm) {
		return nil, domain.ErrPermissionDenied
	}
	return user, nil
}

// Notification sends are fire-and-forget: the transition has already
// committed, and a mail failure must not undo it.

func (s *borrowingService) notifyApproved(ctx context.Context, b *domain.Borrowing) {
	borrower, err := s.userRepo.GetByID(ctx, b.BorrowerID)
	if err != nil {
		logger.Warn("Failed to load borrower for approval notification", "borrowing_id", b.ID, "error", err)
		return
	}
	title := s.bookTitleForCopy(ctx, b.CopyID)
	if err := s.emailSvc.SendBorrowingApprovedNotification(ctx, borrower.Email, borrower.Name, title,
		b.StartDate.Format("2006-01-02"), b.DueDate.Format("2006-01-02")); err != nil {
		logger.Warn("Failed to send approval notification", "borrowing_id", b.ID, "error", err)
	}
}

func (s *borrowingService) notifyDeclined(ctx context.Context, b *domain.Borrowing) {
	borrower, err := s.userRepo.GetByID(ctx, b.BorrowerID)
	if err != nil {
		logger.Warn("Failed to load borrower for decline notification", "borrowing_id", b.ID, "error", err)
		return
	}
	title := s.bookTitleForCopy(ctx, b.CopyID)
	if err := s.emailSvc.SendBorrowingDeclinedNotification(ctx, borrower.Email, borrower.Name, title, b.DeclineReason); err != nil {
		logger.Warn("Failed to send decline notification", "borrowing_id", b.ID, "error", err)
	}
}

func (s *borrowingService) bookTitleForCopy(ctx context.Context, copyID string) string {
	c, err := s.copyRepo.GetByID(ctx, copyID)
	if err != nil {
		return ""
	}
	book, err := s.bookRepo.GetByID(ctx, c.BookID)
	if err != nil {
		return ""
	}
	return book.Title
}
