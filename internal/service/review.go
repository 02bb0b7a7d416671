package service

import (
	"context"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookRepo repository.BookRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, bookRepo: bookRepo}
}

func (s *reviewService) AddReview(ctx context.Context, userID, bookID, point int32, comment string) (*domain.Review, error) {
	if point < 1 {
		return nil, domain.NewValidationError("point", "cannot be smaller than 1")
	}
	if point > 5 {
		return nil, domain.NewValidationError("point", "cannot be larger than 5")
	}
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}

	rv := &domain.Review{
		UserID:  userID,
		BookID:  bookID,
		Point:   point,
		Comment: comment,
	}
	if err := s.reviewRepo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *reviewService) ListByBook(ctx context.Context, bookID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.ListByBook(ctx, bookID, page, pageSize)
}
