package http

import (
	"net/http"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type addReviewRequest struct {
	Point   int32  `json:"point"`
	Comment string `json:"comment"`
}

type reviewListResponse struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int32           `json:"total"`
}

func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req addReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}
	rv, err := h.reviewSvc.AddReview(r.Context(), userID, bookID, req.Point, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *ReviewHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}
	page, pageSize := pagination(r)
	reviews, total, err := h.reviewSvc.ListByBook(r.Context(), bookID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewListResponse{Reviews: reviews, Total: total})
}
