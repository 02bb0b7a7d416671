package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/service"

	"github.com/gorilla/mux"
)

type BorrowingHandler struct {
	borrowingSvc service.BorrowingService
}

func NewBorrowingHandler(borrowingSvc service.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{borrowingSvc: borrowingSvc}
}

type createBorrowingRequest struct {
	CopyID    string `json:"copy_id"`
	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`
}

type declineBorrowingRequest struct {
	Reason string `json:"reason"`
}

// borrowingResponse augments the record with the read-time overdue flag.
type borrowingResponse struct {
	*domain.Borrowing
	IsOverdue bool `json:"is_overdue"`
}

func newBorrowingResponse(b *domain.Borrowing) borrowingResponse {
	return borrowingResponse{Borrowing: b, IsOverdue: b.IsOverdue(time.Now())}
}

type borrowingListResponse struct {
	Borrowings []borrowingResponse `json:"borrowings"`
	Total      int32               `json:"total"`
}

func newBorrowingListResponse(list []domain.Borrowing, total int32) borrowingListResponse {
	resp := borrowingListResponse{Borrowings: make([]borrowingResponse, 0, len(list)), Total: total}
	for i := range list {
		resp.Borrowings = append(resp.Borrowings, newBorrowingResponse(&list[i]))
	}
	return resp
}

func (h *BorrowingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}

	var req createBorrowingRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}

	b, err := h.borrowingSvc.Create(r.Context(), userID, req.CopyID, req.StartDate, req.DueDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newBorrowingResponse(b))
}

func (h *BorrowingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	b, err := h.borrowingSvc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newBorrowingResponse(b))
}

func (h *BorrowingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.borrowingSvc.Cancel)
}

func (h *BorrowingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.borrowingSvc.Approve)
}

func (h *BorrowingHandler) Decline(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}

	var req declineBorrowingRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}

	b, err := h.borrowingSvc.Decline(r.Context(), userID, id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newBorrowingResponse(b))
}

func (h *BorrowingHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.borrowingSvc.Start)
}

func (h *BorrowingHandler) End(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.borrowingSvc.End)
}

func (h *BorrowingHandler) RequestReturn(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	if err := h.borrowingSvc.RequestReturnReminder(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "reminder sent"})
}

func (h *BorrowingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	page, pageSize := pagination(r)
	list, total, err := h.borrowingSvc.ListMine(r.Context(), userID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newBorrowingListResponse(list, total))
}

func (h *BorrowingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")
	list, total, err := h.borrowingSvc.ListAll(r.Context(), userID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newBorrowingListResponse(list, total))
}

type transitionFunc func(ctx context.Context, actorID, borrowingID int32) (*domain.Borrowing, error)

func (h *BorrowingHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	userID, id, ok := h.actorAndID(w, r)
	if !ok {
		return
	}
	b, err := fn(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newBorrowingResponse(b))
}

func (h *BorrowingHandler) actorAndID(w http.ResponseWriter, r *http.Request) (int32, int32, bool) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return 0, 0, false
	}
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "invalid borrowing id"}})
		return 0, 0, false
	}
	return userID, int32(id), true
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(10)
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
