package http

import (
	"net/http"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/service"

	"github.com/gorilla/mux"
)

type CopyHandler struct {
	registrySvc service.CopyRegistryService
}

func NewCopyHandler(registrySvc service.CopyRegistryService) *CopyHandler {
	return &CopyHandler{registrySvc: registrySvc}
}

type createCopyRequest struct {
	BookID        int32   `json:"book_id"`
	Publisher     string  `json:"publisher"`
	PublishedDate *string `json:"published_date,omitempty"`
}

type setStatusRequest struct {
	Status domain.CopyStatus `json:"status"`
}

func (h *CopyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	var req createCopyRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}
	c, err := h.registrySvc.CreateCopy(r.Context(), userID, req.BookID, req.Publisher, req.PublishedDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CopyHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.registrySvc.GetCopy(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CopyHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(w, r)
	if !ok {
		return
	}
	copies, err := h.registrySvc.ListCopiesByBook(r.Context(), bookID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"copies": copies})
}

type updateCopyRequest struct {
	BookID        int32             `json:"book_id"`
	Publisher     string            `json:"publisher"`
	PublishedDate *string           `json:"published_date,omitempty"`
	Status        domain.CopyStatus `json:"status"`
}

func (h *CopyHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	var req updateCopyRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}
	c := &domain.BookCopy{
		ID:            mux.Vars(r)["id"],
		BookID:        req.BookID,
		Publisher:     req.Publisher,
		PublishedDate: req.PublishedDate,
		Status:        req.Status,
	}
	if err := h.registrySvc.UpdateCopy(r.Context(), userID, c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// SetStatus is the administrative maintenance toggle. Borrower-driven
// status changes go through the borrowing workflow instead.
func (h *CopyHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	var req setStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}
	copyID := mux.Vars(r)["id"]
	if err := h.registrySvc.SetStatus(r.Context(), userID, copyID, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": copyID, "status": string(req.Status)})
}

func (h *CopyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	if err := h.registrySvc.DeleteCopy(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
