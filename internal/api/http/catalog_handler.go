package http

import (
	"net/http"
	"strconv"

	"locallibrary-backend/internal/domain"
	"locallibrary-backend/internal/service"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

type statsResponse struct {
	Stats    *domain.LibraryStats `json:"stats"`
	TopRated []topRatedBook       `json:"top_rated"`
}

type topRatedBook struct {
	Book      domain.Book `json:"book"`
	AvgRating float64     `json:"avg_rating"`
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	stats, topRated, ratings, err := h.catalogSvc.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	resp := statsResponse{Stats: stats, TopRated: make([]topRatedBook, 0, len(topRated))}
	for i := range topRated {
		resp.TopRated = append(resp.TopRated, topRatedBook{Book: topRated[i], AvgRating: ratings[i]})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Authors

type authorListResponse struct {
	Authors []domain.Author `json:"authors"`
	Total   int32           `json:"total"`
}

func (h *CatalogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	var author domain.Author
	if err := decodeBody(r, &author); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}
	if err := h.catalogSvc.CreateAuthor(r.Context(), userID, &author); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, author)
}

func (h *CatalogHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	author, err := h.catalogSvc.GetAuthor(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (h *CatalogHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var author domain.Author
	if err := decodeBody(r, &author); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}
	author.ID = id
	if err := h.catalogSvc.UpdateAuthor(r.Context(), userID, &author); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (h *CatalogHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalogSvc.DeleteAuthor(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	name := r.URL.Query().Get("name")
	authors, total, err := h.catalogSvc.ListAuthors(r.Context(), name, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authorListResponse{Authors: authors, Total: total})
}

// Books

type bookDetailResponse struct {
	Book            *domain.Book `json:"book"`
	AvailableCopies int32        `json:"available_copies"`
	AvgRating       float64      `json:"avg_rating"`
}

type bookListResponse struct {
	Books []domain.Book `json:"books"`
	Total int32         `json:"total"`
}

func (h *CatalogHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	var book domain.Book
	if err := decodeBody(r, &book); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}
	if err := h.catalogSvc.CreateBook(r.Context(), userID, &book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

func (h *CatalogHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	book, available, avg, err := h.catalogSvc.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookDetailResponse{Book: book, AvailableCopies: available, AvgRating: avg})
}

func (h *CatalogHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var book domain.Book
	if err := decodeBody(r, &book); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "malformed request body"}})
		return
	}
	book.ID = id
	if err := h.catalogSvc.UpdateBook(r.Context(), userID, &book); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *CatalogHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{errorBody{"UNAUTHORIZED", "not authenticated"}})
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalogSvc.DeleteBook(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	q := r.URL.Query()
	filter := domain.BookSearchFilter{
		Title:      q.Get("title"),
		AuthorName: q.Get("author"),
		ISBN:       q.Get("isbn"),
		Genre:      q.Get("genre"),
		Language:   q.Get("language"),
	}
	books, total, err := h.catalogSvc.SearchBooks(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookListResponse{Books: books, Total: total})
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{errorBody{"BAD_REQUEST", "invalid id"}})
		return 0, false
	}
	return int32(id), true
}
