package http

import (
	"net/http"

	"locallibrary-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires all REST routes. Catalog reads are public; everything
// that acts on behalf of a user sits behind the auth middleware.
func NewRouter(
	tokens security.TokenManager,
	authHandler *AuthHandler,
	catalogHandler *CatalogHandler,
	copyHandler *CopyHandler,
	reviewHandler *ReviewHandler,
	borrowingHandler *BorrowingHandler,
) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/home", catalogHandler.Home).Methods(http.MethodGet)
	api.HandleFunc("/authors", catalogHandler.ListAuthors).Methods(http.MethodGet)
	api.HandleFunc("/authors/{id:[0-9]+}", catalogHandler.GetAuthor).Methods(http.MethodGet)
	api.HandleFunc("/books", catalogHandler.SearchBooks).Methods(http.MethodGet)
	api.HandleFunc("/books/{id:[0-9]+}", catalogHandler.GetBook).Methods(http.MethodGet)
	api.HandleFunc("/books/{id:[0-9]+}/copies", copyHandler.ListByBook).Methods(http.MethodGet)
	api.HandleFunc("/books/{id:[0-9]+}/reviews", reviewHandler.ListByBook).Methods(http.MethodGet)
	api.HandleFunc("/copies/{id}", copyHandler.Get).Methods(http.MethodGet)

	// Authenticated
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(tokens))

	auth.HandleFunc("/auth/profile", authHandler.Profile).Methods(http.MethodGet)

	auth.HandleFunc("/authors", catalogHandler.CreateAuthor).Methods(http.MethodPost)
	auth.HandleFunc("/authors/{id:[0-9]+}", catalogHandler.UpdateAuthor).Methods(http.MethodPut)
	auth.HandleFunc("/authors/{id:[0-9]+}", catalogHandler.DeleteAuthor).Methods(http.MethodDelete)

	auth.HandleFunc("/books", catalogHandler.CreateBook).Methods(http.MethodPost)
	auth.HandleFunc("/books/{id:[0-9]+}", catalogHandler.UpdateBook).Methods(http.MethodPut)
	auth.HandleFunc("/books/{id:[0-9]+}", catalogHandler.DeleteBook).Methods(http.MethodDelete)
	auth.HandleFunc("/books/{id:[0-9]+}/reviews", reviewHandler.Add).Methods(http.MethodPost)

	auth.HandleFunc("/copies", copyHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/copies/{id}/status", copyHandler.SetStatus).Methods(http.MethodPut)
	auth.HandleFunc("/copies/{id}", copyHandler.Update).Methods(http.MethodPut)
	auth.HandleFunc("/copies/{id}", copyHandler.Delete).Methods(http.MethodDelete)

	auth.HandleFunc("/borrowings", borrowingHandler.Create).Methods(http.MethodPost)
	auth.HandleFunc("/borrowings/mine", borrowingHandler.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/borrowings", borrowingHandler.ListAll).Methods(http.MethodGet)
	auth.HandleFunc("/borrowings/{id:[0-9]+}", borrowingHandler.Get).Methods(http.MethodGet)
	auth.HandleFunc("/borrowings/{id:[0-9]+}/cancel", borrowingHandler.Cancel).Methods(http.MethodPost)
	auth.HandleFunc("/borrowings/{id:[0-9]+}/approve", borrowingHandler.Approve).Methods(http.MethodPost)
	auth.HandleFunc("/borrowings/{id:[0-9]+}/decline", borrowingHandler.Decline).Methods(http.MethodPost)
	auth.HandleFunc("/borrowings/{id:[0-9]+}/start", borrowingHandler.Start).Methods(http.MethodPost)
	auth.HandleFunc("/borrowings/{id:[0-9]+}/end", borrowingHandler.End).Methods(http.MethodPost)
	auth.HandleFunc("/borrowings/{id:[0-9]+}/request-return", borrowingHandler.RequestReturn).Methods(http.MethodPost)

	return r
}
