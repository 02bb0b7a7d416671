package domain

// Book represents a cataloged title, not a specific physical copy.
type Book struct {
	ID        int32    `json:"id"`
	Title     string   `json:"title"`
	AuthorID  *int32   `json:"author_id,omitempty"`
	Author    *Author  `json:"author,omitempty"` // Populated when fetching book details
	Summary   string   `json:"summary"`
	ISBN      string   `json:"isbn"`
	Genres    []string `json:"genres"`
	Language  string   `json:"language"`
	CreatedOn string   `json:"created_on"`
	UpdatedOn string   `json:"updated_on"`
}

type Author struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	DateOfDeath *string `json:"date_of_death,omitempty"`
}

// BookSearchFilter carries the optional catalog search criteria.
type BookSearchFilter struct {
	Title      string
	AuthorName string
	ISBN       string
	Genre      string
	Language   string
}

// LibraryStats is the aggregate snapshot shown on the home page.
type LibraryStats struct {
	NumBooks           int32 `json:"num_books"`
	NumCopies          int32 `json:"num_copies"`
	NumCopiesAvailable int32 `json:"num_copies_available"`
	NumAuthors         int32 `json:"num_authors"`
	NumGenres          int32 `json:"num_genres"`
}
