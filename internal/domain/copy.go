package domain

type CopyStatus string

const (
	CopyStatusMaintenance CopyStatus = "MAINTENANCE"
	CopyStatusAvailable   CopyStatus = "AVAILABLE"
	CopyStatusBorrowed    CopyStatus = "BORROWED"
	CopyStatusReserved    CopyStatus = "RESERVED"
)

// ValidCopyStatus reports whether s is one of the four enumerated values.
func ValidCopyStatus(s CopyStatus) bool {
	switch s {
	case CopyStatusMaintenance, CopyStatusAvailable, CopyStatusBorrowed, CopyStatusReserved:
		return true
	}
	return false
}

// BookCopy is one physical, individually identified instance of a Book.
// The ID is an opaque UUID so copy identifiers are not guessable.
type BookCopy struct {
	ID            string     `json:"id"`
	BookID        int32      `json:"book_id"`
	Book          *Book      `json:"book,omitempty"` // Populated when fetching copy details
	Publisher     string     `json:"publisher"`
	PublishedDate *string    `json:"published_date,omitempty"`
	Status        CopyStatus `json:"status"`
	CreatedOn     string     `json:"created_on"`
	UpdatedOn     string     `json:"updated_on"`
}
