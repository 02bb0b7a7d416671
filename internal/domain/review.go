package domain

// Review is a user's rating of a book, 1 to 5 points with an optional
// comment.
type Review struct {
	ID        int32  `json:"id"`
	UserID    int32  `json:"user_id"`
	User      *User  `json:"user,omitempty"`
	BookID    int32  `json:"book_id"`
	Point     int32  `json:"point"`
	Comment   string `json:"comment,omitempty"`
	CreatedOn string `json:"created_on"`
}
