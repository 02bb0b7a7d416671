package domain

import "time"

type BorrowingStatus string

const (
	BorrowingStatusPending   BorrowingStatus = "PENDING"
	BorrowingStatusCancelled BorrowingStatus = "CANCELLED"
	BorrowingStatusApproved  BorrowingStatus = "APPROVED"
	BorrowingStatusDeclined  BorrowingStatus = "DECLINED"
	BorrowingStatusBorrowing BorrowingStatus = "BORROWING"
	BorrowingStatusReturned  BorrowingStatus = "RETURNED"
)

// Terminal reports whether the status ends the request's lifecycle.
// Terminal borrowings no longer pin their copy against administrative
// deletion.
func (s BorrowingStatus) Terminal() bool {
	switch s {
	case BorrowingStatusCancelled, BorrowingStatusDeclined, BorrowingStatusReturned:
		return true
	}
	return false
}

// Borrowing links a borrower to a book copy over a date range. Requests are
// never hard-deleted; cancellation, decline and return are terminal statuses.
type Borrowing struct {
	ID            int32           `json:"id"`
	BorrowerID    int32           `json:"borrower_id"`
	Borrower      *User           `json:"borrower,omitempty"` // Populated when fetching details
	CopyID        string          `json:"copy_id"`
	Copy          *BookCopy       `json:"copy,omitempty"`
	StartDate     time.Time       `json:"start_date"`
	DueDate       time.Time       `json:"due_date"`
	Status        BorrowingStatus `json:"status"`
	DeclineReason string          `json:"decline_reason,omitempty"`
	CreatedOn     time.Time       `json:"created_on"`
	UpdatedOn     time.Time       `json:"updated_on"`
}

// IsOverdue reports whether the borrowing is past its due date at the given
// time. Strictly after the due date only; a returned borrowing is never
// overdue.
func (b *Borrowing) IsOverdue(now time.Time) bool {
	if b.Status == BorrowingStatusReturned {
		return false
	}
	today := now.Truncate(24 * time.Hour)
	due := b.DueDate.Truncate(24 * time.Hour)
	return today.After(due)
}
