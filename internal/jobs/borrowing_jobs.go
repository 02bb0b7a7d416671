package jobs

import (
	"context"
	"time"

	"locallibrary-backend/internal/logger"
)

// SendOverdueReminders emails borrowers whose active borrowings are past
// their due date. Overdue is a derived read-time property: this job never
// mutates borrowing or copy state, it only notifies.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		today := time.Now().Format("2006-01-02")

		overdue, err := jr.store.BorrowingRepository.ListOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to query overdue borrowings", "error", err)
			return
		}

		count := 0
		for _, b := range overdue {
			borrower, err := jr.store.UserRepository.GetByID(ctx, b.BorrowerID)
			if err != nil {
				logger.Error("Failed to load borrower for overdue reminder", "borrowing_id", b.ID, "error", err)
				continue
			}

			title := ""
			if c, err := jr.store.CopyRepository.GetByID(ctx, b.CopyID); err == nil {
				if book, err := jr.store.BookRepository.GetByID(ctx, c.BookID); err == nil {
					title = book.Title
				}
			}

			if err := jr.services.Email.SendOverdueReminderNotification(ctx, borrower.Email, borrower.Name, title, b.DueDate.Format("2006-01-02")); err != nil {
				logger.Error("Failed to send overdue reminder email",
					"borrowing_id", b.ID,
					"borrower_id", b.BorrowerID,
					"email", borrower.Email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent overdue reminder",
				"borrowing_id", b.ID,
				"borrower_id", b.BorrowerID,
				"email", borrower.Email)
		}

		logger.Info("Overdue reminders sent", "count", count, "overdue_total", len(overdue))
	})
}
