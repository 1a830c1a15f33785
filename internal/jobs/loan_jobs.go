package jobs

import (
	"context"

	"github.com/AbdelrahmanBayoumi/library-api/internal/logger"
)

// SendOverdueReminders emails every borrower holding an overdue loan. A
// failed send is logged and skipped; the next nightly run retries it.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.services.Loan.ListOverdue(ctx)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}

		sent := 0
		for i := range overdue {
			loan := &overdue[i]
			if loan.Borrower == nil || loan.Book == nil {
				logger.Warn("Overdue loan missing relations, skipping", "loan_id", loan.ID)
				continue
			}
			err := jr.services.Email.SendOverdueReminder(ctx, loan.Borrower.Email, loan.Borrower.Name, loan.Book.Title, loan.DueDate)
			if err != nil {
				logger.Error("Failed to send overdue reminder",
					"loan_id", loan.ID,
					"borrower_id", loan.BorrowerID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Overdue reminders sent", "overdue", len(overdue), "sent", sent)
	})
}
