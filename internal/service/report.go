package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/report"
	"github.com/AbdelrahmanBayoumi/library-api/internal/repository"
)

type reportService struct {
	loanRepo repository.LoanRepository

	now func() time.Time
}

func NewReportService(loanRepo repository.LoanRepository) ReportService {
	return &reportService{loanRepo: loanRepo, now: time.Now}
}

func (s *reportService) GetAnalytics(ctx context.Context, start, end string) (*domain.AnalyticsReport, error) {
	if start == "" || end == "" {
		return nil, domain.ErrInvalidRange
	}
	// An out-of-order range is tolerated: BETWEEN matches nothing and the
	// aggregation of an empty set is a zeroed report.
	records, err := s.loanRepo.FindInPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return report.Aggregate(records, end, s.now().Format(domain.DateLayout)), nil
}

func (s *reportService) ExportAnalytics(ctx context.Context, start, end string, format report.Format) (*Export, error) {
	rep, err := s.GetAnalytics(ctx, start, end)
	if err != nil {
		return nil, err
	}
	data, err := report.RenderAnalytics(rep, format)
	if err != nil {
		return nil, err
	}
	return &Export{
		Data:        data,
		ContentType: format.ContentType(),
		Filename:    fmt.Sprintf("borrowing-report-%s-to-%s.%s", start, end, format.Ext()),
	}, nil
}

func (s *reportService) ExportOverdueLastMonth(ctx context.Context, format report.Format) (*Export, error) {
	start, end := s.lastMonthRange()
	records, err := s.loanRepo.FindOverdueInPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	data, err := report.RenderLoans("Overdue Last Month", report.ToRows(records), format)
	if err != nil {
		return nil, err
	}
	return &Export{
		Data:        data,
		ContentType: format.ContentType(),
		Filename:    "overdue-last-month." + format.Ext(),
	}, nil
}

func (s *reportService) ExportLastMonthLoans(ctx context.Context, format report.Format) (*Export, error) {
	start, end := s.lastMonthRange()
	records, err := s.loanRepo.FindInPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	data, err := report.RenderLoans("Last Month Borrowings", report.ToRows(records), format)
	if err != nil {
		return nil, err
	}
	return &Export{
		Data:        data,
		ContentType: format.ContentType(),
		Filename:    "last-month-borrowings." + format.Ext(),
	}, nil
}

// lastMonthRange returns the previous calendar month as an inclusive
// [first day, last day] pair.
func (s *reportService) lastMonthRange() (string, string) {
	now := s.now()
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthEnd := firstOfThisMonth.AddDate(0, 0, -1)
	lastMonthStart := time.Date(lastMonthEnd.Year(), lastMonthEnd.Month(), 1, 0, 0, 0, 0, now.Location())
	return lastMonthStart.Format(domain.DateLayout), lastMonthEnd.Format(domain.DateLayout)
}
