package services

import (
	"context"
	"time"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// ReportingSvcFacade exposes the aggregate views over a space's transactions.
type ReportingSvcFacade interface {
	// SpaceSummary computes income, expense and net totals over the optional
	// inclusive date range.
	SpaceSummary(ctx context.Context, userID, spaceID string, from, to domain.Date) (*domain.PeriodTotals, error)

	// CategoryBreakdown sums amounts of the given entry type per category
	// display name over the optional inclusive date range. Unresolvable
	// category ids are grouped under the Unknown label.
	CategoryBreakdown(ctx context.Context, userID, spaceID string, entryType domain.EntryType, from, to domain.Date) ([]domain.CategoryTotal, error)

	// CalendarMarks lists the distinct days of the given month that carry at
	// least one transaction, as "YYYY-MM-DD" keys.
	CalendarMarks(ctx context.Context, userID, spaceID string, year int, month time.Month) ([]string, error)
}
