package dto

import (
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse reports a space's totals over a period.
type SummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CategoryTotalResponse is one slice of a category breakdown.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// BreakdownResponse reports per-category totals, largest first.
type BreakdownResponse struct {
	Breakdown []CategoryTotalResponse `json:"breakdown"`
}

// CalendarResponse reports the distinct days of a month holding at least one
// transaction, as sorted "YYYY-MM-DD" keys.
type CalendarResponse struct {
	Days []string `json:"days"`
}

// ToSummaryResponse converts period totals.
func ToSummaryResponse(totals domain.PeriodTotals) SummaryResponse {
	return SummaryResponse{Income: totals.Income, Expense: totals.Expense, Net: totals.Net}
}

// ToBreakdownResponse converts category totals.
func ToBreakdownResponse(totals []domain.CategoryTotal) BreakdownResponse {
	out := make([]CategoryTotalResponse, len(totals))
	for i, ct := range totals {
		out[i] = CategoryTotalResponse{Category: ct.Category, Total: ct.Total}
	}
	return BreakdownResponse{Breakdown: out}
}
