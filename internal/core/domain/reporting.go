package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// UnknownCategoryLabel groups amounts whose category id no longer resolves.
const UnknownCategoryLabel = "Unknown"

// PeriodTotals aggregates a transaction subset by entry type.
type PeriodTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal // Income - Expense
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// FilterByDateRange keeps transactions whose effective date falls within
// [from, to], inclusive on both ends. A zero bound is open.
func FilterByDateRange(txns []Transaction, from, to Date) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, txn := range txns {
		if !from.IsZero() && txn.Date.Before(from) {
			continue
		}
		if !to.IsZero() && txn.Date.After(to) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// SumByPeriod computes income and expense sums plus the net over a subset.
func SumByPeriod(txns []Transaction) PeriodTotals {
	totals := PeriodTotals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, txn := range txns {
		switch txn.Type {
		case EntryIncome:
			totals.Income = totals.Income.Add(txn.Amount)
		case EntryExpense:
			totals.Expense = totals.Expense.Add(txn.Amount)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expense)
	return totals
}

// BreakdownByCategory sums amounts per resolved category display name.
// Transactions whose category id is missing from categories fall under
// UnknownCategoryLabel. Rows come back sorted by total descending, ties by
// name ascending so the order is deterministic.
func BreakdownByCategory(txns []Transaction, categories []Category) []CategoryTotal {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.CategoryID] = cat.Name
	}

	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		name, ok := names[txn.CategoryID]
		if !ok {
			name = UnknownCategoryLabel
		}
		totals[name] = totals[name].Add(txn.Amount)
	}

	rows := make([]CategoryTotal, 0, len(totals))
	for name, total := range totals {
		rows = append(rows, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// CalendarKeys returns the sorted distinct calendar keys ("YYYY-MM-DD") of
// days that have at least one transaction, for marking in a date picker.
func CalendarKeys(txns []Transaction) []string {
	seen := make(map[string]struct{}, len(txns))
	for _, txn := range txns {
		seen[txn.Date.String()] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
