package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense record inside a space. Amount is
// non-negative and denominated in the owning space's currency. Date is the
// effective date the entry is attributed to, distinct from CreatedAt.
type Transaction struct {
	TransactionID string          `json:"id"`
	SpaceID       string          `json:"spaceId"`
	UserID        string          `json:"userId"` // author
	Type          EntryType       `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryId"`
	Date          Date            `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	ReceiptPhoto  *string         `json:"receiptPhoto"` // carried but unused
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionWithDetails joins a transaction to its category and author.
// Either reference may fail to resolve (e.g. the category was deleted after
// the transaction was written); the projection degrades to a nil field.
type TransactionWithDetails struct {
	Transaction
	Category *Category `json:"category,omitempty"`
	User     *User     `json:"user,omitempty"`
}

// SortTransactions orders transactions canonically: effective date descending,
// then creation time descending, then id descending. The secondary keys make
// the order stable for entries sharing an effective date.
func SortTransactions(txns []Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.After(txns[j].Date)
		}
		if !txns[i].CreatedAt.Equal(txns[j].CreatedAt) {
			return txns[i].CreatedAt.After(txns[j].CreatedAt)
		}
		return txns[i].TransactionID > txns[j].TransactionID
	})
}
