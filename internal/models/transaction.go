package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted JSON shape of a transaction record. Date is
// the effective date in "YYYY-MM-DD" form (RFC3339 inputs are accepted and
// truncated by the domain date type on conversion).
type Transaction struct {
	TransactionID string          `json:"id"`
	SpaceID       string          `json:"spaceId"`
	UserID        string          `json:"userId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryId"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	ReceiptPhoto  *string         `json:"receiptPhoto"`
	CreatedAt     time.Time       `json:"createdAt"`
}
