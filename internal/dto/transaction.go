package dto

import (
	"time"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest carries the fields for recording a transaction.
// Date is a "YYYY-MM-DD" string; when empty the service uses today.
type CreateTransactionRequest struct {
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CategoryID    string          `json:"categoryId" binding:"required"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	ReceiptPhoto  *string         `json:"receiptPhoto"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. Pointers differentiate omitted fields from zero values.
type UpdateTransactionRequest struct {
	Type          *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Amount        *decimal.Decimal `json:"amount"`
	CategoryID    *string          `json:"categoryId"`
	Date          *string          `json:"date"`
	Description   *string          `json:"description"`
	PaymentMethod *string          `json:"paymentMethod"`
	ReceiptPhoto  *string          `json:"receiptPhoto"`
}

// TransactionResponse is the outward-facing transaction shape.
type TransactionResponse struct {
	ID            string          `json:"id"`
	SpaceID       string          `json:"spaceId"`
	UserID        string          `json:"userId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryId"`
	Date          domain.Date     `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	ReceiptPhoto  *string         `json:"receiptPhoto"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionWithDetailsResponse joins the owning category and author onto a
// transaction. Either reference may be absent when the id no longer resolves.
type TransactionWithDetailsResponse struct {
	TransactionResponse
	Category *CategoryResponse `json:"category,omitempty"`
	User     *UserResponse     `json:"user,omitempty"`
}

// ListTransactionsResponse wraps a space's transactions in canonical order.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.TransactionID,
		SpaceID:       txn.SpaceID,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		CategoryID:    txn.CategoryID,
		Date:          txn.Date,
		Description:   txn.Description,
		PaymentMethod: txn.PaymentMethod,
		ReceiptPhoto:  txn.ReceiptPhoto,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionWithDetailsResponse converts a joined transaction.
func ToTransactionWithDetailsResponse(details *domain.TransactionWithDetails) TransactionWithDetailsResponse {
	resp := TransactionWithDetailsResponse{
		TransactionResponse: ToTransactionResponse(&details.Transaction),
	}
	if details.Category != nil {
		cat := ToCategoryResponse(details.Category)
		resp.Category = &cat
	}
	if details.User != nil {
		user := ToUserResponse(details.User)
		resp.User = &user
	}
	return resp
}

// ToListTransactionsResponse converts a slice of transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: out}
}
