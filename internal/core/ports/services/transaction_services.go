package services

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

// TransactionSvcFacade defines transaction entry and retrieval.
type TransactionSvcFacade interface {
	// ListTransactionsForSpace returns a space's transactions in canonical
	// order, optionally restricted to [from, to] inclusive (zero = open).
	ListTransactionsForSpace(ctx context.Context, userID, spaceID string, from, to domain.Date) ([]domain.Transaction, error)

	// GetTransactionWithDetails joins the transaction with its category and
	// author. Dangling references degrade to nil fields rather than errors.
	GetTransactionWithDetails(ctx context.Context, userID, transactionID string) (*domain.TransactionWithDetails, error)

	// AddTransaction validates and persists a new transaction authored by
	// userID in spaceID.
	AddTransaction(ctx context.Context, userID, spaceID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update to a transaction in a space
	// the user belongs to.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a single transaction.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
