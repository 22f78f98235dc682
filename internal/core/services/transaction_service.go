package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	authorizer   portssvc.SpaceAuthorizerSvc
}

func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	authorizer portssvc.SpaceAuthorizerSvc,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		authorizer:   authorizer,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactionsForSpace(ctx context.Context, userID, spaceID string, from, to domain.Date) ([]domain.Transaction, error) {
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, spaceID); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.FindTransactionsBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return domain.FilterByDateRange(txns, from, to), nil
}

func (s *transactionService) GetTransactionWithDetails(ctx context.Context, userID, transactionID string) (*domain.TransactionWithDetails, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, txn.SpaceID); err != nil {
		return nil, err
	}

	details := &domain.TransactionWithDetails{Transaction: *txn}

	// Dangling references degrade to absent fields, never to errors.
	category, err := s.categoryRepo.FindCategoryByID(ctx, txn.CategoryID)
	if err == nil {
		details.Category = category
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	author, err := s.userRepo.FindUserByID(ctx, txn.UserID)
	if err == nil {
		details.User = author
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	return details, nil
}

// validateEntry checks the fields shared by create and update.
func (s *transactionService) validateEntry(ctx context.Context, spaceID string, entryType domain.EntryType, amount decimal.Decimal, categoryID string) error {
	if !entryType.Valid() {
		return fmt.Errorf("invalid entry type %q: %w", entryType, apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("category %s does not exist: %w", categoryID, apperrors.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("failed to load category: %w", err)
	}
	if !category.VisibleTo(spaceID) {
		return fmt.Errorf("category %s is not visible to space %s: %w", categoryID, spaceID, apperrors.ErrValidation)
	}
	return nil
}

func (s *transactionService) AddTransaction(ctx context.Context, userID, spaceID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, spaceID); err != nil {
		return nil, err
	}

	entryType := domain.EntryType(req.Type)
	if err := s.validateEntry(ctx, spaceID, entryType, req.Amount, req.CategoryID); err != nil {
		return nil, err
	}

	date := domain.Today()
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
		}
		date = parsed
	}

	txn := domain.Transaction{
		TransactionID: domain.NewID(domain.TransactionIDPrefix),
		SpaceID:       spaceID,
		UserID:        userID,
		Type:          entryType,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		Date:          date,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		ReceiptPhoto:  req.ReceiptPhoto,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction added", "transaction_id", txn.TransactionID, "space_id", spaceID)
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for update: %w", err)
	}
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, txn.SpaceID); err != nil {
		return nil, err
	}

	if req.Type != nil {
		txn.Type = domain.EntryType(*req.Type)
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.Date != nil {
		parsed, err := domain.ParseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, apperrors.ErrValidation)
		}
		txn.Date = parsed
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = *req.PaymentMethod
	}
	if req.ReceiptPhoto != nil {
		txn.ReceiptPhoto = req.ReceiptPhoto
	}

	if err := s.validateEntry(ctx, txn.SpaceID, txn.Type, txn.Amount, txn.CategoryID); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", "transaction_id", transactionID)
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to load transaction for delete: %w", err)
	}
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, txn.SpaceID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}
