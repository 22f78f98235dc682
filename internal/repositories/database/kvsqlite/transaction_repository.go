package kvsqlite

import (
	"context"
	"log/slog"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
	"github.com/cwsbrian/mone-mori-app/internal/models"
)

type KVTransactionRepository struct {
	store *kvstore.Store
}

func newKVTransactionRepository(store *kvstore.Store) portsrepo.TransactionRepositoryFacade {
	return &KVTransactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*KVTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		SpaceID:       d.SpaceID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		CategoryID:    d.CategoryID,
		Date:          d.Date.String(),
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
		ReceiptPhoto:  d.ReceiptPhoto,
		CreatedAt:     d.CreatedAt,
	}
}

func toDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	date, err := domain.ParseDate(m.Date)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		SpaceID:       m.SpaceID,
		UserID:        m.UserID,
		Type:          domain.EntryType(m.Type),
		Amount:        m.Amount,
		CategoryID:    m.CategoryID,
		Date:          date,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		ReceiptPhoto:  m.ReceiptPhoto,
		CreatedAt:     m.CreatedAt,
	}, nil
}

func (r *KVTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	model, err := getRecord[models.Transaction](ctx, r.store, kvstore.CollectionTransactions, transactionID)
	if err != nil {
		return nil, err
	}
	txn, err := toDomainTransaction(*model)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *KVTransactionRepository) FindTransactionsBySpace(ctx context.Context, spaceID string) ([]domain.Transaction, error) {
	ms, err := listRecords[models.Transaction](ctx, r.store, kvstore.CollectionTransactions)
	if err != nil {
		return nil, err
	}
	txns := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		if m.SpaceID != spaceID {
			continue
		}
		txn, err := toDomainTransaction(m)
		if err != nil {
			// An unparseable date is treated like any other corrupt row.
			slog.WarnContext(ctx, "Skipping transaction with invalid date",
				slog.String("id", m.TransactionID),
				slog.String("date", m.Date),
			)
			continue
		}
		txns = append(txns, txn)
	}
	domain.SortTransactions(txns)
	return txns, nil
}

func (r *KVTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return putRecord(ctx, r.store, kvstore.CollectionTransactions, txn.TransactionID, toModelTransaction(txn))
}

func (r *KVTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	if err := requireRecord(ctx, r.store, kvstore.CollectionTransactions, txn.TransactionID); err != nil {
		return err
	}
	return putRecord(ctx, r.store, kvstore.CollectionTransactions, txn.TransactionID, toModelTransaction(txn))
}

func (r *KVTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return deleteRecord(ctx, r.store, kvstore.CollectionTransactions, transactionID)
}
