package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	authorizer   portssvc.SpaceAuthorizerSvc
}

func NewReportingService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	authorizer portssvc.SpaceAuthorizerSvc,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// loadRange authorizes and returns the space's transactions within the range.
func (s *reportingService) loadRange(ctx context.Context, userID, spaceID string, from, to domain.Date) ([]domain.Transaction, error) {
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, spaceID); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.FindTransactionsBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}
	return domain.FilterByDateRange(txns, from, to), nil
}

func (s *reportingService) SpaceSummary(ctx context.Context, userID, spaceID string, from, to domain.Date) (*domain.PeriodTotals, error) {
	txns, err := s.loadRange(ctx, userID, spaceID, from, to)
	if err != nil {
		return nil, err
	}
	totals := domain.SumByPeriod(txns)
	return &totals, nil
}

func (s *reportingService) CategoryBreakdown(ctx context.Context, userID, spaceID string, entryType domain.EntryType, from, to domain.Date) ([]domain.CategoryTotal, error) {
	txns, err := s.loadRange(ctx, userID, spaceID, from, to)
	if err != nil {
		return nil, err
	}

	subset := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Type == entryType {
			subset = append(subset, txn)
		}
	}

	categories, err := s.categoryRepo.FindCategoriesBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for report: %w", err)
	}
	return domain.BreakdownByCategory(subset, categories), nil
}

func (s *reportingService) CalendarMarks(ctx context.Context, userID, spaceID string, year int, month time.Month) ([]string, error) {
	first := domain.NewDate(year, month, 1)
	last := domain.DateOf(first.Time().AddDate(0, 1, -1))

	txns, err := s.loadRange(ctx, userID, spaceID, first, last)
	if err != nil {
		return nil, err
	}
	return domain.CalendarKeys(txns), nil
}
