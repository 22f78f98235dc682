package kvsqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
	"github.com/cwsbrian/mone-mori-app/internal/repositories/database/kvsqlite"
)

func newTestContainer(t *testing.T) (*portsrepo.RepositoryContainer, *kvstore.Store) {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return kvsqlite.NewRepositoryContainer(store), store
}

func testUser(id, email string) domain.User {
	return domain.User{
		UserID:    id,
		Email:     email,
		Password:  "1234",
		Nickname:  "Tester",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testSpace(id string, memberIDs ...string) domain.Space {
	return domain.Space{
		SpaceID:      id,
		Name:         "Test Space",
		Emoji:        "💰",
		CurrencyCode: "CAD",
		MemberIDs:    memberIDs,
		CreatedBy:    memberIDs[0],
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testTransaction(id, spaceID string, date domain.Date) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		SpaceID:       spaceID,
		UserID:        "user-1",
		Type:          domain.EntryExpense,
		Amount:        decimal.RequireFromString("12.50"),
		CategoryID:    "cat-1",
		Date:          date,
		CreatedAt:     time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	repos, _ := newTestContainer(t)
	ctx := context.Background()

	user := testUser("user-1", "a@example.com")
	require.NoError(t, repos.User.SaveUser(ctx, user))

	got, err := repos.User.FindUserByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, user, *got)

	byEmail, err := repos.User.FindUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", byEmail.UserID)
}

func TestUserRepository_FindUserByEmailIsExact(t *testing.T) {
	repos, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, repos.User.SaveUser(ctx, testUser("user-1", "a@example.com")))

	_, err := repos.User.FindUserByEmail(ctx, "A@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_UpdateMissingUser(t *testing.T) {
	repos, _ := newTestContainer(t)

	err := repos.User.UpdateUser(context.Background(), testUser("user-gone", "x@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSpaceRepository_FindSpacesByUserID(t *testing.T) {
	repos, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, repos.Space.SaveSpace(ctx, testSpace("space-1", "user-1")))
	require.NoError(t, repos.Space.SaveSpace(ctx, testSpace("space-2", "user-1", "user-2")))
	require.NoError(t, repos.Space.SaveSpace(ctx, testSpace("space-3", "user-3")))

	spaces, err := repos.Space.FindSpacesByUserID(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.Equal(t, "space-2", spaces[0].SpaceID)

	spaces, err = repos.Space.FindSpacesByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, spaces, 2)
}

func TestSpaceRepository_DeleteCascadesTransactions(t *testing.T) {
	repos, _ := newTestContainer(t)
	ctx := context.Background()

	require.NoError(t, repos.Space.SaveSpace(ctx, testSpace("space-1", "user-1")))
	require.NoError(t, repos.Space.SaveSpace(ctx, testSpace("space-2", "user-1")))
	day := domain.NewDate(2024, 2, 1)
	require.NoError(t, repos.Transaction.SaveTransaction(ctx, testTransaction("tx-1", "space-1", day)))
	require.NoError(t, repos.Transaction.SaveTransaction(ctx, testTransaction("tx-2", "space-1", day)))
	require.NoError(t, repos.Transaction.SaveTransaction(ctx, testTransaction("tx-3", "space-2", day)))

	require.NoError(t, repos.Space.DeleteSpace(ctx, "space-1"))

	_, err := repos.Space.FindSpaceByID(ctx, "space-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	gone, err := repos.Transaction.FindTransactionsBySpace(ctx, "space-1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := repos.Transaction.FindTransactionsBySpace(ctx, "space-2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestSpaceRepository_DeleteMissingSpace(t *testing.T) {
	repos, _ := newTestContainer(t)

	err := repos.Space.DeleteSpace(context.Background(), "space-gone")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryRepository_FindCategoriesBySpace(t *testing.T) {
	repos, _ := newTestContainer(t)
	ctx := context.Background()

	spaceID := "space-1"
	otherID := "space-2"
	require.NoError(t, repos.Category.SaveCategory(ctx, domain.Category{
		CategoryID: "cat-default", Name: "Food", Type: domain.EntryExpense, IsDefault: true,
	}))
	require.NoError(t, repos.Category.SaveCategory(ctx, domain.Category{
		CategoryID: "cat-mine", Name: "Groceries", Type: domain.EntryExpense, SpaceID: &spaceID,
	}))
	require.NoError(t, repos.Category.SaveCategory(ctx, domain.Category{
		CategoryID: "cat-theirs", Name: "Hobby", Type: domain.EntryExpense, SpaceID: &otherID,
	}))

	categories, err := repos.Category.FindCategoriesBySpace(ctx, spaceID)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "cat-default", categories[0].CategoryID)
	assert.Equal(t, "cat-mine", categories[1].CategoryID)
}

func TestTransactionRepository_CanonicalOrder(t *testing.T) {
	repos, _ := newTestContainer(t)
	ctx := context.Background()

	older := testTransaction("tx-older", "space-1", domain.NewDate(2024, 2, 1))
	newer := testTransaction("tx-newer", "space-1", domain.NewDate(2024, 2, 5))
	sameDayLater := testTransaction("tx-later", "space-1", domain.NewDate(2024, 2, 5))
	sameDayLater.CreatedAt = newer.CreatedAt.Add(time.Hour)

	require.NoError(t, repos.Transaction.SaveTransaction(ctx, older))
	require.NoError(t, repos.Transaction.SaveTransaction(ctx, newer))
	require.NoError(t, repos.Transaction.SaveTransaction(ctx, sameDayLater))

	txns, err := repos.Transaction.FindTransactionsBySpace(ctx, "space-1")
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "tx-later", txns[0].TransactionID)
	assert.Equal(t, "tx-newer", txns[1].TransactionID)
	assert.Equal(t, "tx-older", txns[2].TransactionID)
}

func TestTransactionRepository_SkipsCorruptRows(t *testing.T) {
	repos, store := newTestContainer(t)
	ctx := context.Background()

	good := testTransaction("tx-good", "space-1", domain.NewDate(2024, 2, 1))
	require.NoError(t, repos.Transaction.SaveTransaction(ctx, good))
	require.NoError(t, store.Put(ctx, kvstore.CollectionTransactions, "tx-bad", []byte(`{not json`)))

	txns, err := repos.Transaction.FindTransactionsBySpace(ctx, "space-1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "tx-good", txns[0].TransactionID)
}

func TestTransactionRepository_AmountPrecisionSurvives(t *testing.T) {
	repos, _ := newTestContainer(t)
	ctx := context.Background()

	txn := testTransaction("tx-1", "space-1", domain.NewDate(2024, 2, 1))
	txn.Amount = decimal.RequireFromString("0.10")
	require.NoError(t, repos.Transaction.SaveTransaction(ctx, txn))

	got, err := repos.Transaction.FindTransactionByID(ctx, "tx-1")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("0.10")))
}

func TestPreferenceRepository_RoundTrip(t *testing.T) {
	repos, _ := newTestContainer(t)
	ctx := context.Background()

	_, err := repos.Preference.FindSelection(ctx, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repos.Preference.SaveSelection(ctx, domain.SpaceSelection{
		UserID: "user-1", CurrentSpaceID: "space-1",
	}))

	sel, err := repos.Preference.FindSelection(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "space-1", sel.CurrentSpaceID)
}
