package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/stockpilot/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *GormRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().AutoMigrate(&domain.Product{}))
	return NewGormRepository(db)
}

func mustCreate(t *testing.T, repo *GormRepository, p domain.Product) domain.Product {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &p))
	return p
}

func TestOwnerIsolation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	alice := mustCreate(t, repo, domain.Product{Name: "Rice", Quantity: 2, WeightUnit: "kg", Amount: 150, UserID: 1})
	bob := mustCreate(t, repo, domain.Product{Name: "Sugar", Quantity: 1, WeightUnit: "kg", Amount: 80, UserID: 2})

	rows, err := repo.ListByOwner(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rice", rows[0].Name)

	// reads, updates and deletes across owners behave as not-found
	_, err = repo.GetOwned(ctx, 1, bob.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	stolen := bob
	stolen.UserID = 1
	assert.True(t, errors.Is(repo.Update(ctx, &stolen), gorm.ErrRecordNotFound))

	assert.True(t, errors.Is(repo.DeleteOwned(ctx, 2, alice.ID), gorm.ErrRecordNotFound))

	rows, err = repo.ListByOwner(ctx, 2, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sugar", rows[0].Name)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreate(t, repo, domain.Product{Name: "Red Apple", Quantity: 1, WeightUnit: "kg", Amount: 5, UserID: 1})
	mustCreate(t, repo, domain.Product{Name: "Milk", Quantity: 1, WeightUnit: "l", Amount: 60, UserID: 1})

	for _, term := range []string{"red", "APPLE", "d ap"} {
		rows, err := repo.ListByOwner(ctx, 1, term)
		require.NoError(t, err, "term %q", term)
		require.Len(t, rows, 1, "term %q", term)
		assert.Equal(t, "Red Apple", rows[0].Name, "term %q", term)
	}

	rows, err := repo.ListByOwner(ctx, 1, "banana")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListOrderedNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	mustCreate(t, repo, domain.Product{Name: "oldest", Quantity: 1, WeightUnit: "g", Amount: 1, UserID: 1, CreatedAt: base})
	mustCreate(t, repo, domain.Product{Name: "newest", Quantity: 1, WeightUnit: "g", Amount: 1, UserID: 1, CreatedAt: base.Add(2 * time.Hour)})
	mustCreate(t, repo, domain.Product{Name: "middle", Quantity: 1, WeightUnit: "g", Amount: 1, UserID: 1, CreatedAt: base.Add(time.Hour)})

	rows, err := repo.ListByOwner(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "newest", rows[0].Name)
	assert.Equal(t, "middle", rows[1].Name)
	assert.Equal(t, "oldest", rows[2].Name)
	assert.True(t, rows[0].CreatedAt.After(rows[1].CreatedAt))
	assert.True(t, rows[1].CreatedAt.After(rows[2].CreatedAt))
}

func TestUnknownOwnerListsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	rows, err := repo.ListByOwner(context.Background(), 999, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateKeepsOwner(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := mustCreate(t, repo, domain.Product{Name: "Rice", Quantity: 2, WeightUnit: "kg", Amount: 150, UserID: 1})

	p.Name = "Brown Rice"
	p.Amount = 175
	require.NoError(t, repo.Update(ctx, &p))

	got, err := repo.GetOwned(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brown Rice", got.Name)
	assert.Equal(t, 175.0, got.Amount)
	assert.Equal(t, int64(1), got.UserID)
}

func TestDeleteTwiceFailsCleanly(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	p := mustCreate(t, repo, domain.Product{Name: "Rice", Quantity: 2, WeightUnit: "kg", Amount: 150, UserID: 1})

	require.NoError(t, repo.DeleteOwned(ctx, 1, p.ID))
	err := repo.DeleteOwned(ctx, 1, p.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
