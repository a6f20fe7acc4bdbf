package repositories

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domain "gfocus/internal/errors"
	"gfocus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingIntent(reference string) *models.PurchaseIntent {
	return &models.PurchaseIntent{
		Reference:  reference,
		Email:      "user@example.com",
		Tier:       "PRO",
		LicenseKey: "GF-TEST00000000",
		Status:     models.IntentStatusPending,
	}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryIntentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingIntent("GFOCUS-PRO-AAAAAA")))

	got, err := repo.GetByReference(ctx, "GFOCUS-PRO-AAAAAA")
	require.NoError(t, err)
	assert.Equal(t, models.IntentStatusPending, got.Status)
	assert.NotZero(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repo.GetByReference(ctx, "GFOCUS-PRO-MISSING")
	assert.ErrorIs(t, err, domain.ErrIntentNotFound)
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewMemoryIntentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingIntent("GFOCUS-PRO-AAAAAA")))
	err := repo.Create(ctx, pendingIntent("GFOCUS-PRO-AAAAAA"))
	assert.ErrorIs(t, err, domain.ErrIntentExists)
}

func TestMemoryRepository_MarkPaid(t *testing.T) {
	repo := NewMemoryIntentRepository()
	ctx := context.Background()
	paidAt := time.Now()

	require.NoError(t, repo.Create(ctx, pendingIntent("GFOCUS-PRO-AAAAAA")))

	intent, alreadyPaid, err := repo.MarkPaid(ctx, "GFOCUS-PRO-AAAAAA", "bank-1", 315000, paidAt)
	require.NoError(t, err)
	assert.False(t, alreadyPaid)
	assert.Equal(t, models.IntentStatusPaid, intent.Status)
	require.NotNil(t, intent.AmountReceived)
	assert.Equal(t, float64(315000), *intent.AmountReceived)

	// Second call is a no-op that signals alreadyPaid and leaves the
	// original payment fields untouched.
	intent, alreadyPaid, err = repo.MarkPaid(ctx, "GFOCUS-PRO-AAAAAA", "bank-2", 999999, time.Now())
	require.NoError(t, err)
	assert.True(t, alreadyPaid)
	assert.Equal(t, "bank-1", intent.BankRef)
	assert.Equal(t, float64(315000), *intent.AmountReceived)

	_, _, err = repo.MarkPaid(ctx, "GFOCUS-PRO-MISSING", "x", 1, time.Now())
	assert.ErrorIs(t, err, domain.ErrIntentNotFound)
}

func TestMemoryRepository_MarkPaidRace(t *testing.T) {
	repo := NewMemoryIntentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingIntent("GFOCUS-PRO-RACE01")))

	var transitions atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, alreadyPaid, err := repo.MarkPaid(ctx, "GFOCUS-PRO-RACE01", "bank", 315000, time.Now())
			assert.NoError(t, err)
			if !alreadyPaid {
				transitions.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, transitions.Load(), "exactly one caller performs the transition")
}

func TestMemoryRepository_FindPaidByLicenseKey(t *testing.T) {
	repo := NewMemoryIntentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, pendingIntent("GFOCUS-PRO-AAAAAA")))

	// A key on a pending intent is not yet valid.
	_, err := repo.FindPaidByLicenseKey(ctx, "GF-TEST00000000")
	assert.ErrorIs(t, err, domain.ErrLicenseNotFound)

	_, _, err = repo.MarkPaid(ctx, "GFOCUS-PRO-AAAAAA", "bank-1", 315000, time.Now())
	require.NoError(t, err)

	intent, err := repo.FindPaidByLicenseKey(ctx, "GF-TEST00000000")
	require.NoError(t, err)
	assert.Equal(t, "GFOCUS-PRO-AAAAAA", intent.Reference)
}
