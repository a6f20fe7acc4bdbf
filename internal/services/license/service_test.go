package license

import (
	"context"
	"testing"
	"time"

	"gfocus/internal/models"
	"gfocus/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	repo := repositories.NewMemoryIntentRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.PurchaseIntent{
		Reference:  "GFOCUS-PRO-AAAAAA",
		Email:      "user@example.com",
		Tier:       "PRO",
		LicenseKey: "GF-VALIDKEY0001",
		Status:     models.IntentStatusPending,
	}))

	t.Run("pending intent key is invalid", func(t *testing.T) {
		_, ok := svc.Verify(ctx, "GF-VALIDKEY0001")
		assert.False(t, ok)
	})

	t.Run("unknown key is invalid", func(t *testing.T) {
		_, ok := svc.Verify(ctx, "GF-NEVERISSUED0")
		assert.False(t, ok)
	})

	t.Run("paid intent key is valid with its tier", func(t *testing.T) {
		_, _, err := repo.MarkPaid(ctx, "GFOCUS-PRO-AAAAAA", "bank-1", 315000, time.Now())
		require.NoError(t, err)

		tier, ok := svc.Verify(ctx, "GF-VALIDKEY0001")
		assert.True(t, ok)
		assert.Equal(t, "PRO", tier)
	})
}
