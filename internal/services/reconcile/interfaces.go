package reconcile

import (
	"context"

	"gfocus/internal/services/ledger"
)

// LedgerFeed is the read-only view of the aggregator's transaction
// feed. Implementations must treat every failure as an empty result.
type LedgerFeed interface {
	FetchRecent(ctx context.Context, limit int) []ledger.Transaction
}

// Notifier delivers a license key to a purchaser.
type Notifier interface {
	SendLicenseKey(ctx context.Context, email, tier, licenseKey string) error
}
