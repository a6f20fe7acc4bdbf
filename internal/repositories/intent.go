package repositories

import (
	"context"
	"time"

	"gfocus/internal/models"
)

// IntentRepository is the durable store of purchase intents, keyed by
// transaction reference. Implementations must make MarkPaid behave as
// a conditional write: the pending-to-paid flip happens at most once
// per reference no matter how many callers race, and the returned
// alreadyPaid flag tells each caller whether somebody else got there
// first. That flag is the sole idempotency guard for notifications.
type IntentRepository interface {
	// Create stores a new pending intent. Returns ErrIntentExists if
	// the reference is already known.
	Create(ctx context.Context, intent *models.PurchaseIntent) error

	// GetByReference returns the intent for a reference, or
	// ErrIntentNotFound.
	GetByReference(ctx context.Context, reference string) (*models.PurchaseIntent, error)

	// MarkPaid flips the intent to paid and records the payment
	// details, but only if it is still pending. When the intent was
	// already paid the stored record is returned unchanged with
	// alreadyPaid = true.
	MarkPaid(ctx context.Context, reference, bankRef string, amount float64, paidAt time.Time) (intent *models.PurchaseIntent, alreadyPaid bool, err error)

	// FindPaidByLicenseKey returns the paid intent holding the given
	// license key, or ErrLicenseNotFound. Keys on still-pending
	// intents are not yet valid and do not match.
	FindPaidByLicenseKey(ctx context.Context, licenseKey string) (*models.PurchaseIntent, error)
}
