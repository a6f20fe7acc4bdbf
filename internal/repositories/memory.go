package repositories

import (
	"context"
	"sync"
	"time"

	domain "gfocus/internal/errors"
	"gfocus/internal/models"

	"github.com/google/uuid"
)

// MemoryIntentRepository is an in-process IntentRepository. It backs
// tests and local development where no database is available; the
// mutex gives MarkPaid the same at-most-once transition semantics as
// the conditional SQL update.
type MemoryIntentRepository struct {
	mu      sync.RWMutex
	intents map[string]*models.PurchaseIntent
}

func NewMemoryIntentRepository() *MemoryIntentRepository {
	return &MemoryIntentRepository{intents: make(map[string]*models.PurchaseIntent)}
}

func (r *MemoryIntentRepository) Create(ctx context.Context, intent *models.PurchaseIntent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.intents[intent.Reference]; ok {
		return domain.ErrIntentExists
	}
	if intent.ID == uuid.Nil {
		intent.ID = uuid.New()
	}
	if intent.Status == "" {
		intent.Status = models.IntentStatusPending
	}
	if intent.CreatedAt.IsZero() {
		intent.CreatedAt = time.Now()
	}
	stored := *intent
	r.intents[intent.Reference] = &stored
	return nil
}

func (r *MemoryIntentRepository) GetByReference(ctx context.Context, reference string) (*models.PurchaseIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	intent, ok := r.intents[reference]
	if !ok {
		return nil, domain.ErrIntentNotFound
	}
	cp := *intent
	return &cp, nil
}

func (r *MemoryIntentRepository) MarkPaid(ctx context.Context, reference, bankRef string, amount float64, paidAt time.Time) (*models.PurchaseIntent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	intent, ok := r.intents[reference]
	if !ok {
		return nil, false, domain.ErrIntentNotFound
	}
	if intent.Status == models.IntentStatusPaid {
		cp := *intent
		return &cp, true, nil
	}

	intent.Status = models.IntentStatusPaid
	intent.BankRef = bankRef
	intent.AmountReceived = &amount
	intent.PaidAt = &paidAt
	intent.UpdatedAt = time.Now()
	cp := *intent
	return &cp, false, nil
}

func (r *MemoryIntentRepository) FindPaidByLicenseKey(ctx context.Context, licenseKey string) (*models.PurchaseIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, intent := range r.intents {
		if intent.LicenseKey == licenseKey && intent.Status == models.IntentStatusPaid {
			cp := *intent
			return &cp, nil
		}
	}
	return nil, domain.ErrLicenseNotFound
}
