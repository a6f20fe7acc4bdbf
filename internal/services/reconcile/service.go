// Package reconcile matches pending purchase intents against the
// external bank-transfer feed and performs the one-way pending-to-paid
// transition. It runs no background loops: every reconciliation is
// triggered by a client poll, and client re-polling is the only retry
// mechanism.
package reconcile

import (
	"context"
	"log"
	"strings"
	"time"

	"gfocus/internal/config"
	domain "gfocus/internal/errors"
	"gfocus/internal/models"
	"gfocus/internal/repositories"
	"gfocus/internal/services/ledger"
	"gfocus/internal/services/note"
)

// Poll outcome statuses. Failed is a response class for an
// insufficient transfer, not a stored intent state: the intent stays
// pending and no partial credit accrues across repeated underpayments.
type Status string

const (
	StatusSuccess     Status = "success"
	StatusFailed      Status = "failed"
	StatusNotFoundYet Status = "not_found_yet"
)

// Result is the outcome of one reconciliation poll.
type Result struct {
	Status         Status
	Reference      string
	Tier           string
	LicenseKey     string
	RequiredAmount float64
	PaidAmount     float64
}

type Service struct {
	intents    repositories.IntentRepository
	feed       LedgerFeed
	notifier   Notifier
	fetchLimit int
}

func NewService(intents repositories.IntentRepository, feed LedgerFeed, notifier Notifier, fetchLimit int) *Service {
	if fetchLimit <= 0 {
		fetchLimit = 20
	}
	return &Service{
		intents:    intents,
		feed:       feed,
		notifier:   notifier,
		fetchLimit: fetchLimit,
	}
}

// CreateIntent records a pending purchase intent for a confirmed
// transaction note, generating its license key eagerly. The key must
// not be treated as valid until the intent is paid.
func (s *Service) CreateIntent(ctx context.Context, email, reference, tier string) (*models.PurchaseIntent, error) {
	tier = strings.ToUpper(strings.TrimSpace(tier))
	if _, ok := config.PlanPrice(tier); !ok {
		return nil, domain.ErrUnknownPlan
	}

	intent := &models.PurchaseIntent{
		Reference:  reference,
		Email:      email,
		Tier:       tier,
		LicenseKey: note.GenerateLicenseKey(),
		Status:     models.IntentStatusPending,
	}
	if err := s.intents.Create(ctx, intent); err != nil {
		return nil, err
	}
	return intent, nil
}

// CheckPayment reconciles one reference against the feed.
//
// Already-paid intents short-circuit to success with no side effects,
// so repeated polls after a successful match are idempotent reads.
// When this call performs the actual transition the notification is
// sent exactly once; the repository's alreadyPaid flag decides which
// of any number of racing polls that is.
func (s *Service) CheckPayment(ctx context.Context, reference string) (*Result, error) {
	intent, err := s.intents.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	required, ok := config.PlanPrice(intent.Tier)
	if !ok {
		return nil, domain.ErrUnknownPlan
	}

	if intent.Paid() {
		return successResult(intent, required), nil
	}

	txs := s.feed.FetchRecent(ctx, s.fetchLimit)
	tx, found := ledger.Match(intent.Reference, txs)
	if !found {
		return &Result{Status: StatusNotFoundYet, Reference: reference}, nil
	}

	received := float64(tx.AmountIn)
	if received < required {
		return &Result{
			Status:         StatusFailed,
			Reference:      reference,
			Tier:           intent.Tier,
			LicenseKey:     intent.LicenseKey,
			RequiredAmount: required,
			PaidAmount:     received,
		}, nil
	}

	intent, alreadyPaid, err := s.intents.MarkPaid(ctx, reference, tx.ID, received, paidAt(tx))
	if err != nil {
		return nil, err
	}

	if !alreadyPaid {
		if nerr := s.notifier.SendLicenseKey(ctx, intent.Email, intent.Tier, intent.LicenseKey); nerr != nil {
			// Delivery failure never rolls back the paid state.
			log.Printf("reconcile: license notification for %s failed: %v", reference, nerr)
		}
	}

	return successResult(intent, required), nil
}

func successResult(intent *models.PurchaseIntent, required float64) *Result {
	res := &Result{
		Status:         StatusSuccess,
		Reference:      intent.Reference,
		Tier:           intent.Tier,
		LicenseKey:     intent.LicenseKey,
		RequiredAmount: required,
	}
	if intent.AmountReceived != nil {
		res.PaidAmount = *intent.AmountReceived
	}
	return res
}

func paidAt(tx *ledger.Transaction) time.Time {
	if t, err := time.Parse("2006-01-02 15:04:05", tx.TransactionDate); err == nil {
		return t
	}
	return time.Now()
}
