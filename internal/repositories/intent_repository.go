package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "gfocus/internal/errors"
	"gfocus/internal/models"

	"gorm.io/gorm"
)

type intentRepository struct {
	db *gorm.DB
}

// NewIntentRepository creates a PostgreSQL-backed intent repository.
func NewIntentRepository(db *gorm.DB) IntentRepository {
	return &intentRepository{db: db}
}

func (r *intentRepository) Create(ctx context.Context, intent *models.PurchaseIntent) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PurchaseIntent{}).
		Where("reference = ?", intent.Reference).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrIntentExists
	}

	if err := r.db.WithContext(ctx).Create(intent).Error; err != nil {
		// Unique index on reference catches the create/create race.
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrIntentExists
		}
		return err
	}
	return nil
}

func (r *intentRepository) GetByReference(ctx context.Context, reference string) (*models.PurchaseIntent, error) {
	var intent models.PurchaseIntent
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIntentNotFound
		}
		return nil, err
	}
	return &intent, nil
}

// MarkPaid is a conditional update: only a still-pending row is
// touched, so under concurrent calls exactly one caller observes
// alreadyPaid = false.
func (r *intentRepository) MarkPaid(ctx context.Context, reference, bankRef string, amount float64, paidAt time.Time) (*models.PurchaseIntent, bool, error) {
	res := r.db.WithContext(ctx).Model(&models.PurchaseIntent{}).
		Where("reference = ? AND status = ?", reference, models.IntentStatusPending).
		Updates(map[string]interface{}{
			"status":          models.IntentStatusPaid,
			"bank_ref":        bankRef,
			"amount_received": amount,
			"paid_at":         paidAt,
		})
	if res.Error != nil {
		return nil, false, res.Error
	}

	intent, err := r.GetByReference(ctx, reference)
	if err != nil {
		return nil, false, err
	}
	return intent, res.RowsAffected == 0, nil
}

func (r *intentRepository) FindPaidByLicenseKey(ctx context.Context, licenseKey string) (*models.PurchaseIntent, error) {
	var intent models.PurchaseIntent
	err := r.db.WithContext(ctx).
		Where("license_key = ? AND status = ?", licenseKey, models.IntentStatusPaid).
		First(&intent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLicenseNotFound
		}
		return nil, err
	}
	return &intent, nil
}
