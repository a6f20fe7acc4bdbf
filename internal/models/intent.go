package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Intent statuses. An intent is created pending and flips to paid at
// most once; there are no further transitions.
const (
	IntentStatusPending = "pending"
	IntentStatusPaid    = "paid"
)

// PurchaseIntent is the local record of an expected bank transfer,
// created before any money arrives. The license key is generated
// eagerly at creation time but is only valid once Status is paid.
type PurchaseIntent struct {
	ID             uuid.UUID `gorm:"type:uuid;primarykey"`
	Reference      string    `gorm:"uniqueIndex;not null"`
	Email          string    `gorm:"not null"`
	Tier           string    `gorm:"not null"`
	LicenseKey     string    `gorm:"index;not null"`
	Status         string    `gorm:"not null;default:'pending'"`
	BankRef        string
	AmountReceived *float64
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (i *PurchaseIntent) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Paid reports whether the intent has been reconciled against a
// sufficient bank transfer.
func (i *PurchaseIntent) Paid() bool {
	return i.Status == IntentStatusPaid
}
