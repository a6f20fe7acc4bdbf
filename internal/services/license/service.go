// Package license answers "is this key valid, and for which tier?".
package license

import (
	"context"

	"gfocus/internal/repositories"
)

type Service struct {
	intents repositories.IntentRepository
}

func NewService(intents repositories.IntentRepository) *Service {
	return &Service{intents: intents}
}

// Verify reports whether the key belongs to a paid intent and, if so,
// its tier. A key on a still-pending intent is not yet valid.
func (s *Service) Verify(ctx context.Context, licenseKey string) (string, bool) {
	intent, err := s.intents.FindPaidByLicenseKey(ctx, licenseKey)
	if err != nil {
		return "", false
	}
	return intent.Tier, true
}
