// Package telemetry is the device status registry: a last-write-wins
// cache of the capture clients' monitoring state, keyed by pairing
// code. Entries are independent; there is no cross-entry coordination
// and no interesting invariant beyond "latest report wins".
package telemetry

import (
	"context"

	"gfocus/internal/models"
)

// StatusStore is the cache backing the registry. Satisfied by
// *cache.CacheService; tests plug in an in-memory map.
type StatusStore interface {
	Set(ctx context.Context, key string, value interface{}) error
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetBytes(ctx context.Context, key string, value []byte) error
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	GenerateKey(entityType, keyType string, value interface{}) string
}

type Service struct {
	store StatusStore
}

func NewService(store StatusStore) *Service {
	return &Service{store: store}
}

// UpdateStatus upserts the last-known state for a pairing code. A
// proof image is only kept for distracted reports, matching the
// capture client which only attaches one in that case.
func (s *Service) UpdateStatus(ctx context.Context, code string, status models.DeviceStatus, proof []byte) error {
	if err := s.store.Set(ctx, s.statusKey(code), status); err != nil {
		return err
	}
	if status.IsDistracted && len(proof) > 0 {
		return s.store.SetBytes(ctx, s.proofKey(code), proof)
	}
	return nil
}

// GetStatus returns the last-known state for a pairing code, or the
// offline default for codes that never reported.
func (s *Service) GetStatus(ctx context.Context, code string) (models.DeviceStatus, error) {
	var status models.DeviceStatus
	found, err := s.store.Get(ctx, s.statusKey(code), &status)
	if err != nil {
		return models.OfflineDeviceStatus(), err
	}
	if !found {
		return models.OfflineDeviceStatus(), nil
	}
	return status, nil
}

// GetProof returns the latest proof image for a pairing code.
func (s *Service) GetProof(ctx context.Context, code string) ([]byte, bool, error) {
	return s.store.GetBytes(ctx, s.proofKey(code))
}

func (s *Service) statusKey(code string) string {
	return s.store.GenerateKey("device", "status", code)
}

func (s *Service) proofKey(code string) string {
	return s.store.GenerateKey("device", "proof", code)
}
