package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"gfocus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStore is an in-memory StatusStore.
type mapStore struct {
	values map[string][]byte
}

func newMapStore() *mapStore {
	return &mapStore{values: make(map[string][]byte)}
}

func (s *mapStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = data
	return nil
}

func (s *mapStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := s.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (s *mapStore) SetBytes(ctx context.Context, key string, value []byte) error {
	s.values[key] = value
	return nil
}

func (s *mapStore) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := s.values[key]
	return data, ok, nil
}

func (s *mapStore) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

func TestGetStatus_UnknownCodeReadsOffline(t *testing.T) {
	svc := NewService(newMapStore())

	status, err := svc.GetStatus(context.Background(), "123456")
	require.NoError(t, err)
	assert.False(t, status.IsDistracted)
	assert.Equal(t, "Offline", status.Reason)
	assert.EqualValues(t, 0, status.SessionID)
}

func TestUpdateStatus_LastWriteWins(t *testing.T) {
	svc := NewService(newMapStore())
	ctx := context.Background()

	require.NoError(t, svc.UpdateStatus(ctx, "123456", models.DeviceStatus{
		IsDistracted: true, Reason: "Distracted", SessionID: 7, Timestamp: "10:00:00",
	}, nil))
	require.NoError(t, svc.UpdateStatus(ctx, "123456", models.DeviceStatus{
		IsDistracted: false, Reason: "Focusing", SessionID: 7,
	}, nil))

	status, err := svc.GetStatus(ctx, "123456")
	require.NoError(t, err)
	assert.False(t, status.IsDistracted)
	assert.Equal(t, "Focusing", status.Reason)
}

func TestUpdateStatus_EntriesAreIndependent(t *testing.T) {
	svc := NewService(newMapStore())
	ctx := context.Background()

	require.NoError(t, svc.UpdateStatus(ctx, "111111", models.DeviceStatus{Reason: "Focusing", SessionID: 1}, nil))
	require.NoError(t, svc.UpdateStatus(ctx, "222222", models.DeviceStatus{IsDistracted: true, Reason: "Distracted", SessionID: 2}, nil))

	a, err := svc.GetStatus(ctx, "111111")
	require.NoError(t, err)
	b, err := svc.GetStatus(ctx, "222222")
	require.NoError(t, err)

	assert.False(t, a.IsDistracted)
	assert.True(t, b.IsDistracted)
}

func TestUpdateStatus_ProofOnlyKeptWhenDistracted(t *testing.T) {
	svc := NewService(newMapStore())
	ctx := context.Background()
	img := []byte{0xff, 0xd8, 0xff}

	require.NoError(t, svc.UpdateStatus(ctx, "123456", models.DeviceStatus{
		IsDistracted: false, Reason: "Focusing",
	}, img))
	_, found, err := svc.GetProof(ctx, "123456")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, svc.UpdateStatus(ctx, "123456", models.DeviceStatus{
		IsDistracted: true, Reason: "Distracted",
	}, img))
	proof, found, err := svc.GetProof(ctx, "123456")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, img, proof)
}
