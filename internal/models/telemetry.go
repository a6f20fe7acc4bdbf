package models

// DeviceStatus is the last-known monitoring state reported by a
// capture client, keyed by its pairing code. Entries are independent
// and last-write-wins; there is no cross-entry coordination.
type DeviceStatus struct {
	IsDistracted   bool   `json:"is_distracted"`
	Reason         string `json:"reason"`
	Timestamp      string `json:"timestamp"`
	SessionID      int64  `json:"session_id"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
}

// OfflineDeviceStatus is returned for pairing codes that have never
// reported in.
func OfflineDeviceStatus() DeviceStatus {
	return DeviceStatus{IsDistracted: false, Reason: "Offline", SessionID: 0}
}
