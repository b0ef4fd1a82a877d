package entity

import "time"

// RecordsMutationTimeoutKey is the settings key for the record mutation timeout.
const RecordsMutationTimeoutKey = "runtime.recordsMutationTimeoutMs"

// RuntimeSetting is a process-wide persisted integer setting.
type RuntimeSetting struct {
	Key       string
	Value     int64
	UpdatedAt time.Time
}

// TimeoutBounds is the administrator-configured range for the mutation timeout.
type TimeoutBounds struct {
	MinMs     int64
	MaxMs     int64
	DefaultMs int64
}

// Clamp limits ms to the bounds.
func (b TimeoutBounds) Clamp(ms int64) int64 {
	if ms < b.MinMs {
		return b.MinMs
	}
	if ms > b.MaxMs {
		return b.MaxMs
	}
	return ms
}

// Contains reports whether ms lies within the bounds.
func (b TimeoutBounds) Contains(ms int64) bool {
	return ms >= b.MinMs && ms <= b.MaxMs
}
