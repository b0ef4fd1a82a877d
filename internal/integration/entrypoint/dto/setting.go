package dto

import "time"

// UpdateRuntimeSettingsRequest represents the admin request body for runtime settings.
type UpdateRuntimeSettingsRequest struct {
	RecordsMutationTimeoutMs *int64 `json:"recordsMutationTimeoutMs" binding:"required"`
}

// RuntimeSettingsResponse represents the effective runtime settings.
type RuntimeSettingsResponse struct {
	RecordsMutationTimeoutMs int64      `json:"recordsMutationTimeoutMs"`
	Stored                   bool       `json:"stored"`
	MinMs                    int64      `json:"minMs"`
	MaxMs                    int64      `json:"maxMs"`
	DefaultMs                int64      `json:"defaultMs"`
	UpdatedAt                *time.Time `json:"updatedAt,omitempty"`
}
