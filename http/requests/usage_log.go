package requests

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// IngestUsageLogRequest is what the session collector posts, keyed by PPP
// username rather than secret id.
type IngestUsageLogRequest struct {
	Username       string     `json:"username" validate:"required"`
	CallerID       string     `json:"caller_id"`
	Uptime         int64      `json:"uptime" validate:"gte=0"`
	BytesIn        int64      `json:"bytes_in" validate:"gte=0"`
	BytesOut       int64      `json:"bytes_out" validate:"gte=0"`
	IPAddress      string     `json:"ip_address" validate:"omitempty,ip"`
	ConnectedAt    time.Time  `json:"connected_at" validate:"required"`
	DisconnectedAt *time.Time `json:"disconnected_at"`
	SessionID      string     `json:"session_id"`
}

func (r *IngestUsageLogRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
