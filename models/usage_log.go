package models

import (
	"time"
)

// UsageLog is one PPP session record collected from the router. Rows are
// append-only; there is no updated_at.
type UsageLog struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PppSecretID    uint       `gorm:"index;not null" json:"ppp_secret_id"`
	PppSecret      *PppSecret `gorm:"foreignKey:PppSecretID;constraint:OnDelete:CASCADE" json:"ppp_secret,omitempty"`
	CallerID       string     `gorm:"size:64" json:"caller_id"`
	Uptime         int64      `json:"uptime"`
	BytesIn        int64      `json:"bytes_in"`
	BytesOut       int64      `json:"bytes_out"`
	IPAddress      string     `gorm:"size:45" json:"ip_address"`
	ConnectedAt    time.Time  `gorm:"index" json:"connected_at"`
	DisconnectedAt *time.Time `json:"disconnected_at"`
	SessionID      string     `gorm:"size:64" json:"session_id"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
