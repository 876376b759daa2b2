package models

import (
	"time"
)

// MikrotikSetting is a connection profile for one RouterOS device. The API
// port carries PPP objects; Community is used by the SNMP health probe.
type MikrotikSetting struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Name               string     `gorm:"not null" json:"name"`
	Host               string     `gorm:"not null" json:"host"`
	Port               int        `gorm:"default:8728" json:"port"`
	Username           string     `gorm:"not null" json:"username"`
	Password           string     `gorm:"not null" json:"-"`
	UseSSL             bool       `gorm:"default:false" json:"use_ssl"`
	Community          string     `gorm:"size:64;default:'public'" json:"community"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	Description        string     `json:"description"`
	LastConnectedAt    *time.Time `json:"last_connected_at"`
	LastDisconnectedAt *time.Time `json:"last_disconnected_at"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
