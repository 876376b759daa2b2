package models

import (
	"time"
)

const (
	BillingPeriodMonthly   = "monthly"
	BillingPeriodQuarterly = "quarterly"
	BillingPeriodAnnually  = "annually"
)

// PppProfile is a service/billing tier pushed to the router as a PPP profile.
// RateLimit uses the Mikrotik "rx/tx" form, e.g. "10M/10M".
type PppProfile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"uniqueIndex;not null" json:"name"`
	LocalAddress    string    `gorm:"size:64" json:"local_address"`
	RemoteAddress   string    `gorm:"size:64" json:"remote_address"`
	RateLimit       string    `gorm:"size:64" json:"rate_limit"`
	ParentQueue     string    `gorm:"size:64" json:"parent_queue"`
	OnlyOne         bool      `gorm:"default:true" json:"only_one"`
	Price           float64   `gorm:"type:decimal(12,2);default:0" json:"price"`
	BillingCycleDay int       `gorm:"default:1" json:"billing_cycle_day"`
	BillingPeriod   string    `gorm:"size:20;default:'monthly'" json:"billing_period"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	MikrotikID      string    `gorm:"size:64" json:"mikrotik_id"`
	AutoSync        bool      `gorm:"default:true" json:"auto_sync"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
