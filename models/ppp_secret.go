package models

import (
	"time"
)

// PppSecret is one subscriber PPPoE account. Deleting its profile deletes the
// secret; deleting its customer only detaches it (customer_id goes null).
type PppSecret struct {
	ID                   uint        `gorm:"primaryKey" json:"id"`
	Username             string      `gorm:"uniqueIndex;not null" json:"username"`
	Password             string      `gorm:"not null" json:"password"`
	Service              string      `gorm:"size:20;default:'pppoe'" json:"service"`
	LocalAddress         string      `gorm:"size:64" json:"local_address"`
	RemoteAddress        string      `gorm:"size:64" json:"remote_address"`
	PppProfileID         uint        `gorm:"index;not null" json:"ppp_profile_id"`
	PppProfile           *PppProfile `gorm:"foreignKey:PppProfileID;constraint:OnDelete:CASCADE" json:"ppp_profile,omitempty"`
	CustomerID           *uint       `gorm:"index" json:"customer_id"`
	Customer             *Customer   `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"customer,omitempty"`
	OriginalPppProfileID *uint       `gorm:"index" json:"original_ppp_profile_id"`
	OriginalPppProfile   *PppProfile `gorm:"foreignKey:OriginalPppProfileID;constraint:OnDelete:SET NULL" json:"original_ppp_profile,omitempty"`
	MikrotikID           string      `gorm:"size:64" json:"mikrotik_id"`
	AutoSync             bool        `gorm:"default:true" json:"auto_sync"`
	Comment              string      `json:"comment"`
	InstallationDate     *time.Time  `json:"installation_date"`
	DueDate              *time.Time  `gorm:"index" json:"due_date"`
	IsActive             bool        `gorm:"default:true" json:"is_active"`
	CreatedAt            time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
