package models

import (
	"time"
)

type Customer struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Email        string      `json:"email"`
	Phone        string      `gorm:"size:32" json:"phone"`
	Address      string      `json:"address"`
	IsActive     bool        `gorm:"default:true" json:"is_active"`
	PppProfileID *uint       `gorm:"index" json:"ppp_profile_id"`
	PppProfile   *PppProfile `gorm:"foreignKey:PppProfileID;constraint:OnDelete:SET NULL" json:"ppp_profile,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
