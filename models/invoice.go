package models

import (
	"time"
)

const (
	InvoiceStatusUnpaid    = "unpaid"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InvoiceNumber string    `gorm:"uniqueIndex;not null" json:"invoice_number"`
	CustomerID    uint      `gorm:"index;not null" json:"customer_id"`
	Customer      *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	PeriodStart   time.Time `json:"period_start"`
	PeriodEnd     time.Time `json:"period_end"`
	DueDate       time.Time `gorm:"index" json:"due_date"`
	Status        string    `gorm:"size:20;default:'unpaid'" json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
