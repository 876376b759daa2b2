package models

import (
	"time"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusVerified = "verified"
	PaymentStatusRejected = "rejected"

	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodEWallet      = "e_wallet"
	PaymentMethodOther        = "other"
)

type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	PaymentNumber string     `gorm:"uniqueIndex;not null" json:"payment_number"`
	InvoiceID     uint       `gorm:"index;not null" json:"invoice_id"`
	Invoice       *Invoice   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"invoice,omitempty"`
	CustomerID    uint       `gorm:"index;not null" json:"customer_id"`
	Customer      *Customer  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Date          time.Time  `json:"date"`
	Amount        float64    `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string     `gorm:"size:20;not null" json:"payment_method"`
	Proof         string     `json:"proof"`
	Status        string     `gorm:"size:20;default:'pending'" json:"status"`
	VerifiedBy    *uint      `gorm:"index" json:"verified_by"`
	Verifier      *User      `gorm:"foreignKey:VerifiedBy;constraint:OnDelete:SET NULL" json:"verifier,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
