package requests

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type CreatePaymentRequest struct {
	PaymentNumber string     `json:"payment_number"`
	InvoiceID     uint       `json:"invoice_id" validate:"required"`
	CustomerID    uint       `json:"customer_id" validate:"required"`
	Date          *time.Time `json:"date"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=cash bank_transfer e_wallet other"`
	Proof         string     `json:"proof"`
	Notes         string     `json:"notes"`
}

func (r *CreatePaymentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

type RejectPaymentRequest struct {
	Notes string `json:"notes"`
}

func (r *RejectPaymentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
