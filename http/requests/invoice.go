package requests

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type CreateInvoiceRequest struct {
	InvoiceNumber string     `json:"invoice_number"`
	CustomerID    uint       `json:"customer_id" validate:"required"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	PeriodStart   *time.Time `json:"period_start"`
	PeriodEnd     *time.Time `json:"period_end"`
	DueDate       *time.Time `json:"due_date"`
	Notes         string     `json:"notes"`
}

func (r *CreateInvoiceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
