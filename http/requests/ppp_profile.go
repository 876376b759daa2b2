package requests

import (
	"github.com/go-playground/validator/v10"
)

type CreateOrUpdatePppProfileRequest struct {
	Name            string  `json:"name" validate:"required"`
	LocalAddress    string  `json:"local_address"`
	RemoteAddress   string  `json:"remote_address"`
	RateLimit       string  `json:"rate_limit"`
	ParentQueue     string  `json:"parent_queue"`
	OnlyOne         bool    `json:"only_one"`
	Price           float64 `json:"price" validate:"gte=0"`
	BillingCycleDay int     `json:"billing_cycle_day" validate:"required,gte=1,lte=31"`
	BillingPeriod   string  `json:"billing_period" validate:"required,oneof=monthly quarterly annually"`
	IsActive        bool    `json:"is_active"`
	MikrotikID      string  `json:"mikrotik_id"`
	AutoSync        bool    `json:"auto_sync"`
	Description     string  `json:"description"`
}

func (r *CreateOrUpdatePppProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
