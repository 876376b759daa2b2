package requests

import (
	"github.com/go-playground/validator/v10"
)

type CreateOrUpdateCustomerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PppProfileID *uint  `json:"ppp_profile_id"`
	IsActive     bool   `json:"is_active"`
}

func (r *CreateOrUpdateCustomerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
