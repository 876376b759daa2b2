package requests

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type CreateOrUpdatePppSecretRequest struct {
	Username         string     `json:"username" validate:"required"`
	Password         string     `json:"password" validate:"required"`
	Service          string     `json:"service" validate:"omitempty,oneof=pppoe pptp l2tp sstp ovpn"`
	LocalAddress     string     `json:"local_address"`
	RemoteAddress    string     `json:"remote_address"`
	PppProfileID     uint       `json:"ppp_profile_id" validate:"required"`
	CustomerID       *uint      `json:"customer_id"`
	MikrotikID       string     `json:"mikrotik_id"`
	AutoSync         bool       `json:"auto_sync"`
	Comment          string     `json:"comment"`
	InstallationDate *time.Time `json:"installation_date"`
	DueDate          *time.Time `json:"due_date"`
	IsActive         bool       `json:"is_active"`
}

func (r *CreateOrUpdatePppSecretRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

type ChangePppSecretProfileRequest struct {
	PppProfileID uint `json:"ppp_profile_id" validate:"required"`
}

func (r *ChangePppSecretProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
