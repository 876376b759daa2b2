package requests

import (
	"github.com/go-playground/validator/v10"
)

type CreateOrUpdateMikrotikSettingRequest struct {
	Name        string `json:"name" validate:"required"`
	Host        string `json:"host" validate:"required"`
	Port        int    `json:"port" validate:"omitempty,gte=1,lte=65535"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	UseSSL      bool   `json:"use_ssl"`
	Community   string `json:"community"`
	IsActive    bool   `json:"is_active"`
	Description string `json:"description"`
}

func (r *CreateOrUpdateMikrotikSettingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
