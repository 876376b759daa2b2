package requests

import (
	"github.com/go-playground/validator/v10"
)

type CreateNotificationRequest struct {
	Type    string                 `json:"type" validate:"required"`
	Title   string                 `json:"title" validate:"required"`
	Message string                 `json:"message" validate:"required"`
	Data    map[string]interface{} `json:"data"`
	Icon    string                 `json:"icon"`
	Color   string                 `json:"color" validate:"omitempty,oneof=success warning danger info"`
	UserID  *uint                  `json:"user_id"`
}

func (r *CreateNotificationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
