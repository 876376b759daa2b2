package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const (
	NotificationColorSuccess = "success"
	NotificationColorWarning = "warning"
	NotificationColorDanger  = "danger"
	NotificationColorInfo    = "info"
)

// Notification is an in-app message. UserID nil means system-wide: the row
// shows up in every user's feed. ReadAt is non-nil exactly when IsRead is
// true; the notification service keeps both in step.
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Type      string         `gorm:"size:50;not null" json:"type"`
	Title     string         `gorm:"not null" json:"title"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Data      datatypes.JSON `json:"data,omitempty"`
	Icon      string         `gorm:"size:50" json:"icon"`
	Color     string         `gorm:"size:20;default:'info'" json:"color"`
	IsRead    bool           `gorm:"default:false;index" json:"is_read"`
	ReadAt    *time.Time     `json:"read_at"`
	UserID    *uint          `gorm:"index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// NotificationPayload is the decoded form of Data. Known notification types
// get a concrete variant; everything else falls back to GenericPayload so a
// payload with keys we don't recognize is still readable.
type NotificationPayload interface {
	payloadKind() string
}

// PaymentPayload is the shape carried by "payment" notifications.
// Missing keys simply decode to zero values.
type PaymentPayload struct {
	CustomerName  string  `json:"customer_name"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

func (PaymentPayload) payloadKind() string { return "payment" }

// GenericPayload holds any Data that doesn't match a known variant.
type GenericPayload map[string]interface{}

func (GenericPayload) payloadKind() string { return "generic" }

// Payload decodes Data into its typed variant. Returns nil when there is no
// payload or it is not a JSON object.
func (n *Notification) Payload() NotificationPayload {
	if len(n.Data) == 0 {
		return nil
	}
	if n.Type == "payment" {
		var p PaymentPayload
		if err := json.Unmarshal(n.Data, &p); err == nil {
			return p
		}
	}
	var generic GenericPayload
	if err := json.Unmarshal(n.Data, &generic); err != nil {
		return nil
	}
	return generic
}

// PaymentData probes Data for the payment keys regardless of Type. The second
// return is false when there is no payload, it is not JSON, or none of the
// known keys are set.
func (n *Notification) PaymentData() (PaymentPayload, bool) {
	if len(n.Data) == 0 {
		return PaymentPayload{}, false
	}
	var p PaymentPayload
	if err := json.Unmarshal(n.Data, &p); err != nil {
		return PaymentPayload{}, false
	}
	ok := p.CustomerName != "" || p.Amount != 0 || p.PaymentMethod != ""
	return p, ok
}
