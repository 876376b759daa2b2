package models

import (
	"testing"

	"gorm.io/datatypes"
)

func TestPayloadDecodesPaymentVariant(t *testing.T) {
	n := Notification{
		Type: "payment",
		Data: datatypes.JSON(`{"customer_name":"Alice","amount":150000,"payment_method":"bank_transfer"}`),
	}
	payload, ok := n.Payload().(PaymentPayload)
	if !ok {
		t.Fatalf("expected PaymentPayload, got %T", n.Payload())
	}
	if payload.CustomerName != "Alice" || payload.Amount != 150000 || payload.PaymentMethod != "bank_transfer" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestPayloadFallsBackToGeneric(t *testing.T) {
	n := Notification{
		Type: "billing",
		Data: datatypes.JSON(`{"invoice_number":"INV-7-202609","days_left":3}`),
	}
	generic, ok := n.Payload().(GenericPayload)
	if !ok {
		t.Fatalf("expected GenericPayload, got %T", n.Payload())
	}
	if generic["invoice_number"] != "INV-7-202609" {
		t.Fatalf("unexpected payload: %+v", generic)
	}
}

func TestPayloadNilWhenEmptyOrInvalid(t *testing.T) {
	empty := Notification{Type: "system"}
	if empty.Payload() != nil {
		t.Fatal("expected nil payload for empty Data")
	}
	broken := Notification{Type: "system", Data: datatypes.JSON(`not json`)}
	if broken.Payload() != nil {
		t.Fatal("expected nil payload for malformed Data")
	}
}
