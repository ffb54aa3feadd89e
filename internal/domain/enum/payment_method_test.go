package enum

import (
	"encoding/json"
	"testing"
)

func TestPaymentMethodValid(t *testing.T) {
	tests := []struct {
		method PaymentMethod
		want   bool
	}{
		{PaymentCash, true},
		{PaymentUPI, true},
		{PaymentCheque, true},
		{PaymentLoyaltyPoints, true},
		{PaymentMethod("card"), false},
		{PaymentMethod(""), false},
		{PaymentMethod("Cash"), false},
	}

	for _, tt := range tests {
		if got := tt.method.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.method, got, tt.want)
		}
	}
}

func TestPaymentMethodJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(PaymentLoyaltyPoints)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"loyalty points"` {
		t.Errorf("marshaled = %s", data)
	}

	var p PaymentMethod
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p != PaymentLoyaltyPoints {
		t.Errorf("round trip = %q", p)
	}
}
