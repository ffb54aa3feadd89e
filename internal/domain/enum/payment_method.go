package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a bill was settled
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentUPI           PaymentMethod = "UPI"
	PaymentCheque        PaymentMethod = "cheque"
	PaymentLoyaltyPoints PaymentMethod = "loyalty points"
)

// Valid reports whether the payment method is one of the accepted values
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentUPI, PaymentCheque, PaymentLoyaltyPoints:
		return true
	}
	return false
}

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = PaymentMethod(str)
	return nil
}

func (p PaymentMethod) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = PaymentMethod(v)
	case []byte:
		*p = PaymentMethod(v)
	}
	return nil
}
