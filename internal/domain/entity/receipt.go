package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptLine is a single priced line on a receipt.
type ReceiptLine struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	ItemDiscount  decimal.Decimal `json:"item_discount"`
	EventDiscount decimal.Decimal `json:"event_discount"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// Receipt is a value object composed from a persisted bill at read time. It is
// never recomputed: the figures come straight from the stored bill lines.
type Receipt struct {
	BillID            string          `json:"bill_id"`
	Date              time.Time       `json:"date"`
	CashierName       string          `json:"cashier_name"`
	CustomerName      string          `json:"customer_name"`
	PaymentMethod     string          `json:"payment_method"`
	Lines             []ReceiptLine   `json:"lines"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	LoyaltyPointsUsed int             `json:"loyalty_points_used"`
}

// NewReceipt builds a printable receipt view from a stored bill.
func NewReceipt(b *Bill) *Receipt {
	customerName := b.CustomerName
	if customerName == "" {
		customerName = "Guest"
	}

	lines := make([]ReceiptLine, 0, len(b.Items))
	for _, li := range b.Items {
		lines = append(lines, ReceiptLine{
			Name:          li.ItemName,
			Quantity:      li.Quantity,
			Price:         li.Price,
			ItemDiscount:  li.ItemDiscount,
			EventDiscount: li.EventDiscount,
			Subtotal:      li.Subtotal,
		})
	}

	return &Receipt{
		BillID:            b.ID.String(),
		Date:              b.CreatedAt,
		CashierName:       b.CashierName,
		CustomerName:      customerName,
		PaymentMethod:     b.PaymentMethod.String(),
		Lines:             lines,
		TotalAmount:       b.TotalAmount,
		TaxAmount:         b.TaxAmount,
		LoyaltyPointsUsed: b.LoyaltyPointsUsed,
	}
}
