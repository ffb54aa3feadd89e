package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestEventAppliesTo(t *testing.T) {
	itemID := uuid.New()
	categoryID := uuid.New()

	event := &Event{
		Items:      []Item{{ID: itemID}},
		Categories: []Category{{ID: categoryID}},
	}

	if !event.AppliesTo(itemID, uuid.New()) {
		t.Error("directly listed item should qualify")
	}
	if !event.AppliesTo(uuid.New(), categoryID) {
		t.Error("item in a listed category should qualify")
	}
	if event.AppliesTo(uuid.New(), uuid.New()) {
		t.Error("unrelated item should not qualify")
	}
}

func TestNewReceiptGuestFallback(t *testing.T) {
	bill := &Bill{
		ID:          uuid.New(),
		CashierName: "Alice",
		Items:       []BillItem{{ItemName: "Soap", Quantity: 2}},
	}

	receipt := NewReceipt(bill)
	if receipt.CustomerName != "Guest" {
		t.Errorf("customer name = %q, want Guest", receipt.CustomerName)
	}
	if len(receipt.Lines) != 1 || receipt.Lines[0].Name != "Soap" {
		t.Errorf("lines = %+v", receipt.Lines)
	}

	bill.CustomerName = "Bob"
	if NewReceipt(bill).CustomerName != "Bob" {
		t.Error("named customer should not fall back to Guest")
	}
}
