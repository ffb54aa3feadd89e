package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	"github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/pkg/apperror"
	"github.com/sellpoint/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

type fakeItemRepo struct {
	items map[uuid.UUID]*entity.Item
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error { return nil }
func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error) {
	var out []entity.Item
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}
func (r *fakeItemRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Item, error) {
	return nil, nil
}
func (r *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error { return nil }
func (r *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeItemRepo) List(ctx context.Context, params *repository.ItemFilterParams) ([]entity.Item, int64, error) {
	return nil, 0, nil
}
func (r *fakeItemRepo) GetLowStock(ctx context.Context) ([]entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	item, ok := r.items[id]
	if !ok || item.Stock < amount {
		return false, nil
	}
	item.Stock -= amount
	return true, nil
}
func (r *fakeItemRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, qty := range decrements {
		item, ok := r.items[id]
		if !ok || item.Stock < qty {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, qty := range decrements {
		r.items[id].Stock -= qty
	}
	return nil, nil
}
func (r *fakeItemRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	for id, qty := range increments {
		if item, ok := r.items[id]; ok {
			item.Stock += qty
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeUserRepo) ListByRole(ctx context.Context, role enum.Role, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	return nil, 0, nil
}
func (r *fakeUserRepo) AtomicDeductLoyaltyPoints(ctx context.Context, id uuid.UUID, points int) (bool, error) {
	user, ok := r.users[id]
	if !ok || user.LoyaltyPoints < points {
		return false, nil
	}
	user.LoyaltyPoints -= points
	return true, nil
}
func (r *fakeUserRepo) AddLoyaltyPoints(ctx context.Context, id uuid.UUID, points int) error {
	if user, ok := r.users[id]; ok {
		user.LoyaltyPoints += points
	}
	return nil
}

type fakeEventRepo struct {
	active []entity.Event
}

func (r *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error { return nil }
func (r *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return nil, nil
}
func (r *fakeEventRepo) Update(ctx context.Context, event *entity.Event) error { return nil }
func (r *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (r *fakeEventRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Event, int64, error) {
	return nil, 0, nil
}
func (r *fakeEventRepo) ActiveOn(ctx context.Context, t time.Time) ([]entity.Event, error) {
	return r.active, nil
}
func (r *fakeEventRepo) ReplaceEligibility(ctx context.Context, event *entity.Event, categoryIDs, itemIDs []uuid.UUID) error {
	return nil
}

type fakeBillRepo struct {
	bills      map[uuid.UUID]*entity.Bill
	failCreate bool
}

func (r *fakeBillRepo) CreateWithItems(ctx context.Context, bill *entity.Bill) error {
	if r.failCreate {
		return errors.New("connection reset")
	}
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	bill.CreatedAt = time.Now()
	r.bills[bill.ID] = bill
	return nil
}
func (r *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return r.bills[id], nil
}
func (r *fakeBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	return nil, 0, nil
}
func (r *fakeBillRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

type checkoutFixture struct {
	svc       *CheckoutService
	itemRepo  *fakeItemRepo
	userRepo  *fakeUserRepo
	eventRepo *fakeEventRepo
	billRepo  *fakeBillRepo
	cashier   *entity.User
	customer  *entity.User
}

func newCheckoutFixture() *checkoutFixture {
	cashier := &entity.User{ID: uuid.New(), Name: "Alice", Role: enum.RoleCashier}
	customer := &entity.User{ID: uuid.New(), Name: "Bob", Role: enum.RoleCustomer, LoyaltyPoints: 50}

	itemRepo := &fakeItemRepo{items: map[uuid.UUID]*entity.Item{}}
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{
		cashier.ID:  cashier,
		customer.ID: customer,
	}}
	eventRepo := &fakeEventRepo{}
	billRepo := &fakeBillRepo{bills: map[uuid.UUID]*entity.Bill{}}

	return &checkoutFixture{
		svc:       NewCheckoutService(billRepo, itemRepo, userRepo, eventRepo),
		itemRepo:  itemRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		billRepo:  billRepo,
		cashier:   cashier,
		customer:  customer,
	}
}

func (f *checkoutFixture) addItem(price string, stock int, discount string, loyaltyPoints int) *entity.Item {
	item := &entity.Item{
		ID:            uuid.New(),
		Name:          "item-" + uuid.NewString()[:8],
		Price:         decimal.RequireFromString(price),
		Stock:         stock,
		CategoryID:    uuid.New(),
		Discount:      decimal.RequireFromString(discount),
		LoyaltyPoints: loyaltyPoints,
	}
	f.itemRepo.items[item.ID] = item
	return item
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompleteBillNoDiscounts(t *testing.T) {
	f := newCheckoutFixture()
	a := f.addItem("10.00", 5, "0", 0)
	b := f.addItem("3.50", 5, "0", 0)

	bill, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID: f.cashier.ID,
		Items: []CheckoutLineInput{
			{ItemID: a.ID, Quantity: 2},
			{ItemID: b.ID, Quantity: 1},
		},
		PaymentMethod: enum.PaymentCash,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}

	if !bill.TotalAmount.Equal(dec("23.50")) {
		t.Errorf("total = %s, want 23.50", bill.TotalAmount)
	}
	if a.Stock != 3 || b.Stock != 4 {
		t.Errorf("stock = %d, %d, want 3, 4", a.Stock, b.Stock)
	}
	if bill.CashierName != "Alice" {
		t.Errorf("cashier name = %q, want Alice", bill.CashierName)
	}
	if bill.CustomerName != "" {
		t.Errorf("customer name = %q, want empty for guest", bill.CustomerName)
	}
}

func TestCompleteBillDiscountOrdering(t *testing.T) {
	// 20.00 with 10% item discount leaves 18.00; a 20% event discount on the
	// remainder leaves 14.40, not 14.00.
	f := newCheckoutFixture()
	item := f.addItem("20.00", 5, "10", 0)

	f.eventRepo.active = []entity.Event{{
		ID:       uuid.New(),
		Discount: dec("20"),
		Items:    []entity.Item{{ID: item.ID}},
	}}

	bill, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}

	line := bill.Items[0]
	if !line.Subtotal.Equal(dec("14.40")) {
		t.Errorf("subtotal = %s, want 14.40", line.Subtotal)
	}
	if !line.ItemDiscount.Equal(dec("10")) || !line.EventDiscount.Equal(dec("20")) {
		t.Errorf("discounts = %s/%s, want 10/20", line.ItemDiscount, line.EventDiscount)
	}
	if !line.OriginalPrice.Equal(dec("20.00")) {
		t.Errorf("original price = %s, want 20.00", line.OriginalPrice)
	}
}

func TestCompleteBillLargestEventDiscountWins(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("100.00", 5, "0", 0)

	f.eventRepo.active = []entity.Event{
		{ID: uuid.New(), Discount: dec("5"), Items: []entity.Item{{ID: item.ID}}},
		{ID: uuid.New(), Discount: dec("15"), Categories: []entity.Category{{ID: item.CategoryID}}},
		{ID: uuid.New(), Discount: dec("10"), Items: []entity.Item{{ID: item.ID}}},
	}

	bill, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}

	if !bill.Items[0].EventDiscount.Equal(dec("15")) {
		t.Errorf("event discount = %s, want 15", bill.Items[0].EventDiscount)
	}
	if !bill.TotalAmount.Equal(dec("85.00")) {
		t.Errorf("total = %s, want 85.00", bill.TotalAmount)
	}
}

func TestCompleteBillEventIgnoresIneligibleItem(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("10.00", 5, "0", 0)

	f.eventRepo.active = []entity.Event{{
		ID:       uuid.New(),
		Discount: dec("50"),
		Items:    []entity.Item{{ID: uuid.New()}},
	}}

	bill, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}

	if !bill.TotalAmount.Equal(dec("10.00")) {
		t.Errorf("total = %s, want 10.00", bill.TotalAmount)
	}
	if !bill.Items[0].EventDiscount.IsZero() {
		t.Errorf("event discount = %s, want 0", bill.Items[0].EventDiscount)
	}
}

func TestCompleteBillInsufficientStock(t *testing.T) {
	f := newCheckoutFixture()
	ok := f.addItem("5.00", 10, "0", 0)
	short := f.addItem("5.00", 1, "0", 0)

	_, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID: f.cashier.ID,
		Items: []CheckoutLineInput{
			{ItemID: ok.ID, Quantity: 2},
			{ItemID: short.ID, Quantity: 3},
		},
		PaymentMethod: enum.PaymentCash,
	})
	if err == nil {
		t.Fatal("expected error for insufficient stock")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 400 {
		t.Errorf("code = %d, want 400", appErr.Code)
	}

	// All or nothing: neither item loses stock and no bill is written.
	if ok.Stock != 10 || short.Stock != 1 {
		t.Errorf("stock changed on failed checkout: %d, %d", ok.Stock, short.Stock)
	}
	if len(f.billRepo.bills) != 0 {
		t.Errorf("bill persisted on failed checkout")
	}
}

func TestCompleteBillLoyaltyPayment(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("30.00", 5, "0", 0)

	bill, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		CustomerID:    &f.customer.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentLoyaltyPoints,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}

	if bill.LoyaltyPointsUsed != 30 {
		t.Errorf("points used = %d, want 30", bill.LoyaltyPointsUsed)
	}
	if f.customer.LoyaltyPoints != 20 {
		t.Errorf("balance = %d, want 20", f.customer.LoyaltyPoints)
	}
	if bill.CustomerName != "Bob" {
		t.Errorf("customer name = %q, want Bob", bill.CustomerName)
	}
}

func TestCompleteBillLoyaltyPaymentRoundsUp(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("9.50", 5, "0", 0)

	bill, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		CustomerID:    &f.customer.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentLoyaltyPoints,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}

	if bill.LoyaltyPointsUsed != 10 {
		t.Errorf("points used = %d, want 10", bill.LoyaltyPointsUsed)
	}
	if f.customer.LoyaltyPoints != 40 {
		t.Errorf("balance = %d, want 40", f.customer.LoyaltyPoints)
	}
}

func TestCompleteBillInsufficientLoyaltyPoints(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("80.00", 5, "0", 0)

	_, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		CustomerID:    &f.customer.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentLoyaltyPoints,
	})
	if err == nil {
		t.Fatal("expected error for insufficient points")
	}
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("code = %d, want 400", apperror.GetAppError(err).Code)
	}

	if f.customer.LoyaltyPoints != 50 {
		t.Errorf("balance = %d, want untouched 50", f.customer.LoyaltyPoints)
	}
	if item.Stock != 5 {
		t.Errorf("stock = %d, want restored 5", item.Stock)
	}
}

func TestCompleteBillLoyaltyPaymentRequiresCustomer(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("5.00", 5, "0", 0)

	_, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentLoyaltyPoints,
	})
	if err == nil {
		t.Fatal("expected error for guest loyalty payment")
	}
	if item.Stock != 5 {
		t.Errorf("stock = %d, want 5", item.Stock)
	}
}

func TestCompleteBillAccruesLoyaltyPoints(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("4.00", 10, "0", 3)

	_, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		CustomerID:    &f.customer.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 4}},
		PaymentMethod: enum.PaymentCash,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}

	// 3 points per unit, 4 units, on top of the starting 50.
	if f.customer.LoyaltyPoints != 62 {
		t.Errorf("balance = %d, want 62", f.customer.LoyaltyPoints)
	}
}

func TestCompleteBillNoAccrualForGuest(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("4.00", 10, "0", 3)

	bill, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 2}},
		PaymentMethod: enum.PaymentCash,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}
	if bill.Items[0].LoyaltyPoints != 6 {
		t.Errorf("line points = %d, want 6", bill.Items[0].LoyaltyPoints)
	}
}

func TestCompleteBillCompensatesOnPersistenceFailure(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("10.00", 5, "0", 2)
	f.billRepo.failCreate = true

	_, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		CustomerID:    &f.customer.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 2}},
		PaymentMethod: enum.PaymentLoyaltyPoints,
	})
	if err == nil {
		t.Fatal("expected persistence error")
	}

	if item.Stock != 5 {
		t.Errorf("stock = %d, want restored 5", item.Stock)
	}
	// Spent points refunded, credited points clawed back.
	if f.customer.LoyaltyPoints != 50 {
		t.Errorf("balance = %d, want restored 50", f.customer.LoyaltyPoints)
	}
}

func TestCompleteBillValidation(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("10.00", 5, "0", 0)

	tests := []struct {
		name  string
		input *CheckoutInput
	}{
		{
			name: "unknown payment method",
			input: &CheckoutInput{
				CashierID:     f.cashier.ID,
				Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
				PaymentMethod: enum.PaymentMethod("barter"),
			},
		},
		{
			name: "empty cart",
			input: &CheckoutInput{
				CashierID:     f.cashier.ID,
				PaymentMethod: enum.PaymentCash,
			},
		},
		{
			name: "zero quantity",
			input: &CheckoutInput{
				CashierID:     f.cashier.ID,
				Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 0}},
				PaymentMethod: enum.PaymentCash,
			},
		},
		{
			name: "negative tax",
			input: &CheckoutInput{
				CashierID:     f.cashier.ID,
				Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
				PaymentMethod: enum.PaymentCash,
				TaxAmount:     dec("-1"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CompleteBill(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if apperror.GetAppError(err).Code != 400 {
				t.Errorf("code = %d, want 400", apperror.GetAppError(err).Code)
			}
		})
	}
}

func TestCompleteBillUnknownParticipants(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("10.00", 5, "0", 0)
	missing := uuid.New()

	_, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     missing,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
	})
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("unknown cashier: code = %d, want 404", apperror.GetAppError(err).Code)
	}

	_, err = f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		CustomerID:    &missing,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
	})
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("unknown customer: code = %d, want 404", apperror.GetAppError(err).Code)
	}

	_, err = f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		Items:         []CheckoutLineInput{{ItemID: missing, Quantity: 1}},
		PaymentMethod: enum.PaymentCash,
	})
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("unknown item: code = %d, want 404", apperror.GetAppError(err).Code)
	}
}

func TestGetReceipt(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("12.00", 5, "0", 0)

	bill, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID:     f.cashier.ID,
		Items:         []CheckoutLineInput{{ItemID: item.ID, Quantity: 2}},
		PaymentMethod: enum.PaymentUPI,
	})
	if err != nil {
		t.Fatalf("CompleteBill: %v", err)
	}

	receipt, err := f.svc.GetReceipt(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("GetReceipt: %v", err)
	}

	if receipt.CustomerName != "Guest" {
		t.Errorf("customer name = %q, want Guest", receipt.CustomerName)
	}
	if receipt.CashierName != "Alice" {
		t.Errorf("cashier name = %q, want Alice", receipt.CashierName)
	}
	if !receipt.TotalAmount.Equal(dec("24.00")) {
		t.Errorf("total = %s, want 24.00", receipt.TotalAmount)
	}
	if receipt.PaymentMethod != "UPI" {
		t.Errorf("payment method = %q, want UPI", receipt.PaymentMethod)
	}

	// Receipts come straight from the stored bill; a second read is identical.
	again, err := f.svc.GetReceipt(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("GetReceipt again: %v", err)
	}
	if !again.TotalAmount.Equal(receipt.TotalAmount) || len(again.Lines) != len(receipt.Lines) {
		t.Error("receipt read is not stable")
	}

	if _, err := f.svc.GetReceipt(context.Background(), uuid.New()); apperror.GetAppError(err).Code != 404 {
		t.Errorf("missing bill: code = %d, want 404", apperror.GetAppError(err).Code)
	}
}

func TestCompleteBillMergesDuplicateLines(t *testing.T) {
	f := newCheckoutFixture()
	item := f.addItem("2.00", 3, "0", 0)

	_, err := f.svc.CompleteBill(context.Background(), &CheckoutInput{
		CashierID: f.cashier.ID,
		Items: []CheckoutLineInput{
			{ItemID: item.ID, Quantity: 2},
			{ItemID: item.ID, Quantity: 2},
		},
		PaymentMethod: enum.PaymentCash,
	})
	if err == nil {
		t.Fatal("expected insufficient stock when duplicate lines exceed stock")
	}
	if item.Stock != 3 {
		t.Errorf("stock = %d, want 3", item.Stock)
	}
}
