package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	"github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/pkg/apperror"
	"github.com/sellpoint/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CheckoutService turns a validated cart into an immutable bill. It owns the
// whole checkout sequence: stock reservation, discount pricing, payment
// settlement, loyalty accrual and persistence, with compensating actions when
// a later step fails after stock was already taken.
type CheckoutService struct {
	billRepo  repository.BillRepository
	itemRepo  repository.ItemRepository
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	now       func() time.Time
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	billRepo repository.BillRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
) *CheckoutService {
	return &CheckoutService{
		billRepo:  billRepo,
		itemRepo:  itemRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// CheckoutLineInput represents one cart line
type CheckoutLineInput struct {
	ItemID   uuid.UUID
	Quantity int
}

// CheckoutInput represents the complete-bill input
type CheckoutInput struct {
	CashierID     uuid.UUID
	CustomerID    *uuid.UUID
	Items         []CheckoutLineInput
	PaymentMethod enum.PaymentMethod
	TaxAmount     decimal.Decimal
}

// CompleteBill runs the checkout sequence and returns the persisted bill.
//
// Stock is decremented for all lines atomically before any pricing happens, so
// two concurrent checkouts can never both take the last unit. Every step after
// that decrement restores stock (and any loyalty movements) on failure.
func (s *CheckoutService) CompleteBill(ctx context.Context, input *CheckoutInput) (*entity.Bill, error) {
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationErrorf("Invalid payment method: %s", input.PaymentMethod)
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("Bill must contain at least one item")
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, apperror.NewValidationErrorf("Invalid quantity %d for item %s", line.Quantity, line.ItemID)
		}
	}
	if input.TaxAmount.IsNegative() {
		return nil, apperror.NewValidationError("Tax amount cannot be negative")
	}

	cashier, err := s.userRepo.GetByID(ctx, input.CashierID)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, apperror.NewNotFoundError("Cashier")
	}

	var customer *entity.User
	if input.CustomerID != nil {
		customer, err = s.userRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	if input.PaymentMethod == enum.PaymentLoyaltyPoints && customer == nil {
		return nil, apperror.NewValidationError("Loyalty points payment requires a customer")
	}

	events, err := s.eventRepo.ActiveOn(ctx, s.now())
	if err != nil {
		return nil, err
	}

	// Batch fetch all items in one query (prevents N+1)
	itemIDs := make([]uuid.UUID, len(input.Items))
	for i, line := range input.Items {
		itemIDs[i] = line.ItemID
	}
	items, err := s.itemRepo.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	itemMap := make(map[uuid.UUID]*entity.Item, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	// Duplicate lines for the same item sum into one decrement
	stockDecrements := make(map[uuid.UUID]int)
	for _, line := range input.Items {
		item, exists := itemMap[line.ItemID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Item %s", line.ItemID))
		}
		stockDecrements[item.ID] += line.Quantity
	}

	// Atomically decrement stock for every line, all or nothing
	failedIDs, err := s.itemRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if item, exists := itemMap[id]; exists {
				failedNames = append(failedNames, item.Name)
			}
		}
		return nil, apperror.NewValidationErrorf("Insufficient stock for: %v", failedNames)
	}

	// Price each line. The item discount applies to the original price, the
	// event discount to what remains. When several events cover an item the
	// largest discount wins.
	var total decimal.Decimal
	var earnedPoints int
	billItems := make([]entity.BillItem, 0, len(input.Items))
	for _, line := range input.Items {
		item := itemMap[line.ItemID]
		qty := decimal.NewFromInt(int64(line.Quantity))
		originalPrice := item.Price.Mul(qty)

		eventDiscount := decimal.Zero
		for i := range events {
			if !events[i].AppliesTo(item.ID, item.CategoryID) {
				continue
			}
			if events[i].Discount.GreaterThan(eventDiscount) {
				eventDiscount = events[i].Discount
			}
		}

		afterItem := originalPrice.Mul(oneHundred.Sub(item.Discount)).Div(oneHundred)
		subtotal := afterItem.Mul(oneHundred.Sub(eventDiscount)).Div(oneHundred).Round(2)

		total = total.Add(subtotal)
		earnedPoints += item.LoyaltyPoints * line.Quantity

		billItems = append(billItems, entity.BillItem{
			ItemID:        item.ID,
			ItemName:      item.Name,
			Quantity:      line.Quantity,
			Price:         item.Price,
			OriginalPrice: originalPrice,
			ItemDiscount:  item.Discount,
			EventDiscount: eventDiscount,
			Subtotal:      subtotal,
			LoyaltyPoints: item.LoyaltyPoints * line.Quantity,
		})
	}

	// Settle payment. Cash, UPI and cheque clear unconditionally; loyalty
	// points need the balance to cover the total rounded up to whole points.
	var pointsUsed int
	if input.PaymentMethod == enum.PaymentLoyaltyPoints {
		pointsUsed = int(total.Ceil().IntPart())
		if pointsUsed > 0 {
			ok, err := s.userRepo.AtomicDeductLoyaltyPoints(ctx, customer.ID, pointsUsed)
			if err != nil {
				_ = s.itemRepo.AtomicIncrementBatch(ctx, stockDecrements)
				return nil, err
			}
			if !ok {
				_ = s.itemRepo.AtomicIncrementBatch(ctx, stockDecrements)
				return nil, apperror.NewValidationErrorf(
					"Insufficient loyalty points: %d required, %d available", pointsUsed, customer.LoyaltyPoints)
			}
		}
	}

	// Earned points accrue whenever a customer is on the bill, independent of
	// how they paid
	if customer != nil && earnedPoints > 0 {
		if err := s.userRepo.AddLoyaltyPoints(ctx, customer.ID, earnedPoints); err != nil {
			s.compensate(ctx, stockDecrements, customer, pointsUsed, 0)
			return nil, err
		}
	}

	customerName := ""
	var customerID *uuid.UUID
	if customer != nil {
		customerName = customer.Name
		id := customer.ID
		customerID = &id
	}

	bill := &entity.Bill{
		CustomerID:        customerID,
		CustomerName:      customerName,
		CashierID:         cashier.ID,
		CashierName:       cashier.Name,
		TotalAmount:       total,
		TaxAmount:         input.TaxAmount,
		PaymentMethod:     input.PaymentMethod,
		LoyaltyPointsUsed: pointsUsed,
		Items:             billItems,
	}

	if err := s.billRepo.CreateWithItems(ctx, bill); err != nil {
		s.compensate(ctx, stockDecrements, customer, pointsUsed, earnedPoints)
		return nil, apperror.NewPersistenceError("create bill", err)
	}

	created, err := s.billRepo.GetByID(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return bill, nil
	}
	return created, nil
}

// compensate reverses the side effects taken before a failed step: stock goes
// back, spent points are refunded and credited points are clawed back.
func (s *CheckoutService) compensate(ctx context.Context, stockDecrements map[uuid.UUID]int, customer *entity.User, pointsSpent, pointsCredited int) {
	_ = s.itemRepo.AtomicIncrementBatch(ctx, stockDecrements)
	if customer == nil {
		return
	}
	if pointsSpent > 0 {
		_ = s.userRepo.AddLoyaltyPoints(ctx, customer.ID, pointsSpent)
	}
	if pointsCredited > 0 {
		_, _ = s.userRepo.AtomicDeductLoyaltyPoints(ctx, customer.ID, pointsCredited)
	}
}

// GetBill retrieves a bill by ID
func (s *CheckoutService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetReceipt retrieves a bill and composes its receipt view. The figures come
// straight from the stored lines, nothing is recomputed.
func (s *CheckoutService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}
	return entity.NewReceipt(bill), nil
}

// ListBills lists bills with filtering
func (s *CheckoutService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}
