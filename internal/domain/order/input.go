package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

const maxReasonLen = 500

// MaxItemQuantity bounds the quantity of a single order line.
const MaxItemQuantity = 10000

var (
	// ErrEmptyItems is returned when an order would be created without lines.
	ErrEmptyItems = fault.Validation("items required")
	// ErrNotFound is returned for unknown or cross-store orders.
	ErrNotFound = fault.NotFound("order not found")
	// ErrItemNotFound is returned when removing a line the order does not have.
	ErrItemNotFound = fault.NotFound("order item not found")
	// ErrNotPending is returned when editing an order that is no longer pending.
	ErrNotPending = fault.Conflict("only pending orders can be modified")
	// ErrAlreadyPaid is returned when paying a paid order.
	ErrAlreadyPaid = fault.Conflict("order is already paid")
	// ErrAlreadyCancelled is returned when paying or cancelling a cancelled order.
	ErrAlreadyCancelled = fault.Conflict("order is already cancelled")
)

var hundred = decimal.NewFromInt(100)

// ProductNotFoundError indicates a requested product does not exist in the
// store. It is both a validation failure of the request and a missing
// reference.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == fault.ErrValidation || target == fault.ErrNotFound
}

// Actor identifies who performs an operation and in which store.
type Actor struct {
	StoreID string
	UserID  string
}

func (a Actor) validate() error {
	if a.StoreID == "" || a.UserID == "" {
		return fault.Validation("actor store and user are required")
	}
	return nil
}

// ItemInput is a requested order line.
type ItemInput struct {
	ProductID string
	Quantity  int
}

// CreateInput holds the input for creating an order.
type CreateInput struct {
	Items          []ItemInput
	CustomerID     string
	Type           Type
	Notes          string
	TaxPercentage  *decimal.Decimal
	DeliveryFee    *decimal.Decimal
	DiscountAmount *decimal.Decimal
}

// Validate checks the input and applies defaults.
func (in *CreateInput) Validate() error {
	if err := validateItems(in.Items); err != nil {
		return err
	}
	if in.Type == "" {
		in.Type = TypeTakeaway
	}
	if err := validateType(in.Type); err != nil {
		return err
	}
	return validateCharges(in.TaxPercentage, in.DeliveryFee, in.DiscountAmount, "discount amount")
}

// UpdateInput holds optional field edits of a pending order. Nil fields are
// left unchanged; a nil Items slice keeps the current lines.
type UpdateInput struct {
	CustomerID     *string
	Type           *Type
	Notes          *string
	TaxPercentage  *decimal.Decimal
	DeliveryFee    *decimal.Decimal
	DiscountAmount *decimal.Decimal
	Items          []ItemInput
}

// Validate checks the present fields.
func (in *UpdateInput) Validate() error {
	if in.Items != nil {
		if err := validateItems(in.Items); err != nil {
			return err
		}
	}
	if in.Type != nil {
		if err := validateType(*in.Type); err != nil {
			return err
		}
	}
	return validateCharges(in.TaxPercentage, in.DeliveryFee, in.DiscountAmount, "discount amount")
}

// PayInput holds the input for paying an order.
type PayInput struct {
	Method         PaymentMethod
	Amount         decimal.Decimal
	PointsToUse    int
	VoucherCode    string
	TaxPercentage  *decimal.Decimal
	DeliveryFee    *decimal.Decimal
	ManualDiscount *decimal.Decimal
}

// Validate checks the payment input.
func (in *PayInput) Validate() error {
	switch in.Method {
	case PaymentCash, PaymentCard, PaymentQRIS, PaymentTransfer:
	default:
		return fault.Validation("unknown payment method %q", in.Method)
	}
	if in.Amount.IsNegative() {
		return fault.Validation("payment amount must not be negative")
	}
	if in.PointsToUse < 0 {
		return fault.Validation("points to use must not be negative")
	}
	in.VoucherCode = strings.TrimSpace(in.VoucherCode)
	return validateCharges(in.TaxPercentage, in.DeliveryFee, in.ManualDiscount, "manual discount")
}

// CancelInput holds the input for cancelling an order.
type CancelInput struct {
	Reason string
}

// Validate checks the cancellation reason.
func (in *CancelInput) Validate() error {
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Reason == "" {
		return fault.Validation("cancellation reason is required")
	}
	if len(in.Reason) > maxReasonLen {
		return fault.Validation("cancellation reason must be at most %d characters", maxReasonLen)
	}
	return nil
}

func validateItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	for _, it := range items {
		if err := it.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (it ItemInput) validate() error {
	if it.ProductID == "" {
		return fault.Validation("product id is required")
	}
	if it.Quantity < 1 {
		return fault.Validation("quantity must be at least 1 for product %s", it.ProductID)
	}
	if it.Quantity > MaxItemQuantity {
		return fault.Validation("quantity must be at most %d for product %s", MaxItemQuantity, it.ProductID)
	}
	return nil
}

// addQuantity sums two line quantities of one product within MaxItemQuantity.
func addQuantity(productID string, a, b int) (int, error) {
	if b > MaxItemQuantity-a {
		return 0, fault.Validation("quantity must be at most %d for product %s", MaxItemQuantity, productID)
	}
	return a + b, nil
}

func validateType(t Type) error {
	if t != TypeDineIn && t != TypeTakeaway {
		return fault.Validation("unknown order type %q", t)
	}
	return nil
}

func validateCharges(tax, fee, discount *decimal.Decimal, discountName string) error {
	if tax != nil && (tax.IsNegative() || tax.GreaterThan(hundred)) {
		return fault.Validation("tax percentage must be between 0 and 100")
	}
	if fee != nil && fee.IsNegative() {
		return fault.Validation("delivery fee must not be negative")
	}
	if discount != nil && discount.IsNegative() {
		return fault.Validation("%s must not be negative", discountName)
	}
	return nil
}

// mergeItems folds repeated products into one line, keeping first-seen order.
// Items must already be validated.
func mergeItems(items []ItemInput) ([]ItemInput, error) {
	out := make([]ItemInput, 0, len(items))
	idx := make(map[string]int, len(items))
	for _, it := range items {
		i, ok := idx[it.ProductID]
		if !ok {
			idx[it.ProductID] = len(out)
			out = append(out, it)
			continue
		}
		qty, err := addQuantity(it.ProductID, out[i].Quantity, it.Quantity)
		if err != nil {
			return nil, err
		}
		out[i].Quantity = qty
	}
	return out, nil
}
