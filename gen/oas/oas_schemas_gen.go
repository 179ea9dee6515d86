// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"io"
	"time"

	"github.com/go-faster/errors"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

type APIKey struct {
	APIKey string
	Roles  []string
}

// GetAPIKey returns the value of APIKey.
func (s *APIKey) GetAPIKey() string {
	return s.APIKey
}

// GetRoles returns the value of Roles.
func (s *APIKey) GetRoles() []string {
	return s.Roles
}

// SetAPIKey sets the value of APIKey.
func (s *APIKey) SetAPIKey(val string) {
	s.APIKey = val
}

// SetRoles sets the value of Roles.
func (s *APIKey) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/AppliedVoucher
type AppliedVoucher struct {
	Voucher  Voucher `json:"voucher"`
	Discount string  `json:"discount"`
}

// GetVoucher returns the value of Voucher.
func (s *AppliedVoucher) GetVoucher() Voucher {
	return s.Voucher
}

// GetDiscount returns the value of Discount.
func (s *AppliedVoucher) GetDiscount() string {
	return s.Discount
}

// SetVoucher sets the value of Voucher.
func (s *AppliedVoucher) SetVoucher(val Voucher) {
	s.Voucher = val
}

// SetDiscount sets the value of Discount.
func (s *AppliedVoucher) SetDiscount(val string) {
	s.Discount = val
}

// Ref: #/components/schemas/CancelRequest
type CancelRequest struct {
	Reason string `json:"reason"`
}

// GetReason returns the value of Reason.
func (s *CancelRequest) GetReason() string {
	return s.Reason
}

// SetReason sets the value of Reason.
func (s *CancelRequest) SetReason(val string) {
	s.Reason = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetCode returns the value of Code.
func (s *Error) GetCode() int {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// SetCode sets the value of Code.
func (s *Error) SetCode(val int) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

type GetSnapshotOK struct {
	Data io.Reader
}

// Read reads data from the Data reader.
//
// Kept to satisfy the io.Reader interface.
func (s GetSnapshotOK) Read(p []byte) (n int, err error) {
	if s.Data == nil {
		return 0, io.EOF
	}
	return s.Data.Read(p)
}

// Ref: #/components/schemas/ItemInput
type ItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// GetProductID returns the value of ProductID.
func (s *ItemInput) GetProductID() string {
	return s.ProductID
}

// GetQuantity returns the value of Quantity.
func (s *ItemInput) GetQuantity() int {
	return s.Quantity
}

// SetProductID sets the value of ProductID.
func (s *ItemInput) SetProductID(val string) {
	s.ProductID = val
}

// SetQuantity sets the value of Quantity.
func (s *ItemInput) SetQuantity(val int) {
	s.Quantity = val
}

// Ref: #/components/schemas/ItemsReplace
type ItemsReplace struct {
	Items []ItemInput `json:"items"`
}

// GetItems returns the value of Items.
func (s *ItemsReplace) GetItems() []ItemInput {
	return s.Items
}

// SetItems sets the value of Items.
func (s *ItemsReplace) SetItems(val []ItemInput) {
	s.Items = val
}

// NewOptDate returns new OptDate with value set to v.
func NewOptDate(v time.Time) OptDate {
	return OptDate{
		Value: v,
		Set:   true,
	}
}

// OptDate is optional time.Time.
type OptDate struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDate was set.
func (o OptDate) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDate) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDate) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDate) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDate) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptOrderStatus returns new OptOrderStatus with value set to v.
func NewOptOrderStatus(v OrderStatus) OptOrderStatus {
	return OptOrderStatus{
		Value: v,
		Set:   true,
	}
}

// OptOrderStatus is optional OrderStatus.
type OptOrderStatus struct {
	Value OrderStatus
	Set   bool
}

// IsSet returns true if OptOrderStatus was set.
func (o OptOrderStatus) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptOrderStatus) Reset() {
	var v OrderStatus
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptOrderStatus) SetTo(v OrderStatus) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptOrderStatus) Get() (v OrderStatus, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptOrderStatus) Or(d OrderStatus) OrderStatus {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptOrderType returns new OptOrderType with value set to v.
func NewOptOrderType(v OrderType) OptOrderType {
	return OptOrderType{
		Value: v,
		Set:   true,
	}
}

// OptOrderType is optional OrderType.
type OptOrderType struct {
	Value OrderType
	Set   bool
}

// IsSet returns true if OptOrderType was set.
func (o OptOrderType) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptOrderType) Reset() {
	var v OrderType
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptOrderType) SetTo(v OrderType) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptOrderType) Get() (v OrderType, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptOrderType) Or(d OrderType) OrderType {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptPaymentMethod returns new OptPaymentMethod with value set to v.
func NewOptPaymentMethod(v PaymentMethod) OptPaymentMethod {
	return OptPaymentMethod{
		Value: v,
		Set:   true,
	}
}

// OptPaymentMethod is optional PaymentMethod.
type OptPaymentMethod struct {
	Value PaymentMethod
	Set   bool
}

// IsSet returns true if OptPaymentMethod was set.
func (o OptPaymentMethod) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptPaymentMethod) Reset() {
	var v PaymentMethod
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptPaymentMethod) SetTo(v PaymentMethod) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptPaymentMethod) Get() (v PaymentMethod, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptPaymentMethod) Or(d PaymentMethod) PaymentMethod {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID                 string           `json:"id"`
	StoreID            string           `json:"store_id"`
	UserID             string           `json:"user_id"`
	CustomerID         OptString        `json:"customer_id"`
	VoucherID          OptString        `json:"voucher_id"`
	TransactionNumber  string           `json:"transaction_number"`
	Status             OrderStatus      `json:"status"`
	Type               OrderType        `json:"type"`
	Notes              OptString        `json:"notes"`
	Subtotal           string           `json:"subtotal"`
	TaxPercentage      string           `json:"tax_percentage"`
	TaxAmount          string           `json:"tax_amount"`
	DeliveryFee        string           `json:"delivery_fee"`
	DiscountAmount     string           `json:"discount_amount"`
	TotalAmount        string           `json:"total_amount"`
	PaymentMethod      OptPaymentMethod `json:"payment_method"`
	PaymentAmount      string           `json:"payment_amount"`
	ChangeAmount       string           `json:"change_amount"`
	PointsUsed         int              `json:"points_used"`
	PointsEarned       int              `json:"points_earned"`
	PaidAt             OptDateTime      `json:"paid_at"`
	CancelledBy        OptString        `json:"cancelled_by"`
	CancelledAt        OptDateTime      `json:"cancelled_at"`
	CancellationReason OptString        `json:"cancellation_reason"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	Items              []OrderItem      `json:"items"`
}

// GetID returns the value of ID.
func (s *Order) GetID() string {
	return s.ID
}

// GetStoreID returns the value of StoreID.
func (s *Order) GetStoreID() string {
	return s.StoreID
}

// GetUserID returns the value of UserID.
func (s *Order) GetUserID() string {
	return s.UserID
}

// GetCustomerID returns the value of CustomerID.
func (s *Order) GetCustomerID() OptString {
	return s.CustomerID
}

// GetVoucherID returns the value of VoucherID.
func (s *Order) GetVoucherID() OptString {
	return s.VoucherID
}

// GetTransactionNumber returns the value of TransactionNumber.
func (s *Order) GetTransactionNumber() string {
	return s.TransactionNumber
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() OrderStatus {
	return s.Status
}

// GetType returns the value of Type.
func (s *Order) GetType() OrderType {
	return s.Type
}

// GetNotes returns the value of Notes.
func (s *Order) GetNotes() OptString {
	return s.Notes
}

// GetSubtotal returns the value of Subtotal.
func (s *Order) GetSubtotal() string {
	return s.Subtotal
}

// GetTaxPercentage returns the value of TaxPercentage.
func (s *Order) GetTaxPercentage() string {
	return s.TaxPercentage
}

// GetTaxAmount returns the value of TaxAmount.
func (s *Order) GetTaxAmount() string {
	return s.TaxAmount
}

// GetDeliveryFee returns the value of DeliveryFee.
func (s *Order) GetDeliveryFee() string {
	return s.DeliveryFee
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *Order) GetDiscountAmount() string {
	return s.DiscountAmount
}

// GetTotalAmount returns the value of TotalAmount.
func (s *Order) GetTotalAmount() string {
	return s.TotalAmount
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *Order) GetPaymentMethod() OptPaymentMethod {
	return s.PaymentMethod
}

// GetPaymentAmount returns the value of PaymentAmount.
func (s *Order) GetPaymentAmount() string {
	return s.PaymentAmount
}

// GetChangeAmount returns the value of ChangeAmount.
func (s *Order) GetChangeAmount() string {
	return s.ChangeAmount
}

// GetPointsUsed returns the value of PointsUsed.
func (s *Order) GetPointsUsed() int {
	return s.PointsUsed
}

// GetPointsEarned returns the value of PointsEarned.
func (s *Order) GetPointsEarned() int {
	return s.PointsEarned
}

// GetPaidAt returns the value of PaidAt.
func (s *Order) GetPaidAt() OptDateTime {
	return s.PaidAt
}

// GetCancelledBy returns the value of CancelledBy.
func (s *Order) GetCancelledBy() OptString {
	return s.CancelledBy
}

// GetCancelledAt returns the value of CancelledAt.
func (s *Order) GetCancelledAt() OptDateTime {
	return s.CancelledAt
}

// GetCancellationReason returns the value of CancellationReason.
func (s *Order) GetCancellationReason() OptString {
	return s.CancellationReason
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Order) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// GetItems returns the value of Items.
func (s *Order) GetItems() []OrderItem {
	return s.Items
}

// SetID sets the value of ID.
func (s *Order) SetID(val string) {
	s.ID = val
}

// SetStoreID sets the value of StoreID.
func (s *Order) SetStoreID(val string) {
	s.StoreID = val
}

// SetUserID sets the value of UserID.
func (s *Order) SetUserID(val string) {
	s.UserID = val
}

// SetCustomerID sets the value of CustomerID.
func (s *Order) SetCustomerID(val OptString) {
	s.CustomerID = val
}

// SetVoucherID sets the value of VoucherID.
func (s *Order) SetVoucherID(val OptString) {
	s.VoucherID = val
}

// SetTransactionNumber sets the value of TransactionNumber.
func (s *Order) SetTransactionNumber(val string) {
	s.TransactionNumber = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val OrderStatus) {
	s.Status = val
}

// SetType sets the value of Type.
func (s *Order) SetType(val OrderType) {
	s.Type = val
}

// SetNotes sets the value of Notes.
func (s *Order) SetNotes(val OptString) {
	s.Notes = val
}

// SetSubtotal sets the value of Subtotal.
func (s *Order) SetSubtotal(val string) {
	s.Subtotal = val
}

// SetTaxPercentage sets the value of TaxPercentage.
func (s *Order) SetTaxPercentage(val string) {
	s.TaxPercentage = val
}

// SetTaxAmount sets the value of TaxAmount.
func (s *Order) SetTaxAmount(val string) {
	s.TaxAmount = val
}

// SetDeliveryFee sets the value of DeliveryFee.
func (s *Order) SetDeliveryFee(val string) {
	s.DeliveryFee = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *Order) SetDiscountAmount(val string) {
	s.DiscountAmount = val
}

// SetTotalAmount sets the value of TotalAmount.
func (s *Order) SetTotalAmount(val string) {
	s.TotalAmount = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *Order) SetPaymentMethod(val OptPaymentMethod) {
	s.PaymentMethod = val
}

// SetPaymentAmount sets the value of PaymentAmount.
func (s *Order) SetPaymentAmount(val string) {
	s.PaymentAmount = val
}

// SetChangeAmount sets the value of ChangeAmount.
func (s *Order) SetChangeAmount(val string) {
	s.ChangeAmount = val
}

// SetPointsUsed sets the value of PointsUsed.
func (s *Order) SetPointsUsed(val int) {
	s.PointsUsed = val
}

// SetPointsEarned sets the value of PointsEarned.
func (s *Order) SetPointsEarned(val int) {
	s.PointsEarned = val
}

// SetPaidAt sets the value of PaidAt.
func (s *Order) SetPaidAt(val OptDateTime) {
	s.PaidAt = val
}

// SetCancelledBy sets the value of CancelledBy.
func (s *Order) SetCancelledBy(val OptString) {
	s.CancelledBy = val
}

// SetCancelledAt sets the value of CancelledAt.
func (s *Order) SetCancelledAt(val OptDateTime) {
	s.CancelledAt = val
}

// SetCancellationReason sets the value of CancellationReason.
func (s *Order) SetCancellationReason(val OptString) {
	s.CancellationReason = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Order) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// SetItems sets the value of Items.
func (s *Order) SetItems(val []OrderItem) {
	s.Items = val
}

// Ref: #/components/schemas/OrderCreate
type OrderCreate struct {
	Items          []ItemInput  `json:"items"`
	CustomerID     OptString    `json:"customer_id"`
	Type           OptOrderType `json:"type"`
	Notes          OptString    `json:"notes"`
	TaxPercentage  OptString    `json:"tax_percentage"`
	DeliveryFee    OptString    `json:"delivery_fee"`
	DiscountAmount OptString    `json:"discount_amount"`
}

// GetItems returns the value of Items.
func (s *OrderCreate) GetItems() []ItemInput {
	return s.Items
}

// GetCustomerID returns the value of CustomerID.
func (s *OrderCreate) GetCustomerID() OptString {
	return s.CustomerID
}

// GetType returns the value of Type.
func (s *OrderCreate) GetType() OptOrderType {
	return s.Type
}

// GetNotes returns the value of Notes.
func (s *OrderCreate) GetNotes() OptString {
	return s.Notes
}

// GetTaxPercentage returns the value of TaxPercentage.
func (s *OrderCreate) GetTaxPercentage() OptString {
	return s.TaxPercentage
}

// GetDeliveryFee returns the value of DeliveryFee.
func (s *OrderCreate) GetDeliveryFee() OptString {
	return s.DeliveryFee
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *OrderCreate) GetDiscountAmount() OptString {
	return s.DiscountAmount
}

// SetItems sets the value of Items.
func (s *OrderCreate) SetItems(val []ItemInput) {
	s.Items = val
}

// SetCustomerID sets the value of CustomerID.
func (s *OrderCreate) SetCustomerID(val OptString) {
	s.CustomerID = val
}

// SetType sets the value of Type.
func (s *OrderCreate) SetType(val OptOrderType) {
	s.Type = val
}

// SetNotes sets the value of Notes.
func (s *OrderCreate) SetNotes(val OptString) {
	s.Notes = val
}

// SetTaxPercentage sets the value of TaxPercentage.
func (s *OrderCreate) SetTaxPercentage(val OptString) {
	s.TaxPercentage = val
}

// SetDeliveryFee sets the value of DeliveryFee.
func (s *OrderCreate) SetDeliveryFee(val OptString) {
	s.DeliveryFee = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *OrderCreate) SetDiscountAmount(val OptString) {
	s.DiscountAmount = val
}

// Ref: #/components/schemas/OrderItem
type OrderItem struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice string `json:"product_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

// GetID returns the value of ID.
func (s *OrderItem) GetID() string {
	return s.ID
}

// GetProductID returns the value of ProductID.
func (s *OrderItem) GetProductID() string {
	return s.ProductID
}

// GetProductName returns the value of ProductName.
func (s *OrderItem) GetProductName() string {
	return s.ProductName
}

// GetProductPrice returns the value of ProductPrice.
func (s *OrderItem) GetProductPrice() string {
	return s.ProductPrice
}

// GetQuantity returns the value of Quantity.
func (s *OrderItem) GetQuantity() int {
	return s.Quantity
}

// GetSubtotal returns the value of Subtotal.
func (s *OrderItem) GetSubtotal() string {
	return s.Subtotal
}

// SetID sets the value of ID.
func (s *OrderItem) SetID(val string) {
	s.ID = val
}

// SetProductID sets the value of ProductID.
func (s *OrderItem) SetProductID(val string) {
	s.ProductID = val
}

// SetProductName sets the value of ProductName.
func (s *OrderItem) SetProductName(val string) {
	s.ProductName = val
}

// SetProductPrice sets the value of ProductPrice.
func (s *OrderItem) SetProductPrice(val string) {
	s.ProductPrice = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetSubtotal sets the value of Subtotal.
func (s *OrderItem) SetSubtotal(val string) {
	s.Subtotal = val
}

// Ref: #/components/schemas/OrderStatus
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// AllValues returns all OrderStatus values.
func (OrderStatus) AllValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusCancelled,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderStatus) MarshalText() ([]byte, error) {
	switch s {
	case OrderStatusPending:
		return []byte(s), nil
	case OrderStatusPaid:
		return []byte(s), nil
	case OrderStatusCancelled:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderStatus) UnmarshalText(data []byte) error {
	switch OrderStatus(data) {
	case OrderStatusPending:
		*s = OrderStatusPending
		return nil
	case OrderStatusPaid:
		*s = OrderStatusPaid
		return nil
	case OrderStatusCancelled:
		*s = OrderStatusCancelled
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/OrderType
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
)

// AllValues returns all OrderType values.
func (OrderType) AllValues() []OrderType {
	return []OrderType{
		OrderTypeDineIn,
		OrderTypeTakeaway,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderType) MarshalText() ([]byte, error) {
	switch s {
	case OrderTypeDineIn:
		return []byte(s), nil
	case OrderTypeTakeaway:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderType) UnmarshalText(data []byte) error {
	switch OrderType(data) {
	case OrderTypeDineIn:
		*s = OrderTypeDineIn
		return nil
	case OrderTypeTakeaway:
		*s = OrderTypeTakeaway
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/OrderUpdate
type OrderUpdate struct {
	CustomerID     OptString    `json:"customer_id"`
	Type           OptOrderType `json:"type"`
	Notes          OptString    `json:"notes"`
	TaxPercentage  OptString    `json:"tax_percentage"`
	DeliveryFee    OptString    `json:"delivery_fee"`
	DiscountAmount OptString    `json:"discount_amount"`
	Items          []ItemInput  `json:"items"`
}

// GetCustomerID returns the value of CustomerID.
func (s *OrderUpdate) GetCustomerID() OptString {
	return s.CustomerID
}

// GetType returns the value of Type.
func (s *OrderUpdate) GetType() OptOrderType {
	return s.Type
}

// GetNotes returns the value of Notes.
func (s *OrderUpdate) GetNotes() OptString {
	return s.Notes
}

// GetTaxPercentage returns the value of TaxPercentage.
func (s *OrderUpdate) GetTaxPercentage() OptString {
	return s.TaxPercentage
}

// GetDeliveryFee returns the value of DeliveryFee.
func (s *OrderUpdate) GetDeliveryFee() OptString {
	return s.DeliveryFee
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *OrderUpdate) GetDiscountAmount() OptString {
	return s.DiscountAmount
}

// GetItems returns the value of Items.
func (s *OrderUpdate) GetItems() []ItemInput {
	return s.Items
}

// SetCustomerID sets the value of CustomerID.
func (s *OrderUpdate) SetCustomerID(val OptString) {
	s.CustomerID = val
}

// SetType sets the value of Type.
func (s *OrderUpdate) SetType(val OptOrderType) {
	s.Type = val
}

// SetNotes sets the value of Notes.
func (s *OrderUpdate) SetNotes(val OptString) {
	s.Notes = val
}

// SetTaxPercentage sets the value of TaxPercentage.
func (s *OrderUpdate) SetTaxPercentage(val OptString) {
	s.TaxPercentage = val
}

// SetDeliveryFee sets the value of DeliveryFee.
func (s *OrderUpdate) SetDeliveryFee(val OptString) {
	s.DeliveryFee = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *OrderUpdate) SetDiscountAmount(val OptString) {
	s.DiscountAmount = val
}

// SetItems sets the value of Items.
func (s *OrderUpdate) SetItems(val []ItemInput) {
	s.Items = val
}

// Ref: #/components/schemas/PayRequest
type PayRequest struct {
	PaymentMethod  PaymentMethod `json:"payment_method"`
	PaymentAmount  string        `json:"payment_amount"`
	PointsToUse    OptInt        `json:"points_to_use"`
	VoucherCode    OptString     `json:"voucher_code"`
	TaxPercentage  OptString     `json:"tax_percentage"`
	DeliveryFee    OptString     `json:"delivery_fee"`
	ManualDiscount OptString     `json:"manual_discount"`
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *PayRequest) GetPaymentMethod() PaymentMethod {
	return s.PaymentMethod
}

// GetPaymentAmount returns the value of PaymentAmount.
func (s *PayRequest) GetPaymentAmount() string {
	return s.PaymentAmount
}

// GetPointsToUse returns the value of PointsToUse.
func (s *PayRequest) GetPointsToUse() OptInt {
	return s.PointsToUse
}

// GetVoucherCode returns the value of VoucherCode.
func (s *PayRequest) GetVoucherCode() OptString {
	return s.VoucherCode
}

// GetTaxPercentage returns the value of TaxPercentage.
func (s *PayRequest) GetTaxPercentage() OptString {
	return s.TaxPercentage
}

// GetDeliveryFee returns the value of DeliveryFee.
func (s *PayRequest) GetDeliveryFee() OptString {
	return s.DeliveryFee
}

// GetManualDiscount returns the value of ManualDiscount.
func (s *PayRequest) GetManualDiscount() OptString {
	return s.ManualDiscount
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *PayRequest) SetPaymentMethod(val PaymentMethod) {
	s.PaymentMethod = val
}

// SetPaymentAmount sets the value of PaymentAmount.
func (s *PayRequest) SetPaymentAmount(val string) {
	s.PaymentAmount = val
}

// SetPointsToUse sets the value of PointsToUse.
func (s *PayRequest) SetPointsToUse(val OptInt) {
	s.PointsToUse = val
}

// SetVoucherCode sets the value of VoucherCode.
func (s *PayRequest) SetVoucherCode(val OptString) {
	s.VoucherCode = val
}

// SetTaxPercentage sets the value of TaxPercentage.
func (s *PayRequest) SetTaxPercentage(val OptString) {
	s.TaxPercentage = val
}

// SetDeliveryFee sets the value of DeliveryFee.
func (s *PayRequest) SetDeliveryFee(val OptString) {
	s.DeliveryFee = val
}

// SetManualDiscount sets the value of ManualDiscount.
func (s *PayRequest) SetManualDiscount(val OptString) {
	s.ManualDiscount = val
}

// Ref: #/components/schemas/PayResult
type PayResult struct {
	Order   Order      `json:"order"`
	Summary PaySummary `json:"summary"`
}

// GetOrder returns the value of Order.
func (s *PayResult) GetOrder() Order {
	return s.Order
}

// GetSummary returns the value of Summary.
func (s *PayResult) GetSummary() PaySummary {
	return s.Summary
}

// SetOrder sets the value of Order.
func (s *PayResult) SetOrder(val Order) {
	s.Order = val
}

// SetSummary sets the value of Summary.
func (s *PayResult) SetSummary(val PaySummary) {
	s.Summary = val
}

// Ref: #/components/schemas/PaySummary
type PaySummary struct {
	Subtotal        string `json:"subtotal"`
	TaxAmount       string `json:"tax_amount"`
	DeliveryFee     string `json:"delivery_fee"`
	VoucherDiscount string `json:"voucher_discount"`
	PointsDiscount  string `json:"points_discount"`
	ManualDiscount  string `json:"manual_discount"`
	TotalDiscount   string `json:"total_discount"`
	Total           string `json:"total"`
	PaymentAmount   string `json:"payment_amount"`
	Change          string `json:"change"`
	PointsUsed      int    `json:"points_used"`
	PointsEarned    int    `json:"points_earned"`
}

// GetSubtotal returns the value of Subtotal.
func (s *PaySummary) GetSubtotal() string {
	return s.Subtotal
}

// GetTaxAmount returns the value of TaxAmount.
func (s *PaySummary) GetTaxAmount() string {
	return s.TaxAmount
}

// GetDeliveryFee returns the value of DeliveryFee.
func (s *PaySummary) GetDeliveryFee() string {
	return s.DeliveryFee
}

// GetVoucherDiscount returns the value of VoucherDiscount.
func (s *PaySummary) GetVoucherDiscount() string {
	return s.VoucherDiscount
}

// GetPointsDiscount returns the value of PointsDiscount.
func (s *PaySummary) GetPointsDiscount() string {
	return s.PointsDiscount
}

// GetManualDiscount returns the value of ManualDiscount.
func (s *PaySummary) GetManualDiscount() string {
	return s.ManualDiscount
}

// GetTotalDiscount returns the value of TotalDiscount.
func (s *PaySummary) GetTotalDiscount() string {
	return s.TotalDiscount
}

// GetTotal returns the value of Total.
func (s *PaySummary) GetTotal() string {
	return s.Total
}

// GetPaymentAmount returns the value of PaymentAmount.
func (s *PaySummary) GetPaymentAmount() string {
	return s.PaymentAmount
}

// GetChange returns the value of Change.
func (s *PaySummary) GetChange() string {
	return s.Change
}

// GetPointsUsed returns the value of PointsUsed.
func (s *PaySummary) GetPointsUsed() int {
	return s.PointsUsed
}

// GetPointsEarned returns the value of PointsEarned.
func (s *PaySummary) GetPointsEarned() int {
	return s.PointsEarned
}

// SetSubtotal sets the value of Subtotal.
func (s *PaySummary) SetSubtotal(val string) {
	s.Subtotal = val
}

// SetTaxAmount sets the value of TaxAmount.
func (s *PaySummary) SetTaxAmount(val string) {
	s.TaxAmount = val
}

// SetDeliveryFee sets the value of DeliveryFee.
func (s *PaySummary) SetDeliveryFee(val string) {
	s.DeliveryFee = val
}

// SetVoucherDiscount sets the value of VoucherDiscount.
func (s *PaySummary) SetVoucherDiscount(val string) {
	s.VoucherDiscount = val
}

// SetPointsDiscount sets the value of PointsDiscount.
func (s *PaySummary) SetPointsDiscount(val string) {
	s.PointsDiscount = val
}

// SetManualDiscount sets the value of ManualDiscount.
func (s *PaySummary) SetManualDiscount(val string) {
	s.ManualDiscount = val
}

// SetTotalDiscount sets the value of TotalDiscount.
func (s *PaySummary) SetTotalDiscount(val string) {
	s.TotalDiscount = val
}

// SetTotal sets the value of Total.
func (s *PaySummary) SetTotal(val string) {
	s.Total = val
}

// SetPaymentAmount sets the value of PaymentAmount.
func (s *PaySummary) SetPaymentAmount(val string) {
	s.PaymentAmount = val
}

// SetChange sets the value of Change.
func (s *PaySummary) SetChange(val string) {
	s.Change = val
}

// SetPointsUsed sets the value of PointsUsed.
func (s *PaySummary) SetPointsUsed(val int) {
	s.PointsUsed = val
}

// SetPointsEarned sets the value of PointsEarned.
func (s *PaySummary) SetPointsEarned(val int) {
	s.PointsEarned = val
}

// Ref: #/components/schemas/PaymentMethod
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodQris     PaymentMethod = "qris"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// AllValues returns all PaymentMethod values.
func (PaymentMethod) AllValues() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodCard,
		PaymentMethodQris,
		PaymentMethodTransfer,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PaymentMethod) MarshalText() ([]byte, error) {
	switch s {
	case PaymentMethodCash:
		return []byte(s), nil
	case PaymentMethodCard:
		return []byte(s), nil
	case PaymentMethodQris:
		return []byte(s), nil
	case PaymentMethodTransfer:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PaymentMethod) UnmarshalText(data []byte) error {
	switch PaymentMethod(data) {
	case PaymentMethodCash:
		*s = PaymentMethodCash
		return nil
	case PaymentMethodCard:
		*s = PaymentMethodCard
		return nil
	case PaymentMethodQris:
		*s = PaymentMethodQris
		return nil
	case PaymentMethodTransfer:
		*s = PaymentMethodTransfer
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PointsAdjustRequest
type PointsAdjustRequest struct {
	// Signed change of the balance; must not be zero.
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// GetPoints returns the value of Points.
func (s *PointsAdjustRequest) GetPoints() int {
	return s.Points
}

// GetReason returns the value of Reason.
func (s *PointsAdjustRequest) GetReason() string {
	return s.Reason
}

// SetPoints sets the value of Points.
func (s *PointsAdjustRequest) SetPoints(val int) {
	s.Points = val
}

// SetReason sets the value of Reason.
func (s *PointsAdjustRequest) SetReason(val string) {
	s.Reason = val
}

// Ref: #/components/schemas/PointsEntry
type PointsEntry struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Type          PointsEntryType `json:"type"`
	Points        int             `json:"points"`
	BalanceAfter  int             `json:"balance_after"`
	TransactionID OptString       `json:"transaction_id"`
	Notes         OptString       `json:"notes"`
	CreatedBy     OptString       `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GetID returns the value of ID.
func (s *PointsEntry) GetID() string {
	return s.ID
}

// GetCustomerID returns the value of CustomerID.
func (s *PointsEntry) GetCustomerID() string {
	return s.CustomerID
}

// GetType returns the value of Type.
func (s *PointsEntry) GetType() PointsEntryType {
	return s.Type
}

// GetPoints returns the value of Points.
func (s *PointsEntry) GetPoints() int {
	return s.Points
}

// GetBalanceAfter returns the value of BalanceAfter.
func (s *PointsEntry) GetBalanceAfter() int {
	return s.BalanceAfter
}

// GetTransactionID returns the value of TransactionID.
func (s *PointsEntry) GetTransactionID() OptString {
	return s.TransactionID
}

// GetNotes returns the value of Notes.
func (s *PointsEntry) GetNotes() OptString {
	return s.Notes
}

// GetCreatedBy returns the value of CreatedBy.
func (s *PointsEntry) GetCreatedBy() OptString {
	return s.CreatedBy
}

// GetCreatedAt returns the value of CreatedAt.
func (s *PointsEntry) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// SetID sets the value of ID.
func (s *PointsEntry) SetID(val string) {
	s.ID = val
}

// SetCustomerID sets the value of CustomerID.
func (s *PointsEntry) SetCustomerID(val string) {
	s.CustomerID = val
}

// SetType sets the value of Type.
func (s *PointsEntry) SetType(val PointsEntryType) {
	s.Type = val
}

// SetPoints sets the value of Points.
func (s *PointsEntry) SetPoints(val int) {
	s.Points = val
}

// SetBalanceAfter sets the value of BalanceAfter.
func (s *PointsEntry) SetBalanceAfter(val int) {
	s.BalanceAfter = val
}

// SetTransactionID sets the value of TransactionID.
func (s *PointsEntry) SetTransactionID(val OptString) {
	s.TransactionID = val
}

// SetNotes sets the value of Notes.
func (s *PointsEntry) SetNotes(val OptString) {
	s.Notes = val
}

// SetCreatedBy sets the value of CreatedBy.
func (s *PointsEntry) SetCreatedBy(val OptString) {
	s.CreatedBy = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *PointsEntry) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// Ref: #/components/schemas/PointsEntryType
type PointsEntryType string

const (
	PointsEntryTypeEarned   PointsEntryType = "earned"
	PointsEntryTypeRedeemed PointsEntryType = "redeemed"
	PointsEntryTypeAdjusted PointsEntryType = "adjusted"
	PointsEntryTypeRefunded PointsEntryType = "refunded"
)

// AllValues returns all PointsEntryType values.
func (PointsEntryType) AllValues() []PointsEntryType {
	return []PointsEntryType{
		PointsEntryTypeEarned,
		PointsEntryTypeRedeemed,
		PointsEntryTypeAdjusted,
		PointsEntryTypeRefunded,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PointsEntryType) MarshalText() ([]byte, error) {
	switch s {
	case PointsEntryTypeEarned:
		return []byte(s), nil
	case PointsEntryTypeRedeemed:
		return []byte(s), nil
	case PointsEntryTypeAdjusted:
		return []byte(s), nil
	case PointsEntryTypeRefunded:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PointsEntryType) UnmarshalText(data []byte) error {
	switch PointsEntryType(data) {
	case PointsEntryTypeEarned:
		*s = PointsEntryTypeEarned
		return nil
	case PointsEntryTypeRedeemed:
		*s = PointsEntryTypeRedeemed
		return nil
	case PointsEntryTypeAdjusted:
		*s = PointsEntryTypeAdjusted
		return nil
	case PointsEntryTypeRefunded:
		*s = PointsEntryTypeRefunded
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PointsRedeemRequest
type PointsRedeemRequest struct {
	Points int `json:"points"`
}

// GetPoints returns the value of Points.
func (s *PointsRedeemRequest) GetPoints() int {
	return s.Points
}

// SetPoints sets the value of Points.
func (s *PointsRedeemRequest) SetPoints(val int) {
	s.Points = val
}

// Ref: #/components/schemas/Redemption
type Redemption struct {
	Entry   PointsEntry `json:"entry"`
	Voucher Voucher     `json:"voucher"`
}

// GetEntry returns the value of Entry.
func (s *Redemption) GetEntry() PointsEntry {
	return s.Entry
}

// GetVoucher returns the value of Voucher.
func (s *Redemption) GetVoucher() Voucher {
	return s.Voucher
}

// SetEntry sets the value of Entry.
func (s *Redemption) SetEntry(val PointsEntry) {
	s.Entry = val
}

// SetVoucher sets the value of Voucher.
func (s *Redemption) SetVoucher(val Voucher) {
	s.Voucher = val
}

// Ref: #/components/schemas/SnapshotType
type SnapshotType string

const (
	SnapshotTypePending SnapshotType = "pending"
	SnapshotTypePaid    SnapshotType = "paid"
)

// AllValues returns all SnapshotType values.
func (SnapshotType) AllValues() []SnapshotType {
	return []SnapshotType{
		SnapshotTypePending,
		SnapshotTypePaid,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SnapshotType) MarshalText() ([]byte, error) {
	switch s {
	case SnapshotTypePending:
		return []byte(s), nil
	case SnapshotTypePaid:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SnapshotType) UnmarshalText(data []byte) error {
	switch SnapshotType(data) {
	case SnapshotTypePending:
		*s = SnapshotTypePending
		return nil
	case SnapshotTypePaid:
		*s = SnapshotTypePaid
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/Voucher
type Voucher struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	Barcode     string      `json:"barcode"`
	Name        string      `json:"name"`
	Description OptString   `json:"description"`
	Type        VoucherType `json:"type"`
	Value       string      `json:"value"`
	MinPurchase string      `json:"min_purchase"`
	MaxDiscount OptString   `json:"max_discount"`
	UsageLimit  OptInt      `json:"usage_limit"`
	UsedCount   int         `json:"used_count"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	IsActive    bool        `json:"is_active"`
}

// GetID returns the value of ID.
func (s *Voucher) GetID() string {
	return s.ID
}

// GetCode returns the value of Code.
func (s *Voucher) GetCode() string {
	return s.Code
}

// GetBarcode returns the value of Barcode.
func (s *Voucher) GetBarcode() string {
	return s.Barcode
}

// GetName returns the value of Name.
func (s *Voucher) GetName() string {
	return s.Name
}

// GetDescription returns the value of Description.
func (s *Voucher) GetDescription() OptString {
	return s.Description
}

// GetType returns the value of Type.
func (s *Voucher) GetType() VoucherType {
	return s.Type
}

// GetValue returns the value of Value.
func (s *Voucher) GetValue() string {
	return s.Value
}

// GetMinPurchase returns the value of MinPurchase.
func (s *Voucher) GetMinPurchase() string {
	return s.MinPurchase
}

// GetMaxDiscount returns the value of MaxDiscount.
func (s *Voucher) GetMaxDiscount() OptString {
	return s.MaxDiscount
}

// GetUsageLimit returns the value of UsageLimit.
func (s *Voucher) GetUsageLimit() OptInt {
	return s.UsageLimit
}

// GetUsedCount returns the value of UsedCount.
func (s *Voucher) GetUsedCount() int {
	return s.UsedCount
}

// GetStartDate returns the value of StartDate.
func (s *Voucher) GetStartDate() time.Time {
	return s.StartDate
}

// GetEndDate returns the value of EndDate.
func (s *Voucher) GetEndDate() time.Time {
	return s.EndDate
}

// GetIsActive returns the value of IsActive.
func (s *Voucher) GetIsActive() bool {
	return s.IsActive
}

// SetID sets the value of ID.
func (s *Voucher) SetID(val string) {
	s.ID = val
}

// SetCode sets the value of Code.
func (s *Voucher) SetCode(val string) {
	s.Code = val
}

// SetBarcode sets the value of Barcode.
func (s *Voucher) SetBarcode(val string) {
	s.Barcode = val
}

// SetName sets the value of Name.
func (s *Voucher) SetName(val string) {
	s.Name = val
}

// SetDescription sets the value of Description.
func (s *Voucher) SetDescription(val OptString) {
	s.Description = val
}

// SetType sets the value of Type.
func (s *Voucher) SetType(val VoucherType) {
	s.Type = val
}

// SetValue sets the value of Value.
func (s *Voucher) SetValue(val string) {
	s.Value = val
}

// SetMinPurchase sets the value of MinPurchase.
func (s *Voucher) SetMinPurchase(val string) {
	s.MinPurchase = val
}

// SetMaxDiscount sets the value of MaxDiscount.
func (s *Voucher) SetMaxDiscount(val OptString) {
	s.MaxDiscount = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *Voucher) SetUsageLimit(val OptInt) {
	s.UsageLimit = val
}

// SetUsedCount sets the value of UsedCount.
func (s *Voucher) SetUsedCount(val int) {
	s.UsedCount = val
}

// SetStartDate sets the value of StartDate.
func (s *Voucher) SetStartDate(val time.Time) {
	s.StartDate = val
}

// SetEndDate sets the value of EndDate.
func (s *Voucher) SetEndDate(val time.Time) {
	s.EndDate = val
}

// SetIsActive sets the value of IsActive.
func (s *Voucher) SetIsActive(val bool) {
	s.IsActive = val
}

// Ref: #/components/schemas/VoucherType
type VoucherType string

const (
	VoucherTypePercentage VoucherType = "percentage"
	VoucherTypeFixed      VoucherType = "fixed"
)

// AllValues returns all VoucherType values.
func (VoucherType) AllValues() []VoucherType {
	return []VoucherType{
		VoucherTypePercentage,
		VoucherTypeFixed,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s VoucherType) MarshalText() ([]byte, error) {
	switch s {
	case VoucherTypePercentage:
		return []byte(s), nil
	case VoucherTypeFixed:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *VoucherType) UnmarshalText(data []byte) error {
	switch VoucherType(data) {
	case VoucherTypePercentage:
		*s = VoucherTypePercentage
		return nil
	case VoucherTypeFixed:
		*s = VoucherTypeFixed
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/VoucherValidateRequest
type VoucherValidateRequest struct {
	Code     string `json:"code"`
	Subtotal string `json:"subtotal"`
}

// GetCode returns the value of Code.
func (s *VoucherValidateRequest) GetCode() string {
	return s.Code
}

// GetSubtotal returns the value of Subtotal.
func (s *VoucherValidateRequest) GetSubtotal() string {
	return s.Subtotal
}

// SetCode sets the value of Code.
func (s *VoucherValidateRequest) SetCode(val string) {
	s.Code = val
}

// SetSubtotal sets the value of Subtotal.
func (s *VoucherValidateRequest) SetSubtotal(val string) {
	s.Subtotal = val
}
