// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	AddOrderItemOperation        OperationName = "AddOrderItem"
	AdjustPointsOperation        OperationName = "AdjustPoints"
	CancelOrderOperation         OperationName = "CancelOrder"
	CreateOrderOperation         OperationName = "CreateOrder"
	GetOrderOperation            OperationName = "GetOrder"
	GetOrderByNumberOperation    OperationName = "GetOrderByNumber"
	GetSnapshotOperation         OperationName = "GetSnapshot"
	GetVoucherByBarcodeOperation OperationName = "GetVoucherByBarcode"
	ListOrdersOperation          OperationName = "ListOrders"
	ListPointsHistoryOperation   OperationName = "ListPointsHistory"
	PayOrderOperation            OperationName = "PayOrder"
	RedeemPointsOperation        OperationName = "RedeemPoints"
	RemoveOrderItemOperation     OperationName = "RemoveOrderItem"
	ReplaceOrderItemsOperation   OperationName = "ReplaceOrderItems"
	UpdateOrderOperation         OperationName = "UpdateOrder"
	ValidateVoucherOperation     OperationName = "ValidateVoucher"
)
