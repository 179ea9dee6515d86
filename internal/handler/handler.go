// Package handler implements the generated POS API server interface.
package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/xenking/pos-engine/gen/oas"
	"github.com/xenking/pos-engine/internal/domain/fault"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/stock"
	"github.com/xenking/pos-engine/internal/domain/voucher"
)

var _ oas.Handler = (*Handler)(nil)

// Snapshots serves rendered receipt snapshots.
type Snapshots interface {
	Get(ctx context.Context, storeID, number string, t order.SnapshotType) ([]byte, error)
}

// Handler implements oas.Handler on top of the domain services.
type Handler struct {
	oas.UnimplementedHandler

	orders    *order.Service
	vouchers  *voucher.Service
	loyalty   *loyalty.Service
	snapshots Snapshots
	validate  *validator.Validate
}

// New creates a Handler.
func New(orders *order.Service, vouchers *voucher.Service, points *loyalty.Service, snapshots Snapshots) *Handler {
	return &Handler{
		orders:    orders,
		vouchers:  vouchers,
		loyalty:   points,
		snapshots: snapshots,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// NewError maps errors returned by the operations to an error response.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	status := statusOf(err)
	msg := messageOf(err)
	if status == http.StatusInternalServerError {
		zctx.From(ctx).Error("Request failed", zap.Error(err))
		msg = "internal server error"
	}
	return &oas.ErrorStatusCode{
		StatusCode: status,
		Response:   oas.Error{Code: status, Message: msg},
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errUnauthorized):
		return http.StatusUnauthorized
	// A missing product in a request is reported as the request's fault.
	case errors.Is(err, fault.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, fault.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, fault.ErrStateConflict):
		return http.StatusConflict
	case errors.Is(err, fault.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// messageOf picks the domain message out of a wrapped error chain.
func messageOf(err error) string {
	var (
		fe *fault.Error
		pe *order.ProductNotFoundError
		se *stock.InsufficientStockError
		le *loyalty.InsufficientPointsError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Msg
	case errors.As(err, &pe):
		return pe.Error()
	case errors.As(err, &se):
		return se.Error()
	case errors.As(err, &le):
		return le.Error()
	case errors.Is(err, errUnauthorized):
		return errUnauthorized.Error()
	default:
		return err.Error()
	}
}
