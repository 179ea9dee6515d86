package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/validate"
	"go.uber.org/zap"
)

// ErrorHandler writes failures raised before an operation runs, such as
// authentication and request decoding, as an error response.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	status, msg := failureOf(err)
	if status >= http.StatusInternalServerError {
		zctx.From(ctx).Error("Request failed", zap.Error(err))
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.ObjStart()
	e.FieldStart("code")
	e.Int(status)
	e.FieldStart("message")
	e.Str(msg)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func failureOf(err error) (int, string) {
	var (
		secErr    *ogenerrors.SecurityError
		ctErr     *validate.InvalidContentTypeError
		valErr    *validate.Error
		paramsErr *ogenerrors.DecodeParamsError
		reqErr    *ogenerrors.DecodeRequestError
		ogenErr   ogenerrors.Error
	)
	switch {
	case errors.As(err, &secErr):
		return http.StatusUnauthorized, errUnauthorized.Error()
	case errors.As(err, &ctErr):
		return http.StatusUnsupportedMediaType, ctErr.Error()
	case errors.As(err, &valErr):
		return http.StatusUnprocessableEntity, valErr.Error()
	case errors.As(err, &paramsErr):
		return http.StatusUnprocessableEntity, paramsErr.Err.Error()
	case errors.As(err, &reqErr):
		return http.StatusBadRequest, "malformed JSON body"
	case errors.As(err, &ogenErr):
		return ogenErr.Code(), http.StatusText(ogenErr.Code())
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
