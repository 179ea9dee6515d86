package handler

import (
	"context"
	"crypto/subtle"
	"encoding/hex"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/pos-engine/gen/oas"
	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/order"
)

// APIKeyHeader carries the cashier API key.
const APIKeyHeader = "api_key"

var errUnauthorized = errors.New("unauthorized")

var _ oas.SecurityHandler = (*SecurityHandler)(nil)

type actorKey struct{}

// ActorFromContext returns the actor authenticated by HandleAPIKey.
func ActorFromContext(ctx context.Context) (order.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(order.Actor)
	return a, ok
}

// SecurityHandler resolves API keys to the store and cashier they belong to.
type SecurityHandler struct {
	keys   auth.Repository
	pepper []byte
}

// NewSecurityHandler creates a SecurityHandler hashing keys with pepper.
func NewSecurityHandler(keys auth.Repository, pepper []byte) *SecurityHandler {
	return &SecurityHandler{keys: keys, pepper: pepper}
}

// HandleAPIKey authenticates the request and stores the resolved actor in the
// returned context.
func (s *SecurityHandler) HandleAPIKey(ctx context.Context, _ oas.OperationName, t oas.APIKey) (context.Context, error) {
	actor, err := s.authenticate(ctx, t.APIKey)
	if err != nil {
		if !errors.Is(err, errUnauthorized) {
			zctx.From(ctx).Error("Authenticate", zap.Error(err))
		}
		return ctx, errUnauthorized
	}
	return context.WithValue(ctx, actorKey{}, actor), nil
}

func (s *SecurityHandler) authenticate(ctx context.Context, key string) (order.Actor, error) {
	if key == "" {
		return order.Actor{}, errUnauthorized
	}
	hash := auth.HashKey(key, s.pepper)

	info, err := s.keys.FindByHash(ctx, hash)
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		return order.Actor{}, errUnauthorized
	case err != nil:
		return order.Actor{}, errors.Wrap(err, "find api key")
	}

	// The stored hash is compared again in constant time in case the lookup
	// matched on something other than the exact digest.
	want, err := hex.DecodeString(info.KeyHash)
	if err != nil {
		return order.Actor{}, errUnauthorized
	}
	got, _ := hex.DecodeString(hash)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return order.Actor{}, errUnauthorized
	}
	return order.Actor{StoreID: info.StoreID, UserID: info.UserID}, nil
}

func actorOf(ctx context.Context) (order.Actor, error) {
	a, ok := ActorFromContext(ctx)
	if !ok {
		return order.Actor{}, errUnauthorized
	}
	return a, nil
}
