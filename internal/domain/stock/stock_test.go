package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/internal/domain/fault"
)

type fakeLedger struct {
	stock map[string]int
	log   []string
}

func (l *fakeLedger) Decrease(_ context.Context, id string, qty int) error {
	l.log = append(l.log, "-"+id)
	if l.stock[id] < qty {
		return &InsufficientStockError{ProductID: id, Requested: qty}
	}
	l.stock[id] -= qty
	return nil
}

func (l *fakeLedger) Increase(_ context.Context, id string, qty int) error {
	l.log = append(l.log, "+"+id)
	l.stock[id] += qty
	return nil
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		stock     map[string]int
		moves     []Movement
		wantLog   []string
		wantStock map[string]int
	}{
		{
			name:  "swap within one product is netted",
			stock: map[string]int{"a": 0, "b": 1},
			moves: []Movement{
				{ProductID: "a", Delta: -2},
				{ProductID: "a", Delta: 2},
				{ProductID: "b", Delta: -1},
			},
			wantLog:   []string{"-b"},
			wantStock: map[string]int{"a": 0, "b": 0},
		},
		{
			name:  "products touched in id order",
			stock: map[string]int{"a": 5, "b": 5, "c": 5},
			moves: []Movement{
				{ProductID: "c", Delta: -1},
				{ProductID: "a", Delta: 2},
				{ProductID: "b", Delta: -3},
			},
			wantLog:   []string{"+a", "-b", "-c"},
			wantStock: map[string]int{"a": 7, "b": 2, "c": 4},
		},
		{
			name:  "partial release takes the difference",
			stock: map[string]int{"a": 1},
			moves: []Movement{
				{ProductID: "a", Delta: 2},
				{ProductID: "a", Delta: -3},
			},
			wantLog:   []string{"-a"},
			wantStock: map[string]int{"a": 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &fakeLedger{stock: tt.stock}
			require.NoError(t, Apply(context.Background(), l, tt.moves))
			assert.Equal(t, tt.wantLog, l.log)
			assert.Equal(t, tt.wantStock, l.stock)
		})
	}
}

func TestApplyStopsOnShortage(t *testing.T) {
	l := &fakeLedger{stock: map[string]int{"a": 1, "b": 5}}

	err := Apply(context.Background(), l, []Movement{
		{ProductID: "a", Delta: -3},
		{ProductID: "b", Delta: -1},
	})
	require.ErrorIs(t, err, fault.ErrInsufficientBalance)

	var se *InsufficientStockError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "a", se.ProductID)
	assert.Equal(t, 3, se.Requested)
	assert.Equal(t, []string{"-a"}, l.log)
}
