package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xenking/pos-engine/internal/domain/voucher"
)

func writeGz(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	a := writeGz(t, dir, "a.gz", "promo2024", "SHARED01", "bad-code!", "abc", "ONLYA001")
	b := writeGz(t, dir, "b.gz", "SHARED01", "PROMO2024", "ONLYB001")
	c := writeGz(t, dir, "c.gz", "shared01", "ONLYC001")
	paths := []string{a, b, c}

	tests := []struct {
		name     string
		minFiles int
		want     []string
	}{
		{
			name:     "every valid code",
			minFiles: 1,
			want:     []string{"ONLYA001", "ONLYB001", "ONLYC001", "PROMO2024", "SHARED01"},
		},
		{name: "confirmed by two lists", minFiles: 2, want: []string{"PROMO2024", "SHARED01"}},
		{name: "confirmed by all lists", minFiles: 3, want: []string{"SHARED01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect(context.Background(), zap.NewNop(), paths, tt.minFiles)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectMissingFile(t *testing.T) {
	_, err := collect(context.Background(), zap.NewNop(), []string{filepath.Join(t.TempDir(), "nope.gz")}, 1)
	assert.Error(t, err)
}

func TestTemplateBuild(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tmpl := template{name: "Partner", kind: "percentage", value: "15", minPurchase: "50000", maxDiscount: "25000", days: 14, usageLimit: 1}

	v, err := tmpl.build("s1", "promo2024", now)
	require.NoError(t, err)
	assert.Equal(t, "PROMO2024", v.Code)
	assert.Equal(t, "s1", v.StoreID)
	assert.NotEmpty(t, v.ID)
	assert.NotEmpty(t, v.Barcode)
	assert.True(t, v.Value.Equal(decimal.NewFromInt(15)))
	require.NotNil(t, v.MaxDiscount)
	assert.True(t, v.MaxDiscount.Equal(decimal.NewFromInt(25000)))
	require.NotNil(t, v.UsageLimit)
	assert.Equal(t, 1, *v.UsageLimit)
	assert.Equal(t, now.AddDate(0, 0, 14), v.EndDate)

	unlimited := tmpl
	unlimited.usageLimit = 0
	v, err = unlimited.build("s1", "X1234", now)
	require.NoError(t, err)
	assert.Nil(t, v.UsageLimit)

	for name, bad := range map[string]template{
		"bad value":    {kind: "fixed", value: "ten", minPurchase: "0"},
		"bad type":     {kind: "bogo", value: "1", minPurchase: "0"},
		"over 100":     {kind: "percentage", value: "150", minPurchase: "0"},
		"negative day": {kind: "fixed", value: "1", minPurchase: "0", days: -1},
	} {
		_, err := bad.build("s1", "CODE1", now)
		assert.Error(t, err, name)
	}
}

type fakeRepo struct {
	codes map[string]bool
	err   error
}

func (r *fakeRepo) Create(_ context.Context, v *voucher.Voucher) error {
	if r.err != nil {
		return r.err
	}
	if r.codes[v.Code] {
		return voucher.ErrDuplicateCode
	}
	r.codes[v.Code] = true
	return nil
}

func TestImportCodes(t *testing.T) {
	tmpl := template{kind: "fixed", value: "5000", minPurchase: "0", days: 30}
	repo := &fakeRepo{codes: map[string]bool{"EXIST001": true}}

	res, err := importCodes(context.Background(), zap.NewNop(), repo, "s1",
		[]string{"EXIST001", "NEW00001", "NEW00002"}, tmpl, time.Now())
	require.NoError(t, err)
	assert.Equal(t, importResult{created: 2, duplicates: 1}, res)

	repo.err = errors.New("connection reset")
	_, err = importCodes(context.Background(), zap.NewNop(), repo, "s1", []string{"NEW00003"}, tmpl, time.Now())
	assert.ErrorContains(t, err, "connection reset")
}
