// Command voucher-import loads partner voucher code lists into a store.
//
// Each input is a gzip file with one code per line. A code is imported when
// it appears in at least -min-files of the inputs, which lets campaigns that
// are distributed through several partners require a code to be confirmed
// by more than one list.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/pos-engine/internal/domain/voucher"
	"github.com/xenking/pos-engine/internal/storage/postgres"
)

func main() {
	var (
		databaseURL string
		storeID     string
		files       string
		minFiles    int
		tmpl        template
	)
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&storeID, "store", "", "store the vouchers belong to")
	flag.StringVar(&files, "files", "", "comma separated gzip code lists")
	flag.IntVar(&minFiles, "min-files", 1, "lists a code must appear in to be imported")
	flag.StringVar(&tmpl.name, "name", "Partner voucher", "voucher name")
	flag.StringVar(&tmpl.kind, "type", string(voucher.TypePercentage), "percentage or fixed")
	flag.StringVar(&tmpl.value, "value", "10", "discount value")
	flag.StringVar(&tmpl.minPurchase, "min-purchase", "0", "minimum purchase")
	flag.StringVar(&tmpl.maxDiscount, "max-discount", "", "discount cap for percentage vouchers")
	flag.IntVar(&tmpl.days, "days", 30, "validity in days starting today")
	flag.IntVar(&tmpl.usageLimit, "usage-limit", 1, "uses per code, 0 for unlimited")
	flag.Parse()

	lg, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	paths := splitList(files)
	switch {
	case databaseURL == "":
		lg.Fatal("Database URL is required: set --database-url or DATABASE_URL")
	case storeID == "":
		lg.Fatal("Store is required: set --store")
	case len(paths) == 0:
		lg.Fatal("No input files: set --files")
	case minFiles < 1 || minFiles > len(paths):
		lg.Fatal("Invalid --min-files", zap.Int("min_files", minFiles), zap.Int("files", len(paths)))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, databaseURL, storeID, paths, minFiles, tmpl); err != nil {
		lg.Fatal("Voucher import failed", zap.Error(err))
	}
	lg.Info("Voucher import completed")
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func run(ctx context.Context, lg *zap.Logger, databaseURL, storeID string, paths []string, minFiles int, tmpl template) error {
	// Fail on a bad template before scanning large inputs.
	if _, err := tmpl.build(storeID, "SAMPLE", time.Now()); err != nil {
		return errors.Wrap(err, "voucher template")
	}

	codes, err := collect(ctx, lg, paths, minFiles)
	if err != nil {
		return errors.Wrap(err, "collect codes")
	}
	lg.Info("Codes selected", zap.Int("count", len(codes)))
	if len(codes) == 0 {
		return nil
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	res, err := importCodes(ctx, lg, postgres.New(pool).Vouchers(), storeID, codes, tmpl, time.Now())
	if err != nil {
		return err
	}
	lg.Info("Vouchers written", zap.Int("created", res.created), zap.Int("duplicates", res.duplicates))
	return nil
}

// template describes the vouchers created for imported codes.
type template struct {
	name        string
	kind        string
	value       string
	minPurchase string
	maxDiscount string
	days        int
	usageLimit  int
}

func (t template) build(storeID, code string, now time.Time) (*voucher.Voucher, error) {
	v := &voucher.Voucher{
		StoreID:   storeID,
		Code:      code,
		Name:      t.name,
		Type:      voucher.Type(t.kind),
		StartDate: now,
		EndDate:   now.AddDate(0, 0, t.days),
		IsActive:  true,
	}
	var err error
	if v.Value, err = decimal.NewFromString(t.value); err != nil {
		return nil, errors.Wrap(err, "value")
	}
	if v.MinPurchase, err = decimal.NewFromString(t.minPurchase); err != nil {
		return nil, errors.Wrap(err, "min purchase")
	}
	if t.maxDiscount != "" {
		m, err := decimal.NewFromString(t.maxDiscount)
		if err != nil {
			return nil, errors.Wrap(err, "max discount")
		}
		v.MaxDiscount = &m
	}
	if t.days < 0 {
		return nil, errors.New("days must not be negative")
	}
	if t.usageLimit > 0 {
		limit := t.usageLimit
		v.UsageLimit = &limit
	}
	if err := voucher.Prepare(v); err != nil {
		return nil, err
	}
	return v, nil
}

type creator interface {
	Create(ctx context.Context, v *voucher.Voucher) error
}

type importResult struct {
	created    int
	duplicates int
}

func importCodes(
	ctx context.Context,
	lg *zap.Logger,
	repo creator,
	storeID string,
	codes []string,
	tmpl template,
	now time.Time,
) (importResult, error) {
	var res importResult
	for i, code := range codes {
		v, err := tmpl.build(storeID, code, now)
		if err != nil {
			return res, errors.Wrapf(err, "build voucher %s", code)
		}
		switch err := repo.Create(ctx, v); {
		case errors.Is(err, voucher.ErrDuplicateCode):
			res.duplicates++
		case err != nil:
			return res, errors.Wrapf(err, "create voucher %s", code)
		default:
			res.created++
		}
		if (i+1)%1000 == 0 {
			lg.Info("Write progress", zap.Int("written", i+1), zap.Int("total", len(codes)))
		}
	}
	return res, nil
}
