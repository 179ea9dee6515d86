// Command seed-db loads demo stores, cashiers, products, customers and
// vouchers and registers an API key for the first cashier.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/xenking/pos-engine/db"
	"github.com/xenking/pos-engine/internal/domain/auth"
	"github.com/xenking/pos-engine/internal/domain/voucher"
	"github.com/xenking/pos-engine/internal/storage/postgres"
)

type seedFile struct {
	Stores []storeSeed `yaml:"stores"`
}

type storeSeed struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Slug      string            `yaml:"slug"`
	Type      string            `yaml:"type"`
	Address   string            `yaml:"address"`
	Phone     string            `yaml:"phone"`
	Logo      string            `yaml:"logo"`
	Settings  map[string]string `yaml:"settings"`
	Users     []userSeed        `yaml:"users"`
	Products  []productSeed     `yaml:"products"`
	Customers []customerSeed    `yaml:"customers"`
	Vouchers  []voucherSeed     `yaml:"vouchers"`
}

type userSeed struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type productSeed struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Barcode string `yaml:"barcode"`
	Price   string `yaml:"price"`
	Stock   int    `yaml:"stock"`
}

type customerSeed struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Phone  string `yaml:"phone"`
	Email  string `yaml:"email"`
	Points int    `yaml:"points"`
}

type voucherSeed struct {
	ID          string `yaml:"id"`
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Value       string `yaml:"value"`
	MinPurchase string `yaml:"min_purchase"`
	MaxDiscount string `yaml:"max_discount"`
	UsageLimit  *int   `yaml:"usage_limit"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
}

func main() {
	var (
		databaseURL  string
		seedPath     string
		apiKey       string
		apiKeyPepper string
	)
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&seedPath, "file", "", "seed YAML file (defaults to the embedded demo data)")
	flag.StringVar(&apiKey, "api-key", "", "API key to register for the first cashier (or POS_SEED_API_KEY env)")
	flag.StringVar(&apiKeyPepper, "api-key-pepper", "", "HMAC pepper for API key hashing (or POS_API_KEY_PEPPER env)")
	flag.Parse()

	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	databaseURL = orEnv(databaseURL, "DATABASE_URL")
	apiKey = orEnv(apiKey, "POS_SEED_API_KEY")
	apiKeyPepper = orEnv(apiKeyPepper, "POS_API_KEY_PEPPER")
	if databaseURL == "" {
		lg.Fatal("Database URL is required: set --database-url or DATABASE_URL")
	}
	if apiKey == "" {
		lg.Fatal("API key is required: set --api-key or POS_SEED_API_KEY")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, databaseURL, seedPath, apiKey, apiKeyPepper); err != nil {
		lg.Fatal("Seed failed", zap.Error(err))
	}
	lg.Info("Seed completed")
}

func orEnv(v, env string) string {
	if v != "" {
		return v
	}
	return os.Getenv(env)
}

func run(ctx context.Context, lg *zap.Logger, databaseURL, seedPath, apiKey, pepper string) error {
	data := db.Seed
	if seedPath != "" {
		b, err := os.ReadFile(seedPath)
		if err != nil {
			return errors.Wrap(err, "read seed file")
		}
		data = b
	}
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return errors.Wrap(err, "parse seed file")
	}
	if len(seed.Stores) == 0 || len(seed.Stores[0].Users) == 0 {
		return errors.New("seed needs at least one store with one user")
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	return pgx.BeginTxFunc(ctx, pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		for _, st := range seed.Stores {
			if err := seedStore(ctx, lg, tx, st); err != nil {
				return errors.Wrapf(err, "store %s", st.ID)
			}
		}
		first := seed.Stores[0]
		return seedAPIKey(ctx, lg, tx, first.ID, first.Users[0].ID, auth.HashKey(apiKey, []byte(pepper)))
	})
}

const (
	upsertStoreSQL = `INSERT INTO stores (id, name, slug, type, address, phone, logo)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, slug = EXCLUDED.slug, type = EXCLUDED.type,
    address = EXCLUDED.address, phone = EXCLUDED.phone, logo = EXCLUDED.logo`

	upsertSettingSQL = `INSERT INTO store_settings (store_id, key, value) VALUES ($1, $2, $3)
ON CONFLICT (store_id, key) DO UPDATE SET value = EXCLUDED.value`

	upsertUserSQL = `INSERT INTO users (id, store_id, name, email, role) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, role = EXCLUDED.role`

	upsertProductSQL = `INSERT INTO products (id, store_id, name, barcode, price, stock) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, barcode = EXCLUDED.barcode,
    price = EXCLUDED.price, stock = EXCLUDED.stock`

	upsertCustomerSQL = `INSERT INTO customers (id, store_id, name, phone, email, points) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone, email = EXCLUDED.email`

	upsertVoucherSQL = `INSERT INTO vouchers (id, store_id, code, barcode, name, description, type, value,
    min_purchase, max_discount, usage_limit, start_date, end_date, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, TRUE)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,
    value = EXCLUDED.value, min_purchase = EXCLUDED.min_purchase, max_discount = EXCLUDED.max_discount,
    usage_limit = EXCLUDED.usage_limit, start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date`

	upsertAPIKeySQL = `INSERT INTO api_keys (id, key_hash, name, store_id, user_id) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET key_hash = EXCLUDED.key_hash, store_id = EXCLUDED.store_id,
    user_id = EXCLUDED.user_id, active = TRUE`
)

func seedStore(ctx context.Context, lg *zap.Logger, tx pgx.Tx, st storeSeed) error {
	if _, err := tx.Exec(ctx, upsertStoreSQL, st.ID, st.Name, st.Slug, st.Type, st.Address, st.Phone, st.Logo); err != nil {
		return errors.Wrap(err, "upsert store")
	}
	for k, v := range st.Settings {
		if _, err := tx.Exec(ctx, upsertSettingSQL, st.ID, k, v); err != nil {
			return errors.Wrapf(err, "upsert setting %s", k)
		}
	}
	for _, u := range st.Users {
		if _, err := tx.Exec(ctx, upsertUserSQL, u.ID, st.ID, u.Name, u.Email, u.Role); err != nil {
			return errors.Wrapf(err, "upsert user %s", u.ID)
		}
	}
	for _, p := range st.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return errors.Wrapf(err, "product %s price", p.ID)
		}
		if _, err := tx.Exec(ctx, upsertProductSQL, p.ID, st.ID, p.Name, p.Barcode, price, p.Stock); err != nil {
			return errors.Wrapf(err, "upsert product %s", p.ID)
		}
	}
	for _, c := range st.Customers {
		if _, err := tx.Exec(ctx, upsertCustomerSQL, c.ID, st.ID, c.Name, c.Phone, c.Email, c.Points); err != nil {
			return errors.Wrapf(err, "upsert customer %s", c.ID)
		}
	}
	for _, vs := range st.Vouchers {
		v, err := vs.voucher(st.ID)
		if err != nil {
			return errors.Wrapf(err, "voucher %s", vs.Code)
		}
		if _, err := tx.Exec(ctx, upsertVoucherSQL, v.ID, v.StoreID, v.Code, v.Barcode, v.Name, v.Description,
			string(v.Type), v.Value, v.MinPurchase, v.MaxDiscount, v.UsageLimit, v.StartDate, v.EndDate); err != nil {
			return errors.Wrapf(err, "upsert voucher %s", v.Code)
		}
	}

	lg.Info("Seeded store",
		zap.String("store", st.ID),
		zap.Int("users", len(st.Users)),
		zap.Int("products", len(st.Products)),
		zap.Int("customers", len(st.Customers)),
		zap.Int("vouchers", len(st.Vouchers)),
	)
	return nil
}

func (vs voucherSeed) voucher(storeID string) (*voucher.Voucher, error) {
	v := &voucher.Voucher{
		ID:          vs.ID,
		StoreID:     storeID,
		Code:        vs.Code,
		Name:        vs.Name,
		Description: vs.Description,
		Type:        voucher.Type(vs.Type),
		UsageLimit:  vs.UsageLimit,
		IsActive:    true,
	}
	var err error
	if v.Value, err = decimal.NewFromString(vs.Value); err != nil {
		return nil, errors.Wrap(err, "value")
	}
	v.MinPurchase = decimal.Zero
	if vs.MinPurchase != "" {
		if v.MinPurchase, err = decimal.NewFromString(vs.MinPurchase); err != nil {
			return nil, errors.Wrap(err, "min purchase")
		}
	}
	if vs.MaxDiscount != "" {
		m, err := decimal.NewFromString(vs.MaxDiscount)
		if err != nil {
			return nil, errors.Wrap(err, "max discount")
		}
		v.MaxDiscount = &m
	}
	if v.StartDate, err = time.Parse(time.DateOnly, vs.StartDate); err != nil {
		return nil, errors.Wrap(err, "start date")
	}
	if v.EndDate, err = time.Parse(time.DateOnly, vs.EndDate); err != nil {
		return nil, errors.Wrap(err, "end date")
	}
	if err := voucher.Prepare(v); err != nil {
		return nil, err
	}
	return v, nil
}

func seedAPIKey(ctx context.Context, lg *zap.Logger, tx pgx.Tx, storeID, userID, hash string) error {
	if _, err := tx.Exec(ctx, upsertAPIKeySQL, "default", hash, "Default cashier key", storeID, userID); err != nil {
		return errors.Wrap(err, "upsert api key")
	}
	lg.Info("Registered API key", zap.String("store", storeID), zap.String("user", userID))
	return nil
}
