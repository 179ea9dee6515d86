package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/pos-engine/gen/oas"
	"github.com/xenking/pos-engine/internal/domain/loyalty"
	"github.com/xenking/pos-engine/internal/domain/order"
	"github.com/xenking/pos-engine/internal/domain/snapshot"
	"github.com/xenking/pos-engine/internal/domain/voucher"
	"github.com/xenking/pos-engine/internal/events"
	"github.com/xenking/pos-engine/internal/handler"
	"github.com/xenking/pos-engine/internal/storage/postgres"
	"github.com/xenking/pos-engine/internal/storage/receipts"
	"github.com/xenking/pos-engine/pkg/health"
	"github.com/xenking/pos-engine/pkg/httpmiddleware"
)

// Run wires the dependencies, serves the API and shuts down gracefully once
// ctx is cancelled.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, health.PingCheck(pool))
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))

	db := postgres.New(pool)

	storage, err := openReceipts(ctx, cfg.Receipts)
	if err != nil {
		return errors.Wrap(err, "open receipts storage")
	}
	snapshots := snapshot.NewGenerator(db.Orders(), db.Stores(), db.Points(), db.APIKeys(), storage)

	var publisher order.Publisher
	if cfg.Broker.URL != "" {
		p, err := events.Dial(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			return errors.Wrap(err, "dial broker")
		}
		defer func() {
			if err := p.Close(); err != nil {
				lg.Warn("Close broker", zap.Error(err))
			}
		}()
		healthSvc.AddReadinessCheck("broker", 2*time.Second, health.PingCheck(p))
		publisher = p
	}

	orders, err := order.NewService(order.Deps{
		Tx:        db,
		Orders:    db.Orders(),
		Products:  db.Products(),
		Stock:     db.Stock(),
		Points:    db.Points(),
		Vouchers:  db.Vouchers(),
		Stores:    db.Stores(),
		Snapshots: snapshots,
		Events:    publisher,
	},
		order.WithTracerProvider(m.TracerProvider()),
		order.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create order service")
	}

	h := handler.New(orders,
		voucher.NewService(db.Vouchers()),
		loyalty.NewService(db, db.Points(), db.Vouchers(), db.Stores()),
		snapshots,
	)
	securityHandler := handler.NewSecurityHandler(db.APIKeys(), []byte(cfg.APIKeyPepper))

	oasServer, err := oas.NewServer(h, securityHandler,
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
		oas.WithErrorHandler(handler.ErrorHandler),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	routeFinder := httpmiddleware.MakeRouteFinder(oasServer)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", oasServer)

	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", handler.APIKeyHeader, "X-Request-ID"},
				ExposeHeaders:    []string{"X-Request-ID"},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument("pos-api", routeFinder, m),
			httpmiddleware.LogRequests(routeFinder),
			httpmiddleware.Labeler(routeFinder),
		),
	}

	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}

// openReceipts builds the snapshot storage backend, optionally fronted by a
// Redis cache.
func openReceipts(ctx context.Context, cfg ReceiptsConfig) (snapshot.Storage, error) {
	var (
		storage snapshot.Storage
		err     error
	)
	switch cfg.Backend {
	case "s3":
		storage, err = receipts.NewS3Store(ctx, receipts.S3Options{
			Bucket:   cfg.Bucket,
			Prefix:   cfg.Prefix,
			Endpoint: cfg.Endpoint,
		})
	default:
		storage, err = receipts.NewFileStore(cfg.Dir)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheURL == "" {
		return storage, nil
	}
	rdb, err := receipts.NewRedisClient(cfg.CacheURL)
	if err != nil {
		return nil, errors.Wrap(err, "redis client")
	}
	return receipts.NewCache(rdb, storage, cfg.CacheTTL), nil
}
