package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"tradeup/internal/adapters/events"
	"tradeup/internal/adapters/exchangerate"
	httpadapter "tradeup/internal/adapters/http"
	pg "tradeup/internal/adapters/postgres"
	"tradeup/internal/catalog"
	"tradeup/internal/config"
	"tradeup/internal/logging"
	"tradeup/internal/ports"
	"tradeup/internal/services/inventory"
	"tradeup/internal/services/orders"
	"tradeup/internal/services/quotes"
	"tradeup/internal/services/referrals"
	"tradeup/internal/session"
	"tradeup/internal/valuation"
	"tradeup/internal/workers/notifier"
	"tradeup/internal/workers/refresher"
)

const (
	rateRefresh  = time.Hour
	sessionSweep = 10 * time.Minute
)

func main() {
	cfg, cfgErr := config.Load()
	logger := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	log := logger.WithComponent("main")
	if cfgErr != nil {
		if !errors.Is(cfgErr, config.ErrNoCatalogFeed) {
			log.WithError(cfgErr).Fatal("invalid configuration")
		}
		log.WithError(cfgErr).Warn("catalog feed disabled")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	var (
		devices  ports.DeviceRepository
		orderDB  ports.OrderRepository
		refDB    ports.ReferralRepository
		jobs     ports.JobRepository
		readyDB  httpadapter.Pinger
		database *pg.DB
	)
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("db connect error")
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			log.WithError(err).Fatal("db migrate error")
		}
		database = db
		devices, orderDB, refDB, jobs, readyDB = db, db, db, db, db
	} else if cfg.SubmitMode == config.SubmitBackend {
		log.Fatal("DATABASE_URL is required when SUBMIT_MODE=backend")
	}

	var publisher ports.EventPublisher = events.LogPublisher{Log: logger.WithComponent("events")}
	if cfg.NatsURL != "" {
		nc, err := events.ConnectNATS(cfg.NatsURL, logger.WithComponent("nats"))
		if err != nil {
			log.WithError(err).Fatal("nats connect error")
		}
		defer nc.Close()
		publisher = nc
	}

	feed := catalog.NewStore()
	rates := exchangerate.New(cfg.RatesURL, cfg.FallbackRate, logger.WithComponent("rates"))
	var (
		sessions session.Store
		memory   *session.MemoryStore
	)
	if cfg.RedisURL != "" {
		rc, err := session.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("redis connect error")
		}
		defer rc.Close()
		sessions = session.NewRedisStore(rc, cfg.SessionTTL)
		log.Info("sessions stored in redis")
	} else {
		memory = session.NewMemoryStore(cfg.SessionTTL)
		sessions = memory
	}

	inventorySvc := inventory.New(devices, feed)
	quoteSvc := quotes.New(inventorySvc, rates, valuation.DefaultFaults)
	referralSvc := referrals.New(refDB)
	orderSvc := orders.New(orders.Deps{
		Orders:    orderDB,
		Jobs:      jobs,
		Referrals: referralSvc,
		Devices:   inventorySvc,
		Quotes:    quoteSvc,
		Sessions:  sessions,
		Events:    publisher,
		Log:       logger.WithComponent("orders"),
	}, orders.Options{
		StoreEmail: cfg.StoreEmail,
		EmailOnly:  cfg.SubmitMode == config.SubmitEmail,
	})

	var limiter *rate.Limiter
	if cfg.PublicRatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.PublicRatePerSecond), cfg.PublicRateBurst)
	}

	srv := httpadapter.New(httpadapter.Deps{
		Catalog:        inventorySvc,
		Quotes:         quoteSvc,
		Orders:         orderSvc,
		Inventory:      inventorySvc,
		Referrals:      referralSvc,
		Sessions:       sessions,
		Rates:          rates,
		Feed:           feed,
		DB:             readyDB,
		Log:            logger.WithComponent("http"),
		AdminToken:     cfg.AdminToken,
		AdminJWTSecret: cfg.AdminJWTSecret,
		Limiter:        limiter,
	})
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	tasks := []refresher.Task{
		{Name: "rates", Interval: rateRefresh, Run: func(ctx context.Context) error {
			rates.Refresh(ctx)
			return nil
		}},
	}
	if memory != nil {
		tasks = append(tasks, refresher.Task{Name: "sessions", Interval: sessionSweep, Run: func(context.Context) error {
			if n := memory.Sweep(); n > 0 {
				log.WithField("expired", n).Debug("sessions swept")
			}
			return nil
		}})
	}
	if cfg.CatalogFeedURL != "" {
		fetcher := catalog.NewFetcher(cfg.CatalogFeedURL, logger.WithComponent("catalog"))
		tasks = append(tasks, refresher.Task{Name: "catalog", Interval: cfg.CatalogRefresh, Run: func(ctx context.Context) error {
			return fetcher.Refresh(ctx, feed)
		}})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		refresher.Start(gctx, logger.WithComponent("refresher"), tasks...)
		return nil
	})

	if database != nil && cfg.NotifyWorkers > 0 {
		processor := notifier.OrderProcessor{Orders: database, Events: publisher, StoreEmail: cfg.StoreEmail}
		g.Go(func() error {
			notifier.Run(gctx, database, processor, notifier.Options{Concurrency: cfg.NotifyWorkers}, logger.WithComponent("notifier"))
			return nil
		})
		log.WithField("workers", cfg.NotifyWorkers).Info("notification workers started")
	}

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           otelhttp.NewHandler(r, "tradeup"),
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		logger.WithFields(logging.Fields{"component": "main", "addr": cfg.ListenAddr, "submit_mode": cfg.SubmitMode}).Info("listening")
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("server exited")
	}
}
