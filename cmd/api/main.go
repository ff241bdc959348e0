package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/sync/errgroup"

	_ "travelrest/docs"
	"travelrest/pkg/api"
	"travelrest/pkg/config"
	"travelrest/pkg/events"
	"travelrest/pkg/events/amqp"
	"travelrest/pkg/hotel"
	"travelrest/pkg/logger"
	"travelrest/pkg/metrics"
	"travelrest/pkg/order"
	"travelrest/pkg/otel"
	"travelrest/pkg/store"
	"travelrest/pkg/store/memory"
	"travelrest/pkg/store/postgres"
	"travelrest/pkg/store/rediscache"
)

// @title travelrest API
// @version 1.0
// @description Hotel and order booking resources
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), cfg.ServiceName, otel.GetTraceID)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, cfg); err != nil {
		log.Error(context.Background(), "startup", "error", err)
		os.Exit(1)
	}
}

// backends holds the optional infrastructure clients so they can be closed
// on shutdown.
type backends struct {
	db    *sql.DB
	redis *redis.Client
	mq    *amqp.Publisher
}

func (b *backends) close() {
	if b.mq != nil {
		_ = b.mq.Close()
	}
	if b.redis != nil {
		_ = b.redis.Close()
	}
	if b.db != nil {
		_ = b.db.Close()
	}
}

func run(ctx context.Context, log *logger.Logger, cfg config.Config) error {
	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.ServiceName,
		Host:        cfg.OTel.Host,
		Probability: cfg.OTel.Probability,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var b backends
	defer b.close()

	if cfg.DB.URL != "" {
		db, err := sql.Open("postgres", cfg.DB.URL)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		b.db = db
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("db ping: %w", err)
		}
		log.Info(ctx, "using postgres store")
	}
	if cfg.RD.Addr != "" {
		b.redis = redis.NewClient(&redis.Options{Addr: cfg.RD.Addr, Password: cfg.RD.Password, DB: cfg.RD.DB})
		if err := b.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		log.Info(ctx, "using redis cache", "addr", cfg.RD.Addr, "ttl", cfg.RD.TTL.String())
	}
	var publisher events.Publisher = events.Nop{}
	if cfg.MQ.URL != "" {
		b.mq, err = amqp.Dial(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			return err
		}
		publisher = b.mq
		log.Info(ctx, "publishing events", "exchange", cfg.MQ.Exchange)
	}

	hotels, err := newRepository[hotel.Hotel](ctx, log, cfg, &b, m, "hotels")
	if err != nil {
		return err
	}
	orders, err := newRepository[order.Order](ctx, log, cfg, &b, m, "orders")
	if err != nil {
		return err
	}

	router := api.NewRouter(log, tp.Tracer(cfg.ServiceName), m)
	router.Register(
		api.Route{Name: "health", Method: http.MethodGet, Pattern: "/health", Handler: api.Health},
		api.Route{Name: "metrics", Method: http.MethodGet, Pattern: "/metrics", Handler: m.Handler().ServeHTTP},
	)
	h := handlers{
		hotels: api.NewResource(api.ResourceConfig[hotel.Hotel, hotel.Representation]{
			Name:      "hotels",
			Repo:      hotels,
			Project:   hotel.Project,
			Normalize: hotel.Normalize,
			Publisher: publisher,
			Metrics:   m,
			Log:       log,
		}, router),
		orders: api.NewResource(api.ResourceConfig[order.Order, order.Representation]{
			Name:      "orders",
			Repo:      orders,
			Project:   order.Project,
			Normalize: order.Normalize,
			Publisher: publisher,
			Metrics:   m,
			Log:       log,
		}, router),
	}
	router.Register(h.routes()...)
	router.Mount("/swagger/", httpSwagger.WrapHandler)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "listening", "addr", srv.Addr, "tls", cfg.HTTP.TLS())
		var err error
		if cfg.HTTP.TLS() {
			err = srv.ListenAndServeTLS(cfg.HTTP.TLSCertFile, cfg.HTTP.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

// newRepository picks postgres when configured, memory otherwise, and puts
// the redis cache in front when configured.
func newRepository[T store.Entity](ctx context.Context, log *logger.Logger, cfg config.Config, b *backends, m *metrics.Metrics, name string) (store.Repository[T], error) {
	var repo store.Repository[T] = memory.New[T]()
	if b.db != nil {
		pg, err := postgres.New[T](b.db, name)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			return nil, err
		}
		repo = pg
	}
	if b.redis != nil {
		repo = rediscache.New[T](repo, b.redis, rediscache.Config{Resource: name, TTL: cfg.RD.TTL}, log, m)
	}
	return repo, nil
}
