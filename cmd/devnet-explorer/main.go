package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/devnet-explorer/internal/metrics"
	"github.com/goodnatureofminers/devnet-explorer/internal/model"
	"github.com/goodnatureofminers/devnet-explorer/internal/networking"
	"github.com/goodnatureofminers/devnet-explorer/internal/pkg/websocket"
	"github.com/goodnatureofminers/devnet-explorer/internal/prefs"
	"github.com/goodnatureofminers/devnet-explorer/internal/service"
	"github.com/goodnatureofminers/devnet-explorer/internal/state"
	"github.com/goodnatureofminers/devnet-explorer/internal/transport"
	"github.com/goodnatureofminers/devnet-explorer/pkg/coalesce"
)

type config struct {
	BackendAddr        string        `long:"backend-addr" env:"DEVNET_EXPLORER_BACKEND_ADDR" description:"devnet backend websocket address" default:"127.0.0.1:2404"`
	Manifest           string        `long:"manifest" env:"DEVNET_EXPLORER_MANIFEST" description:"manifest to boot on start"`
	Watch              string        `long:"watch" env:"DEVNET_EXPLORER_WATCH" description:"field to watch once the protocol is ready (contract::field)"`
	PollInterval       time.Duration `long:"poll-interval" env:"DEVNET_EXPLORER_POLL_INTERVAL" description:"interval between watch requests" default:"5s"`
	HandshakeTimeout   time.Duration `long:"handshake-timeout" env:"DEVNET_EXPLORER_HANDSHAKE_TIMEOUT" description:"websocket handshake timeout" default:"10s"`
	WriteTimeout       time.Duration `long:"write-timeout" env:"DEVNET_EXPLORER_WRITE_TIMEOUT" description:"websocket write timeout" default:"10s"`
	SendRate           int           `long:"send-rate" env:"DEVNET_EXPLORER_SEND_RATE" description:"maximum requests per second" default:"10"`
	HTTPAddr           string        `long:"http-addr" env:"DEVNET_EXPLORER_HTTP_ADDR" description:"address for the view API" default:"127.0.0.1:2405"`
	MetricsAddr        string        `long:"metrics-addr" env:"DEVNET_EXPLORER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	PrefsDB            string        `long:"prefs-db" env:"DEVNET_EXPLORER_PREFS_DB" description:"SQLite file for bookmarks and notifications, empty disables persistence"`
	PrefsFlushInterval time.Duration `long:"prefs-flush-interval" env:"DEVNET_EXPLORER_PREFS_FLUSH_INTERVAL" description:"interval between preference writes" default:"2s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("devnet explorer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	var watch model.FieldIdentifier
	if cfg.Watch != "" {
		id, err := model.ParseFieldIdentifier(cfg.Watch)
		if err != nil {
			return fmt.Errorf("parse watch flag: %w", err)
		}
		watch = id
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	builder := networking.NewRequestBuilder(logger.Named("requestBuilder"))
	fields := state.NewFieldStore()
	ledger := state.NewBlockLedger(metrics.NewLedger())
	nudges := transport.NewNudges()

	var writer service.PreferenceWriter
	if cfg.PrefsDB != "" {
		store, err := prefs.Open(ctx, cfg.PrefsDB, metrics.NewPreferences())
		if err != nil {
			return fmt.Errorf("open preferences: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close preferences", zap.Error(err))
			}
		}()
		loaded, err := store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load preferences: %w", err)
		}
		fields.LoadPreferences(loaded)
		logger.Info("preferences loaded", zap.String("path", cfg.PrefsDB), zap.Int("fields", len(loaded)))

		coalescer := coalesce.New[model.FieldIdentifier, state.Preference](
			logger.Named("preferences"), store.Upsert, 64, cfg.PrefsFlushInterval, 10)
		coalescer.Start(ctx)
		defer coalescer.Stop()
		writer = coalescer
	}

	explorer, err := service.NewExplorerService(builder, fields, ledger, writer, nudges, logger)
	if err != nil {
		return fmt.Errorf("init explorer: %w", err)
	}

	dialer, err := websocket.NewDialer(cfg.BackendAddr, cfg.HandshakeTimeout, cfg.WriteTimeout, metrics.NewWebsocket())
	if err != nil {
		return fmt.Errorf("init dialer: %w", err)
	}
	adapter, err := transport.NewAdapter(
		transport.DialFunc(func(ctx context.Context) (transport.Conn, error) {
			conn, err := dialer.Dial(ctx)
			if err != nil {
				return nil, err
			}
			return conn, nil
		}),
		builder,
		fields,
		ledger,
		explorer,
		metrics.NewTransport(),
		nudges,
		transport.AdapterConfig{PollInterval: cfg.PollInterval, SendRate: cfg.SendRate},
		logger,
	)
	if err != nil {
		return fmt.Errorf("init adapter: %w", err)
	}

	startHTTPServer(ctx, cfg.HTTPAddr, transport.NewHTTPHandler(explorer, logger), logger)

	if cfg.Manifest != "" {
		if err := explorer.SelectManifest(cfg.Manifest); err != nil {
			return fmt.Errorf("select manifest: %w", err)
		}
	}
	if watch != "" {
		go watchWhenReady(ctx, explorer, builder, watch, cfg.PollInterval, logger)
	}

	logger.Info("syncing with devnet backend", zap.String("url", dialer.URL()))
	return adapter.Run(ctx)
}

// watchWhenReady retries the watch intent until the protocol is deployed.
func watchWhenReady(ctx context.Context, explorer *service.ExplorerService, builder *networking.RequestBuilder, id model.FieldIdentifier, every time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		if !builder.IsNetworkBooting() {
			err := explorer.WatchField(id.ContractIdentifier(), id.FieldName())
			if err == nil {
				return
			}
			if !errors.Is(err, service.ErrIntentRejected) {
				logger.Error("watch flag ignored", zap.String("field", string(id)), zap.Error(err))
				return
			}
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func startHTTPServer(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(handler),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		logger.Info("starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen and serve", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
