package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	application "cookieshub/internal/app"
	"cookieshub/internal/handlers/rest/cost_delete"
	"cookieshub/internal/handlers/rest/cost_get"
	"cookieshub/internal/handlers/rest/cost_post"
	"cookieshub/internal/handlers/rest/cost_put"
	"cookieshub/internal/handlers/rest/costs_get"
	"cookieshub/internal/handlers/rest/dashboard_get"
	"cookieshub/internal/handlers/rest/health_get"
	"cookieshub/internal/handlers/rest/healthcheck_head"
	"cookieshub/internal/handlers/rest/login_post"
	"cookieshub/internal/handlers/rest/logout_post"
	"cookieshub/internal/handlers/rest/order_delete"
	"cookieshub/internal/handlers/rest/order_get"
	"cookieshub/internal/handlers/rest/order_post"
	"cookieshub/internal/handlers/rest/order_put"
	"cookieshub/internal/handlers/rest/orders_get"
	"cookieshub/internal/handlers/rest/product_delete"
	"cookieshub/internal/handlers/rest/product_get"
	"cookieshub/internal/handlers/rest/product_post"
	"cookieshub/internal/handlers/rest/product_put"
	"cookieshub/internal/handlers/rest/products_get"
	"cookieshub/internal/handlers/rest/products_sold_get"
	"cookieshub/internal/handlers/rest/profit_get"
	"cookieshub/internal/handlers/rest/sales_get"
	"cookieshub/internal/handlers/rest/trends_get"
	"cookieshub/internal/pkg/config"
	"cookieshub/internal/pkg/dotenv"
	"cookieshub/internal/pkg/kafka"
	"cookieshub/internal/pkg/middlewares/graceful_shutdown"
	"cookieshub/internal/pkg/middlewares/metrics"
	"cookieshub/internal/pkg/middlewares/rate_limiter"
	"cookieshub/internal/pkg/middlewares/request_id"
	"cookieshub/internal/pkg/middlewares/session_gate"
	"cookieshub/internal/pkg/middlewares/timeout"
	"cookieshub/internal/pkg/postgres"
	"cookieshub/internal/pkg/redisclient"
	"cookieshub/migrations"
	"cookieshub/pkg/logger"
	"cookieshub/pkg/logger/zap_adapter"
	"cookieshub/pkg/ratelimit"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const (
	loginPage     = "/login.html"
	protectedPage = "/sistema.html"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting cookies hub application")

	if err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() намеренно, это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(ctx, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		runLog.Info("migrations applied")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = redisclient.NewClient(ctx, log, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				runLog.Error("failed to close Redis client", logger.NewField("error", err))
			}
		}()
	}

	var producer sarama.SyncProducer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close Kafka producer", logger.NewField("error", err))
			}
		}()
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, businessApp.StoreProbe),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс никогда не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(
		log,
		ratelimit.NewGlobal(cfg.Server.RateLimiterQPS, cfg.Server.RateLimiterBurst),
		rate_limiter.GlobalKey,
		cfg.Server.RateLimiterQPS,
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.StoreProbe)).Methods("HEAD")
	router.Handle("/health", health_get.New(log)).Methods("GET")

	loginLimit := rate_limiter.Middleware(log, app.LoginLimiter, rate_limiter.ClientIP, cfg.Login.RateLimitPerMinute)
	router.Handle("/api/login", loginLimit(login_post.New(log, app.ServiceAuth, login_post.Config{
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
		TTL:          cfg.Session.TTL,
	}))).Methods("POST")
	router.Handle("/api/logout", logout_post.New(log, app.ServiceAuth, logout_post.Config{
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
	})).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	if cfg.Session.ProtectAPI {
		api.Use(session_gate.API(log, app.ServiceAuth, cfg.Session.CookieName))
	}

	api.Handle("/pedidos", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/pedidos", order_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/pedidos/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/pedidos/{id}", order_put.New(log, app.ServiceOrder)).Methods("PUT")
	api.Handle("/pedidos/{id}", order_delete.New(log, app.ServiceOrder)).Methods("DELETE")

	api.Handle("/produtos", products_get.New(log, app.ServiceProduct)).Methods("GET")
	api.Handle("/produtos", product_post.New(log, app.ServiceProduct)).Methods("POST")
	api.Handle("/produtos/{id}", product_get.New(log, app.ServiceProduct)).Methods("GET")
	api.Handle("/produtos/{id}", product_put.New(log, app.ServiceProduct)).Methods("PUT")
	api.Handle("/produtos/{id}", product_delete.New(log, app.ServiceProduct)).Methods("DELETE")

	api.Handle("/custos", costs_get.New(log, app.ServiceCost)).Methods("GET")
	api.Handle("/custos", cost_post.New(log, app.ServiceCost)).Methods("POST")
	api.Handle("/custos/{id}", cost_get.New(log, app.ServiceCost)).Methods("GET")
	api.Handle("/custos/{id}", cost_put.New(log, app.ServiceCost)).Methods("PUT")
	api.Handle("/custos/{id}", cost_delete.New(log, app.ServiceCost)).Methods("DELETE")

	api.Handle("/dashboard", dashboard_get.New(log, app.ServiceReport)).Methods("GET")
	api.Handle("/vendas", sales_get.New(log, app.ServiceReport)).Methods("GET")
	api.Handle("/lucros", profit_get.New(log, app.ServiceReport)).Methods("GET")
	api.Handle("/tendencias", trends_get.New(log, app.ServiceReport)).Methods("GET")
	api.Handle("/produtos-vendidos", products_sold_get.New(log, app.ServiceReport)).Methods("GET")

	pageGate := session_gate.Page(log, app.ServiceAuth, cfg.Session.CookieName, loginPage)
	router.Handle(protectedPage, pageGate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.Server.StaticDir, protectedPage))
	}))).Methods("GET", "HEAD")

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir))).Methods("GET", "HEAD")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, store healthcheck_head.StoreProbe) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, store)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
