//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"cookieshub/internal/gateway/kafka/order_events"
	cost_get "cookieshub/internal/handlers/rest/cost_get"
	costs_get "cookieshub/internal/handlers/rest/costs_get"
	cost_delete "cookieshub/internal/handlers/rest/cost_delete"
	cost_post "cookieshub/internal/handlers/rest/cost_post"
	cost_put "cookieshub/internal/handlers/rest/cost_put"
	dashboard_get "cookieshub/internal/handlers/rest/dashboard_get"
	login_post "cookieshub/internal/handlers/rest/login_post"
	logout_post "cookieshub/internal/handlers/rest/logout_post"
	order_delete "cookieshub/internal/handlers/rest/order_delete"
	order_get "cookieshub/internal/handlers/rest/order_get"
	order_post "cookieshub/internal/handlers/rest/order_post"
	order_put "cookieshub/internal/handlers/rest/order_put"
	orders_get "cookieshub/internal/handlers/rest/orders_get"
	product_delete "cookieshub/internal/handlers/rest/product_delete"
	product_get "cookieshub/internal/handlers/rest/product_get"
	product_post "cookieshub/internal/handlers/rest/product_post"
	product_put "cookieshub/internal/handlers/rest/product_put"
	products_get "cookieshub/internal/handlers/rest/products_get"
	products_sold_get "cookieshub/internal/handlers/rest/products_sold_get"
	profit_get "cookieshub/internal/handlers/rest/profit_get"
	sales_get "cookieshub/internal/handlers/rest/sales_get"
	trends_get "cookieshub/internal/handlers/rest/trends_get"
	"cookieshub/internal/handlers/tasks/limiter_cleanup"
	"cookieshub/internal/handlers/tasks/session_cleanup"
	"cookieshub/internal/handlers/tasks/store_probe"
	"cookieshub/internal/pkg/config"
	"cookieshub/internal/pkg/factory/session_token"
	"cookieshub/internal/pkg/metrics"
	"cookieshub/internal/pkg/middlewares/session_gate"

	costRepo "cookieshub/internal/repository/cost"
	orderRepo "cookieshub/internal/repository/order"
	productRepo "cookieshub/internal/repository/product"
	reportRepo "cookieshub/internal/repository/report"
	sessionRepo "cookieshub/internal/repository/session"
	sessionRedisRepo "cookieshub/internal/repository/session_redis"
	userRepo "cookieshub/internal/repository/user"
	authService "cookieshub/internal/service/auth"
	costService "cookieshub/internal/service/cost"
	orderService "cookieshub/internal/service/order"
	productService "cookieshub/internal/service/product"
	reportService "cookieshub/internal/service/report"

	"cookieshub/pkg/background"
	"cookieshub/pkg/logger"
	"cookieshub/pkg/querier"
	"cookieshub/pkg/ratelimit"
	"cookieshub/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceProduct    ServiceProduct
	ServiceCost       ServiceCost
	ServiceReport     ServiceReport
	ServiceAuth       ServiceAuth
	StoreProbe        *store_probe.StoreProbe
	LoginLimiter      *ratelimit.Keyed
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_post.Service
	order_put.Service
	order_delete.Service
}

type ServiceProduct interface {
	products_get.Service
	product_get.Service
	product_post.Service
	product_put.Service
	product_delete.Service
}

type ServiceCost interface {
	costs_get.Service
	cost_get.Service
	cost_post.Service
	cost_put.Service
	cost_delete.Service
}

type ServiceReport interface {
	dashboard_get.Service
	sales_get.Service
	profit_get.Service
	trends_get.Service
	products_sold_get.Service
}

type ServiceAuth interface {
	login_post.Service
	logout_post.Service
	session_gate.Authenticator
}

// InitializeApplication для HTTP сервиса (cmd/service).
// redisClient и producer могут быть nil: тогда сессии живут в PostgreSQL,
// а события заказов не публикуются.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideProductRepository,
		provideCostRepository,
		provideReportRepository,
		provideUserRepository,
		provideSessionStore,
		provideEventPublisher,
		provideTokenFactory,

		provideServiceOrder,
		provideServiceProduct,
		provideServiceCost,
		provideServiceReport,
		provideServiceAuth,

		provideLoginLimiter,
		provideStoreProbeTask,
		provideSessionCleanupTask,
		provideLimiterCleanupTask,
		provideSystemCollectorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceProduct), new(*productService.Product)),
		wire.Bind(new(ServiceCost), new(*costService.Cost)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ProductRepository), new(*productRepo.Repository)),
		wire.Bind(new(productService.Repository), new(*productRepo.Repository)),
		wire.Bind(new(costService.Repository), new(*costRepo.Repository)),
		wire.Bind(new(reportService.Repository), new(*reportRepo.Repository)),
		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(authService.TokenFactory), new(*session_token.TokenFactory)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(reportService.TxManager), new(*tx.Manager)),

		wire.Bind(new(session_cleanup.Service), new(*authService.Auth)),
		wire.Bind(new(limiter_cleanup.Limiter), new(*ratelimit.Keyed)),
		wire.Bind(new(store_probe.Pinger), new(*querier.Querier)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideCostRepository(querier *querier.Querier) *costRepo.Repository {
	return costRepo.New(querier)
}

func provideReportRepository(querier *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

// provideSessionStore Redis, если клиент сконфигурирован, иначе таблица sessoes.
func provideSessionStore(querier *querier.Querier, redisClient *redis.Client) authService.SessionStore {
	if redisClient != nil {
		return sessionRedisRepo.New(redisClient)
	}
	return sessionRepo.New(querier)
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) orderService.EventPublisher {
	if producer == nil {
		return order_events.Noop{}
	}
	return order_events.New(producer, cfg.Kafka.OrderEventsTopic)
}

func provideTokenFactory(cfg *config.Config) *session_token.TokenFactory {
	return session_token.New(cfg.Session.TTL)
}

func provideServiceOrder(
	repository orderService.Repository,
	products orderService.ProductRepository,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
	log logger.Logger,
) *orderService.Order {
	return orderService.New(repository, products, publisher, txManager, log)
}

func provideServiceProduct(repository productService.Repository) *productService.Product {
	return productService.New(repository)
}

func provideServiceCost(repository costService.Repository) *costService.Cost {
	return costService.New(repository)
}

func provideServiceReport(
	repository reportService.Repository,
	txManager reportService.TxManager,
	cfg *config.Config,
) (*reportService.Report, error) {
	location, err := cfg.Reports.Location()
	if err != nil {
		return nil, err
	}
	return reportService.New(repository, txManager, reportService.Config{Location: location}), nil
}

func provideServiceAuth(
	users authService.UserRepository,
	sessions authService.SessionStore,
	tokens authService.TokenFactory,
	log logger.Logger,
) *authService.Auth {
	return authService.New(users, sessions, tokens, log, authService.Config{})
}

func provideLoginLimiter(cfg *config.Config) *ratelimit.Keyed {
	return ratelimit.NewKeyed(
		ratelimit.PerMinute(cfg.Login.RateLimitPerMinute),
		cfg.Login.RateLimitBurst,
		cfg.Login.LimiterIdleTTL,
	)
}

func provideStoreProbeTask(pinger store_probe.Pinger, cfg *config.Config) *store_probe.StoreProbe {
	return store_probe.NewStoreProbe(pinger, cfg.Tasks.StoreProbeInterval)
}

func provideSessionCleanupTask(
	log logger.Logger,
	service session_cleanup.Service,
	cfg *config.Config,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, service, cfg.Tasks.SessionCleanupInterval)
}

func provideLimiterCleanupTask(
	log logger.Logger,
	limiter limiter_cleanup.Limiter,
	cfg *config.Config,
) *limiter_cleanup.LimiterCleanup {
	return limiter_cleanup.NewLimiterCleanup(log, limiter, cfg.Tasks.LimiterCleanupInterval)
}

func provideSystemCollectorTask(cfg *config.Config) *metrics.SystemCollector {
	return metrics.NewSystemCollector(cfg.Tasks.SystemMetricsInterval)
}

func provideTaskList(
	storeProbeTask *store_probe.StoreProbe,
	sessionCleanupTask *session_cleanup.SessionCleanup,
	limiterCleanupTask *limiter_cleanup.LimiterCleanup,
	systemCollectorTask *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		storeProbeTask,
		sessionCleanupTask,
		limiterCleanupTask,
		systemCollectorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
