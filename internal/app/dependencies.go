package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/smsrent/internal/config"
	"github.com/avc/smsrent/internal/credential"
	"github.com/avc/smsrent/internal/domain"
	"github.com/avc/smsrent/internal/handlers"
	"github.com/avc/smsrent/internal/repository/postgres"
	"github.com/avc/smsrent/internal/service"
	"github.com/avc/smsrent/internal/utils/jwt"
	"github.com/avc/smsrent/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Core содержит клиентов провайдера и общие зависимости.
// Используется и шлюзом, и командами CLI.
type Core struct {
	Config      *config.Config
	DB          *pgxpool.Pool
	Credentials *credential.Manager
	Transport   *service.FiveSimClient
	Catalog     *service.CatalogService
	Orders      *service.OrderService
	Account     *service.AccountService
	Poller      *worker.Poller
	JWT         *jwt.Manager
}

// NewCore создает клиентов и загружает сохраненный ключ API.
// Если задан DatabaseURI, ключ хранится в БД, иначе в файле.
func NewCore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Core, error) {
	core := &Core{Config: cfg}

	var store domain.CredentialStore
	if cfg.DatabaseURI != "" {
		dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
		if err != nil {
			return nil, err
		}
		core.DB = dbPool
		store = postgres.NewCredentialRepository(dbPool)
	} else {
		store = credential.NewFileStore(cfg.APIKeyFile)
	}

	holder := credential.NewHolder("")
	core.Credentials = credential.NewManager(holder, store, logger)
	if err := core.Credentials.Init(ctx); err != nil {
		core.Close()
		return nil, fmt.Errorf("failed to init credentials: %w", err)
	}

	// Лимитер общий для всех клиентов
	limiter := service.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	core.Transport = service.NewFiveSimClient(cfg.APIURL, holder,
		service.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		service.WithRateLimiter(limiter),
		service.WithLogger(logger.Named("fivesim")),
	)

	core.Catalog = service.NewCatalogService(core.Transport)
	core.Orders = service.NewOrderService(core.Transport, logger)
	core.Account = service.NewAccountService(core.Transport)
	core.Poller = worker.NewPoller(core.Orders, logger)
	core.JWT = jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	return core, nil
}

// PollConfig возвращает параметры ожидания SMS из конфигурации
func (c *Core) PollConfig() worker.PollConfig {
	return worker.PollConfig{
		Interval:    c.Config.PollInterval,
		MaxInterval: c.Config.PollMaxInterval,
		Timeout:     c.Config.PollTimeout,
	}
}

// Close освобождает ресурсы
func (c *Core) Close() {
	if c.DB != nil {
		c.DB.Close()
		c.DB = nil
	}
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	catalog    *handlers.CatalogHandler
	orders     *handlers.OrdersHandler
	balance    *handlers.BalanceHandler
	credential *handlers.CredentialHandler
	health     *handlers.HealthHandler
}

// dependencies содержит все зависимости шлюза
type dependencies struct {
	core       *Core
	handlers   *handlerSet
	workerPool *worker.Pool
}

// initDependencies создает хендлеры и worker pool поверх Core
func initDependencies(core *Core, logger *zap.Logger) *dependencies {
	// Создание worker pool
	workerPoolConfig := worker.PoolConfig{
		Workers:   core.Config.WorkerPoolSize,
		QueueSize: core.Config.WorkerQueueSize,
		Poll:      core.PollConfig(),
	}
	workerPool := worker.NewPool(workerPoolConfig, core.Poller, logger)

	// pgxpool.Pool как интерфейс не должен быть typed nil
	var db handlers.Pinger
	if core.DB != nil {
		db = core.DB
	}

	// Создание handlers
	hdlrs := &handlerSet{
		catalog:    handlers.NewCatalogHandler(core.Catalog, logger),
		orders:     handlers.NewOrdersHandler(core.Orders, workerPool, logger),
		balance:    handlers.NewBalanceHandler(core.Account, logger),
		credential: handlers.NewCredentialHandler(core.Credentials, logger),
		health:     handlers.NewHealthHandler(core.Credentials.Holder(), db, logger),
	}

	return &dependencies{
		core:       core,
		handlers:   hdlrs,
		workerPool: workerPool,
	}
}
