package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/smsrent/internal/config"
	"github.com/avc/smsrent/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет HTTP шлюз
type App struct {
	config     *config.Config
	logger     *zap.Logger
	core       *Core
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает шлюз поверх готового Core
func NewApp(core *Core, logger *zap.Logger) *App {
	// Инициализация зависимостей
	deps := initDependencies(core, logger)

	// Настройка роутера
	router := setupRouter(deps, core.JWT, logger)

	// Создание HTTP сервера
	server := createServer(core.Config.RunAddress, router, core.Config.HTTPTimeout)

	return &App{
		config:     core.Config,
		logger:     logger,
		core:       core,
		router:     router,
		workerPool: deps.workerPool,
		server:     server,
	}
}

// Handler возвращает корневой HTTP обработчик
func (a *App) Handler() http.Handler {
	return a.router
}

// Run запускает шлюз и блокируется до сигнала завершения или отмены ctx
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Запуск worker pool
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started", zap.Int("workers", a.config.WorkerPoolSize))

	// Запуск HTTP сервера и ожидание сигнала завершения
	runErr := a.runServer(ctx)

	// Graceful shutdown
	a.shutdown(cancel)

	if runErr != nil {
		return fmt.Errorf("gateway: %w", runErr)
	}
	return nil
}
