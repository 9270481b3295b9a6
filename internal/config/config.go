package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avc/smsrent/internal/credential"
	"github.com/caarlos0/env"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// DefaultConfigFile - файл конфигурации, который читается, если путь не задан явно
const DefaultConfigFile = "smsrent.toml"

const defaultJWTSecret = "default-secret-key-change-in-production"

// Config содержит конфигурацию приложения
type Config struct {
	APIURL      string        `env:"API_URL"`      // Базовый адрес API провайдера
	APIKeyFile  string        `env:"API_KEY_FILE"` // Файл с ключом API
	DatabaseURI string        `env:"DATABASE_URI"` // URI БД; если задан, ключ хранится в БД
	RunAddress  string        `env:"RUN_ADDRESS"`  // Адрес и порт шлюза
	JWTSecret   string        `env:"JWT_SECRET"`   // Секретный ключ для JWT
	JWTTokenTTL time.Duration `env:"JWT_TOKEN_TTL"`
	LogLevel    string        `env:"LOG_LEVEL"`

	// Транспорт
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT"`
	RateLimit   float64       `env:"RATE_LIMIT"` // Запросов в секунду, 0 - без ограничения
	RateBurst   int           `env:"RATE_BURST"`

	// Worker Pool конфигурация
	WorkerPoolSize  int `env:"WORKER_POOL_SIZE"`
	WorkerQueueSize int `env:"WORKER_QUEUE_SIZE"`

	// Ожидание SMS
	PollInterval    time.Duration `env:"POLL_INTERVAL"`
	PollMaxInterval time.Duration `env:"POLL_MAX_INTERVAL"`
	PollTimeout     time.Duration `env:"POLL_TIMEOUT"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		APIURL:          "https://5sim.net/v1",
		APIKeyFile:      credential.DefaultKeyFile,
		RunAddress:      ":8080",
		JWTTokenTTL:     24 * time.Hour,
		LogLevel:        "info",
		HTTPTimeout:     30 * time.Second,
		RateLimit:       0,
		RateBurst:       1,
		WorkerPoolSize:  3,
		WorkerQueueSize: 100,
		PollInterval:    2 * time.Second,
		PollMaxInterval: 15 * time.Second,
		PollTimeout:     10 * time.Minute,
	}
}

// RegisterFlags регистрирует флаги, привязанные к полям cfg.
// Значения cfg на момент вызова становятся значениями флагов по умолчанию.
// JWT секрет задается только через env.
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "provider API base URL")
	fs.StringVarP(&cfg.APIKeyFile, "api-key-file", "k", cfg.APIKeyFile, "file holding the provider API key")
	fs.StringVarP(&cfg.DatabaseURI, "database-uri", "d", cfg.DatabaseURI, "database URI (stores the API key instead of the file)")
	fs.StringVarP(&cfg.RunAddress, "run-address", "a", cfg.RunAddress, "address and port to run the gateway")
	fs.DurationVar(&cfg.JWTTokenTTL, "jwt-token-ttl", cfg.JWTTokenTTL, "gateway token lifetime")
	fs.StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "provider request timeout, 0 disables it")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "provider requests per second, 0 disables the limit")
	fs.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "provider request burst")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool-size", cfg.WorkerPoolSize, "number of order watch workers")
	fs.IntVar(&cfg.WorkerQueueSize, "worker-queue-size", cfg.WorkerQueueSize, "order watch queue size")
	fs.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "initial delay between order checks")
	fs.DurationVar(&cfg.PollMaxInterval, "poll-max-interval", cfg.PollMaxInterval, "maximum delay between order checks")
	fs.DurationVar(&cfg.PollTimeout, "poll-timeout", cfg.PollTimeout, "how long to wait for an sms")
}

// Resolve дополняет cfg из файла и переменных окружения и проверяет результат.
// Приоритет: env переменные > флаги > файл > дефолтные значения.
// Если configPath пуст, читается DefaultConfigFile при его наличии.
func Resolve(fs *pflag.FlagSet, cfg *Config, configPath string) error {
	if err := applyFile(fs, configPath); err != nil {
		return err
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}

// Load создает конфигурацию из аргументов командной строки, файла и окружения
func Load(args []string, configPath string) (*Config, error) {
	cfg := Default()
	fs := pflag.NewFlagSet("smsrent", pflag.ContinueOnError)
	RegisterFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := Resolve(fs, cfg, configPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile выставляет значения из TOML файла флагам, не заданным явно.
// Ключи файла совпадают с именами флагов, "_" допускается вместо "-".
func applyFile(fs *pflag.FlagSet, configPath string) error {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigFile
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing %s: %w", configPath, err)
	}

	for key, value := range values {
		name := strings.ReplaceAll(key, "_", "-")
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("%s: unknown key %q", configPath, key)
		}
		if flag.Changed {
			continue
		}

		switch value.(type) {
		case map[string]any, []any:
			return fmt.Errorf("%s: key %q must be a scalar", configPath, key)
		}
		if err := fs.Set(name, fmt.Sprint(value)); err != nil {
			return fmt.Errorf("%s: invalid value for %q: %w", configPath, key, err)
		}
		// fs.Set помечает флаг как заданный явно, возвращаем признак
		flag.Changed = false
	}
	return nil
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api url is required")
	}
	if c.DatabaseURI == "" && c.APIKeyFile == "" {
		return fmt.Errorf("api key file is required when database URI is not set")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.JWTTokenTTL <= 0 {
		return fmt.Errorf("jwt token ttl must be positive, got %s", c.JWTTokenTTL)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must be non-negative, got %s", c.HTTPTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative, got %g", c.RateLimit)
	}
	if c.RateBurst < 1 {
		return fmt.Errorf("rate burst must be at least 1, got %d", c.RateBurst)
	}
	if c.WorkerPoolSize < 1 {
		return fmt.Errorf("worker pool size must be at least 1, got %d", c.WorkerPoolSize)
	}
	if c.WorkerQueueSize < 1 {
		return fmt.Errorf("worker queue size must be at least 1, got %d", c.WorkerQueueSize)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.PollMaxInterval < c.PollInterval {
		return fmt.Errorf("poll max interval (%s) cannot be less than poll interval (%s)", c.PollMaxInterval, c.PollInterval)
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("poll timeout must be positive, got %s", c.PollTimeout)
	}
	return nil
}
