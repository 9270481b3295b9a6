package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/avc/smsrent/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL - адрес API провайдера по умолчанию
const DefaultBaseURL = "https://5sim.net/v1"

const (
	maxResponseSize   = 8 << 20
	maxMessageLength  = 512
	defaultAPITimeout = 30 * time.Second
)

// HTTPClient выполняет HTTP запросы
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CredentialSource отдает текущий ключ API
type CredentialSource interface {
	Get() (string, error)
}

// FiveSimClient реализует domain.Transport поверх HTTP API провайдера.
// Ключ читается из CredentialSource при каждом вызове.
type FiveSimClient struct {
	baseURL     string
	httpClient  HTTPClient
	credentials CredentialSource
	limiter     *RateLimiter
	logger      *zap.Logger
}

// ClientOption настраивает FiveSimClient
type ClientOption func(*FiveSimClient)

// WithHTTPClient задает HTTP клиент
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *FiveSimClient) {
		c.httpClient = client
	}
}

// WithRateLimiter задает общий лимитер запросов
func WithRateLimiter(limiter *RateLimiter) ClientOption {
	return func(c *FiveSimClient) {
		c.limiter = limiter
	}
}

// WithLogger задает логгер
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *FiveSimClient) {
		c.logger = logger
	}
}

// NewFiveSimClient создает новый FiveSimClient
func NewFiveSimClient(baseURL string, credentials CredentialSource, opts ...ClientOption) *FiveSimClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &FiveSimClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: defaultAPITimeout,
		},
		limiter: NewRateLimiter(0, 1),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call выполняет запрос и декодирует тело ответа в Payload
func (c *FiveSimClient) Call(ctx context.Context, method, path string, query url.Values) (domain.Payload, error) {
	op := method + " " + path

	key, err := c.credentials.Get()
	if err != nil {
		return domain.Payload{}, &domain.Error{Kind: domain.KindAuth, Op: op, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Payload{}, &domain.Error{Kind: domain.KindTransport, Op: op, Message: "rate limiter wait aborted", Err: err}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return domain.Payload{}, &domain.Error{Kind: domain.KindTransport, Op: op, Message: "failed to create request", Err: err}
	}

	requestID, ok := domain.RequestID(ctx)
	if !ok {
		requestID = uuid.New().String()
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("fivesim request failed",
			zap.String("request_id", requestID),
			zap.String("op", op),
			zap.Error(err),
		)
		return domain.Payload{}, &domain.Error{Kind: domain.KindTransport, Op: op, Message: "failed to execute request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return domain.Payload{}, &domain.Error{Kind: domain.KindTransport, Op: op, StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}
	if len(body) > maxResponseSize {
		return domain.Payload{}, &domain.Error{
			Kind:       domain.KindProtocol,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("response too large, limit is %d bytes", maxResponseSize),
		}
	}

	c.logger.Debug("fivesim request",
		zap.String("request_id", requestID),
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return c.decodeResponse(op, resp, body)
}

func (c *FiveSimClient) decodeResponse(op string, resp *http.Response, body []byte) (domain.Payload, error) {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.Payload{}, &domain.Error{
			Kind:       domain.KindAuth,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    remoteMessage(body, resp.StatusCode),
		}

	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := ParseRetryAfter(resp.Header)
		c.limiter.BlockFor(retryAfter)
		return domain.Payload{}, &domain.Error{
			Kind:       domain.KindTransport,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        NewRateLimitError(retryAfter),
		}

	// Ответ прокси или сбой сервера без отказа провайдера считается транспортной ошибкой
	case resp.StatusCode >= 500 && !isProviderRejection(body):
		return domain.Payload{}, &domain.Error{
			Kind:       domain.KindTransport,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    remoteMessage(body, resp.StatusCode),
		}

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domain.Payload{}, &domain.Error{
			Kind:       domain.KindRemote,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    remoteMessage(body, resp.StatusCode),
		}
	}

	var payload domain.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		text := strings.TrimSpace(string(body))
		if isProviderRejection(body) {
			return domain.Payload{}, &domain.Error{Kind: domain.KindRemote, Op: op, StatusCode: resp.StatusCode, Message: text}
		}
		return domain.Payload{}, &domain.Error{
			Kind:       domain.KindProtocol,
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    truncate(text),
			Err:        err,
		}
	}

	return payload, nil
}

// remoteMessage извлекает сообщение об ошибке из тела ответа
func remoteMessage(body []byte, status int) string {
	var payload domain.Payload
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"message", "error", "msg"} {
			if msg := payload.String(key); msg != "" {
				return truncate(msg)
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return truncate(text)
	}
	return strings.ToLower(http.StatusText(status))
}

// isProviderRejection сообщает, что тело - известная фраза отказа провайдера
// или JSON-объект с сообщением об ошибке
func isProviderRejection(body []byte) bool {
	text := strings.ToLower(strings.TrimSpace(string(body)))
	if _, ok := providerRejections[text]; ok {
		return true
	}
	var payload domain.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return false
	}
	for _, key := range []string{"message", "error", "msg"} {
		if payload.String(key) != "" {
			return true
		}
	}
	return false
}

// truncate обрезает сообщение по границе символа
func truncate(s string) string {
	if len(s) <= maxMessageLength {
		return s
	}
	n := maxMessageLength
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// IsRateLimited сообщает, что ошибка вызвана превышением лимита запросов
func IsRateLimited(err error) (*RateLimitError, bool) {
	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		return rateLimitErr, true
	}
	return nil, false
}

func escapeSegments(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
