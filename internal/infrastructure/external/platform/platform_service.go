package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
)

// Config holds the client settings
type Config struct {
	BaseURL  string
	APIKey   string
	RetryMax int
	Timeout  time.Duration
}

type balanceResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type errorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

type platformServiceImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewPlatformService creates a game platform client that retries transient failures
func NewPlatformService(cfg Config, log *logger.Logger) domain.PlatformService {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = leveledLogger{log: log}

	return &platformServiceImpl{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  client,
	}
}

// GetBalance fetches the current balance the platform holds for a game
func (p *platformServiceImpl) GetBalance(ctx context.Context, gameCode string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/api/v1/games/%s/balance", p.baseURL, url.PathEscape(gameCode))
	var resp balanceResponse
	if err := p.sendRequest(ctx, http.MethodGet, endpoint, http.StatusOK, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Balance, nil
}

func (p *platformServiceImpl) sendRequest(ctx context.Context, method, endpoint string, expectedStatus int, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		platformErr := &domain.PlatformServiceError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("platform service error: unexpected status %d", resp.StatusCode),
		}
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Code != "" {
			platformErr.Code = errResp.Code
			platformErr.Message = fmt.Sprintf("platform service error: %s - %s", errResp.Code, errResp.Msg)
		}
		return platformErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// leveledLogger routes retryablehttp's logs through zap
type leveledLogger struct {
	log *logger.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Infow(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Warnw(msg, keysAndValues...)
}
