package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(url string) domain.PlatformService {
	return NewPlatformService(Config{BaseURL: url, APIKey: "key", RetryMax: 2, Timeout: time.Second}, logger.NewNop())
}

func TestGetBalance_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/games/MEGA88/balance", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"balance":"1250.75","currency":"MYR"}`))
	}))
	defer srv.Close()

	balance, err := newService(srv.URL).GetBalance(context.Background(), "MEGA88")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1250.75").Equal(balance))
}

func TestGetBalance_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"balance":10,"currency":"MYR"}`))
	}))
	defer srv.Close()

	balance, err := newService(srv.URL).GetBalance(context.Background(), "JOKER")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(balance))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetBalance_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"GAME_UNKNOWN","msg":"no such game"}`))
	}))
	defer srv.Close()

	_, err := newService(srv.URL).GetBalance(context.Background(), "NOPE")

	var platformErr *domain.PlatformServiceError
	require.True(t, errors.As(err, &platformErr))
	assert.Equal(t, http.StatusNotFound, platformErr.StatusCode)
	assert.Equal(t, "GAME_UNKNOWN", platformErr.Code)
	assert.True(t, platformErr.Is4xxError())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetBalance_ExhaustedRetriesReportLastStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newService(srv.URL).GetBalance(context.Background(), "ROLLEX")

	var platformErr *domain.PlatformServiceError
	require.True(t, errors.As(err, &platformErr))
	assert.Equal(t, http.StatusServiceUnavailable, platformErr.StatusCode)
	assert.False(t, platformErr.Is4xxError())
}
