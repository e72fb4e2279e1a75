package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/domain/mocks"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/repository"
	"github.com/saradorri/backoffice/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		ua      string
		browser string
		device  string
	}{
		{chromeUA, "Chrome", "Desktop"},
		{"Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 Edg/120.0", "Edge", "Desktop"},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", "Safari", "Mobile"},
		{"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/604.1", "Safari", "Tablet"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Firefox", "Desktop"},
		{"curl/8.4.0", "curl", "Desktop"},
		{"", "Unknown", "Unknown"},
	}
	for _, tt := range tests {
		browser, device := ParseUserAgent(tt.ua)
		assert.Equal(t, tt.browser, browser, tt.ua)
		assert.Equal(t, tt.device, device, tt.ua)
	}
}

func TestRecord_WritesParsedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActivityLogRepository(ctrl)
	uc := NewActivityUseCase(repo, logger.NewNop()).(*ActivityUseCase)
	fixed := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *domain.ActivityLog) error {
		assert.Equal(t, "admin", entry.Agent)
		assert.Equal(t, "10.1.1.1", entry.IPAddress)
		assert.Equal(t, "Chrome", entry.Browser)
		assert.Equal(t, "Desktop", entry.Device)
		assert.Equal(t, "Login", entry.Operation)
		assert.Equal(t, fixed, entry.Timestamp)
		return nil
	})

	uc.Record(context.Background(), domain.Actor{Username: "admin", IPAddress: "10.1.1.1", UserAgent: chromeUA}, "Login", "")
}

func TestRecord_SwallowsStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActivityLogRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	uc := NewActivityUseCase(repo, logger.NewNop())
	assert.NotPanics(t, func() {
		uc.Record(context.Background(), domain.Actor{Username: "admin"}, "Login", "")
	})
}

func TestList_RejectsInvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewActivityUseCase(mocks.NewMockActivityLogRepository(ctrl), logger.NewNop())
	start := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := uc.List(context.Background(), domain.ActivityLogFilter{DateRange: domain.DateRange{Start: &start, End: &end}})
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
}

func TestRecordTx_RollsBackWithTransaction(t *testing.T) {
	db := testutil.NewTestDB(t)
	uc := NewActivityUseCase(repository.NewActivityLogRepository(db), logger.NewNop())
	ctx := context.Background()
	actor := domain.Actor{Username: "agent_one"}

	tx := db.Begin()
	require.NoError(t, uc.RecordTx(ctx, tx, actor, domain.OperationCreateGameAccounts, "[]"))
	require.NoError(t, tx.Rollback().Error)

	entries, err := uc.List(ctx, domain.ActivityLogFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)

	tx = db.Begin()
	require.NoError(t, uc.RecordTx(ctx, tx, actor, domain.OperationCreateGameAccounts, "[]"))
	require.NoError(t, tx.Commit().Error)

	entries, err = uc.List(ctx, domain.ActivityLogFilter{Username: "AGENT"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.OperationCreateGameAccounts, entries[0].Operation)
}
