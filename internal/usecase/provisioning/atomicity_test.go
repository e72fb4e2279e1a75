package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/saradorri/backoffice/internal/config"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/domain/mocks"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// A store failure after one account was inserted must roll everything back
func TestProvisionGameAccounts_StoreFailureMidBatchRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock := setupMockDB(t)
	recorder := &fakeRecorder{}

	// no activity may be recorded for an aborted batch
	activityUC := mocks.NewMockActivityUseCase(ctrl)

	uc := NewProvisioningUseCase(
		repository.NewUserRepository(db),
		repository.NewGameRepository(db),
		repository.NewGameAccountRepository(db),
		activityUC,
		recorder,
		db,
		config.ProvisioningConfig{},
		logger.NewNop(),
	)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role_id", "status"}).AddRow(7, "alice", 4, "active"))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name"}).AddRow(1, "MEGA88", "Mega888"))
	mock.ExpectExec(`SAVEPOINT`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "user_game_accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery(`SELECT \* FROM "games"`).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	result, err := uc.ProvisionGameAccounts(context.Background(), domain.Actor{Username: "agent_one"}, 7, []int64{1, 2})

	assert.Nil(t, result)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeProvisioningFailed, appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatus)
	assert.Equal(t, 1, recorder.failures)
	assert.Empty(t, recorder.batches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvisionGameAccounts_CommitFailureIsProvisioningFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock := setupMockDB(t)
	activityUC := mocks.NewMockActivityUseCase(ctrl)
	activityUC.EXPECT().
		RecordTx(gomock.Any(), gomock.Any(), gomock.Any(), domain.OperationCreateGameAccounts, gomock.Any()).
		Return(nil)

	uc := NewProvisioningUseCase(
		repository.NewUserRepository(db),
		repository.NewGameRepository(db),
		repository.NewGameAccountRepository(db),
		activityUC,
		&fakeRecorder{},
		db,
		config.ProvisioningConfig{},
		logger.NewNop(),
	)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(7, "alice"))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	_, err := uc.ProvisionGameAccounts(context.Background(), domain.Actor{Username: "agent_one"}, 7, []int64{1})

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeProvisioningFailed, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
