package seeder

import (
	"context"
	"testing"

	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/repository"
	"github.com/saradorri/backoffice/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeeder_RunIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	s := NewSeeder(
		repository.NewRoleRepository(db),
		repository.NewUserRepository(db),
		repository.NewGameRepository(db),
		repository.NewCommissionRepository(db),
		hasher,
		logger.NewNop(),
	)
	ctx := context.Background()

	require.NoError(t, s.Run(ctx))
	require.NoError(t, s.Run(ctx))

	var count int64
	require.NoError(t, db.Model(&domain.Role{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(6), count)
	require.NoError(t, db.Model(&domain.Game{}).Count(&count).Error)
	assert.Equal(t, int64(6), count)
	require.NoError(t, db.Model(&domain.Commission{}).Count(&count).Error)
	assert.Equal(t, int64(14), count)

	admin, err := repository.NewUserRepository(db).GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, domain.RoleAdmin, admin.Role.Name)
	assert.True(t, hasher.Compare(admin.Password, "admin123"))

	players, err := repository.NewUserRepository(db).ListByRole(ctx, domain.RolePlayer)
	require.NoError(t, err)
	assert.Len(t, players, 3)
}
