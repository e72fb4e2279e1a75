package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/saradorri/backoffice/internal/domain"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory sqlite database with every table migrated.
// The pool is pinned to one connection so all statements share the same memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.Game{},
		&domain.GameAccount{},
		&domain.Commission{},
		&domain.SubAccount{},
		&domain.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// MustCreate inserts every value or fails the test
func MustCreate(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("create %T: %v", v, err)
		}
	}
}

// SeedRoles creates the four standard roles and returns them by name
func SeedRoles(t *testing.T, db *gorm.DB) map[string]*domain.Role {
	t.Helper()
	roles := make(map[string]*domain.Role)
	for _, name := range []string{domain.RoleAdmin, domain.RoleAgentManager, domain.RoleViewer, domain.RolePlayer} {
		role := &domain.Role{Name: name}
		MustCreate(t, db, role)
		roles[name] = role
	}
	return roles
}
