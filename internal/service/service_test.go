package service

import (
	"testing"

	"maritime-service/internal/model"
	"maritime-service/pkg/httperr"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with foreign keys enforced
// so cascade deletes behave like the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Port{}, &model.Terminal{}, &model.UserInfo{}))
	return db
}

func newTestServices(t *testing.T) (*PortService, *TerminalService, *AccountService) {
	t.Helper()
	db := newTestDB(t)
	log := zap.NewNop()
	return NewPortService(db, log), NewTerminalService(db, log), NewAccountService(db, log)
}

// requireFault asserts that err is a client-facing fault with the given status.
func requireFault(t *testing.T, err error, status int) *httperr.Error {
	t.Helper()
	require.Error(t, err)
	fault, ok := err.(*httperr.Error)
	require.True(t, ok, "expected *httperr.Error, got %T: %v", err, err)
	require.Equal(t, status, fault.Status)
	return fault
}
