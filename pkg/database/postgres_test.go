package database

import (
	"errors"
	"testing"

	"social-media/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "social_media",
		DBPort:     "5433",
		DBSSLMode:  "require",
	}
	assert.Equal(t,
		"host=db user=app password=secret dbname=social_media port=5433 sslmode=require TimeZone=UTC",
		DSN(cfg))
}

func TestPrepare_ClosesPoolOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectClose()

	migrateErr := errors.New("permission denied for schema public")
	var ran []string
	err := Prepare(db,
		func(*gorm.DB) error { ran = append(ran, "first"); return migrateErr },
		func(*gorm.DB) error { ran = append(ran, "second"); return nil },
	)

	assert.ErrorIs(t, err, migrateErr)
	assert.Equal(t, []string{"first"}, ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrepare_KeepsPoolOpenOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	calls := 0
	require.NoError(t, Prepare(db, func(*gorm.DB) error { calls++; return nil }))
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectClose()
	require.NoError(t, Close(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
