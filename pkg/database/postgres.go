package database

import (
	"context"
	"fmt"
	"time"

	"social-media/config"
	"social-media/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN builds the pgx connection string from the config.
func DSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
}

// Connect opens the Postgres pool. Writes are single statements, so GORM's
// implicit per-write transaction is skipped.
func Connect(cfg *config.Config, l *logger.Logger) (*gorm.DB, error) {
	level := gormlogger.Info
	if cfg.AppEnv == logger.ProductionMode {
		level = gormlogger.Warn
	}

	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(level),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic database object: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if l != nil {
		l.Infof("Database connection established (%s:%s/%s)", cfg.DBHost, cfg.DBPort, cfg.DBName)
	}
	return db, nil
}

// Prepare runs the setup steps against db in order. When a step fails the
// pool is closed and the step's error returned.
func Prepare(db *gorm.DB, steps ...func(*gorm.DB) error) error {
	for _, step := range steps {
		if err := step(db); err != nil {
			_ = Close(db)
			return err
		}
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthChecker pings the pool behind a *gorm.DB.
type HealthChecker struct {
	db *gorm.DB
}

func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

func TableExists(db *gorm.DB, table string) bool {
	return db.Migrator().HasTable(table)
}

func GetTableCount(db *gorm.DB, table string) (int64, error) {
	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
