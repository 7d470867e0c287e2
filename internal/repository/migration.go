package repository

import (
	"fmt"

	"social-media/internal/domain/account"
	"social-media/internal/domain/message"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []interface{} {
	return []interface{}{
		&account.Account{},
		&message.Message{},
	}
}

// InitSchema creates or updates the accounts and messages tables.
// The unique index on accounts.username backs the duplicate check in Register.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

// TruncateAll empties both tables and resets their identity sequences.
func TruncateAll(db *gorm.DB) error {
	if err := db.Exec(`TRUNCATE TABLE messages, accounts RESTART IDENTITY CASCADE`).Error; err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}
