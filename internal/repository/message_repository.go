package repository

import (
	"context"
	"errors"
	"fmt"

	"social-media/internal/domain/message"
	social_errors "social-media/pkg/errors"

	"gorm.io/gorm"
)

type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m *message.Message) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (r *PostgresMessageRepository) GetAll(ctx context.Context) ([]message.Message, error) {
	messages := []message.Message{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (r *PostgresMessageRepository) GetByID(ctx context.Context, id int) (message.Message, error) {
	var m message.Message
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return message.Message{}, social_errors.ErrNotFound
		}
		return message.Message{}, fmt.Errorf("get message %d: %w", id, err)
	}
	return m, nil
}

func (r *PostgresMessageRepository) GetByPostedBy(ctx context.Context, accountID int) ([]message.Message, error) {
	messages := []message.Message{}
	err := r.db.WithContext(ctx).
		Where("posted_by = ?", accountID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("list messages of account %d: %w", accountID, err)
	}
	return messages, nil
}

func (r *PostgresMessageRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&message.Message{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count message %d: %w", id, err)
	}
	return count > 0, nil
}

// UpdateText touches message_text only; posted_by and time_posted are left as stored.
func (r *PostgresMessageRepository) UpdateText(ctx context.Context, id int, text string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&message.Message{}).
		Where("id = ?", id).
		Update("message_text", text)
	if res.Error != nil {
		return 0, fmt.Errorf("update message %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *PostgresMessageRepository) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&message.Message{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete message %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
