package mocks

import (
	"context"

	"social-media/internal/domain/message"

	"github.com/stretchr/testify/mock"
)

// MessageRepository is a testify mock of repository.MessageRepository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) GetAll(ctx context.Context) ([]message.Message, error) {
	args := m.Called(ctx)
	messages, _ := args.Get(0).([]message.Message)
	return messages, args.Error(1)
}

func (m *MessageRepository) GetByID(ctx context.Context, id int) (message.Message, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(message.Message), args.Error(1)
}

func (m *MessageRepository) GetByPostedBy(ctx context.Context, accountID int) ([]message.Message, error) {
	args := m.Called(ctx, accountID)
	messages, _ := args.Get(0).([]message.Message)
	return messages, args.Error(1)
}

func (m *MessageRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MessageRepository) UpdateText(ctx context.Context, id int, text string) (int64, error) {
	args := m.Called(ctx, id, text)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MessageRepository) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
