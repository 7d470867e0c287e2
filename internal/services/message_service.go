package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"social-media/internal/domain/message"
	"social-media/internal/repository"
	social_errors "social-media/pkg/errors"
)

// MessageService validates and stores messages. It keeps no state of its
// own; every call reads through to the repositories.
type MessageService struct {
	messageRepo repository.MessageRepository
	accountRepo repository.AccountRepository
}

func NewMessageService(messageRepo repository.MessageRepository, accountRepo repository.AccountRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		accountRepo: accountRepo,
	}
}

// Create checks the author before the text, so a message failing both is
// rejected as an invalid user.
func (s *MessageService) Create(ctx context.Context, candidate message.Message) (message.Message, error) {
	exists, err := s.accountRepo.ExistsByID(ctx, candidate.PostedBy)
	if err != nil {
		return message.Message{}, err
	}
	if !exists {
		return message.Message{}, fmt.Errorf("%w: invalid user", social_errors.ErrInvalidInput)
	}
	if err := validateText(candidate.MessageText); err != nil {
		return message.Message{}, err
	}

	stored := message.Message{
		PostedBy:    candidate.PostedBy,
		MessageText: candidate.MessageText,
		TimePosted:  candidate.TimePosted,
	}
	if err := s.messageRepo.Create(ctx, &stored); err != nil {
		return message.Message{}, err
	}
	return stored, nil
}

func (s *MessageService) ListAll(ctx context.Context) ([]message.Message, error) {
	return s.messageRepo.GetAll(ctx)
}

// GetByID reports found=false for a missing message instead of an error.
func (s *MessageService) GetByID(ctx context.Context, id int) (message.Message, bool, error) {
	m, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, social_errors.ErrNotFound) {
			return message.Message{}, false, nil
		}
		return message.Message{}, false, err
	}
	return m, true, nil
}

// DeleteByID returns the number of messages removed. A missing id is a no-op.
func (s *MessageService) DeleteByID(ctx context.Context, id int) (int64, error) {
	return s.messageRepo.Delete(ctx, id)
}

// UpdateText replaces the text of an existing message. The existence check
// and the write are separate statements, so concurrent updates to one id are
// last-write-wins.
func (s *MessageService) UpdateText(ctx context.Context, id int, text string) (int64, error) {
	if err := validateText(text); err != nil {
		return 0, err
	}

	exists, err := s.messageRepo.ExistsByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: message not found", social_errors.ErrNotFound)
	}

	affected, err := s.messageRepo.UpdateText(ctx, id, text)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, fmt.Errorf("%w: message not found", social_errors.ErrNotFound)
	}
	return affected, nil
}

func (s *MessageService) ListByOwner(ctx context.Context, accountID int) ([]message.Message, error) {
	return s.messageRepo.GetByPostedBy(ctx, accountID)
}

func validateText(text string) error {
	if isBlank(text) {
		return fmt.Errorf("%w: blank text", social_errors.ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > message.MaxTextLength {
		return fmt.Errorf("%w: too long", social_errors.ErrInvalidInput)
	}
	return nil
}
