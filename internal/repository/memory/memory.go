// Package memory holds in-memory implementations of the repository
// interfaces. They are safe for concurrent use and are meant for local runs
// and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"social-media/internal/domain/account"
	"social-media/internal/domain/message"
	"social-media/internal/repository"
	social_errors "social-media/pkg/errors"
)

var _ repository.AccountRepository = (*AccountStore)(nil)
var _ repository.MessageRepository = (*MessageStore)(nil)
var _ repository.Pinger = (*AccountStore)(nil)

// AccountStore keeps accounts keyed by id with a username index.
type AccountStore struct {
	mu         sync.RWMutex
	nextID     int
	accounts   map[int]account.Account
	byUsername map[string]int
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		nextID:     1,
		accounts:   make(map[int]account.Account),
		byUsername: make(map[string]int),
	}
}

func (s *AccountStore) Create(_ context.Context, a *account.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[a.Username]; taken {
		return social_errors.ErrAlreadyExists
	}
	a.ID = s.nextID
	s.nextID++
	s.accounts[a.ID] = *a
	s.byUsername[a.Username] = a.ID
	return nil
}

func (s *AccountStore) GetByUsername(_ context.Context, username string) (account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return account.Account{}, social_errors.ErrNotFound
	}
	return s.accounts[id], nil
}

func (s *AccountStore) GetByCredentials(ctx context.Context, username, password string) (account.Account, error) {
	a, err := s.GetByUsername(ctx, username)
	if err != nil {
		return account.Account{}, err
	}
	if a.Password != password {
		return account.Account{}, social_errors.ErrNotFound
	}
	return a, nil
}

func (s *AccountStore) ExistsByID(_ context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.accounts[id]
	return ok, nil
}

func (s *AccountStore) Ping(context.Context) error {
	return nil
}

// MessageStore keeps messages keyed by id. Listing returns ascending id
// order, which is insertion order.
type MessageStore struct {
	mu       sync.RWMutex
	nextID   int
	messages map[int]message.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		nextID:   1,
		messages: make(map[int]message.Message),
	}
}

func (s *MessageStore) Create(_ context.Context, m *message.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextID
	s.nextID++
	s.messages[m.ID] = *m
	return nil
}

func (s *MessageStore) GetAll(_ context.Context) ([]message.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(func(message.Message) bool { return true }), nil
}

func (s *MessageStore) GetByID(_ context.Context, id int) (message.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	if !ok {
		return message.Message{}, social_errors.ErrNotFound
	}
	return m, nil
}

func (s *MessageStore) GetByPostedBy(_ context.Context, accountID int) ([]message.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(func(m message.Message) bool { return m.PostedBy == accountID }), nil
}

func (s *MessageStore) ExistsByID(_ context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.messages[id]
	return ok, nil
}

func (s *MessageStore) UpdateText(_ context.Context, id int, text string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return 0, nil
	}
	m.MessageText = text
	s.messages[id] = m
	return 1, nil
}

func (s *MessageStore) Delete(_ context.Context, id int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[id]; !ok {
		return 0, nil
	}
	delete(s.messages, id)
	return 1, nil
}

func (s *MessageStore) collectLocked(keep func(message.Message) bool) []message.Message {
	out := make([]message.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
