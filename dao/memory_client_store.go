// api/dao/memory_client_store.go
package dao

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

// MemoryClientStore keeps clients in insertion order. Used with storage.driver=memory and in tests.
type MemoryClientStore struct {
	mu      sync.RWMutex
	order   []string
	clients map[string]model.Client
}

var _ ClientStore = (*MemoryClientStore)(nil)

func NewMemoryClientStore() *MemoryClientStore {
	return &MemoryClientStore{clients: make(map[string]model.Client)}
}

func (s *MemoryClientStore) FindByID(ctx context.Context, id string) (*model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok {
		return nil, shop_errors.ErrClientNotFound
	}
	return &client, nil
}

func (s *MemoryClientStore) All(ctx context.Context) ([]*model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]*model.Client, 0, len(s.order))
	for _, id := range s.order {
		client := s.clients[id]
		clients = append(clients, &client)
	}
	return clients, nil
}

func (s *MemoryClientStore) Create(ctx context.Context, client *model.Client) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if _, exists := s.clients[client.ID]; exists {
		return "", shop_errors.ErrClientConflict
	}
	if s.emailTaken(client.Email, "") {
		return "", shop_errors.ErrClientConflict
	}

	s.clients[client.ID] = *client
	s.order = append(s.order, client.ID)
	logger.Debug("Client stored in memory", zap.String("clientID", client.ID))
	return client.ID, nil
}

func (s *MemoryClientStore) Update(ctx context.Context, client *model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[client.ID]; !exists {
		return shop_errors.ErrClientNotFound
	}
	if s.emailTaken(client.Email, client.ID) {
		return shop_errors.ErrClientConflict
	}
	s.clients[client.ID] = *client
	return nil
}

func (s *MemoryClientStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[id]; !exists {
		return shop_errors.ErrClientNotFound
	}
	delete(s.clients, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// emailTaken must be called with mu held.
func (s *MemoryClientStore) emailTaken(email, exceptID string) bool {
	if email == "" {
		return false
	}
	for id, existing := range s.clients {
		if id != exceptID && strings.EqualFold(existing.Email, email) {
			return true
		}
	}
	return false
}
