package cart

import (
	"context"
	"sync"

	"github.com/sebitservices/SaborHub-sub000/models"
)

// Store keeps the unconfirmed cart per table between requests. Load
// returns nil when no cart exists for the table.
type Store interface {
	Load(ctx context.Context, tableID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Clear(ctx context.Context, tableID string) error
}

// MemoryStore holds carts in process memory. Suitable for a single node
// and for tests.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Load(ctx context.Context, tableID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[tableID]
	if !ok {
		return nil, nil
	}
	copied := c
	copied.Lines = append([]models.OrderLine(nil), c.Lines...)
	return &copied, nil
}

func (s *MemoryStore) Save(ctx context.Context, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *c
	copied.Lines = append([]models.OrderLine(nil), c.Lines...)
	s.carts[c.Table_id] = copied
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, tableID)
	return nil
}
