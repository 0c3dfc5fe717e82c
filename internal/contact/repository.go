package contact

import (
	"sync"
	"time"
)

type Repository interface {
	Create(msg ContactMessage) (ContactMessage, error)
	List() ([]ContactMessage, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	messages []ContactMessage
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(msg ContactMessage) (ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == 0 {
		msg.ID = r.nextID
		r.nextID++
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	r.messages = append(r.messages, msg)
	return msg, nil
}

func (r *InMemoryRepository) List() ([]ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]ContactMessage, len(r.messages))
	copy(messages, r.messages)
	return messages, nil
}
