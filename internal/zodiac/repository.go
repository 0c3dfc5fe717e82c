package zodiac

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound   = errors.New("zodiac sign not found")
	ErrNameExists = errors.New("zodiac sign already exists")
)

type Repository interface {
	List() ([]ZodiacSign, error)
	GetByID(id int) (ZodiacSign, error)
	GetByName(name string) (ZodiacSign, error)
	Create(sign ZodiacSign) (ZodiacSign, error)
	Count() (int, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	signs  []ZodiacSign
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) List() ([]ZodiacSign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	signs := make([]ZodiacSign, len(r.signs))
	copy(signs, r.signs)
	return signs, nil
}

func (r *InMemoryRepository) GetByID(id int) (ZodiacSign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.signs {
		if s.ID == id {
			return s, nil
		}
	}

	return ZodiacSign{}, ErrNotFound
}

func (r *InMemoryRepository) GetByName(name string) (ZodiacSign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.signs {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}

	return ZodiacSign{}, ErrNotFound
}

func (r *InMemoryRepository) Create(sign ZodiacSign) (ZodiacSign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.signs {
		if strings.EqualFold(existing.Name, sign.Name) {
			return ZodiacSign{}, ErrNameExists
		}
	}

	if sign.ID == 0 {
		sign.ID = r.nextID
		r.nextID++
	}

	r.signs = append(r.signs, sign)
	return sign, nil
}

func (r *InMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.signs), nil
}
