package chart

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrNotFound = errors.New("birth chart not found")

type Repository interface {
	Create(chart BirthChart) (BirthChart, error)
	GetByID(id int) (BirthChart, error)
	ListByUser(userID int) ([]BirthChart, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	charts []BirthChart
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(chart BirthChart) (BirthChart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if chart.ID == 0 {
		chart.ID = r.nextID
		r.nextID++
	}
	if chart.CreatedAt.IsZero() {
		chart.CreatedAt = time.Now().UTC()
	}

	r.charts = append(r.charts, chart)
	return chart, nil
}

func (r *InMemoryRepository) GetByID(id int) (BirthChart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ch := range r.charts {
		if ch.ID == id {
			return ch, nil
		}
	}

	return BirthChart{}, ErrNotFound
}

// ListByUser returns the user's charts newest first.
func (r *InMemoryRepository) ListByUser(userID int) ([]BirthChart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	charts := make([]BirthChart, 0)
	for _, ch := range r.charts {
		if ch.UserID == userID {
			charts = append(charts, ch)
		}
	}
	sort.Slice(charts, func(i, j int) bool {
		return charts[i].CreatedAt.After(charts[j].CreatedAt)
	})
	return charts, nil
}
