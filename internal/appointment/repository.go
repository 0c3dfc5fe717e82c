package appointment

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Repository interface {
	Create(appt Appointment) (Appointment, error)
	GetByID(id int) (Appointment, error)
	ListByUser(userID int) ([]Appointment, error)
	List() ([]Appointment, error)
	UpdateStatus(id int, confirmed, completed bool) (Appointment, error)
}

type InMemoryRepository struct {
	mu           sync.RWMutex
	appointments []Appointment
	nextID       int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(appt Appointment) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appt.ID == 0 {
		appt.ID = r.nextID
		r.nextID++
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now().UTC()
	}

	r.appointments = append(r.appointments, appt)
	return appt, nil
}

func (r *InMemoryRepository) GetByID(id int) (Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.appointments {
		if a.ID == id {
			return a, nil
		}
	}

	return Appointment{}, ErrNotFound
}

// ListByUser returns the user's appointments soonest first.
func (r *InMemoryRepository) ListByUser(userID int) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appts := make([]Appointment, 0)
	for _, a := range r.appointments {
		if a.UserID == userID {
			appts = append(appts, a)
		}
	}
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].AppointmentDate.Before(appts[j].AppointmentDate)
	})
	return appts, nil
}

func (r *InMemoryRepository) List() ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appts := make([]Appointment, len(r.appointments))
	copy(appts, r.appointments)
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].AppointmentDate.Before(appts[j].AppointmentDate)
	})
	return appts, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, confirmed, completed bool) (Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.appointments {
		if a.ID == id {
			a.Confirmed = confirmed
			a.Completed = completed
			r.appointments[i] = a
			return a, nil
		}
	}

	return Appointment{}, ErrNotFound
}
