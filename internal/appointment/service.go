package appointment

import (
	"fmt"
	"log"
	"time"

	"github.com/astrosight/astrosight-backend/internal/mailer"
)

// Service owns the booking lifecycle: pending on create, then forward
// transitions only. Notifications go out after the write succeeds and a
// failed send never undoes or fails the write.
type Service struct {
	repo   Repository
	sender mailer.Sender
}

func NewService(repo Repository, sender mailer.Sender) *Service {
	return &Service{repo: repo, sender: sender}
}

// Create stores the booking as pending regardless of any status flags on
// the input, then emails a "request received" note to the booker.
func (s *Service) Create(appt Appointment) (Appointment, error) {
	appt.Confirmed = false
	appt.Completed = false
	appt.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(appt)
	if err != nil {
		return Appointment{}, err
	}

	subject := "Randevu Talebiniz Alındı - AstroSight"
	body := fmt.Sprintf(
		"Merhaba %s,\n\n%s tarihinde saat %s için randevu talebiniz alındı. Onaylandığında size tekrar yazacağız.\n\nAstroSight",
		created.FullName, created.AppointmentDate.Format("02.01.2006"), created.AppointmentTime,
	)
	if err := s.sender.Send(created.Email, subject, body); err != nil {
		log.Printf("warning: could not send request notification for appointment %d: %v", created.ID, err)
	}

	return created, nil
}

func (s *Service) GetByID(id int) (Appointment, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByUser(userID int) ([]Appointment, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) List() ([]Appointment, error) {
	return s.repo.List()
}

// SetStatus applies a status change. Allowed moves are pending→confirmed,
// confirmed→completed and the direct pending→completed (which confirms on
// the way); un-confirming or un-completing is rejected, as is the
// {confirmed:false, completed:true} combination. Restating the current
// status succeeds without touching the store or sending mail.
//
// Two concurrent conflicting updates on the same id are not serialized
// here: each request validates against the state it read. Acceptable for
// the single-operator usage this service sees.
func (s *Service) SetStatus(id int, confirmed, completed bool) (Appointment, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return Appointment{}, err
	}

	if completed && !confirmed {
		return Appointment{}, ErrInvalidTransition
	}
	if current.Confirmed && !confirmed {
		return Appointment{}, ErrInvalidTransition
	}
	if current.Completed && !completed {
		return Appointment{}, ErrInvalidTransition
	}

	if current.Confirmed == confirmed && current.Completed == completed {
		return current, nil
	}

	updated, err := s.repo.UpdateStatus(id, confirmed, completed)
	if err != nil {
		return Appointment{}, err
	}

	// Mail only on entering the confirmed state; completion is silent.
	if !current.Confirmed && updated.Confirmed && !updated.Completed {
		subject := "Randevunuz Onaylandı - AstroSight"
		body := fmt.Sprintf(
			"Merhaba %s,\n\n%s tarihinde saat %s randevunuz onaylandı. Görüşmek üzere!\n\nAstroSight",
			updated.FullName, updated.AppointmentDate.Format("02.01.2006"), updated.AppointmentTime,
		)
		if err := s.sender.Send(updated.Email, subject, body); err != nil {
			log.Printf("warning: could not send confirmation for appointment %d: %v", updated.ID, err)
		}
	}

	return updated, nil
}
