package contact

import (
	"fmt"
	"log"
	"time"

	"github.com/astrosight/astrosight-backend/internal/mailer"
)

// siteInbox receives a copy of every contact-form submission.
const siteInbox = "contact@astrosight.com"

type Service struct {
	repo   Repository
	sender mailer.Sender
}

func NewService(repo Repository, sender mailer.Sender) *Service {
	return &Service{repo: repo, sender: sender}
}

// Create stores the message, then forwards it to the site inbox. The
// forward is best effort: the stored message is returned even when the
// mail relay is down.
func (s *Service) Create(msg ContactMessage) (ContactMessage, error) {
	msg.CreatedAt = time.Now().UTC()
	created, err := s.repo.Create(msg)
	if err != nil {
		return ContactMessage{}, err
	}

	subject := fmt.Sprintf("Contact Form: %s", created.Subject)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", created.Name, created.Email, created.Message)
	if err := s.sender.Send(siteInbox, subject, body); err != nil {
		log.Printf("warning: could not forward contact message %d: %v", created.ID, err)
	}

	return created, nil
}
