package chart

import (
	"time"

	"github.com/astrosight/astrosight-backend/internal/astro"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(chart BirthChart) (BirthChart, error) {
	chart.CreatedAt = time.Now().UTC()
	return s.repo.Create(chart)
}

func (s *Service) GetByID(id int) (BirthChart, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByUser(userID int) ([]BirthChart, error) {
	return s.repo.ListByUser(userID)
}

// Calculate derives a chart summary without persisting anything.
func (s *Service) Calculate(birthDate time.Time, birthTime, birthPlace string) astro.ChartData {
	return astro.Derive(birthDate, birthTime, birthPlace)
}
