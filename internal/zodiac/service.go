package zodiac

import "strings"

type Service struct {
	repo Repository
}

// CompatibilityResult mirrors the breakdown shown on the compatibility page.
type CompatibilityResult struct {
	FirstSign   string `json:"firstSign"`
	SecondSign  string `json:"secondSign"`
	Overall     int    `json:"overall"`
	Romantic    int    `json:"romantic"`
	Friendship  int    `json:"friendship"`
	Work        int    `json:"work"`
	Description string `json:"description"`
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]ZodiacSign, error) {
	return s.repo.List()
}

func (s *Service) GetByName(name string) (ZodiacSign, error) {
	return s.repo.GetByName(name)
}

// SeedIfEmpty loads the twelve canonical signs on first start. A store that
// already holds signs is left untouched.
func (s *Service) SeedIfEmpty() error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sign := range seedSigns {
		if _, err := s.repo.Create(sign); err != nil {
			return err
		}
	}
	return nil
}

// complementary elements: fire feeds on air, earth holds water.
var complementaryElements = map[string]string{
	"Ateş":   "Hava",
	"Hava":   "Ateş",
	"Toprak": "Su",
	"Su":     "Toprak",
}

// Compatibility scores a pair of signs with the site's rule-based system.
// Unlike the original page the work score carries no random component, so
// the same pair always yields the same numbers.
func (s *Service) Compatibility(first, second string) (CompatibilityResult, error) {
	a, err := s.repo.GetByName(first)
	if err != nil {
		return CompatibilityResult{}, err
	}
	b, err := s.repo.GetByName(second)
	if err != nil {
		return CompatibilityResult{}, err
	}

	elementScore := 50
	if a.Element == b.Element {
		elementScore = 90
	} else if complementaryElements[a.Element] == b.Element {
		elementScore = 80
	}

	compatibilityScore := 60
	if strings.Contains(a.Compatibility, b.Name) || strings.Contains(b.Compatibility, a.Name) {
		compatibilityScore = 90
	}

	romantic := (elementScore + compatibilityScore) / 2
	friendship := elementScore + 10
	if friendship > 90 {
		friendship = 90
	}
	work := elementScore/2 + 40

	overall := (romantic*4 + friendship*3 + work*3) / 10

	return CompatibilityResult{
		FirstSign:   a.Name,
		SecondSign:  b.Name,
		Overall:     overall,
		Romantic:    romantic,
		Friendship:  friendship,
		Work:        work,
		Description: compatibilityDescription(overall),
	}, nil
}

func compatibilityDescription(score int) string {
	switch {
	case score >= 85:
		return "Mükemmel bir uyum! Bu iki burç birbirini çok iyi tamamlıyor."
	case score >= 70:
		return "İyi bir uyum. Küçük farklılıklar ilişkiyi zenginleştirebilir."
	case score >= 50:
		return "Orta düzeyde uyum. Karşılıklı anlayış ile güzel bir ilişki kurulabilir."
	default:
		return "Zorlayıcı bir kombinasyon. Sabır ve iletişim gerektirir."
	}
}
