package blog

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]BlogPost, error) {
	return s.repo.List()
}

func (s *Service) GetBySlug(slug string) (BlogPost, error) {
	return s.repo.GetBySlug(slug)
}

// SeedIfEmpty loads the starter articles on first start. Publish dates are
// staggered so the newest-first ordering is visible out of the box.
func (s *Service) SeedIfEmpty() error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i, post := range seedPosts {
		post.PublishedAt = now.AddDate(0, 0, -i*7)
		if _, err := s.repo.Create(post); err != nil {
			return err
		}
	}
	return nil
}
