package blog

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrNotFound   = errors.New("blog post not found")
	ErrSlugExists = errors.New("slug already exists")
)

type Repository interface {
	List() ([]BlogPost, error)
	GetByID(id int) (BlogPost, error)
	GetBySlug(slug string) (BlogPost, error)
	Create(post BlogPost) (BlogPost, error)
	Count() (int, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	posts  []BlogPost
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

// List returns posts newest first.
func (r *InMemoryRepository) List() ([]BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]BlogPost, len(r.posts))
	copy(posts, r.posts)
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, nil
}

func (r *InMemoryRepository) GetByID(id int) (BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}

	return BlogPost{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.Slug == slug {
			return p, nil
		}
	}

	return BlogPost{}, ErrNotFound
}

func (r *InMemoryRepository) Create(post BlogPost) (BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.posts {
		if existing.Slug == post.Slug {
			return BlogPost{}, ErrSlugExists
		}
	}

	if post.ID == 0 {
		post.ID = r.nextID
		r.nextID++
	}
	if post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now().UTC()
	}

	r.posts = append(r.posts, post)
	return post, nil
}

func (r *InMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}
