package blog

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestListNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()

	now := time.Now().UTC()
	fixtures := []struct {
		slug    string
		daysAgo int
	}{
		{"eski", 21},
		{"en-yeni", 0},
		{"orta", 7},
	}
	for _, p := range fixtures {
		_, err := repo.Create(BlogPost{
			Title:       p.slug,
			Slug:        p.slug,
			Content:     "<p>...</p>",
			PublishedAt: now.AddDate(0, 0, -p.daysAgo),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	posts, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, want := range []string{"en-yeni", "orta", "eski"} {
		if posts[i].Slug != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, posts[i].Slug)
		}
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	repo := NewInMemoryRepository()

	if _, err := repo.Create(BlogPost{Title: "A", Slug: "ayni-slug"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(BlogPost{Title: "B", Slug: "ayni-slug"}); err != ErrSlugExists {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestSeedAndEndpoints(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	if err := service.SeedIfEmpty(); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}
	if err := service.SeedIfEmpty(); err != nil {
		t.Fatalf("reseed failed: %v", err)
	}

	app := fiber.New()
	NewHandler(service).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/blog-posts", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	body, _ := io.ReadAll(res.Body)
	var posts []BlogPost
	if err := json.Unmarshal(body, &posts); err != nil {
		t.Fatalf("bad list body: %v", err)
	}
	if len(posts) != len(seedPosts) {
		t.Fatalf("expected %d posts, got %d", len(seedPosts), len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].PublishedAt.After(posts[i-1].PublishedAt) {
			t.Fatalf("posts not newest first at position %d", i)
		}
	}

	res, err = app.Test(httptest.NewRequest("GET", "/api/blog-posts/"+posts[0].Slug, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	res, err = app.Test(httptest.NewRequest("GET", "/api/blog-posts/yok-boyle-yazi", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
