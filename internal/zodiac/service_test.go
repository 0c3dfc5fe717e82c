package zodiac

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	service := NewService(NewInMemoryRepository())
	if err := service.SeedIfEmpty(); err != nil {
		t.Fatalf("seeding failed: %v", err)
	}
	return service
}

func TestSeedIfEmpty(t *testing.T) {
	service := seededService(t)

	signs, err := service.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(signs) != 12 {
		t.Fatalf("expected 12 signs, got %d", len(signs))
	}

	names := make(map[string]bool)
	for _, s := range signs {
		if names[s.Name] {
			t.Fatalf("duplicate sign name %q", s.Name)
		}
		names[s.Name] = true
		if s.Element == "" || s.Compatibility == "" {
			t.Fatalf("sign %q is missing seeded fields: %+v", s.Name, s)
		}
	}

	// seeding again must be a no-op
	if err := service.SeedIfEmpty(); err != nil {
		t.Fatalf("reseed failed: %v", err)
	}
	signs, _ = service.List()
	if len(signs) != 12 {
		t.Fatalf("reseed duplicated data, got %d signs", len(signs))
	}
}

func TestGetByNameCaseInsensitive(t *testing.T) {
	service := seededService(t)

	sign, err := service.GetByName("koç")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if sign.Name != "Koç" {
		t.Fatalf("expected Koç, got %q", sign.Name)
	}

	if _, err := service.GetByName("Ejderha"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompatibilityScores(t *testing.T) {
	service := seededService(t)

	cases := []struct {
		first, second                        string
		overall, romantic, friendship, work int
	}{
		// same element, each other's compatibility lists
		{"Koç", "Aslan", 88, 90, 90, 85},
		// complementary elements, listed
		{"Koç", "İkizler", 85, 85, 90, 80},
		// unrelated elements, not listed
		{"Koç", "Boğa", 59, 55, 60, 65},
	}

	for _, tc := range cases {
		result, err := service.Compatibility(tc.first, tc.second)
		if err != nil {
			t.Fatalf("compatibility %s/%s failed: %v", tc.first, tc.second, err)
		}
		if result.Overall != tc.overall || result.Romantic != tc.romantic ||
			result.Friendship != tc.friendship || result.Work != tc.work {
			t.Fatalf("%s/%s: got overall=%d romantic=%d friendship=%d work=%d, want %d/%d/%d/%d",
				tc.first, tc.second,
				result.Overall, result.Romantic, result.Friendship, result.Work,
				tc.overall, tc.romantic, tc.friendship, tc.work)
		}
		if result.Description == "" {
			t.Fatalf("%s/%s: missing description", tc.first, tc.second)
		}

		// scoring is symmetric
		mirrored, err := service.Compatibility(tc.second, tc.first)
		if err != nil {
			t.Fatalf("compatibility %s/%s failed: %v", tc.second, tc.first, err)
		}
		if mirrored.Overall != result.Overall {
			t.Fatalf("%s/%s not symmetric: %d vs %d", tc.first, tc.second, result.Overall, mirrored.Overall)
		}
	}
}

func TestCompatibilityUnknownSign(t *testing.T) {
	service := seededService(t)

	if _, err := service.Compatibility("Koç", "Ejderha"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestZodiacEndpoints(t *testing.T) {
	app := fiber.New()
	NewHandler(seededService(t)).RegisterPublicRoutes(app)

	get := func(path string) (int, string) {
		res, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("request %s failed: %v", path, err)
		}
		b, _ := io.ReadAll(res.Body)
		return res.StatusCode, string(b)
	}

	code, body := get("/api/zodiac-signs")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, body)
	}
	var signs []ZodiacSign
	if err := json.Unmarshal([]byte(body), &signs); err != nil {
		t.Fatalf("bad list body: %v", err)
	}
	if len(signs) != 12 {
		t.Fatalf("expected 12 signs, got %d", len(signs))
	}

	code, body = get("/api/zodiac-signs/Balık")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, body)
	}

	code, _ = get("/api/zodiac-signs/Ejderha")
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}

	code, body = get("/api/compatibility?sign1=Ko%C3%A7&sign2=Aslan")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, body)
	}
	var result CompatibilityResult
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("bad compatibility body: %v", err)
	}
	if result.Overall != 88 {
		t.Fatalf("expected overall 88, got %d", result.Overall)
	}

	code, _ = get("/api/compatibility?sign1=Koç")
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing sign2, got %d", code)
	}
}
