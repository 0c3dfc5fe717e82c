package chart

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func makeApp() *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository())).RegisterPublicRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func TestCreateChartKeepsDataVerbatim(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	// key order and spacing must survive the round trip untouched
	raw := json.RawMessage(`{"zeta":1,  "alpha": {"nested": [3, 2, 1]}}`)

	created, err := service.Create(BirthChart{
		UserID:     1,
		Name:       "Ayşe",
		BirthDate:  time.Date(1990, 3, 25, 0, 0, 0, 0, time.UTC),
		BirthTime:  "10:00",
		BirthPlace: "İstanbul",
		ChartData:  raw,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !bytes.Equal(stored.ChartData, raw) {
		t.Fatalf("chart data changed: stored %s, want %s", stored.ChartData, raw)
	}
}

func TestCreateChartEndpoint(t *testing.T) {
	app := makeApp()

	code, body := doJSON(t, app, "POST", "/api/birth-charts", `{
		"userId": 1,
		"name": "Ayşe",
		"birthDate": "1990-03-25",
		"birthTime": "10:00",
		"birthPlace": "İstanbul",
		"chartData": {"sun": "Koç"}
	}`)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, body)
	}

	var created BirthChart
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected an id, got %s", body)
	}

	cases := []struct {
		name string
		body string
	}{
		{"missing user", `{"name": "A", "birthDate": "1990-03-25", "birthTime": "10:00", "birthPlace": "X", "chartData": {}}`},
		{"missing fields", `{"userId": 1, "chartData": {"sun": "Koç"}}`},
		{"bad date", `{"userId": 1, "name": "A", "birthDate": "yakında", "birthTime": "10:00", "birthPlace": "X", "chartData": {"sun": "Koç"}}`},
		{"no chart data", `{"userId": 1, "name": "A", "birthDate": "1990-03-25", "birthTime": "10:00", "birthPlace": "X"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code, body := doJSON(t, app, "POST", "/api/birth-charts", tc.body); code != fiber.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", code, body)
			}
		})
	}
}

func TestGetUserChartsOrdering(t *testing.T) {
	repo := NewInMemoryRepository()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"ilk", "ikinci", "üçüncü"} {
		_, err := repo.Create(BirthChart{
			UserID:    5,
			Name:      name,
			BirthDate: base,
			ChartData: json.RawMessage(`{}`),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	// another user's chart must not leak in
	if _, err := repo.Create(BirthChart{UserID: 6, Name: "baska", ChartData: json.RawMessage(`{}`), CreatedAt: base}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	charts, err := repo.ListByUser(5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(charts) != 3 {
		t.Fatalf("expected 3 charts, got %d", len(charts))
	}
	for i, want := range []string{"üçüncü", "ikinci", "ilk"} {
		if charts[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, charts[i].Name)
		}
	}
}

func TestCalculateEndpoint(t *testing.T) {
	app := makeApp()

	code, body := doJSON(t, app, "POST", "/api/birth-charts/calculate", `{
		"birthDate": "1990-03-25",
		"birthTime": "10:00",
		"birthPlace": "İstanbul"
	}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, body)
	}

	var result struct {
		Sun        string `json:"sun"`
		Moon       string `json:"moon"`
		Ascendant  string `json:"ascendant"`
		BirthPlace string `json:"birthPlace"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.Sun != "Koç" {
		t.Fatalf("expected sun sign Koç for 25 March, got %q", result.Sun)
	}
	if result.Moon == "" || result.Ascendant == "" {
		t.Fatalf("incomplete chart: %s", body)
	}
	if result.BirthPlace != "İstanbul" {
		t.Fatalf("birth place not echoed: %s", body)
	}

	if code, body := doJSON(t, app, "POST", "/api/birth-charts/calculate", `{"birthDate": "1990-03-25"}`); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d: %s", code, body)
	}
}
