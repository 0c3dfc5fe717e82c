package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp() *fiber.App {
	repo := NewInMemoryRepository(nil)
	handler := NewHandler(NewService(repo))
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestRegisterEndpoint(t *testing.T) {
	app := makeApp()

	code, body := postJSON(t, app, "/api/register", `{"username":"ayse","email":"ayse@x.com","password":"secret1"}`)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, body)
	}
	if strings.Contains(body, "password") {
		t.Fatalf("response must not expose password: %s", body)
	}
	if !strings.Contains(body, "ayse@x.com") {
		t.Fatalf("response missing email: %s", body)
	}

	// same username again, different case
	code, _ = postJSON(t, app, "/api/register", `{"username":"AYSE","email":"new@x.com","password":"secret2"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate username, got %d", code)
	}

	code, _ = postJSON(t, app, "/api/register", `{"username":"mehmet","email":"AYSE@x.com","password":"secret2"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate email, got %d", code)
	}

	code, _ = postJSON(t, app, "/api/register", `{"username":"","email":"","password":""}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 on missing fields, got %d", code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	app := makeApp()

	code, _ := postJSON(t, app, "/api/register", `{"username":"ayse","email":"ayse@x.com","password":"secret1"}`)
	if code != fiber.StatusCreated {
		t.Fatalf("register failed: %d", code)
	}

	code, body := postJSON(t, app, "/api/login", `{"username":"ayse","password":"secret1"}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", code, body)
	}

	var parsed struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	if parsed.Token == "" {
		t.Fatalf("login response missing token")
	}
	if parsed.User.Password != "" {
		t.Fatalf("login response exposes password")
	}

	code, _ = postJSON(t, app, "/api/login", `{"username":"ayse","password":"wrong"}`)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 on bad password, got %d", code)
	}
}
