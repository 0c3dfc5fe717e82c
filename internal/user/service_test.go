package user

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	created, err := service.Register(User{Username: "ayse", Password: "secret1", Email: "ayse@x.com"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.Password == "secret1" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret1")) != nil {
		t.Fatalf("stored password is not a bcrypt hash of the input")
	}
}

func TestRegisterDuplicateUsernameCaseInsensitive(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	if _, err := service.Register(User{Username: "ayse", Password: "secret1", Email: "ayse@x.com"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := service.Register(User{Username: "AYSE", Password: "other", Email: "other@x.com"}); err != ErrUsernameExists {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	if _, err := service.Register(User{Username: "mehmet", Password: "other", Email: "Ayse@X.com"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRepositoryCreateEnforcesUniqueness(t *testing.T) {
	// the repository itself rejects duplicates, so a registration racing
	// past the service pre-check still cannot produce a second row.
	repo := NewInMemoryRepository(nil)

	if _, err := repo.Create(User{Username: "ayse", Email: "ayse@x.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(User{Username: "Ayse", Email: "new@x.com"}); err != ErrUsernameExists {
		t.Fatalf("expected ErrUsernameExists from repository, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	if _, err := service.Register(User{Username: "ayse", Password: "secret1", Email: "ayse@x.com"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := service.Authenticate("ayse", "secret1")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if u.Username != "ayse" {
		t.Fatalf("unexpected user %q", u.Username)
	}

	if _, err := service.Authenticate("ayse", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := service.Authenticate("nobody", "secret1"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
