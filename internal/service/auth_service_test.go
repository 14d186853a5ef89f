package service

import (
	"errors"
	"testing"

	"github.com/suganya-startShine/todo-list-app/internal/dto"
	"github.com/suganya-startShine/todo-list-app/internal/repository"
)

func TestRegisterCreatesDefaultCategories(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")

	categories, err := repository.NewCategoryRepository(db).ListByScope(repository.ForUser(user.ID))
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 4 {
		t.Fatalf("expected 4 default categories, got %d", len(categories))
	}

	names := map[string]bool{}
	for _, c := range categories {
		names[c.Name] = true
		if c.UserID == nil || *c.UserID != user.ID {
			t.Fatalf("category %q not owned by user %d", c.Name, user.ID)
		}
	}
	for _, want := range []string{"Work", "Personal", "Shopping", "Health"} {
		if !names[want] {
			t.Fatalf("missing default category %q", want)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	registerUser(t, db, "alice", "secret1")

	_, err := NewAuthService(db).Register(dto.RegisterForm{Username: "alice", Password: "different-password"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret1"},
		{"empty password", "alice", ""},
		{"whitespace only", "   ", "   "},
		{"short username", "ab", "secret1"},
		{"short password", "alice", "12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(dto.RegisterForm{Username: tc.username, Password: tc.password})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegisterTrimsWhitespace(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "  alice  ", "secret1")

	if user.Username != "alice" {
		t.Fatalf("expected trimmed username, got %q", user.Username)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)
	user := registerUser(t, db, "alice", "secret1")

	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Fatalf("password stored in plaintext or empty")
	}
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	registerUser(t, db, "alice", "secret1")
	auth := NewAuthService(db)

	user, err := auth.Authenticate(dto.LoginForm{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected user alice, got %q", user.Username)
	}

	if _, err := auth.Authenticate(dto.LoginForm{Username: "alice", Password: "wrong-password"}); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := auth.Authenticate(dto.LoginForm{Username: "nobody", Password: "secret1"}); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown user, got %v", err)
	}
}
