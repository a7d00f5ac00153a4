package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/session"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/hance08/liverdesk/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) (*AuthService, *session.MemoryStore) {
	t.Helper()

	tokens := &session.MemoryStore{}
	as := NewAuthService(newTestRepo(t), tokens, time.Hour, zerolog.Nop())
	as.hashCost = bcrypt.MinCost
	return as, tokens
}

func TestSignInSignOut(t *testing.T) {
	ctx := context.Background()
	as, tokens := newTestAuth(t)

	if _, err := as.Register(ctx, "ops@example.com", "correct-horse"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var events []*model.User
	unsubscribe := as.Subscribe(func(u *model.User) { events = append(events, u) })
	defer unsubscribe()

	if _, err := as.CurrentUser(ctx); !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("CurrentUser before sign-in err = %v", err)
	}

	user, err := as.SignIn(ctx, "ops@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if token, _ := tokens.Load(); token == "" {
		t.Error("sign-in should save a token")
	}

	// a fresh service with the same token store resumes the session
	resumed := NewAuthService(as.repo, tokens, time.Hour, zerolog.Nop())
	got, err := resumed.CurrentUser(ctx)
	if err != nil || got.ID != user.ID {
		t.Fatalf("CurrentUser = %+v, %v", got, err)
	}

	if err := as.SignOut(ctx); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}
	if _, err := as.CurrentUser(ctx); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("CurrentUser after sign-out err = %v", err)
	}
	if err := as.SignOut(ctx); err != nil {
		t.Errorf("second SignOut failed: %v", err)
	}

	if len(events) < 2 || events[0] == nil || events[len(events)-1] != nil {
		t.Errorf("unexpected listener events: %v", events)
	}
}

func TestSignInFailures(t *testing.T) {
	ctx := context.Background()
	as, tokens := newTestAuth(t)
	_, _ = as.Register(ctx, "ops@example.com", "correct-horse")

	for _, c := range [][2]string{
		{"ops@example.com", "wrong-password"},
		{"nobody@example.com", "correct-horse"},
	} {
		if _, err := as.SignIn(ctx, c[0], c[1]); !errors.Is(err, ErrAuthentication) {
			t.Errorf("SignIn(%s) err = %v, want ErrAuthentication", c[0], err)
		}
	}
	if token, _ := tokens.Load(); token != "" {
		t.Error("failed sign-in saved a token")
	}
}

func TestExpiredSession(t *testing.T) {
	ctx := context.Background()
	as, tokens := newTestAuth(t)
	_, _ = as.Register(ctx, "ops@example.com", "correct-horse")

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	as.now = func() time.Time { return start }
	if _, err := as.SignIn(ctx, "ops@example.com", "correct-horse"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	later := NewAuthService(as.repo, tokens, time.Hour, zerolog.Nop())
	later.now = func() time.Time { return start.Add(2 * time.Hour) }
	if _, err := later.CurrentUser(ctx); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("expired session err = %v, want ErrNotSignedIn", err)
	}
	if token, _ := tokens.Load(); token != "" {
		t.Error("expired token should be cleared")
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	as, _ := newTestAuth(t)

	if ok, _ := as.HasUsers(ctx); ok {
		t.Error("fresh store should have no users")
	}
	if _, err := as.Register(ctx, "not-an-email", "correct-horse"); !errors.Is(err, validation.ErrInvalidInput) {
		t.Errorf("bad email err = %v", err)
	}
	if _, err := as.Register(ctx, "ops@example.com", "short"); !errors.Is(err, validation.ErrInvalidInput) {
		t.Errorf("short password err = %v", err)
	}

	user, err := as.Register(ctx, "ops@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("password stored in clear text")
	}
	if _, err := as.Register(ctx, "ops@example.com", "another-pass"); !errors.Is(err, store.ErrUserExists) {
		t.Errorf("duplicate err = %v, want ErrUserExists", err)
	}
	if ok, _ := as.HasUsers(ctx); !ok {
		t.Error("HasUsers should be true after Register")
	}
}
