package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/session"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/hance08/liverdesk/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AuthListener is told about every change of the signed-in user. user is nil
// after sign-out.
type AuthListener func(user *model.User)

type AuthService struct {
	repo     store.Repository
	tokens   session.TokenStore
	ttl      time.Duration
	hashCost int
	now      func() time.Time
	log      zerolog.Logger

	mu        sync.Mutex
	current   *model.User
	listeners map[int]AuthListener
	nextID    int
}

func NewAuthService(repo store.Repository, tokens session.TokenStore, ttl time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:      repo,
		tokens:    tokens,
		ttl:       ttl,
		hashCost:  bcrypt.DefaultCost,
		now:       timeNow,
		log:       log,
		listeners: make(map[int]AuthListener),
	}
}

// Subscribe registers l and returns a func that removes it again.
func (as *AuthService) Subscribe(l AuthListener) (unsubscribe func()) {
	as.mu.Lock()
	id := as.nextID
	as.nextID++
	as.listeners[id] = l
	as.mu.Unlock()

	return func() {
		as.mu.Lock()
		delete(as.listeners, id)
		as.mu.Unlock()
	}
}

func (as *AuthService) setCurrent(user *model.User) {
	as.mu.Lock()
	as.current = user
	listeners := make([]AuthListener, 0, len(as.listeners))
	for _, l := range as.listeners {
		listeners = append(listeners, l)
	}
	as.mu.Unlock()

	for _, l := range listeners {
		l(user)
	}
}

// CurrentUser resolves the saved session token. It returns ErrNotSignedIn
// when there is no token or the session has expired.
func (as *AuthService) CurrentUser(ctx context.Context) (*model.User, error) {
	as.mu.Lock()
	cached := as.current
	as.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	token, err := as.tokens.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotSignedIn
	}

	sess, err := as.repo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			_ = as.tokens.Clear()
			return nil, ErrNotSignedIn
		}
		return nil, err
	}
	if sess.Expired(as.now()) {
		_ = as.repo.DeleteSession(ctx, token)
		_ = as.tokens.Clear()
		return nil, ErrNotSignedIn
	}

	user, err := as.repo.GetUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			_ = as.tokens.Clear()
			return nil, ErrNotSignedIn
		}
		return nil, err
	}

	as.setCurrent(user)
	return user, nil
}

// SignIn checks the credentials and starts a new session. Unknown email and
// wrong password fail the same way.
func (as *AuthService) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)

	user, err := as.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			as.log.Warn().Str("email", email).Msg("sign-in failed")
			return nil, ErrAuthentication
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		as.log.Warn().Str("email", email).Msg("sign-in failed")
		return nil, ErrAuthentication
	}

	now := as.now()
	if _, err := as.repo.DeleteExpiredSessions(ctx, now); err != nil {
		as.log.Warn().Err(err).Msg("failed to purge expired sessions")
	}

	sess := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(as.ttl),
	}
	if err := as.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	if err := as.tokens.Save(sess.Token); err != nil {
		_ = as.repo.DeleteSession(ctx, sess.Token)
		return nil, err
	}

	as.log.Info().Str("user_id", user.ID).Msg("signed in")
	as.setCurrent(user)
	return user, nil
}

// SignOut ends the current session. Signing out while signed out is a no-op.
func (as *AuthService) SignOut(ctx context.Context) error {
	token, err := as.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		if err := as.repo.DeleteSession(ctx, token); err != nil && !errors.Is(err, store.ErrRecordNotFound) {
			return err
		}
	}
	if err := as.tokens.Clear(); err != nil {
		return err
	}

	as.log.Info().Msg("signed out")
	as.setCurrent(nil)
	return nil
}

// Register creates an operator account.
func (as *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), as.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := as.repo.CreateUser(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}

	as.log.Info().Str("user_id", id).Msg("user registered")
	return &model.User{ID: id, Email: email, PasswordHash: string(hash), CreatedAt: as.now()}, nil
}

// HasUsers reports whether any operator account exists yet.
func (as *AuthService) HasUsers(ctx context.Context) (bool, error) {
	n, err := as.repo.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
