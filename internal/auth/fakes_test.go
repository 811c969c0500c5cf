package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"quillpost-api/internal/logger"
	"quillpost-api/internal/models"
	"quillpost-api/internal/user"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func nopLogger() *logger.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logger.New(l)
}

// memRepo enforces email uniqueness on save like the unique index does
type memRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	lookups int
	// hideFromLookup makes FindUserByEmail miss until a save fails, simulating a lost race
	hideFromLookup bool
	saveErr        error
}

func newMemRepo() *memRepo {
	return &memRepo{byEmail: make(map[string]*models.User)}
}

func (r *memRepo) SaveUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.byEmail[u.Email]; ok {
		r.hideFromLookup = false
		return user.ErrEmailAlreadyExists
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	stored := *u
	r.byEmail[u.Email] = &stored
	return nil
}

func (r *memRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	u, ok := r.byEmail[email]
	if !ok || r.hideFromLookup {
		return nil, user.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byEmail)
}

// plainHasher keeps tests fast; bcrypt is covered in password_test.go
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hashed, password string) error {
	if hashed != "hashed:"+password {
		return ErrInvalidCredentials
	}
	return nil
}

type fakeLimiter struct {
	mu       sync.Mutex
	locked   bool
	lockErr  error
	failures []string
	resets   []string
}

func (l *fakeLimiter) Locked(context.Context, string, string) (bool, error) {
	return l.locked, l.lockErr
}

func (l *fakeLimiter) RecordFailure(_ context.Context, email, clientIP string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures = append(l.failures, email+"|"+clientIP)
	return nil
}

func (l *fakeLimiter) Reset(_ context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resets = append(l.resets, email)
	return nil
}

type fakeVerifier struct {
	identity *Identity
	err      error
}

func (v fakeVerifier) Verify(context.Context, string) (*Identity, error) {
	return v.identity, v.err
}

// fakeRedis is an in-memory stand-in for the subset of Redis the limiter uses
type fakeRedis struct {
	mu     sync.Mutex
	values map[string]string
	counts map[string]int64
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, counts: map[string]int64{}}
}

func (f *fakeRedis) Ping(context.Context) error { return f.err }

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.values[key], nil
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.values[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeRedis) DeleteMany(_ context.Context, keys ...string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			n++
		}
		delete(f.values, k)
		delete(f.counts, k)
	}
	return n, nil
}

func (f *fakeRedis) IncrWithExpiry(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeRedis) Close() error { return nil }

var errBoom = errors.New("boom")

// blockingRepo holds the first lookup until release is closed, then fails it
// if its context was cancelled in the meantime, as a database driver would
type blockingRepo struct {
	*memRepo
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newBlockingRepo() *blockingRepo {
	return &blockingRepo{
		memRepo: newMemRepo(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (r *blockingRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	first := false
	r.once.Do(func() { first = true })
	if first {
		close(r.entered)
		<-r.release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return r.memRepo.FindUserByEmail(ctx, email)
}
