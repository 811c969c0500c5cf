package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quillpost-api/internal/logger"
	"quillpost-api/internal/models"
	"quillpost-api/internal/user"
	"quillpost-api/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// federatedCreateTimeout bounds the lookup-or-create shared by concurrent Google sign-ins
const federatedCreateTimeout = 10 * time.Second

// Service handles authentication operations
type Service struct {
	repo      user.Repository
	validator user.UserValidator
	hasher    PasswordHasher
	issuer    TokenIssuer
	limiter   AttemptLimiter
	verifier  IdentityVerifier
	logger    *logger.Logger

	// federated sign-ins for the same email share one lookup-or-create
	googleGroup singleflight.Group
}

// NewService creates a new auth service. limiter and verifier may be nil.
func NewService(
	repo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	limiter AttemptLimiter,
	verifier IdentityVerifier,
	logger *logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		validator: user.NewUserValidator(),
		hasher:    hasher,
		issuer:    issuer,
		limiter:   limiter,
		verifier:  verifier,
		logger:    logger,
	}
}

// Register creates a credential record for a new email
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	if err := s.validator.ValidateRegistration(name, email, password); err != nil {
		return err
	}
	email = user.NormalizeEmail(email)

	_, err := s.repo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrUserAlreadyRegistered
	case !errors.Is(err, user.ErrUserNotFound):
		return err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
	}
	if err := s.repo.SaveUser(ctx, newUser); err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return ErrUserAlreadyRegistered
		}
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": newUser.ID,
	}).Info("User registered")

	return nil
}

// Login checks an email/password pair and issues a session token
func (s *Service) Login(ctx context.Context, email, password, clientIP string) (*Session, error) {
	email = user.NormalizeEmail(email)

	if s.limiter != nil {
		locked, err := s.limiter.Locked(ctx, email, clientIP)
		if err != nil {
			s.logger.SecureLog(err, "Login limiter unavailable", "login")
		} else if locked {
			return nil, ErrTooManyAttempts
		}
	}

	found, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			s.recordFailure(ctx, email, clientIP)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(found.Password, password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.recordFailure(ctx, email, clientIP)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.SecureLog(err, "Failed to reset login attempts", "login")
		}
	}

	return s.newSession(found)
}

// GoogleLogin signs in a federated identity, creating the record on first use
func (s *Service) GoogleLogin(ctx context.Context, input GoogleLoginInput) (*Session, error) {
	email := user.NormalizeEmail(input.Email)

	if s.verifier != nil {
		identity, err := s.verifier.Verify(ctx, input.IDToken)
		if err != nil {
			s.logger.SecureLog(err, "Identity token rejected", "google-login")
			return nil, ErrInvalidIdentity
		}
		// an unverified address could belong to someone else's account
		if !identity.EmailVerified || user.NormalizeEmail(identity.Email) != email {
			return nil, ErrInvalidIdentity
		}
		if name := strings.TrimSpace(identity.Name); name != "" {
			input.Name = name
		}
		if identity.Picture != "" {
			input.Avatar = identity.Picture
		}
	}

	// The shared call outlives any single caller; each caller still honors its own ctx
	ch := s.googleGroup.DoChan(email, func() (any, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), federatedCreateTimeout)
		defer cancel()
		return s.findOrCreateFederated(shared, email, input)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return s.newSession(res.Val.(*models.User))
	}
}

func (s *Service) findOrCreateFederated(ctx context.Context, email string, input GoogleLoginInput) (*models.User, error) {
	existing, err := s.repo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	// The account gets a password nobody knows; it can only sign in through Google
	hashed, err := s.hasher.Hash(utils.GenerateID())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created := &models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: hashed,
		Avatar:   input.Avatar,
	}
	if err := s.repo.SaveUser(ctx, created); err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			// Another instance created it first
			return s.repo.FindUserByEmail(ctx, email)
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": created.ID,
	}).Info("User created from Google sign-in")

	return created, nil
}

func (s *Service) newSession(u *models.User) (*Session, error) {
	token, err := s.issuer.GenerateToken(u)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &Session{
		Token: token,
		User:  u.Sanitized(),
	}, nil
}

func (s *Service) recordFailure(ctx context.Context, email, clientIP string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email, clientIP); err != nil {
		s.logger.SecureLog(err, "Failed to record login failure", "login")
	}
}

// SessionTTL is the lifetime of issued tokens, zero when they do not expire
func (s *Service) SessionTTL() time.Duration {
	return s.issuer.TTL()
}
