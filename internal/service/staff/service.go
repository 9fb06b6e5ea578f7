package staff

import (
	"context"
	"errors"
	"strings"
	"time"

	"menu-admin-api/internal/domain"
	tokenrepo "menu-admin-api/internal/repository/token"
	userrepo "menu-admin-api/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles staff login and the access guard in front of every
// dashboard mutation.
type Service struct {
	users      userrepo.Repository
	tokens     *tokenManager
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// New creates a Service with sane defaults.
func New(users userrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		users:      users,
		tokens:     newTokenManager(tokens),
		accessTTL:  48 * time.Hour,
		refreshTTL: 30 * 24 * time.Hour,
	}
}

// Login validates credentials and returns issued tokens plus the user.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	rec, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.Issue(ctx, rec.ID, "access", s.accessTTL)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.tokens.Issue(ctx, rec.ID, "refresh", s.refreshTTL)
	if err != nil {
		return nil, "", "", err
	}
	u := rec.User
	return &u, access, refresh, nil
}

// Guard resolves the access token to its user and confirms a staff role.
// Anything short of a valid token bound to an ADMIN or MANAGER yields
// domain.ErrUnauthorized.
func (s *Service) Guard(ctx context.Context, accessToken string) (*domain.User, error) {
	userID, ok := s.tokens.Validate(ctx, accessToken)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	rec, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if !rec.IsStaff() {
		return nil, domain.ErrUnauthorized
	}
	u := rec.User
	return &u, nil
}

// AccessTTLSeconds exposes the access token lifetime in seconds.
func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}
