package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/mssola/useragent"

	"insightdeck/internal/auth/metrics"
	"insightdeck/internal/auth/models"
	usermodels "insightdeck/internal/users/models"
	dErrors "insightdeck/pkg/domain-errors"
	"insightdeck/pkg/requestcontext"
)

// UserFinder is the slice of the user store the auth service needs. Login is
// the only caller allowed to see stored credentials.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (usermodels.User, error)
}

// SessionStore is the token capability map. Kept behind an interface so
// expiry or rotation can be added later without touching call sites.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	FindByToken(ctx context.Context, token string) (models.Session, error)
}

// Service authenticates callers and resolves bearer tokens back to the user
// snapshot captured at login.
type Service struct {
	users    UserFinder
	sessions SessionStore
	metrics  *metrics.Metrics
	now      func() time.Time
}

func New(users UserFinder, sessions SessionStore, metrics *metrics.Metrics) *Service {
	return &Service{users: users, sessions: sessions, metrics: metrics, now: time.Now}
}

// WithClock overrides the service clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Login checks the credentials and, on success, mints a session. The token
// is opaque: base64url(email:role:nanotimestamp). Logins are infrequent
// relative to nanosecond granularity, so the timestamp guarantees
// uniqueness per call.
func (s *Service) Login(ctx context.Context, email, password string) (models.Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil || user.Password != password {
		s.metrics.ObserveLogin("failure")
		return models.Session{}, dErrors.New(dErrors.CodeUnauthorized, "Invalid credentials.")
	}

	now := s.now()
	raw := fmt.Sprintf("%s:%s:%d", user.Email, user.Role, now.UnixNano())
	session := models.Session{
		Token:     base64.RawURLEncoding.EncodeToString([]byte(raw)),
		User:      user.Sanitize(),
		Device:    deviceLabel(requestcontext.UserAgent(ctx)),
		CreatedAt: now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return models.Session{}, err
	}

	s.metrics.ObserveLogin("success")
	return session, nil
}

// UserFromToken resolves a bearer token to the sanitized user snapshot taken
// at login. Returns nil for unknown tokens.
func (s *Service) UserFromToken(ctx context.Context, token string) *usermodels.Profile {
	if token == "" {
		return nil
	}
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil
	}
	user := session.User
	return &user
}

// RequireRole reports whether user is non-nil and holds one of the allowed
// roles. An empty allowed set always denies.
func RequireRole(user *usermodels.Profile, allowed ...usermodels.Role) bool {
	if user == nil {
		return false
	}
	for _, role := range allowed {
		if user.Role == role {
			return true
		}
	}
	return false
}

// deviceLabel condenses a User-Agent into a short human label for the
// session record.
func deviceLabel(rawUA string) string {
	if rawUA == "" {
		return ""
	}
	ua := useragent.New(rawUA)
	browser, _ := ua.Browser()
	if browser == "" {
		return ua.OS()
	}
	if ua.OS() == "" {
		return browser
	}
	return fmt.Sprintf("%s on %s", browser, ua.OS())
}
