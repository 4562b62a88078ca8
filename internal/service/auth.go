package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/campusops/roster/internal/domain"
)

var tracer = otel.Tracer("auth")

// CapabilitySource resolves the capability set a user holds.
type CapabilitySource interface {
	CapabilitiesFor(ctx context.Context, userID int64) ([]string, error)
}

// SessionSource answers whether a token id has been revoked.
type SessionSource interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService resolves a bearer token into a Requester. Every failure mode
// surfaces to the caller as the same unauthorized error so that a denied
// request never reveals whether the session or the permission was at fault.
type AuthService struct {
	secret   []byte
	caps     CapabilitySource
	sessions SessionSource
}

// NewAuthService builds the gate. sessions may be nil when no revocation
// store is configured.
func NewAuthService(secret []byte, caps CapabilitySource, sessions SessionSource) *AuthService {
	return &AuthService{
		secret:   secret,
		caps:     caps,
		sessions: sessions,
	}
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// Resolve validates the token, checks revocation, and loads capabilities.
func (s *AuthService) Resolve(ctx context.Context, token string) (domain.Requester, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Resolve")
	defer span.End()

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		span.RecordError(errors.Wrap(err, "token validation failed"))
		return domain.Requester{}, domain.UnauthorizedError{Reason: "invalid token"}
	}

	if s.sessions != nil && claims.ID != "" {
		revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
		if err != nil {
			// fail closed
			span.RecordError(errors.Wrap(err, "session lookup failed"))
			return domain.Requester{}, domain.UnauthorizedError{Reason: "session lookup failed"}
		}
		if revoked {
			return domain.Requester{}, domain.UnauthorizedError{Reason: "session revoked"}
		}
	}

	capabilities, err := s.caps.CapabilitiesFor(ctx, claims.UserID)
	if err != nil {
		span.RecordError(errors.Wrap(err, "capability lookup failed"))
		return domain.Requester{}, domain.UnauthorizedError{Reason: "capability lookup failed"}
	}

	return domain.Requester{
		UserID:       claims.UserID,
		Capabilities: capabilities,
	}, nil
}
