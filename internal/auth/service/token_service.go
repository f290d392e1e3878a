package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fiscalhub/fiscalhub/internal/auth/domain"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

// clockSkewLeeway absorbs small clock differences between the issuing
// and verifying hosts when validating time-based claims.
const clockSkewLeeway = 5 * time.Second

// tokenService implements TokenService with HS256-signed JWTs.
type tokenService struct {
	secret     []byte
	expiration time.Duration
	maxAge     time.Duration
	revoked    RevocationStore
}

// NewTokenService creates a TokenService signing with the given secret.
// expiration is the signature expiry embedded in issued tokens; maxAge is
// a hard ceiling on token age measured from the issued-at claim, enforced
// even if the embedded expiry would still accept the token.
func NewTokenService(secret string, expiration, maxAge time.Duration, revoked RevocationStore) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.Wrap(apperrors.ErrInternal, "token signing secret is not configured")
	}
	return &tokenService{
		secret:     []byte(secret),
		expiration: expiration,
		maxAge:     maxAge,
		revoked:    revoked,
	}, nil
}

func (t *tokenService) Issue(cpf string) (string, *domain.Claims, error) {
	now := time.Now()
	claims := &domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    domain.Issuer,
			Subject:   cpf,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiration)),
		},
		Type: domain.TokenTypeAccess,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", nil, apperrors.Wrap(err, "failed to sign token")
	}
	return signed, claims, nil
}

func (t *tokenService) Verify(token string) (*domain.Claims, error) {
	// Revocation is checked on the unverified payload so a revoked token
	// is reported as revoked even when its signature has since expired.
	// The trade-off: any token carrying a revoked jti is answered with
	// "revoked" before its signature is checked. Either way it is a 401
	// and never grants access.
	if jti, ok := unverifiedJTI(token); ok && t.revoked.Contains(jti) {
		return nil, domain.ErrTokenRevoked
	}

	claims, err := t.parse(token, false)
	if err != nil {
		return nil, err
	}

	if claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > t.maxAge {
		return nil, domain.ErrTokenExpired
	}

	return claims, nil
}

func (t *tokenService) Revoke(token string) (*domain.Claims, error) {
	// Expiry is ignored here: signing out with a token that just expired
	// must not fail, and revoking twice is a no-op.
	claims, err := t.parse(token, true)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(t.maxAge)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	t.revoked.Add(claims.ID, expiresAt)

	return claims, nil
}

// parse verifies the signature and registered claims of a token.
// With skipExpiry the exp claim is not enforced.
func (t *tokenService) parse(token string, skipExpiry bool) (*domain.Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithLeeway(clockSkewLeeway),
		jwt.WithIssuer(domain.Issuer),
	}
	if skipExpiry {
		options = append(options, jwt.WithoutClaimsValidation())
	}

	claims := &domain.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(parsed *jwt.Token) (any, error) {
		if parsed.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid
		}
		return t.secret, nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !parsed.Valid || claims.Type != domain.TokenTypeAccess || claims.ID == "" || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// unverifiedJTI extracts the jti claim without verifying the signature.
func unverifiedJTI(token string) (string, bool) {
	claims := &domain.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", false
	}
	return claims.ID, claims.ID != ""
}
