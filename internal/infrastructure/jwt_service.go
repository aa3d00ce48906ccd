package infrastructure

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"task-service/internal/domain/errs"
)

// JWTService issues and verifies stateless HS256 bearer tokens. There is no
// revocation list: a token stays valid until its expiry regardless of later
// role or account changes.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Issue embeds the subject and the role set as they are right now. Claims
// are a point-in-time snapshot; callers re-issue after role changes.
func (j *JWTService) Issue(subject string, roles []string) (string, error) {
	if roles == nil {
		roles = make([]string, 0)
	}

	now := time.Now()
	claims := tokenClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Verify returns the subject and role claims of a valid token. Signature
// mismatch, expiry, a malformed payload and a missing subject all collapse
// to errs.ErrInvalidToken so the caller leaks nothing about which check
// failed.
func (j *JWTService) Verify(tokenString string) (string, []string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return "", nil, errs.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", nil, errs.ErrInvalidToken
	}

	return claims.Subject, claims.Roles, nil
}
