package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-service/internal/domain/errs"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.Issue("alice", []string{"admin", "editor"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, roles, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
	assert.Equal(t, []string{"admin", "editor"}, roles)
}

func TestJWTRoundTripNoRoles(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.Issue("bob", nil)
	require.NoError(t, err)

	subject, roles, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", subject)
	assert.Empty(t, roles)
}

func TestJWTVerifyFailures(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)
	token, err := svc.Issue("alice", nil)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTService("test-secret", -time.Minute)
		stale, err := expired.Issue("alice", nil)
		require.NoError(t, err)

		_, _, err = svc.Verify(stale)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("tampered signature", func(t *testing.T) {
		tampered := token[:len(token)-2] + "xx"
		_, _, err := svc.Verify(tampered)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", 30*time.Minute)
		_, _, err := other.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		anonymous, err := svc.Issue("", nil)
		require.NoError(t, err)

		_, _, err = svc.Verify(anonymous)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, _, err := svc.Verify("not.a.token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
