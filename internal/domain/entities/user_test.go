package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserPasswordRoundTrip(t *testing.T) {
	user := NewUser("alice", "pw123")
	require.NoError(t, user.HashPassword(bcrypt.MinCost))

	assert.NotEqual(t, "pw123", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("pw123"))
	assert.Error(t, user.CheckPassword("other"))
}

func TestUserCheckPasswordMalformedHash(t *testing.T) {
	user := NewUser("alice", "pw123")
	user.PasswordHash = "not-a-bcrypt-hash"

	// A malformed stored hash must fail like a plain mismatch.
	assert.Error(t, user.CheckPassword("pw123"))
}

func TestNewValidatedUser(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{name: "valid", user: NewUser("alice", "pw123"), wantErr: false},
		{name: "empty username", user: NewUser("", "pw123"), wantErr: true},
		{name: "empty password", user: NewUser("alice", ""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidatedUser(tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserRoles(t *testing.T) {
	user := NewUser("alice", "pw123")
	assert.Empty(t, user.RoleNames())
	assert.False(t, user.HasRole("admin"))

	user.Roles = []Role{{Id: 1, Name: "admin"}, {Id: 2, Name: "editor"}}
	assert.Equal(t, []string{"admin", "editor"}, user.RoleNames())
	assert.True(t, user.HasRole("admin"))
	assert.False(t, user.HasRole("viewer"))
}
