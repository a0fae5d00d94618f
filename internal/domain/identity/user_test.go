package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active user with default role", func(t *testing.T) {
		u, err := NewUser("Jane Doe", "jane@example.com", "password1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", u.FullName)
		assert.Equal(t, "jane@example.com", u.Email)
		assert.Equal(t, RoleUser, u.Role)
		assert.Equal(t, UserStatusActive, u.Status)
		assert.True(t, u.IsActive())
		assert.False(t, u.IsAdmin())
		assert.NotEqual(t, "password1", u.PasswordHash)

		events := u.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeUserRegistered, events[0].EventType())
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		u, err := NewUser("Jane Doe", "  Jane@Example.COM ", "password1")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", u.Email)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name     string
			fullName string
			email    string
			password string
		}{
			{"empty name", "", "jane@example.com", "password1"},
			{"empty email", "Jane", "", "password1"},
			{"bad email", "Jane", "not-an-email", "password1"},
			{"short password", "Jane", "jane@example.com", "pw1"},
			{"password without number", "Jane", "jane@example.com", "passwords"},
			{"password without letter", "Jane", "jane@example.com", "12345678"},
			{"long password", "Jane", "jane@example.com", strings.Repeat("a1", 65)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewUser(tt.fullName, tt.email, tt.password)
				assert.Error(t, err)
			})
		}
	})
}

func TestNewAdmin(t *testing.T) {
	u, err := NewAdmin("Root", "root@example.com", "password1")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}

func TestUser_VerifyPassword(t *testing.T) {
	u, _ := NewUser("Jane Doe", "jane@example.com", "password1")
	assert.True(t, u.VerifyPassword("password1"))
	assert.False(t, u.VerifyPassword("wrong-password"))
}

func TestUser_ChangePassword(t *testing.T) {
	t.Run("changes with correct current password", func(t *testing.T) {
		u, _ := NewUser("Jane Doe", "jane@example.com", "password1")
		require.NoError(t, u.ChangePassword("password1", "newpassword2"))
		assert.True(t, u.VerifyPassword("newpassword2"))
		assert.False(t, u.VerifyPassword("password1"))
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		u, _ := NewUser("Jane Doe", "jane@example.com", "password1")
		err := u.ChangePassword("wrong", "newpassword2")
		assert.Error(t, err)
		assert.True(t, u.VerifyPassword("password1"))
	})
}

func TestUser_SuspendReinstate(t *testing.T) {
	u, _ := NewUser("Jane Doe", "jane@example.com", "password1")

	require.NoError(t, u.Suspend())
	assert.False(t, u.IsActive())

	err := u.Suspend()
	assert.Error(t, err)

	require.NoError(t, u.Reinstate())
	assert.True(t, u.IsActive())

	err = u.Reinstate()
	assert.Error(t, err)
}

func TestUser_Profile(t *testing.T) {
	u, _ := NewUser("Jane Doe", "jane@example.com", "password1")

	require.NoError(t, u.SetFullName("Jane Q. Doe"))
	assert.Equal(t, "Jane Q. Doe", u.FullName)

	require.NoError(t, u.SetBio("Collector of old paperbacks."))
	assert.Equal(t, "Collector of old paperbacks.", u.Bio)

	err := u.SetBio(strings.Repeat("x", 1001))
	assert.Error(t, err)

	require.NoError(t, u.SetAvatarURL("https://cdn.example.com/avatars/jane.png"))
	assert.NotEmpty(t, u.AvatarURL)
}
