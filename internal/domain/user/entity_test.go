//go:build unit

package user_test

import (
	"testing"

	"artshop/internal/domain/user"
	"artshop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("assigns an id and carries the given fields", func(t *testing.T) {
		u, err := builder.NewUserBuilder().
			WithUsername("alice").
			WithEmail("alice@example.com").
			BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "alice", u.Username().Value())
		assert.Equal(t, "alice@example.com", u.Email().Value())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.Nil(t, u.LastLogin())
	})

	t.Run("admin role is preserved", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithRole(user.RoleAdmin).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, u.Role())
	})

	t.Run("ids are unique", func(t *testing.T) {
		u1, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		u2, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, u1.ID(), u2.ID())
	})
}
