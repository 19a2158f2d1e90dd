package identity

import (
	"context"
	"testing"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())

	first, err := svc.Create(ctx, CreateUserRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotNil(t, first.InsertedID)
	assert.True(t, first.Acknowledged)

	dup, err := svc.Create(ctx, CreateUserRequest{Name: "Ana Again", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Nil(t, dup.InsertedID)
	assert.Equal(t, MsgUserExists, dup.Message)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = svc.Create(ctx, CreateUserRequest{Email: "  "})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestUserService_Roles(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewUserRepository())
	created, err := svc.Create(ctx, CreateUserRequest{Email: "staff@example.com"})
	require.NoError(t, err)

	role, err := svc.GetRole(ctx, "staff@example.com")
	require.NoError(t, err)
	assert.Nil(t, role.Role, "role stays empty until promoted")

	res, err := svc.MakeAdmin(ctx, *created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	role, err = svc.GetRole(ctx, "staff@example.com")
	require.NoError(t, err)
	require.NotNil(t, role.Role)
	assert.Equal(t, string(identity.RoleAdmin), *role.Role)

	_, err = svc.GetRole(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.GetRole(ctx, "")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = svc.MakeAdmin(ctx, "xyz")
	assert.ErrorIs(t, err, shared.ErrInvalidID)

	del, err := svc.Delete(ctx, *created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
}
