package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/auth"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
)

func newAuthService(users *fakeUserStore) *AuthService {
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewAuthService(users, tokens, zap.NewNop().Sugar())
}

func TestRegisterIsIdempotent(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)
	ctx := context.Background()

	id, err := svc.Register(ctx, models.User{Email: "buyer@example.com", Name: "Buyer"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, users.insertCalls)

	// Second registration with the same email inserts nothing.
	_, err = svc.Register(ctx, models.User{Email: "buyer@example.com"})
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	assert.Equal(t, 1, users.insertCalls)

	count, _ := users.Count(ctx)
	assert.Equal(t, int64(1), count)
}

func TestRegisterCannotSetRole(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), models.User{Email: "sneaky@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	stored, err := users.FindByEmail(context.Background(), "sneaky@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestRegisterRequiresEmail(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	_, err := svc.Register(context.Background(), models.User{})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	users := newFakeUserStore()
	target := users.add("seller@example.com", models.RoleSeller)
	svc := newAuthService(users)

	_, err := svc.UpdateRole(context.Background(), target.ID.Hex(), "superuser")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	// The store was never touched and the role is unchanged.
	assert.Equal(t, 0, users.roleCalls)
	stored, _ := users.FindByEmail(context.Background(), "seller@example.com")
	assert.Equal(t, models.RoleSeller, stored.Role)
}

func TestUpdateRoleOverwrites(t *testing.T) {
	users := newFakeUserStore()
	target := users.add("user@example.com", models.RoleUser)
	svc := newAuthService(users)

	modified, err := svc.UpdateRole(context.Background(), target.ID.Hex(), "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	stored, _ := users.FindByEmail(context.Background(), "user@example.com")
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestIsAdmin(t *testing.T) {
	users := newFakeUserStore()
	users.add("admin@example.com", models.RoleAdmin)
	users.add("buyer@example.com", models.RoleUser)
	svc := newAuthService(users)
	ctx := context.Background()

	isAdmin, err := svc.IsAdmin(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	// Absent user is simply not an admin.
	isAdmin, err = svc.IsAdmin(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	svc := newAuthService(newFakeUserStore())
	_, err := svc.IssueToken("")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
