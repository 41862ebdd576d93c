//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/clock"
	"github.com/fredriick/Electrify-sub009/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_EnsureProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	svc, err := NewUserService(repo, clock.NewFixed(testNow), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	id := uuid.NewString()
	repo.On("GetByID", ctx, id).Return(nil, users.ErrProfileNotFound).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(p *users.Profile) bool {
		return p.ID == id && p.Role == users.RoleCustomer && p.Email == "ada@example.com"
	})).Return(nil).Once()

	p, err := svc.EnsureProfile(ctx, id, " ada@example.com ", "Ada")
	require.NoError(t, err)
	assert.Equal(t, users.RoleCustomer, p.Role)
	assert.Equal(t, testNow, p.CreatedAt)

	existing := &users.Profile{ID: id, Role: users.RoleSupplier}
	repo.On("GetByID", ctx, id).Return(existing, nil).Once()
	p, err = svc.EnsureProfile(ctx, id, "ada@example.com", "Ada")
	require.NoError(t, err)
	assert.Equal(t, users.RoleSupplier, p.Role)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestUserService_EnsureProfile_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	svc, _ := NewUserService(repo, clock.NewFixed(testNow), testutil.SetupTestLogger(t))

	repo.On("GetByID", ctx, "x").Return(nil, errors.New("connection refused"))
	_, err := svc.EnsureProfile(ctx, "x", "", "")
	assert.ErrorContains(t, err, "connection refused")
}

func TestUserService_UpdateRole(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	svc, err := NewUserService(repo, clock.NewFixed(testNow), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	root := &users.Profile{ID: uuid.NewString(), Role: users.RoleSuperAdmin}
	repo.On("GetByID", ctx, root.ID).Return(root, nil)
	repo.On("CountByRole", ctx, users.RoleSuperAdmin).Return(int64(1), nil).Once()

	_, err = svc.UpdateRole(ctx, root.ID, users.RoleAdmin)
	assert.ErrorIs(t, err, users.ErrLastSuperAdmin)

	repo.On("CountByRole", ctx, users.RoleSuperAdmin).Return(int64(2), nil).Once()
	repo.On("UpdateRole", ctx, root.ID, users.RoleAdmin).Return(nil)
	updated, err := svc.UpdateRole(ctx, root.ID, users.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, users.RoleAdmin, updated.Role)

	_, err = svc.UpdateRole(ctx, root.ID, "owner")
	assert.ErrorIs(t, err, users.ErrInvalidRole)
}
