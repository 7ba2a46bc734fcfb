package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sandevgo/imeibot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *UsersRepo {
	t.Helper()

	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUsersRepo(db)
}

func roleP(r core.Role) *core.Role       { return &r }
func statusP(s core.Status) *core.Status { return &s }

func TestUsersRepo_CreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.Create(ctx, 100, "alice", core.RoleUser)
	require.NoError(t, err)
	assert.True(t, created)

	// Second creation succeeds without modifying anything
	created, err = repo.Create(ctx, 100, "impostor", core.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, created)

	u, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, core.RoleUser, u.Role)
	assert.Equal(t, core.StatusActive, u.Status)
}

func TestUsersRepo_CreateRejectsInvalidRole(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Create(ctx, 100, "alice", core.Role("superuser"))
	assert.ErrorIs(t, err, core.ErrInvalidRole)

	_, err = repo.Get(ctx, 100)
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestUsersRepo_GetNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestUsersRepo_UpdateInvalidValueLeavesRecordUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Create(ctx, 100, "alice", core.RoleUser)
	require.NoError(t, err)
	before, err := repo.Get(ctx, 100)
	require.NoError(t, err)

	err = repo.Update(ctx, 100, core.UserUpdate{Role: roleP("owner")})
	assert.ErrorIs(t, err, core.ErrInvalidRole)

	// Valid status paired with an invalid role must not apply either
	err = repo.Update(ctx, 100, core.UserUpdate{
		Role:   roleP("owner"),
		Status: statusP(core.StatusDisabled),
	})
	assert.ErrorIs(t, err, core.ErrInvalidRole)

	err = repo.Update(ctx, 100, core.UserUpdate{Status: statusP("banned")})
	assert.ErrorIs(t, err, core.ErrInvalidStatus)

	after, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUsersRepo_UpdateWithoutFieldsIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Create(ctx, 100, "alice", core.RoleUser)
	require.NoError(t, err)
	before, err := repo.Get(ctx, 100)
	require.NoError(t, err)

	err = repo.Update(ctx, 100, core.UserUpdate{})
	assert.ErrorIs(t, err, core.ErrNoUpdate)

	after, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, before.LastUpdate, after.LastUpdate)
}

func TestUsersRepo_UpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), 42, core.UserUpdate{Role: roleP(core.RoleAdmin)})
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestUsersRepo_UpdateAppliesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Create(ctx, 100, "alice", core.RoleUser)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, 100, core.UserUpdate{Role: roleP(core.RoleAdmin)}))
	u, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, core.RoleAdmin, u.Role)
	assert.Equal(t, core.StatusActive, u.Status)

	require.NoError(t, repo.Update(ctx, 100, core.UserUpdate{Status: statusP(core.StatusDisabled)}))
	u, err = repo.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, core.RoleAdmin, u.Role)
	assert.Equal(t, core.StatusDisabled, u.Status)
}

func TestUsersRepo_HasRoleAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.Create(ctx, 1, "admin", core.RoleAdmin)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 2, "user", core.RoleUser)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 3, "disabled-admin", core.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, 3, core.UserUpdate{Status: statusP(core.StatusDisabled)}))

	tests := []struct {
		name   string
		id     int64
		roles  []core.Role
		status core.Status
		want   bool
	}{
		{"active admin allowed", 1, []core.Role{core.RoleAdmin}, core.StatusActive, true},
		{"user not in admin set", 2, []core.Role{core.RoleAdmin}, core.StatusActive, false},
		{"user in wider set", 2, []core.Role{core.RoleAdmin, core.RoleUser}, core.StatusActive, true},
		{"disabled admin rejected", 3, []core.Role{core.RoleAdmin}, core.StatusActive, false},
		{"unknown identity", 99, []core.Role{core.RoleAdmin, core.RoleUser}, core.StatusActive, false},
		{"empty role set", 1, nil, core.StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasRoleAndStatus(ctx, tt.id, tt.roles, tt.status)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
