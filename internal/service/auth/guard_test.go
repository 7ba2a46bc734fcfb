package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/imeibot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	users map[int64]core.User
	err   error
}

func newFakeDirectory(users ...core.User) *fakeDirectory {
	d := &fakeDirectory{users: make(map[int64]core.User)}
	for _, u := range users {
		d.users[u.TgID] = u
	}
	return d
}

func (d *fakeDirectory) Create(ctx context.Context, id int64, name string, role core.Role) (bool, error) {
	if _, ok := d.users[id]; ok {
		return false, nil
	}
	d.users[id] = core.User{TgID: id, Name: name, Role: role, Status: core.StatusActive}
	return true, nil
}

func (d *fakeDirectory) Get(ctx context.Context, id int64) (core.User, error) {
	u, ok := d.users[id]
	if !ok {
		return core.User{}, core.ErrUserNotFound
	}
	return u, nil
}

func (d *fakeDirectory) Update(ctx context.Context, id int64, upd core.UserUpdate) error {
	u, ok := d.users[id]
	if !ok {
		return core.ErrUserNotFound
	}
	if upd.Role == nil && upd.Status == nil {
		return core.ErrNoUpdate
	}
	if upd.Role != nil {
		if _, err := core.ParseRole(string(*upd.Role)); err != nil {
			return err
		}
		u.Role = *upd.Role
	}
	if upd.Status != nil {
		if _, err := core.ParseStatus(string(*upd.Status)); err != nil {
			return err
		}
		u.Status = *upd.Status
	}
	d.users[id] = u
	return nil
}

func (d *fakeDirectory) HasRoleAndStatus(ctx context.Context, id int64, roles []core.Role, status core.Status) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	u, ok := d.users[id]
	if !ok {
		return false, nil
	}
	if u.Status != status {
		return false, nil
	}
	for _, role := range roles {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}

type spyCommand struct {
	calls int
	reply string
}

func (c *spyCommand) Name() string        { return "spy" }
func (c *spyCommand) Description() string { return "test command" }

func (c *spyCommand) Execute(ctx context.Context, callerID int64, args []string) (string, error) {
	c.calls++
	return c.reply, nil
}

func TestGuard_Authorize(t *testing.T) {
	dir := newFakeDirectory(
		core.User{TgID: 1, Role: core.RoleAdmin, Status: core.StatusActive},
		core.User{TgID: 2, Role: core.RoleUser, Status: core.StatusActive},
		core.User{TgID: 3, Role: core.RoleAdmin, Status: core.StatusDisabled},
	)
	guard := NewGuard(dir)
	ctx := context.Background()

	tests := []struct {
		name   string
		caller int64
		roles  []core.Role
		want   bool
	}{
		{"active admin", 1, []core.Role{core.RoleAdmin}, true},
		{"user against admin-only", 2, []core.Role{core.RoleAdmin}, false},
		{"user in allowed set", 2, []core.Role{core.RoleAdmin, core.RoleUser}, true},
		{"disabled admin", 3, []core.Role{core.RoleAdmin}, false},
		{"unregistered caller", 99, []core.Role{core.RoleAdmin, core.RoleUser}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := guard.Authorize(ctx, tt.caller, tt.roles...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuard_WrapInvokesHandlerOnAllow(t *testing.T) {
	dir := newFakeDirectory(core.User{TgID: 1, Role: core.RoleAdmin, Status: core.StatusActive})
	guard := NewGuard(dir)
	spy := &spyCommand{reply: "done"}

	guarded := guard.Wrap(spy, core.RoleAdmin)
	reply, err := guarded.Execute(context.Background(), 1, nil)

	require.NoError(t, err)
	assert.Equal(t, "done", reply)
	assert.Equal(t, 1, spy.calls)
}

func TestGuard_WrapDeniesWithoutInvokingHandler(t *testing.T) {
	dir := newFakeDirectory(core.User{TgID: 2, Role: core.RoleUser, Status: core.StatusActive})
	guard := NewGuard(dir)
	spy := &spyCommand{reply: "done"}

	guarded := guard.Wrap(spy, core.RoleAdmin)
	reply, err := guarded.Execute(context.Background(), 2, nil)

	require.NoError(t, err)
	assert.Equal(t, DeniedMessage, reply)
	assert.Zero(t, spy.calls)
}

func TestGuard_WrapReportsDirectoryFailure(t *testing.T) {
	dir := newFakeDirectory()
	dir.err = errors.New("database locked")
	guard := NewGuard(dir)
	spy := &spyCommand{}

	guarded := guard.Wrap(spy, core.RoleAdmin)
	reply, err := guarded.Execute(context.Background(), 1, nil)

	require.NoError(t, err)
	assert.Equal(t, failureMessage, reply)
	assert.Zero(t, spy.calls)
}

func TestGuard_WrapPreservesCommandMetadata(t *testing.T) {
	guard := NewGuard(newFakeDirectory())
	guarded := guard.Wrap(&spyCommand{}, core.RoleAdmin)

	assert.Equal(t, "spy", guarded.Name())
	assert.Equal(t, "test command", guarded.Description())
}
