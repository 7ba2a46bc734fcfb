package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/imeibot/internal/core"
	"github.com/sandevgo/imeibot/pkg/log"
)

// UsersRepo is the sqlite-backed identity directory. All mutation goes
// through single statements, so concurrent updates on one tg_id never
// interleave.
type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, id int64, name string, role core.Role) (bool, error) {
	if _, err := core.ParseRole(string(role)); err != nil {
		return false, err
	}

	query := `INSERT INTO users (tg_id, name, role, last_update) VALUES (?, ?, ?, ?)
		ON CONFLICT(tg_id) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query, id, name, role, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to insert user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		log.FromCtx(ctx).Warn().Int64("tg_id", id).Msg("user already exists")
		return false, nil
	}

	log.FromCtx(ctx).Info().Int64("tg_id", id).Str("name", name).Str("role", string(role)).Msg("user created")
	return true, nil
}

func (r *UsersRepo) Get(ctx context.Context, id int64) (core.User, error) {
	query := `SELECT tg_id, name, role, status, last_update FROM users WHERE tg_id = ?`

	var u core.User
	var name sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.TgID, &name, &u.Role, &u.Status, &u.LastUpdate)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrUserNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	u.Name = name.String
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, id int64, upd core.UserUpdate) error {
	if upd.Role == nil && upd.Status == nil {
		return core.ErrNoUpdate
	}

	// Validate everything before touching the database so an invalid
	// value can never partially apply.
	var sets []string
	var args []any

	if upd.Role != nil {
		if _, err := core.ParseRole(string(*upd.Role)); err != nil {
			return err
		}
		sets = append(sets, "role = ?")
		args = append(args, *upd.Role)
	}

	if upd.Status != nil {
		if _, err := core.ParseStatus(string(*upd.Status)); err != nil {
			return err
		}
		sets = append(sets, "status = ?")
		args = append(args, *upd.Status)
	}

	sets = append(sets, "last_update = ?")
	args = append(args, time.Now().UTC(), id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE tg_id = ?`, strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrUserNotFound
	}

	log.FromCtx(ctx).Info().Int64("tg_id", id).Msg("user updated")
	return nil
}

func (r *UsersRepo) HasRoleAndStatus(ctx context.Context, id int64, roles []core.Role, status core.Status) (bool, error) {
	if len(roles) == 0 {
		return false, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(roles)), ",")
	query := fmt.Sprintf(
		`SELECT COUNT(1) FROM users WHERE tg_id = ? AND role IN (%s) AND status = ?`,
		placeholders,
	)

	args := make([]any, 0, len(roles)+2)
	args = append(args, id)
	for _, role := range roles {
		args = append(args, role)
	}
	args = append(args, status)

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to query permissions: %w", err)
	}
	return n > 0, nil
}
