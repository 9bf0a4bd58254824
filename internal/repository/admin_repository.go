package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/vehicle-registry/internal/model"
)

// AdminRepo encapsulates all queries against the `admins` table.
type AdminRepo struct {
	db *sql.DB
}

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

// Create inserts a new admin and fills in its generated ID. The password
// must already be hashed by the caller. MySQL duplicate-key errors (1062) on
// the email index are surfaced as ErrEmailExists.
func (r *AdminRepo) Create(ctx context.Context, a *model.Admin) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO admins (email, password_hash, role) VALUES (?,?,?)",
		a.Email, a.PasswordHash, a.Role.String())
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByEmail fetches an admin by exact email. Login identifiers are matched
// case-sensitively; no normalization happens here.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	const q = "SELECT id, email, password_hash, role, created_at, updated_at FROM admins WHERE email = ? LIMIT 1"
	return r.scanOne(r.db.QueryRowContext(ctx, q, email))
}

// GetByID fetches an admin by primary key.
func (r *AdminRepo) GetByID(ctx context.Context, id uint64) (*model.Admin, error) {
	const q = "SELECT id, email, password_hash, role, created_at, updated_at FROM admins WHERE id = ? LIMIT 1"
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// ListAll returns every admin in primary-key order. Filtering and paging are
// applied in memory by the query engine, so the repository always hands back
// the full ordered set.
func (r *AdminRepo) ListAll(ctx context.Context) ([]*model.Admin, error) {
	const q = "SELECT id, email, password_hash, role, created_at, updated_at FROM admins ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Admin
	for rows.Next() {
		a := new(model.Admin)
		var role string
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Role = model.Role(role)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AdminRepo) scanOne(row *sql.Row) (*model.Admin, error) {
	a := new(model.Admin)
	var role string
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	a.Role = model.Role(role)
	return a, nil
}
