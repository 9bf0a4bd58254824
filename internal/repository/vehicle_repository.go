package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/vehicle-registry/internal/model"
)

// VehicleRepo encapsulates all queries against the `vehicles` table. There is
// deliberately no uniqueness rule on vehicles at any layer.
type VehicleRepo struct {
	db *sql.DB
}

func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{db: db} }

// Create inserts a new vehicle and fills in its generated ID.
func (r *VehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO vehicles (name, brand, year) VALUES (?,?,?)",
		v.Name, v.Brand, v.Year)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID fetches a vehicle by primary key, returning ErrVehicleNotFound for
// absence.
func (r *VehicleRepo) GetByID(ctx context.Context, id uint64) (*model.Vehicle, error) {
	const q = "SELECT id, name, brand, year, created_at, updated_at FROM vehicles WHERE id = ? LIMIT 1"
	v := new(model.Vehicle)
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&v.ID, &v.Name, &v.Brand, &v.Year, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAll returns every vehicle in primary-key order for the query engine.
func (r *VehicleRepo) ListAll(ctx context.Context) ([]*model.Vehicle, error) {
	const q = "SELECT id, name, brand, year, created_at, updated_at FROM vehicles ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Vehicle
	for rows.Next() {
		v := new(model.Vehicle)
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Year, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the mutable columns of an already-fetched vehicle. Callers
// are expected to have loaded the row via GetByID first; a missing row is
// reported as ErrVehicleNotFound.
func (r *VehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	const q = `UPDATE vehicles
	           SET name = ?, brand = ?, year = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.Brand, v.Year, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when the update is a no-op, so confirm the
		// row really is gone before reporting not found.
		if _, err := r.GetByID(ctx, v.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a vehicle by primary key.
func (r *VehicleRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
