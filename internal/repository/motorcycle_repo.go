package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"motorcycle_maintenance/internal/models"
)

type MotorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) *MotorcycleRepository {
	return &MotorcycleRepository{db: db}
}

var _ Motorcycles = (*MotorcycleRepository)(nil)

const (
	insertMotorcycleSQL = `
		INSERT INTO motorcycles (user_id, make, model, year, mileage, vin)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectMotorcyclesByOwnerSQL = `
		SELECT id, user_id, make, model, year, mileage, vin
		FROM motorcycles WHERE user_id = ?
	`
	selectMotorcycleByIDAndOwnerSQL = `
		SELECT id, user_id, make, model, year, mileage, vin
		FROM motorcycles WHERE id = ? AND user_id = ?
	`
)

// Create inserts a motorcycle for its owner and returns the new ID.
// An empty VIN is stored as NULL.
func (r *MotorcycleRepository) Create(ctx context.Context, m models.Motorcycle) (int, error) {
	var vin any
	if m.VIN != "" {
		vin = m.VIN
	}
	res, err := r.db.ExecContext(ctx, insertMotorcycleSQL,
		m.UserID, m.Make, m.Model, m.Year, m.Mileage, vin)
	if err != nil {
		return 0, fmt.Errorf("insert motorcycle for user %d: %w", m.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for motorcycle: %w", err)
	}
	return int(lastID), nil
}

// ListByOwner returns all motorcycles owned by ownerID. Order is not part of
// the contract; rows come back in id order as a side effect of the scan.
func (r *MotorcycleRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Motorcycle, error) {
	rows, err := r.db.QueryContext(ctx, selectMotorcyclesByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select motorcycles for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	out := make([]models.Motorcycle, 0, 8)
	for rows.Next() {
		m, err := scanMotorcycle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate motorcycles for user %d: %w", ownerID, err)
	}
	return out, nil
}

// GetByIDAndOwner fetches one motorcycle only if it belongs to ownerID.
// Returns (nil, nil) when absent or owned by someone else; callers cannot
// distinguish the two, which is intentional.
func (r *MotorcycleRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int) (*models.Motorcycle, error) {
	row := r.db.QueryRowContext(ctx, selectMotorcycleByIDAndOwnerSQL, id, ownerID)
	m, err := scanMotorcycle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select motorcycle id=%d user=%d: %w", id, ownerID, err)
	}
	return &m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMotorcycle(row rowScanner) (models.Motorcycle, error) {
	var m models.Motorcycle
	var vin sql.NullString
	if err := row.Scan(&m.ID, &m.UserID, &m.Make, &m.Model, &m.Year, &m.Mileage, &vin); err != nil {
		return models.Motorcycle{}, err
	}
	m.VIN = vin.String
	return m, nil
}
