package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"motorcycle_maintenance/internal/models"
)

type MaintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

var _ MaintenanceRecords = (*MaintenanceRepository)(nil)

const (
	insertMaintenanceSQL = `
		INSERT INTO maintenance (motorcycle_id, date, description, cost, mileage)
		VALUES (?, ?, ?, ?, ?)
	`
	selectMaintenanceByMotorcycleSQL = `
		SELECT id, motorcycle_id, date, description, cost, mileage
		FROM maintenance WHERE motorcycle_id = ?
	`
	// date is a YYYY-MM-DD string, so lexicographic DESC is chronological DESC.
	selectLatestMaintenanceSQL = `
		SELECT id, motorcycle_id, date, description, cost, mileage
		FROM maintenance WHERE motorcycle_id = ?
		ORDER BY date DESC LIMIT 1
	`
)

// Create appends a maintenance record and returns the new ID.
func (r *MaintenanceRepository) Create(ctx context.Context, rec models.Maintenance) (int, error) {
	res, err := r.db.ExecContext(ctx, insertMaintenanceSQL,
		rec.MotorcycleID, rec.Date, rec.Description, rec.Cost, rec.Mileage)
	if err != nil {
		return 0, fmt.Errorf("insert maintenance for motorcycle %d: %w", rec.MotorcycleID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for maintenance: %w", err)
	}
	return int(lastID), nil
}

// ListByMotorcycle returns every record for the motorcycle.
func (r *MaintenanceRepository) ListByMotorcycle(ctx context.Context, motorcycleID int) ([]models.Maintenance, error) {
	rows, err := r.db.QueryContext(ctx, selectMaintenanceByMotorcycleSQL, motorcycleID)
	if err != nil {
		return nil, fmt.Errorf("select maintenance for motorcycle %d: %w", motorcycleID, err)
	}
	defer rows.Close()

	out := make([]models.Maintenance, 0, 16)
	for rows.Next() {
		var rec models.Maintenance
		if err := rows.Scan(&rec.ID, &rec.MotorcycleID, &rec.Date, &rec.Description, &rec.Cost, &rec.Mileage); err != nil {
			return nil, fmt.Errorf("scan maintenance row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate maintenance for motorcycle %d: %w", motorcycleID, err)
	}
	return out, nil
}

// LatestByMotorcycle returns the record with the maximum date, or (nil, nil)
// when the motorcycle has no service history. Date ties are broken by
// whichever row the store returns first.
func (r *MaintenanceRepository) LatestByMotorcycle(ctx context.Context, motorcycleID int) (*models.Maintenance, error) {
	var rec models.Maintenance
	err := r.db.QueryRowContext(ctx, selectLatestMaintenanceSQL, motorcycleID).
		Scan(&rec.ID, &rec.MotorcycleID, &rec.Date, &rec.Description, &rec.Cost, &rec.Mileage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select latest maintenance for motorcycle %d: %w", motorcycleID, err)
	}
	return &rec, nil
}
