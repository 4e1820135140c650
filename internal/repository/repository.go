package repository

import (
	"context"
	"database/sql"

	"motorcycle_maintenance/internal/models"
	repodb "motorcycle_maintenance/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// Motorcycles is owner-scoped: every query filters on user_id, which is the
// whole authorization model.
type Motorcycles interface {
	Create(ctx context.Context, m models.Motorcycle) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Motorcycle, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int) (*models.Motorcycle, error)
}

// MaintenanceRecords is append-only: records are never updated or deleted.
type MaintenanceRecords interface {
	Create(ctx context.Context, rec models.Maintenance) (int, error)
	ListByMotorcycle(ctx context.Context, motorcycleID int) ([]models.Maintenance, error)
	LatestByMotorcycle(ctx context.Context, motorcycleID int) (*models.Maintenance, error)
}

type Repository struct {
	Users       Users
	Motorcycles Motorcycles
	Maintenance MaintenanceRecords
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:       NewUserRepository(db),
		Motorcycles: NewMotorcycleRepository(db),
		Maintenance: NewMaintenanceRepository(db),
	}
}

// InitDB opens the SQLite database and applies the schema.
func InitDB(path string) (*sql.DB, error) {
	return repodb.InitDB(path)
}
