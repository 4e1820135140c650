package service

import (
	"context"

	"motorcycle_maintenance/internal/models"
)

// Lightweight in-test mocks for the repository interfaces.

type mockUserRepo struct {
	CreateFn     func(username, email, hash string) (int, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id int) (*models.User, error)

	createCalls []struct {
		username, email, hash string
	}
	getEmailCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, username, email, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username, email, hash string
	}{username, email, hash})
	return m.CreateFn(username, email, hash)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getEmailCalls = append(m.getEmailCalls, email)
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

type mockMotorcycleRepo struct {
	CreateFn          func(m models.Motorcycle) (int, error)
	ListByOwnerFn     func(ownerID int) ([]models.Motorcycle, error)
	GetByIDAndOwnerFn func(id, ownerID int) (*models.Motorcycle, error)
}

func (m *mockMotorcycleRepo) Create(_ context.Context, moto models.Motorcycle) (int, error) {
	return m.CreateFn(moto)
}

func (m *mockMotorcycleRepo) ListByOwner(_ context.Context, ownerID int) ([]models.Motorcycle, error) {
	return m.ListByOwnerFn(ownerID)
}

func (m *mockMotorcycleRepo) GetByIDAndOwner(_ context.Context, id, ownerID int) (*models.Motorcycle, error) {
	return m.GetByIDAndOwnerFn(id, ownerID)
}

type mockMaintenanceRepo struct {
	CreateFn             func(rec models.Maintenance) (int, error)
	ListByMotorcycleFn   func(motorcycleID int) ([]models.Maintenance, error)
	LatestByMotorcycleFn func(motorcycleID int) (*models.Maintenance, error)

	created []models.Maintenance
}

func (m *mockMaintenanceRepo) Create(_ context.Context, rec models.Maintenance) (int, error) {
	m.created = append(m.created, rec)
	return m.CreateFn(rec)
}

func (m *mockMaintenanceRepo) ListByMotorcycle(_ context.Context, motorcycleID int) ([]models.Maintenance, error) {
	return m.ListByMotorcycleFn(motorcycleID)
}

func (m *mockMaintenanceRepo) LatestByMotorcycle(_ context.Context, motorcycleID int) (*models.Maintenance, error) {
	return m.LatestByMotorcycleFn(motorcycleID)
}
