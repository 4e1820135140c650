package service

import (
	"context"
	"fmt"
	"strings"

	"motorcycle_maintenance/internal/models"
	"motorcycle_maintenance/internal/repository"
)

// MaintenanceService gates every operation behind an ownership check: the
// motorcycle must exist AND belong to the caller, otherwise it does not exist
// as far as the caller is concerned.
type MaintenanceService struct {
	motorcycles repository.Motorcycles
	records     repository.MaintenanceRecords
}

func NewMaintenanceService(motorcycles repository.Motorcycles, records repository.MaintenanceRecords) *MaintenanceService {
	return &MaintenanceService{motorcycles: motorcycles, records: records}
}

// List returns all maintenance records for an owned motorcycle.
func (s *MaintenanceService) List(ctx context.Context, ownerID, motorcycleID int) ([]models.Maintenance, error) {
	if err := s.checkOwnership(ctx, ownerID, motorcycleID); err != nil {
		return nil, err
	}
	return s.records.ListByMotorcycle(ctx, motorcycleID)
}

// Create appends a record to an owned motorcycle's history and returns its id.
func (s *MaintenanceService) Create(ctx context.Context, ownerID, motorcycleID int, p MaintenanceParams) (int, error) {
	if strings.TrimSpace(p.Date) == "" {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Description) == "" {
		return 0, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if err := s.checkOwnership(ctx, ownerID, motorcycleID); err != nil {
		return 0, err
	}

	return s.records.Create(ctx, models.Maintenance{
		MotorcycleID: motorcycleID,
		Date:         p.Date,
		Description:  p.Description,
		Cost:         p.Cost,
		Mileage:      p.Mileage,
	})
}

func (s *MaintenanceService) checkOwnership(ctx context.Context, ownerID, motorcycleID int) error {
	m, err := s.motorcycles.GetByIDAndOwner(ctx, motorcycleID, ownerID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMotorcycleNotFound
	}
	return nil
}
