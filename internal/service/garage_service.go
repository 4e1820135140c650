package service

import (
	"context"
	"fmt"
	"strings"

	"motorcycle_maintenance/internal/models"
	"motorcycle_maintenance/internal/repository"
)

type GarageService struct {
	motorcycles repository.Motorcycles
}

func NewGarageService(motorcycles repository.Motorcycles) *GarageService {
	return &GarageService{motorcycles: motorcycles}
}

// List returns every motorcycle owned by ownerID.
func (s *GarageService) List(ctx context.Context, ownerID int) ([]models.Motorcycle, error) {
	return s.motorcycles.ListByOwner(ctx, ownerID)
}

// Create validates required fields and persists a motorcycle for ownerID.
// Year and mileage default to zero when omitted.
func (s *GarageService) Create(ctx context.Context, ownerID int, p MotorcycleParams) (int, error) {
	if strings.TrimSpace(p.Make) == "" {
		return 0, fmt.Errorf("%w: make is required", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Model) == "" {
		return 0, fmt.Errorf("%w: model is required", ErrInvalidInput)
	}

	return s.motorcycles.Create(ctx, models.Motorcycle{
		UserID:  ownerID,
		Make:    p.Make,
		Model:   p.Model,
		Year:    p.Year,
		Mileage: p.Mileage,
		VIN:     p.VIN,
	})
}
