package service

import (
	"context"
	"time"

	"motorcycle_maintenance/internal/models"
	"motorcycle_maintenance/internal/repository"
)

const (
	serviceDateLayout = "2006-01-02"
	notAvailable      = "N/A"
)

// ReminderService projects the next service due point for each motorcycle
// from its latest maintenance record. Intervals are policy constants resolved
// from config; defaults are 5000 distance units and 180 days.
type ReminderService struct {
	motorcycles  repository.Motorcycles
	records      repository.MaintenanceRecords
	intervalKm   int
	intervalDays int
}

func NewReminderService(motorcycles repository.Motorcycles, records repository.MaintenanceRecords, intervalKm, intervalDays int) *ReminderService {
	return &ReminderService{
		motorcycles:  motorcycles,
		records:      records,
		intervalKm:   intervalKm,
		intervalDays: intervalDays,
	}
}

// List computes one reminder per owned motorcycle.
//
// With no service history the projection starts from the current odometer
// reading and the due date is unknown. Otherwise it starts from the latest
// record; a malformed record date degrades the due date to "N/A" rather than
// failing the whole listing.
func (s *ReminderService) List(ctx context.Context, ownerID int) ([]models.Reminder, error) {
	bikes, err := s.motorcycles.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Reminder, 0, len(bikes))
	for _, m := range bikes {
		last, err := s.records.LatestByMotorcycle(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, s.project(m, last))
	}
	return out, nil
}

func (s *ReminderService) project(m models.Motorcycle, last *models.Maintenance) models.Reminder {
	rem := models.Reminder{
		Motorcycle:     m.Make + " " + m.Model,
		CurrentMileage: m.Mileage,
		NextDueMileage: m.Mileage + s.intervalKm,
		NextDueDate:    notAvailable,
		LastService:    notAvailable,
	}
	if last == nil {
		return rem
	}

	rem.LastService = last.Date
	rem.NextDueMileage = last.Mileage + s.intervalKm
	if t, err := time.Parse(serviceDateLayout, last.Date); err == nil {
		rem.NextDueDate = t.AddDate(0, 0, s.intervalDays).Format(serviceDateLayout)
	}
	return rem
}
