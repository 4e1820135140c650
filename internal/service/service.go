package service

import (
	"context"
	"time"

	"motorcycle_maintenance/internal/models"
	"motorcycle_maintenance/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, p RegisterParams) (int, error)
	GenerateToken(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
}

// Garage exposes owner-scoped motorcycle operations.
type Garage interface {
	List(ctx context.Context, ownerID int) ([]models.Motorcycle, error)
	Create(ctx context.Context, ownerID int, p MotorcycleParams) (int, error)
}

// Maintenance exposes the service history of a single owned motorcycle.
type Maintenance interface {
	List(ctx context.Context, ownerID, motorcycleID int) ([]models.Maintenance, error)
	Create(ctx context.Context, ownerID, motorcycleID int, p MaintenanceParams) (int, error)
}

// Reminders derives next-due projections; nothing is persisted.
type Reminders interface {
	List(ctx context.Context, ownerID int) ([]models.Reminder, error)
}

// Config carries the policy knobs resolved at startup. Defaults live in
// configs/config.yml; the services never reach into global state.
type Config struct {
	SigningKey           string
	TokenTTL             time.Duration
	ReminderIntervalKm   int
	ReminderIntervalDays int
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Garage
	Maintenance
	Reminders
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg.SigningKey, cfg.TokenTTL),
		Garage:        NewGarageService(repos.Motorcycles),
		Maintenance:   NewMaintenanceService(repos.Motorcycles, repos.Maintenance),
		Reminders:     NewReminderService(repos.Motorcycles, repos.Maintenance, cfg.ReminderIntervalKm, cfg.ReminderIntervalDays),
	}
}
