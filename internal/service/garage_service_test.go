package service

import (
	"context"
	"errors"
	"testing"

	"motorcycle_maintenance/internal/models"
)

func TestGarageService_Create(t *testing.T) {
	var stored models.Motorcycle
	motos := &mockMotorcycleRepo{
		CreateFn: func(m models.Motorcycle) (int, error) {
			stored = m
			return 11, nil
		},
	}
	svc := NewGarageService(motos)

	id, err := svc.Create(context.Background(), 5, MotorcycleParams{
		Make: "Yamaha", Model: "MT-07", Year: 2022, Mileage: 3000, VIN: "JYA123",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}
	if stored.UserID != 5 {
		t.Fatalf("owner not attached: %+v", stored)
	}
	if stored.Make != "Yamaha" || stored.Model != "MT-07" || stored.Year != 2022 || stored.Mileage != 3000 || stored.VIN != "JYA123" {
		t.Fatalf("unexpected stored motorcycle: %+v", stored)
	}
}

func TestGarageService_Create_MissingFields(t *testing.T) {
	motos := &mockMotorcycleRepo{
		CreateFn: func(m models.Motorcycle) (int, error) {
			t.Fatal("Create should not be called for invalid input")
			return 0, nil
		},
	}
	svc := NewGarageService(motos)

	for _, p := range []MotorcycleParams{
		{Model: "MT-07"},
		{Make: "Yamaha"},
		{Make: "  ", Model: "MT-07"},
	} {
		_, err := svc.Create(context.Background(), 5, p)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("params %+v: expected ErrInvalidInput, got %v", p, err)
		}
	}
}

func TestGarageService_List_PassesOwner(t *testing.T) {
	var gotOwner int
	motos := &mockMotorcycleRepo{
		ListByOwnerFn: func(ownerID int) ([]models.Motorcycle, error) {
			gotOwner = ownerID
			return []models.Motorcycle{{ID: 1, UserID: ownerID, Make: "Honda", Model: "CB500F"}}, nil
		},
	}
	svc := NewGarageService(motos)

	bikes, err := svc.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if gotOwner != 5 {
		t.Fatalf("owner filter not applied: got %d", gotOwner)
	}
	if len(bikes) != 1 || bikes[0].Make != "Honda" {
		t.Fatalf("unexpected bikes: %+v", bikes)
	}
}
