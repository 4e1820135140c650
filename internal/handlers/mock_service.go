package handlers

import (
	"context"

	"motorcycle_maintenance/internal/models"
	"motorcycle_maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	token       string
	tokenErr    error
	parseID     int
	parseErr    error
	user        *models.User
	userErr     error

	lastRegister   service.RegisterParams
	lastLoginEmail string
	lastLoginPass  string
	lastParseToken string
	lastGetUserID  int
}

func (m *mockAuth) Register(ctx context.Context, p service.RegisterParams) (int, error) {
	m.lastRegister = p
	return m.registerID, m.registerErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPass = password
	return m.token, m.tokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}
func (m *mockAuth) GetUser(ctx context.Context, id int) (*models.User, error) {
	m.lastGetUserID = id
	if m.user == nil && m.userErr == nil {
		return nil, service.ErrUserNotFound
	}
	return m.user, m.userErr
}

type mockGarage struct {
	bikes     []models.Motorcycle
	listErr   error
	createID  int
	createErr error

	lastListOwner   int
	lastCreateOwner int
	lastCreate      service.MotorcycleParams
	createCalls     int
}

func (m *mockGarage) List(ctx context.Context, ownerID int) ([]models.Motorcycle, error) {
	m.lastListOwner = ownerID
	return m.bikes, m.listErr
}
func (m *mockGarage) Create(ctx context.Context, ownerID int, p service.MotorcycleParams) (int, error) {
	m.createCalls++
	m.lastCreateOwner = ownerID
	m.lastCreate = p
	return m.createID, m.createErr
}

type mockMaintenance struct {
	records   []models.Maintenance
	listErr   error
	createID  int
	createErr error

	lastOwner  int
	lastMoto   int
	lastCreate service.MaintenanceParams
}

func (m *mockMaintenance) List(ctx context.Context, ownerID, motorcycleID int) ([]models.Maintenance, error) {
	m.lastOwner = ownerID
	m.lastMoto = motorcycleID
	return m.records, m.listErr
}
func (m *mockMaintenance) Create(ctx context.Context, ownerID, motorcycleID int, p service.MaintenanceParams) (int, error) {
	m.lastOwner = ownerID
	m.lastMoto = motorcycleID
	m.lastCreate = p
	return m.createID, m.createErr
}

type mockReminders struct {
	resp      []models.Reminder
	err       error
	lastOwner int
}

func (m *mockReminders) List(ctx context.Context, ownerID int) ([]models.Reminder, error) {
	m.lastOwner = ownerID
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
