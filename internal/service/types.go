package service

// RegisterParams is the registration input. Username falls back to the email
// address when omitted.
type RegisterParams struct {
	Email    string
	Password string
	Username string
}

type MotorcycleParams struct {
	Make    string
	Model   string
	Year    int
	Mileage int
	VIN     string
}

type MaintenanceParams struct {
	Date        string // YYYY-MM-DD expected, not enforced here
	Description string
	Cost        float64
	Mileage     int
}
