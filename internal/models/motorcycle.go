package models

// Motorcycle belongs to exactly one user. Mileage is the odometer reading
// entered by the owner; it is not synced from maintenance records.
type Motorcycle struct {
	ID      int    `json:"id"`
	UserID  int    `json:"-"` // implied by the authenticated owner
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Mileage int    `json:"mileage"`
	VIN     string `json:"vin,omitempty"`
}

// Maintenance is one service record for a motorcycle. Date is kept as a
// plain YYYY-MM-DD string; malformed dates are tolerated (see reminders).
type Maintenance struct {
	ID           int     `json:"id"`
	MotorcycleID int     `json:"-"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Cost         float64 `json:"cost"`
	Mileage      int     `json:"mileage"`
}

// Trip is stored but has no exposed API yet.
type Trip struct {
	ID            int     `json:"id"`
	UserID        int     `json:"-"`
	MotorcycleID  int     `json:"motorcycle_id"`
	StartLocation string  `json:"start_location"`
	EndLocation   string  `json:"end_location"`
	DistanceKm    float64 `json:"distance_km"`
	Date          string  `json:"date"`
}

// Reminder is a derived projection, never persisted.
type Reminder struct {
	Motorcycle     string `json:"motorcycle"` // "<make> <model>"
	CurrentMileage int    `json:"current_mileage"`
	NextDueMileage int    `json:"next_due_mileage"`
	NextDueDate    string `json:"next_due_date"` // YYYY-MM-DD or "N/A"
	LastService    string `json:"last_service"`  // YYYY-MM-DD or "N/A"
}
