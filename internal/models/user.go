package models

// User is a registered account. Owns motorcycles and trips.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don't expose hash
}
