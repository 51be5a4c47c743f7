package models

// User is an account record. Password holds the bcrypt hash, never the
// plaintext, and is excluded from JSON output.
type User struct {
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"`
	Name     string `json:"name" bson:"name"`
}

// Token is the opaque API credential issued per user. One live token per
// email; tokens do not expire.
type Token struct {
	Email    string `json:"email" bson:"email"`
	Token    string `json:"token" bson:"token"`
	IssuedAt int64  `json:"issuedAt" bson:"issuedAt"`
}

// Package is a bookable hotel offering, keyed by hotel name.
type Package struct {
	HotelName   string  `json:"hotel_name" bson:"hotel_name"`
	Cost        float64 `json:"cost" bson:"cost"`
	Location    string  `json:"location,omitempty" bson:"location,omitempty"`
	Nights      int     `json:"nights,omitempty" bson:"nights,omitempty"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
}

// PackageView is the catalog projection returned by the listing endpoint:
// named fields only, with a 1-based display index.
type PackageView struct {
	Index       int     `json:"index"`
	HotelName   string  `json:"hotel_name"`
	Cost        float64 `json:"cost"`
	Location    string  `json:"location,omitempty"`
	Nights      int     `json:"nights,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Booking links a customer to a package for a check-in date. Dates are
// YYYY-MM-DD strings so lexicographic order is chronological order.
type Booking struct {
	ID          string  `json:"id" bson:"id"`
	Customer    string  `json:"user" bson:"customer"`
	HotelName   string  `json:"hotel_name" bson:"hotel_name"`
	CheckInDate string  `json:"check_in_date" bson:"check_in_date"`
	Cost        float64 `json:"total_cost" bson:"cost"`
	CreatedAt   int64   `json:"createdAt" bson:"createdAt"`
}
