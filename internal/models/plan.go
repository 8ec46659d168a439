package models

import "time"

// PricingPlan is a flat descriptive record shown on the plan selection
// page. Plans are seeded by migration and edited directly in the
// database, the API only lists them.
type PricingPlan struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	BillingInterval string    `json:"billing_interval"`
	Features        []string  `json:"features"`
	IsActive        bool      `json:"is_active"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
