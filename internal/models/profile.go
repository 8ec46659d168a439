// Package models contains the domain structures shared by the business
// logic and the storage layer: user profiles, editable content sections,
// pricing plans, chat messages and contact submissions.
package models

import "time"

// Roles a profile can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Subscription statuses a profile can be in. Trial expiry is computed at
// read time, the status field is never flipped by a background process.
const (
	SubscriptionTrial    = "trial"
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

// Profile represents a registered user of the service. It is 1:1 with the
// identity: registration creates the row, later mutations are explicit
// field updates only (username rename, admin-driven status changes).
type Profile struct {
	UID                string     `json:"uid"`
	Email              string     `json:"email"`
	Username           string     `json:"username"`
	PasswordHash       string     `json:"-"`
	Role               string     `json:"role"`
	SubscriptionStatus string     `json:"subscription_status"`
	TrialEndDate       *time.Time `json:"trial_end_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
