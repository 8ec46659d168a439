package models

import "time"

// TrialExpiryEvent is published by the notification scheduler for every
// profile whose trial ends today.
type TrialExpiryEvent struct {
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	TrialEndDate time.Time `json:"trial_end_date"`
}

// PasswordResetEvent is published by the auth service when a reset is
// requested; the sender turns it into an e-mail with the token link.
type PasswordResetEvent struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// ContactSubmissionEvent notifies the site owner about a new contact
// form submission.
type ContactSubmissionEvent struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
