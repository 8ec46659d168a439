package models

import "time"

// ContactSubmission is an anonymous append-only record from the contact
// form. There is no update or delete path.
type ContactSubmission struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
