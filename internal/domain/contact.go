package domain

import "time"

// ContactMessage is a submission from the site's contact form.
type ContactMessage struct {
	ID          string
	Name        string
	Email       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}
