package model

import "time"

const SubmissionStatusNew = "New"

// Submission is a contact-form entry left by a site visitor
type Submission struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"date"`
}

// CreateSubmissionRequest is the public contact-form body. Every field is free text.
type CreateSubmissionRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}
