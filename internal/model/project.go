package model

import "time"

// Project is a portfolio entry shown on the public site
type Project struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"date"`
}

// CreateProjectRequest holds the text fields of the multipart create form.
// The image itself is read separately from the "image" file field.
type CreateProjectRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
}
