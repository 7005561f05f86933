package repository

import (
	"context"
	"fmt"

	"site_backend/internal/model"

	"github.com/google/uuid"
)

// SubmissionRepository defines operations for contact submissions
type SubmissionRepository interface {
	Create(ctx context.Context, s *model.Submission) error
	FindAll(ctx context.Context) ([]model.Submission, error)
	Delete(ctx context.Context, id string) error
}

type submissionRepository struct {
	db DB
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, s *model.Submission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	sql := `INSERT INTO submissions (id, name, phone, service, message, status, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, s.ID, s.Name, s.Phone, s.Service, s.Message, s.Status, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// FindAll returns every submission, newest first
func (r *submissionRepository) FindAll(ctx context.Context) ([]model.Submission, error) {
	sql := `SELECT id, name, phone, service, message, status, created_at
            FROM submissions ORDER BY created_at DESC, id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Service, &s.Message, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}
	return submissions, nil
}

// Delete removes a submission. Deleting an unknown id is not an error.
func (r *submissionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}
