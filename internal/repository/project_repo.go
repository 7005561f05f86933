package repository

import (
	"context"
	"errors"
	"fmt"

	"site_backend/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProjectRepository defines operations for portfolio projects
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) error
	FindAll(ctx context.Context) ([]model.Project, error)
	// Delete removes the project and returns its image URL, or "" when no row matched.
	Delete(ctx context.Context, id string) (string, error)
}

type projectRepository struct {
	db DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p *model.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	sql := `INSERT INTO projects (id, title, description, image_url, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(ctx, sql, p.ID, p.Title, p.Description, p.ImageURL, p.CreatedAt); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindAll returns every project, newest first
func (r *projectRepository) FindAll(ctx context.Context) ([]model.Project, error) {
	sql := `SELECT id, title, description, image_url, created_at FROM projects ORDER BY created_at DESC, id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) (string, error) {
	var imageURL string
	err := r.db.QueryRow(ctx, `DELETE FROM projects WHERE id = $1 RETURNING image_url`, id).Scan(&imageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to delete project: %w", err)
	}
	return imageURL, nil
}
