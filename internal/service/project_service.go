package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"site_backend/internal/model"
	"site_backend/internal/repository"
	"site_backend/internal/storage"

	"github.com/rs/zerolog"
)

var (
	ErrImageRequired = errors.New("image is required")
	ErrInvalidImage  = storage.ErrInvalidFileFormat
	ErrImageTooLarge = storage.ErrFileSizeExceeded
)

// ImageStore is the file intake used for project images
type ImageStore interface {
	SaveImage(fileHeader *multipart.FileHeader) (string, error)
	Remove(publicURL string) error
}

// ProjectService manages the portfolio
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, req model.CreateProjectRequest, image *multipart.FileHeader) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo   repository.ProjectRepository
	images ImageStore
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo repository.ProjectRepository, images ImageStore) ProjectService {
	return &projectService{repo: repo, images: images}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Create stores the image and then the project record. The image is
// removed again if the record cannot be saved.
func (s *projectService) Create(ctx context.Context, req model.CreateProjectRequest, image *multipart.FileHeader) (*model.Project, error) {
	if image == nil {
		return nil, ErrImageRequired
	}

	imageURL, err := s.images.SaveImage(image)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, project); err != nil {
		if rmErr := s.images.Remove(imageURL); rmErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rmErr).Str("image_url", imageURL).Msg("failed to clean up orphaned upload")
		}
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return project, nil
}

// Delete removes the project without checking that it exists. When a row
// was removed its image is deleted from disk as well.
func (s *projectService) Delete(ctx context.Context, id string) error {
	imageURL, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	if imageURL == "" {
		return nil
	}
	if err := s.images.Remove(imageURL); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("project_id", id).Msg("project deleted but image could not be removed")
	}
	return nil
}
