package service

import (
	"context"
	"fmt"
	"time"

	"site_backend/internal/model"
	"site_backend/internal/repository"
)

// SubmissionService handles contact-form submissions
type SubmissionService interface {
	Create(ctx context.Context, req model.CreateSubmissionRequest) (*model.Submission, error)
	List(ctx context.Context) ([]model.Submission, error)
	Delete(ctx context.Context, id string) error
}

type submissionService struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo}
}

func (s *submissionService) Create(ctx context.Context, req model.CreateSubmissionRequest) (*model.Submission, error) {
	submission := &model.Submission{
		Name:      req.Name,
		Phone:     req.Phone,
		Service:   req.Service,
		Message:   req.Message,
		Status:    model.SubmissionStatusNew,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	return submission, nil
}

func (s *submissionService) List(ctx context.Context) ([]model.Submission, error) {
	submissions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// Delete does not check that the submission exists
func (s *submissionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete submission %s: %w", id, err)
	}
	return nil
}
