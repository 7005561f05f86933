package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"site_backend/internal/model"
	"site_backend/internal/repository"
)

var (
	ErrPackagesAlreadySeeded = errors.New("packages already seeded")
	ErrPackageNotFound       = errors.New("package not found")
)

// PackageService manages the pricing catalog
type PackageService interface {
	List(ctx context.Context) ([]model.Package, error)
	Seed(ctx context.Context) error
	Update(ctx context.Context, id string, req model.UpdatePackageRequest) (*model.Package, error)
}

type packageService struct {
	repo repository.PackageRepository
}

// NewPackageService creates a new PackageService
func NewPackageService(repo repository.PackageRepository) PackageService {
	return &packageService{repo: repo}
}

func (s *packageService) List(ctx context.Context) ([]model.Package, error) {
	pkgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return pkgs, nil
}

// Seed inserts the default catalog once. Any existing package blocks it.
func (s *packageService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count packages: %w", err)
	}
	if count > 0 {
		return ErrPackagesAlreadySeeded
	}

	pkgs := model.DefaultPackages()
	now := time.Now()
	for i := range pkgs {
		// distinct timestamps keep the catalog in seed order
		pkgs[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
	}
	if err := s.repo.CreateMany(ctx, pkgs); err != nil {
		return fmt.Errorf("failed to seed packages: %w", err)
	}
	return nil
}

// Update changes only the fields present in req and returns the full record
func (s *packageService) Update(ctx context.Context, id string, req model.UpdatePackageRequest) (*model.Package, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find package for update: %w", err)
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Features != nil {
		pkg.Features = *req.Features
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.CTALink != nil {
		pkg.CTALink = *req.CTALink
	}

	if err := s.repo.Update(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to update package in repo: %w", err)
	}
	return pkg, nil
}
