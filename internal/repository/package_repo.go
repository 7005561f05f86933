package repository

import (
	"context"
	"errors"
	"fmt"

	"site_backend/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PackageRepository defines operations for the pricing catalog
type PackageRepository interface {
	FindAll(ctx context.Context) ([]model.Package, error)
	FindByID(ctx context.Context, id string) (*model.Package, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, pkgs []model.Package) error
	Update(ctx context.Context, pkg *model.Package) error
}

type packageRepository struct {
	db DB
}

// NewPackageRepository creates a new PackageRepository
func NewPackageRepository(db DB) PackageRepository {
	return &packageRepository{db: db}
}

// FindAll returns the catalog in insertion order
func (r *packageRepository) FindAll(ctx context.Context) ([]model.Package, error) {
	sql := `SELECT id, name, price, features, description, cta_link, created_at
            FROM packages ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer rows.Close()

	pkgs := []model.Package{}
	for rows.Next() {
		var p model.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Features, &p.Description, &p.CTALink, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan package row: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating package rows: %w", err)
	}
	return pkgs, nil
}

func (r *packageRepository) FindByID(ctx context.Context, id string) (*model.Package, error) {
	p := &model.Package{}
	sql := `SELECT id, name, price, features, description, cta_link, created_at FROM packages WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&p.ID, &p.Name, &p.Price, &p.Features, &p.Description, &p.CTALink, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find package by ID: %w", err)
	}
	return p, nil
}

func (r *packageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM packages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return n, nil
}

// CreateMany inserts all packages in a single transaction
func (r *packageRepository) CreateMany(ctx context.Context, pkgs []model.Package) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin package insert: %w", err)
	}

	sql := `INSERT INTO packages (id, name, price, features, description, cta_link, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range pkgs {
		p := &pkgs[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.Features == nil {
			p.Features = []string{}
		}
		if _, err := tx.Exec(ctx, sql, p.ID, p.Name, p.Price, p.Features, p.Description, p.CTALink, p.CreatedAt); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to insert package %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit package insert: %w", err)
	}
	return nil
}

// Update replaces every mutable column of the package identified by pkg.ID
func (r *packageRepository) Update(ctx context.Context, pkg *model.Package) error {
	sql := `UPDATE packages SET name = $1, price = $2, features = $3, description = $4, cta_link = $5
            WHERE id = $6`
	cmdTag, err := r.db.Exec(ctx, sql, pkg.Name, pkg.Price, pkg.Features, pkg.Description, pkg.CTALink, pkg.ID)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
