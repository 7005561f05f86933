package service

import (
	"context"
	"mime/multipart"

	"site_backend/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type mockSubmissionRepo struct{ mock.Mock }

func (m *mockSubmissionRepo) Create(ctx context.Context, s *model.Submission) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSubmissionRepo) FindAll(ctx context.Context) ([]model.Submission, error) {
	args := m.Called(ctx)
	subs, _ := args.Get(0).([]model.Submission)
	return subs, args.Error(1)
}

func (m *mockSubmissionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProjectRepo) FindAll(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]model.Project)
	return projects, args.Error(1)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockPackageRepo struct{ mock.Mock }

func (m *mockPackageRepo) FindAll(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	pkgs, _ := args.Get(0).([]model.Package)
	return pkgs, args.Error(1)
}

func (m *mockPackageRepo) FindByID(ctx context.Context, id string) (*model.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPackageRepo) CreateMany(ctx context.Context, pkgs []model.Package) error {
	return m.Called(ctx, pkgs).Error(0)
}

func (m *mockPackageRepo) Update(ctx context.Context, pkg *model.Package) error {
	return m.Called(ctx, pkg).Error(0)
}

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(fileHeader)
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) Remove(publicURL string) error {
	return m.Called(publicURL).Error(0)
}
