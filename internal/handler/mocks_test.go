package handler

import (
	"context"
	"mime/multipart"

	"site_backend/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockAuthService) SeedAdmin(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type mockSubmissionService struct{ mock.Mock }

func (m *mockSubmissionService) Create(ctx context.Context, req model.CreateSubmissionRequest) (*model.Submission, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*model.Submission)
	return s, args.Error(1)
}

func (m *mockSubmissionService) List(ctx context.Context) ([]model.Submission, error) {
	args := m.Called(ctx)
	subs, _ := args.Get(0).([]model.Submission)
	return subs, args.Error(1)
}

func (m *mockSubmissionService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProjectService struct{ mock.Mock }

func (m *mockProjectService) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]model.Project)
	return projects, args.Error(1)
}

func (m *mockProjectService) Create(ctx context.Context, req model.CreateProjectRequest, image *multipart.FileHeader) (*model.Project, error) {
	args := m.Called(ctx, req, image)
	p, _ := args.Get(0).(*model.Project)
	return p, args.Error(1)
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPackageService struct{ mock.Mock }

func (m *mockPackageService) List(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	pkgs, _ := args.Get(0).([]model.Package)
	return pkgs, args.Error(1)
}

func (m *mockPackageService) Seed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockPackageService) Update(ctx context.Context, id string, req model.UpdatePackageRequest) (*model.Package, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*model.Package)
	return p, args.Error(1)
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }
