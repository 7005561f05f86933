package router

import (
	"context"
	"sort"
	"sync"

	"site_backend/internal/model"
	"site_backend/internal/repository"

	"github.com/google/uuid"
)

type memUsers struct {
	mu    sync.Mutex
	users []model.User
}

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
	}
	u.ID = uuid.NewString()
	m.users = append(m.users, *u)
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memUsers) count(username string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, u := range m.users {
		if u.Username == username {
			n++
		}
	}
	return n
}

type memSubmissions struct {
	mu   sync.Mutex
	subs []model.Submission
}

func (m *memSubmissions) Create(_ context.Context, s *model.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.NewString()
	m.subs = append(m.subs, *s)
	return nil
}

func (m *memSubmissions) FindAll(_ context.Context) ([]model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Submission, 0, len(m.subs))
	for i := len(m.subs) - 1; i >= 0; i-- {
		out = append(out, m.subs[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memSubmissions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.subs {
		if s.ID == id {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			break
		}
	}
	return nil
}

type memProjects struct {
	mu       sync.Mutex
	projects []model.Project
}

func (m *memProjects) Create(_ context.Context, p *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.NewString()
	m.projects = append(m.projects, *p)
	return nil
}

func (m *memProjects) FindAll(_ context.Context) ([]model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Project, 0, len(m.projects))
	for i := len(m.projects) - 1; i >= 0; i-- {
		out = append(out, m.projects[i])
	}
	return out, nil
}

func (m *memProjects) Delete(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.projects {
		if p.ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return p.ImageURL, nil
		}
	}
	return "", nil
}

type memPackages struct {
	mu   sync.Mutex
	pkgs []model.Package
}

func (m *memPackages) FindAll(_ context.Context) ([]model.Package, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Package{}, m.pkgs...), nil
}

func (m *memPackages) FindByID(_ context.Context, id string) (*model.Package, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pkgs {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memPackages) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.pkgs)), nil
}

func (m *memPackages) CreateMany(_ context.Context, pkgs []model.Package) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range pkgs {
		pkgs[i].ID = uuid.NewString()
		m.pkgs = append(m.pkgs, pkgs[i])
	}
	return nil
}

func (m *memPackages) Update(_ context.Context, pkg *model.Package) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pkgs {
		if m.pkgs[i].ID == pkg.ID {
			m.pkgs[i] = *pkg
			return nil
		}
	}
	return repository.ErrNotFound
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }
