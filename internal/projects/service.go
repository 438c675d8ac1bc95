package projects

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/docstore"
)

// Service contains business logic for projects.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// List returns all projects, newest first.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.Repo.List(ctx)
}

// Get returns one project by id.
func (s *Service) Get(ctx context.Context, id string) (Project, error) {
	p, err := s.Repo.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return Project{}, ErrNotFound
	}
	return p, err
}

// Create validates the input and stores a new project.
func (s *Service) Create(ctx context.Context, in Input) (Project, error) {
	if err := validate(in); err != nil {
		return Project{}, err
	}

	now := s.Now().UTC().Format(time.RFC3339)
	p := Project{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Technology:  strings.TrimSpace(in.Technology),
		Description: strings.TrimSpace(in.Description),
		MediaURL:    in.MediaURL,
		MediaType:   in.MediaType,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Put(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Update replaces the writable fields of an existing project. CreatedAt is
// preserved, UpdatedAt is bumped.
func (s *Service) Update(ctx context.Context, id string, in Input) (Project, error) {
	if err := validate(in); err != nil {
		return Project{}, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return Project{}, err
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Technology = strings.TrimSpace(in.Technology)
	existing.Description = strings.TrimSpace(in.Description)
	existing.MediaURL = in.MediaURL
	existing.MediaType = in.MediaType
	existing.GithubURL = in.GithubURL
	existing.LiveURL = in.LiveURL
	existing.Tags = in.Tags
	existing.UpdatedAt = s.Now().UTC().Format(time.RFC3339)

	if err := s.Repo.Put(ctx, existing); err != nil {
		return Project{}, err
	}
	return existing, nil
}

// Delete removes a project by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Remove(ctx, id)
}

func validate(in Input) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Technology) == "" ||
		strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	return nil
}
