package certificates

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/docstore"
)

// Service contains business logic for certificates.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// List returns all certificates, newest first.
func (s *Service) List(ctx context.Context) ([]Certificate, error) {
	return s.Repo.List(ctx)
}

// Get returns one certificate by id.
func (s *Service) Get(ctx context.Context, id string) (Certificate, error) {
	cert, err := s.Repo.Get(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return Certificate{}, ErrNotFound
	}
	return cert, err
}

// Create validates the input and stores a new certificate.
func (s *Service) Create(ctx context.Context, in Input) (Certificate, error) {
	if err := validate(in); err != nil {
		return Certificate{}, err
	}

	now := s.Now().UTC().Format(time.RFC3339)
	cert := Certificate{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Issuer:       strings.TrimSpace(in.Issuer),
		Date:         strings.TrimSpace(in.Date),
		Description:  in.Description,
		FileURL:      in.FileURL,
		FilePublicID: in.FilePublicID,
		MediaType:    in.MediaType,
		Skills:       in.Skills,
		CredentialID: in.CredentialID,
		VerifyURL:    in.VerifyURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Put(ctx, cert); err != nil {
		return Certificate{}, err
	}
	return cert, nil
}

// Update replaces the writable fields of an existing certificate.
func (s *Service) Update(ctx context.Context, id string, in Input) (Certificate, error) {
	if err := validate(in); err != nil {
		return Certificate{}, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return Certificate{}, err
	}

	existing.Title = strings.TrimSpace(in.Title)
	existing.Issuer = strings.TrimSpace(in.Issuer)
	existing.Date = strings.TrimSpace(in.Date)
	existing.Description = in.Description
	existing.FileURL = in.FileURL
	existing.FilePublicID = in.FilePublicID
	existing.MediaType = in.MediaType
	existing.Skills = in.Skills
	existing.CredentialID = in.CredentialID
	existing.VerifyURL = in.VerifyURL
	existing.UpdatedAt = s.Now().UTC().Format(time.RFC3339)

	if err := s.Repo.Put(ctx, existing); err != nil {
		return Certificate{}, err
	}
	return existing, nil
}

// Delete removes a certificate by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Remove(ctx, id)
}

func validate(in Input) error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Issuer) == "" ||
		strings.TrimSpace(in.Date) == "" {
		return ErrInvalidInput
	}
	return nil
}
