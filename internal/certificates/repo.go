package certificates

import (
	"context"
	"encoding/json"
	"sort"

	"portfolio-backend/internal/docstore"
)

const collectionPath = "certificates"

// Repo defines persistence operations for certificates.
type Repo interface {
	List(ctx context.Context) ([]Certificate, error)
	Get(ctx context.Context, id string) (Certificate, error)
	Put(ctx context.Context, cert Certificate) error
	Remove(ctx context.Context, id string) error
}

// DocRepo stores each certificate as a document at certificates/<id>.
type DocRepo struct {
	Docs docstore.Store
}

// NewDocRepo constructs a DocRepo.
func NewDocRepo(docs docstore.Store) *DocRepo {
	return &DocRepo{Docs: docs}
}

// List returns all certificates, newest first.
func (r *DocRepo) List(ctx context.Context) ([]Certificate, error) {
	raws, err := r.Docs.List(ctx, collectionPath)
	if err != nil {
		return nil, err
	}

	out := make([]Certificate, 0, len(raws))
	for _, raw := range raws {
		var cert Certificate
		if err := json.Unmarshal(raw, &cert); err != nil {
			return nil, err
		}
		out = append(out, cert)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Get returns one certificate by id.
func (r *DocRepo) Get(ctx context.Context, id string) (Certificate, error) {
	raw, err := r.Docs.Get(ctx, collectionPath+"/"+id)
	if err != nil {
		return Certificate{}, err
	}
	var cert Certificate
	if err := json.Unmarshal(raw, &cert); err != nil {
		return Certificate{}, err
	}
	return cert, nil
}

// Put upserts a certificate.
func (r *DocRepo) Put(ctx context.Context, cert Certificate) error {
	return r.Docs.Put(ctx, collectionPath+"/"+cert.ID, cert)
}

// Remove deletes a certificate.
func (r *DocRepo) Remove(ctx context.Context, id string) error {
	return r.Docs.Remove(ctx, collectionPath+"/"+id)
}
