package projects

import (
	"context"
	"encoding/json"
	"sort"

	"portfolio-backend/internal/docstore"
)

const collectionPath = "projects"

// Repo defines persistence operations for projects.
type Repo interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (Project, error)
	Put(ctx context.Context, p Project) error
	Remove(ctx context.Context, id string) error
}

// DocRepo stores each project as a document at projects/<id>.
type DocRepo struct {
	Docs docstore.Store
}

// NewDocRepo constructs a DocRepo.
func NewDocRepo(docs docstore.Store) *DocRepo {
	return &DocRepo{Docs: docs}
}

// List returns all projects, newest first.
func (r *DocRepo) List(ctx context.Context) ([]Project, error) {
	raws, err := r.Docs.List(ctx, collectionPath)
	if err != nil {
		return nil, err
	}

	out := make([]Project, 0, len(raws))
	for _, raw := range raws {
		var p Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Get returns one project by id.
func (r *DocRepo) Get(ctx context.Context, id string) (Project, error) {
	raw, err := r.Docs.Get(ctx, collectionPath+"/"+id)
	if err != nil {
		return Project{}, err
	}
	var p Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Put upserts a project.
func (r *DocRepo) Put(ctx context.Context, p Project) error {
	return r.Docs.Put(ctx, collectionPath+"/"+p.ID, p)
}

// Remove deletes a project.
func (r *DocRepo) Remove(ctx context.Context, id string) error {
	return r.Docs.Remove(ctx, collectionPath+"/"+id)
}
