package repo

import (
	"context"
	"slices"

	"ngoserver/internal/domain"
)

// PostRepositoryMem implements PostRepository over a fixed slice.
type PostRepositoryMem struct {
	items []domain.Post
}

func NewPostRepository(items []domain.Post) *PostRepositoryMem {
	return &PostRepositoryMem{items: slices.Clone(items)}
}

func (r *PostRepositoryMem) List(_ context.Context) ([]domain.Post, error) {
	out := slices.Clone(r.items)
	if out == nil {
		out = []domain.Post{}
	}
	return out, nil
}
