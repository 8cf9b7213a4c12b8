package service_test

import (
	"context"

	"github.com/outreachhub/outreachhub/internal/repository"
)

// passthroughAtomic satisfies repository.Atomic without a database; the unit
// of work runs against the same mock-backed repos the service already holds.
type passthroughAtomic struct {
	repos *repository.Repos
}

func (p *passthroughAtomic) Do(_ context.Context, fn func(r *repository.Repos) error) error {
	return fn(p.repos)
}
