// internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repos bundles the per-entity repositories bound to a single *gorm.DB,
// which may be the root connection or an open transaction.
type Repos struct {
	Users         UserRepositoryIface
	Organizations OrganizationRepositoryIface
	Tags          TagRepositoryIface
	Partners      PartnerRepositoryIface
	Events        EventRepositoryIface
}

func NewRepos(db *gorm.DB) *Repos {
	return &Repos{
		Users:         NewUserRepository(db),
		Organizations: NewOrganizationRepository(db),
		Tags:          NewTagRepository(db),
		Partners:      NewPartnerRepository(db),
		Events:        NewEventRepository(db),
	}
}

// Atomic runs a unit of work against repositories bound to one transaction.
// The services wrap every mutation endpoint's write phase in exactly one of
// these so partial writes are never observable.
type Atomic interface {
	Do(ctx context.Context, fn func(r *Repos) error) error
}

type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do executes fn inside a database transaction. A non-nil error from fn
// rolls the transaction back and is returned unchanged.
func (u *UnitOfWork) Do(ctx context.Context, fn func(r *Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepos(tx))
	})
}

// IsUniqueViolation reports whether err is a storage-level uniqueness
// conflict (Postgres 23505). The tag reconciler uses this to fall back to a
// re-query when two requests race on the same new tag name.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
