package database

import (
	"errors"
	"fmt"

	"fwadmin/internal/registry"

	"gorm.io/gorm"
)

// Store is the GORM-backed implementation of registry.Store. A Store built
// from a transaction handle scopes every call to that transaction, which is
// how the registry gets its atomic read-authorize-write sequences.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Transaction(fn func(tx registry.Store) error) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
	return mapStoreError(err)
}

// mapStoreError normalizes failures leaving the store: registry error kinds
// pass through untouched, anything else counts as the store being
// unavailable.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{
		registry.ErrUnauthenticated,
		registry.ErrForbidden,
		registry.ErrNotFound,
		registry.ErrValidation,
		registry.ErrStoreUnavailable,
	} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", registry.ErrStoreUnavailable, err)
}

func notFound(kind string, id uint) error {
	return fmt.Errorf("%w: %s %d", registry.ErrNotFound, kind, id)
}

func storeFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", registry.ErrStoreUnavailable, op, err)
}
