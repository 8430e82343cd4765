package registry

import (
	"time"

	"fwadmin/internal/domain"
)

// Store is the persistence collaborator the registry works against. Every
// method is atomic on its own; Transaction groups the read-authorize-write
// sequence of a mutating operation so two concurrent calls on the same host
// cannot interleave between the ownership check and the write.
//
// Implementations return ErrNotFound when an id does not resolve and wrap
// any other failure in ErrStoreUnavailable.
type Store interface {
	Transaction(fn func(tx Store) error) error

	HostByID(id uint) (domain.Host, error)
	HostsByOwner(ownerID uint) ([]domain.Host, error)
	UnapprovedHosts() ([]domain.Host, error)
	CreateHost(host *domain.Host) error
	UpdateHostName(id uint, name string) error
	UpdateHostActiveUntil(id uint, until time.Time) error
	// ApproveHost only ever flips approved to true; there is deliberately
	// no way to un-approve through the store.
	ApproveHost(id uint) error
	// DeleteHost removes the host and all rules referencing it as one unit.
	DeleteHost(id uint) error

	RuleByID(id uint) (domain.ComplexRule, error)
	RulesByHost(hostID uint) ([]domain.ComplexRule, error)
	CreateRule(rule *domain.ComplexRule) error
	DeleteRule(id uint) error
}
