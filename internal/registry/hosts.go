package registry

import (
	"strings"

	"fwadmin/internal/domain"
)

// ListHosts returns the caller's own hosts, the content of the index page.
func (s *Service) ListHosts(caller Caller) ([]domain.Host, error) {
	if err := s.policy.Authorize(caller, ActionViewIndex, nil); err != nil {
		return nil, err
	}
	return s.store.HostsByOwner(caller.ID)
}

// Host resolves a single host together with its rules. Only the owner may
// look at the detail view, same as editing it.
func (s *Service) Host(caller Caller, hostID uint) (domain.Host, []domain.ComplexRule, error) {
	var (
		host  domain.Host
		rules []domain.ComplexRule
	)
	if !caller.Authenticated() {
		return host, nil, ErrUnauthenticated
	}

	err := s.store.Transaction(func(tx Store) error {
		var err error
		host, err = tx.HostByID(hostID)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(caller, ActionEditHost, &host); err != nil {
			return err
		}
		rules, err = tx.RulesByHost(host.ID)
		return err
	})
	if err != nil {
		return domain.Host{}, nil, err
	}
	return host, rules, nil
}

func (s *Service) CreateHost(caller Caller, name, ip string) (domain.Host, error) {
	if err := s.policy.Authorize(caller, ActionCreateHost, nil); err != nil {
		return domain.Host{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Host{}, invalid("host name must not be empty")
	}

	host := domain.Host{
		Name:        name,
		OwnerID:     caller.ID,
		Approved:    false,
		ActiveUntil: s.activeUntil(),
	}
	if err := host.SetIP(ip); err != nil {
		return domain.Host{}, invalid("%v", err)
	}

	if err := s.store.CreateHost(&host); err != nil {
		return domain.Host{}, err
	}
	return host, nil
}

// EditHost updates the host name. The IP is immutable after creation, no
// matter what the request carried.
func (s *Service) EditHost(caller Caller, hostID uint, name string) (domain.Host, error) {
	if !caller.Authenticated() {
		return domain.Host{}, ErrUnauthenticated
	}

	var host domain.Host
	err := s.store.Transaction(func(tx Store) error {
		var err error
		host, err = tx.HostByID(hostID)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(caller, ActionEditHost, &host); err != nil {
			return err
		}

		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return invalid("host name must not be empty")
		}

		if err := tx.UpdateHostName(host.ID, trimmed); err != nil {
			return err
		}
		host.Name = trimmed
		return nil
	})
	if err != nil {
		return domain.Host{}, err
	}
	return host, nil
}

// RenewHost resets active_until to today + the configured active days. The
// reset is unconditional, so renewing a host that already expires further
// out pulls the date back in; owners are expected not to do that, the
// engine does not forbid it.
func (s *Service) RenewHost(caller Caller, hostID uint) (domain.Host, error) {
	if !caller.Authenticated() {
		return domain.Host{}, ErrUnauthenticated
	}

	var host domain.Host
	err := s.store.Transaction(func(tx Store) error {
		var err error
		host, err = tx.HostByID(hostID)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(caller, ActionRenewHost, &host); err != nil {
			return err
		}

		until := s.activeUntil()
		if err := tx.UpdateHostActiveUntil(host.ID, until); err != nil {
			return err
		}
		host.ActiveUntil = until
		return nil
	})
	if err != nil {
		return domain.Host{}, err
	}
	return host, nil
}

// DeleteHost removes the host and cascades deletion of every rule scoped to
// it. Host and rules go in the same store transaction; a rule must never
// outlive its host.
func (s *Service) DeleteHost(caller Caller, hostID uint) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}

	return s.store.Transaction(func(tx Store) error {
		host, err := tx.HostByID(hostID)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(caller, ActionDeleteHost, &host); err != nil {
			return err
		}
		return tx.DeleteHost(host.ID)
	})
}
