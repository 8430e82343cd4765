package registry

import "fwadmin/internal/domain"

// ListUnapproved returns every host still waiting for approval, oldest
// first. Each call re-queries the store, so the result always reflects the
// current state rather than a snapshot.
func (s *Service) ListUnapproved(caller Caller) ([]domain.Host, error) {
	if err := s.policy.Authorize(caller, ActionListUnapproved, nil); err != nil {
		return nil, err
	}
	return s.store.UnapprovedHosts()
}

// ApproveHost flips the approval gate for a host. Approval is one-way: no
// registry operation ever sets it back to false.
func (s *Service) ApproveHost(caller Caller, hostID uint) (domain.Host, error) {
	if err := s.policy.Authorize(caller, ActionApproveHost, nil); err != nil {
		return domain.Host{}, err
	}

	var host domain.Host
	err := s.store.Transaction(func(tx Store) error {
		var err error
		host, err = tx.HostByID(hostID)
		if err != nil {
			return err
		}
		if err := tx.ApproveHost(host.ID); err != nil {
			return err
		}
		host.Approved = true
		return nil
	})
	if err != nil {
		return domain.Host{}, err
	}
	return host, nil
}
