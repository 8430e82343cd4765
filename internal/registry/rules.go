package registry

import (
	"strings"

	"fwadmin/internal/domain"
)

// CreateRule attaches a new rule to the given host. Only the host owner may
// do this; moderators get no special treatment here.
func (s *Service) CreateRule(caller Caller, hostID uint, name string, permit bool, ipProtocol string, port int) (domain.ComplexRule, error) {
	if !caller.Authenticated() {
		return domain.ComplexRule{}, ErrUnauthenticated
	}

	var rule domain.ComplexRule
	err := s.store.Transaction(func(tx Store) error {
		host, err := tx.HostByID(hostID)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(caller, ActionCreateRule, &host); err != nil {
			return err
		}

		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return invalid("rule name must not be empty")
		}
		protocol, err := domain.ParseIPProtocol(ipProtocol)
		if err != nil {
			return invalid("%v", err)
		}
		if port < 1 || port > 65535 {
			return invalid("port %d out of range", port)
		}

		rule = domain.ComplexRule{
			HostID:     host.ID,
			Name:       trimmed,
			Permit:     permit,
			IPProtocol: protocol,
			Port:       uint16(port),
		}
		return tx.CreateRule(&rule)
	})
	if err != nil {
		return domain.ComplexRule{}, err
	}
	return rule, nil
}

// DeleteRule resolves the rule, derives ownership through its host and
// removes it. Rules are never edited in place; replace is delete + create.
func (s *Service) DeleteRule(caller Caller, ruleID uint) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}

	return s.store.Transaction(func(tx Store) error {
		rule, err := tx.RuleByID(ruleID)
		if err != nil {
			return err
		}
		host, err := tx.HostByID(rule.HostID)
		if err != nil {
			return err
		}
		if err := s.policy.Authorize(caller, ActionDeleteRule, &host); err != nil {
			return err
		}
		return tx.DeleteRule(rule.ID)
	})
}
