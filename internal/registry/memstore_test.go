package registry

import (
	"sort"
	"time"

	"fwadmin/internal/domain"
)

// memStore is a minimal in-memory Store for exercising the lifecycle
// engines without a database. Transactions are a no-op wrapper; the real
// atomicity guarantees are covered by the database package tests.
type memStore struct {
	hosts map[uint]domain.Host
	rules map[uint]domain.ComplexRule

	nextHostID uint
	nextRuleID uint
}

func newMemStore() *memStore {
	return &memStore{
		hosts: make(map[uint]domain.Host),
		rules: make(map[uint]domain.ComplexRule),
	}
}

func (m *memStore) Transaction(fn func(tx Store) error) error {
	return fn(m)
}

func (m *memStore) HostByID(id uint) (domain.Host, error) {
	host, ok := m.hosts[id]
	if !ok {
		return domain.Host{}, notFound("host", id)
	}
	return host, nil
}

func (m *memStore) HostsByOwner(ownerID uint) ([]domain.Host, error) {
	var hosts []domain.Host
	for _, host := range m.hosts {
		if host.OwnerID == ownerID {
			hosts = append(hosts, host)
		}
	}
	sortHostsByID(hosts)
	return hosts, nil
}

func (m *memStore) UnapprovedHosts() ([]domain.Host, error) {
	var hosts []domain.Host
	for _, host := range m.hosts {
		if !host.Approved {
			hosts = append(hosts, host)
		}
	}
	sortHostsByID(hosts)
	return hosts, nil
}

func (m *memStore) CreateHost(host *domain.Host) error {
	m.nextHostID++
	host.ID = m.nextHostID
	m.hosts[host.ID] = *host
	return nil
}

func (m *memStore) UpdateHostName(id uint, name string) error {
	host, ok := m.hosts[id]
	if !ok {
		return notFound("host", id)
	}
	host.Name = name
	m.hosts[id] = host
	return nil
}

func (m *memStore) UpdateHostActiveUntil(id uint, until time.Time) error {
	host, ok := m.hosts[id]
	if !ok {
		return notFound("host", id)
	}
	host.ActiveUntil = until
	m.hosts[id] = host
	return nil
}

func (m *memStore) ApproveHost(id uint) error {
	host, ok := m.hosts[id]
	if !ok {
		return notFound("host", id)
	}
	host.Approved = true
	m.hosts[id] = host
	return nil
}

func (m *memStore) DeleteHost(id uint) error {
	if _, ok := m.hosts[id]; !ok {
		return notFound("host", id)
	}
	for ruleID, rule := range m.rules {
		if rule.HostID == id {
			delete(m.rules, ruleID)
		}
	}
	delete(m.hosts, id)
	return nil
}

func (m *memStore) RuleByID(id uint) (domain.ComplexRule, error) {
	rule, ok := m.rules[id]
	if !ok {
		return domain.ComplexRule{}, notFound("rule", id)
	}
	return rule, nil
}

func (m *memStore) RulesByHost(hostID uint) ([]domain.ComplexRule, error) {
	var rules []domain.ComplexRule
	for _, rule := range m.rules {
		if rule.HostID == hostID {
			rules = append(rules, rule)
		}
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules, nil
}

func (m *memStore) CreateRule(rule *domain.ComplexRule) error {
	m.nextRuleID++
	rule.ID = m.nextRuleID
	m.rules[rule.ID] = *rule
	return nil
}

func (m *memStore) DeleteRule(id uint) error {
	if _, ok := m.rules[id]; !ok {
		return notFound("rule", id)
	}
	delete(m.rules, id)
	return nil
}

func sortHostsByID(hosts []domain.Host) {
	sort.Slice(hosts, func(i, j int) bool { return hosts[i].ID < hosts[j].ID })
}
