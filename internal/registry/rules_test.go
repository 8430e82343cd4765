package registry

import (
	"errors"
	"testing"

	"fwadmin/internal/domain"
)

func TestCreateRule(t *testing.T) {
	svc, _ := newTestService(t)

	host, _ := svc.CreateHost(testOwner, "host", "192.168.0.2")

	rule, err := svc.CreateRule(testOwner, host.ID, "random rule name", false, "udp", 1337)
	if err != nil {
		t.Fatalf("CreateRule returned %v, want nil", err)
	}

	if rule.HostID != host.ID {
		t.Fatalf("CreateRule scoped rule to host %d, want %d", rule.HostID, host.ID)
	}
	if rule.Name != "random rule name" || rule.Permit || rule.Port != 1337 {
		t.Fatalf("CreateRule stored %+v, want name/permit/port preserved", rule)
	}
	if rule.IPProtocol != domain.ProtocolUDP {
		t.Fatalf("CreateRule stored protocol %q, want UDP", rule.IPProtocol)
	}
}

func TestCreateRuleValidation(t *testing.T) {
	svc, _ := newTestService(t)

	host, _ := svc.CreateHost(testOwner, "host", "192.168.0.2")

	t.Run("unknown protocol", func(t *testing.T) {
		if _, err := svc.CreateRule(testOwner, host.ID, "rule", true, "ICMP", 22); !errors.Is(err, ErrValidation) {
			t.Fatalf("CreateRule with unknown protocol returned %v, want ErrValidation", err)
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		for _, port := range []int{0, -1, 65536} {
			if _, err := svc.CreateRule(testOwner, host.ID, "rule", true, "TCP", port); !errors.Is(err, ErrValidation) {
				t.Fatalf("CreateRule with port %d returned %v, want ErrValidation", port, err)
			}
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := svc.CreateRule(testOwner, host.ID, " ", true, "TCP", 22); !errors.Is(err, ErrValidation) {
			t.Fatalf("CreateRule with empty name returned %v, want ErrValidation", err)
		}
	})
}

func TestCreateRuleMissingHost(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateRule(testOwner, 999, "rule", true, "TCP", 22); !errors.Is(err, ErrNotFound) {
		t.Fatalf("CreateRule on missing host returned %v, want ErrNotFound", err)
	}
}

func TestDeleteRule(t *testing.T) {
	svc, store := newTestService(t)

	host, _ := svc.CreateHost(testOwner, "host", "192.168.0.2")
	rule, _ := svc.CreateRule(testOwner, host.ID, "ssh", true, "TCP", 22)

	if err := svc.DeleteRule(testOwner, rule.ID); err != nil {
		t.Fatalf("DeleteRule returned %v, want nil", err)
	}

	if _, err := store.RuleByID(rule.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("rule lookup after delete returned %v, want ErrNotFound", err)
	}

	if err := svc.DeleteRule(testOwner, rule.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("repeated DeleteRule returned %v, want ErrNotFound", err)
	}
}
