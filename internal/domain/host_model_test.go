package domain

import (
	"testing"
	"time"
)

func TestSetIP(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		var host Host
		if err := host.SetIP("192.168.1.1"); err != nil {
			t.Fatalf("SetIP returned %v, want nil", err)
		}
		if host.IP != "192.168.1.1" {
			t.Fatalf("host.IP = %q, want 192.168.1.1", host.IP)
		}
	})

	t.Run("normalizes mapped form", func(t *testing.T) {
		var host Host
		if err := host.SetIP("::ffff:10.0.0.1"); err != nil {
			t.Fatalf("SetIP returned %v, want nil", err)
		}
		if host.IP != "10.0.0.1" {
			t.Fatalf("host.IP = %q, want 10.0.0.1", host.IP)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var host Host
		if err := host.SetIP("not-an-ip"); err == nil {
			t.Fatal("SetIP accepted a non-address")
		}
		if host.IP != "" {
			t.Fatalf("host.IP = %q after rejected input, want empty", host.IP)
		}
	})

	t.Run("rejects ipv6", func(t *testing.T) {
		var host Host
		if err := host.SetIP("2001:db8::1"); err == nil {
			t.Fatal("SetIP accepted an IPv6 address")
		}
	})
}

func TestIsActive(t *testing.T) {
	host := Host{ActiveUntil: time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)}

	t.Run("before expiry", func(t *testing.T) {
		now := time.Date(2026, 5, 30, 23, 59, 0, 0, time.UTC)
		if !host.IsActive(now) {
			t.Fatal("IsActive = false before the expiry date")
		}
	})

	t.Run("on expiry day", func(t *testing.T) {
		now := time.Date(2026, 5, 31, 18, 0, 0, 0, time.UTC)
		if !host.IsActive(now) {
			t.Fatal("IsActive = false on the expiry day itself")
		}
	})

	t.Run("after expiry", func(t *testing.T) {
		now := time.Date(2026, 6, 1, 0, 0, 1, 0, time.UTC)
		if host.IsActive(now) {
			t.Fatal("IsActive = true after the expiry date")
		}
	})
}

func TestParseIPProtocol(t *testing.T) {
	cases := []struct {
		raw  string
		want IPProtocol
	}{
		{"tcp", ProtocolTCP},
		{"TCP", ProtocolTCP},
		{" Udp ", ProtocolUDP},
		{"udp", ProtocolUDP},
	}
	for _, c := range cases {
		got, err := ParseIPProtocol(c.raw)
		if err != nil {
			t.Fatalf("ParseIPProtocol(%q) returned %v, want nil", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("ParseIPProtocol(%q) = %q, want %q", c.raw, got, c.want)
		}
	}

	for _, raw := range []string{"", "icmp", "tcp/udp"} {
		if _, err := ParseIPProtocol(raw); err == nil {
			t.Fatalf("ParseIPProtocol(%q) accepted an unknown protocol", raw)
		}
	}
}
