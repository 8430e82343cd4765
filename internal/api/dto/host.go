package dto

import (
	"time"

	"fwadmin/internal/domain"
)

type NewHostRequest struct {
	Name string `json:"name" validate:"required"`
	IP   string `json:"ip" validate:"required,ip4_addr"`
}

// EditHostRequest may carry an IP for symmetry with the create form, but the
// value is ignored: a host's IP never changes after creation.
type EditHostRequest struct {
	Name string `json:"name" validate:"required"`
	IP   string `json:"ip,omitempty"`
}

type HostInfo struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	IP          string    `json:"ip"`
	OwnerID     uint      `json:"owner_id"`
	Approved    bool      `json:"approved"`
	ActiveUntil time.Time `json:"active_until"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type HostDetail struct {
	HostInfo
	Rules []RuleInfo `json:"rules"`
}

func HostInfoFrom(host domain.Host, now time.Time) HostInfo {
	return HostInfo{
		ID:          host.ID,
		Name:        host.Name,
		IP:          host.IP,
		OwnerID:     host.OwnerID,
		Approved:    host.Approved,
		ActiveUntil: host.ActiveUntil,
		Active:      host.IsActive(now),
		CreatedAt:   host.CreatedAt,
	}
}
