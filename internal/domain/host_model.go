package domain

import (
	"errors"
	"net"
	"time"
)

type Host struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null;size:255" json:"name"`
	IP      string `gorm:"not null;size:45" json:"ip"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID" json:"-"`

	Approved    bool      `gorm:"not null;default:false" json:"approved"`
	ActiveUntil time.Time `gorm:"not null" json:"active_until"`

	// Relationships
	Rules []ComplexRule `gorm:"foreignKey:HostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (host *Host) SetIP(ip string) error {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return errors.New("invalid IP address")
	}
	ipv4 := parsedIP.To4()
	if ipv4 == nil {
		return errors.New("only IPv4 addresses are supported")
	}
	host.IP = ipv4.String()
	return nil
}

// IsActive reports whether the host has not yet passed its expiry date.
// The expiry day itself still counts as active.
func (host *Host) IsActive(now time.Time) bool {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !host.ActiveUntil.Before(day)
}
