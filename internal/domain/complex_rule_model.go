package domain

import "time"

// ComplexRule is a single permit/deny entry scoped to exactly one host.
// Ownership is never stored on the rule; it is always derived from the
// host the rule belongs to.
type ComplexRule struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	HostID uint `gorm:"not null;index" json:"host_id"`
	Host   Host `gorm:"foreignKey:HostID" json:"-"`

	Name       string     `gorm:"not null;size:255" json:"name"`
	Permit     bool       `gorm:"not null" json:"permit"`
	IPProtocol IPProtocol `gorm:"not null;size:10" json:"ip_protocol"`
	Port       uint16     `gorm:"not null" json:"port"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
