package dto

import (
	"time"

	"fwadmin/internal/domain"
)

type NewRuleRequest struct {
	Name       string `json:"name" validate:"required"`
	Permit     bool   `json:"permit"`
	IPProtocol string `json:"ip_protocol" validate:"required"`
	Port       int    `json:"port" validate:"required,gte=1,lte=65535"`
}

type RuleInfo struct {
	ID         uint      `json:"id"`
	HostID     uint      `json:"host_id"`
	Name       string    `json:"name"`
	Permit     bool      `json:"permit"`
	IPProtocol string    `json:"ip_protocol"`
	Port       uint16    `json:"port"`
	CreatedAt  time.Time `json:"created_at"`
}

func RuleInfoFrom(rule domain.ComplexRule) RuleInfo {
	return RuleInfo{
		ID:         rule.ID,
		HostID:     rule.HostID,
		Name:       rule.Name,
		Permit:     rule.Permit,
		IPProtocol: string(rule.IPProtocol),
		Port:       rule.Port,
		CreatedAt:  rule.CreatedAt,
	}
}
