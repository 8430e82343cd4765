package domain

import (
	"fmt"
	"strings"
)

type IPProtocol string

const (
	ProtocolTCP IPProtocol = "TCP"
	ProtocolUDP IPProtocol = "UDP"
)

func ParseIPProtocol(raw string) (IPProtocol, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TCP":
		return ProtocolTCP, nil
	case "UDP":
		return ProtocolUDP, nil
	}
	return "", fmt.Errorf("unknown ip protocol %q", raw)
}
