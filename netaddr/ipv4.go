// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

import (
	"net"
	"strconv"
	"strings"

	"github.com/javabudd/oxen-core/addrmgr"
)

// UnknownIPv4Host is the distinguished sentinel host string for an IPv4
// address that could not be determined or was never assigned a value.
const UnknownIPv4Host = "<unknown ipv4 host>"

// IPv4Address is an immutable IPv4 dotted-quad address and port.
type IPv4Address struct {
	ip   net.IP
	port uint16
}

// UnknownIPv4Address returns the distinguished IPv4 "unknown" sentinel
// value.
func UnknownIPv4Address() IPv4Address {
	return IPv4Address{}
}

// NewIPv4Address validates text as a dotted-quad IPv4 host (optionally
// suffixed with ":port") and returns the resulting address.  If text has no
// port suffix, defaultPort is used.
func NewIPv4Address(text string, defaultPort uint16) (IPv4Address, error) {
	host, port, err := splitHostPort(text, defaultPort)
	if err != nil {
		return IPv4Address{}, err
	}

	if !isDottedQuad(host) {
		return IPv4Address{}, makeError(ErrUnsupportedAddress,
			"not an IPv4 dotted-quad: "+host)
	}

	ip := net.ParseIP(host).To4()
	if ip == nil {
		return IPv4Address{}, makeError(ErrUnsupportedAddress,
			"not an IPv4 dotted-quad: "+host)
	}

	return IPv4Address{ip: ip, port: port}, nil
}

// isDottedQuad reports whether host is exactly four dot-separated decimal
// octets of one to three digits, each in [0, 255].
func isDottedQuad(host string) bool {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if len(p) == 0 || len(p) > 3 {
			return false
		}
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return false
			}
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Zone implements Address.
func (a IPv4Address) Zone() Zone {
	if a.IsUnknown() {
		return ZoneInvalid
	}
	return ZonePublic
}

// Type implements Address.
func (a IPv4Address) Type() AddressType { return TypeIPv4 }

// Port implements Address.
func (a IPv4Address) Port() uint16 { return a.port }

// HostStr implements Address.
func (a IPv4Address) HostStr() string {
	if a.ip == nil {
		return UnknownIPv4Host
	}
	return a.ip.String()
}

// String implements Address.
func (a IPv4Address) String() string {
	host := a.HostStr()
	if a.IsUnknown() || a.port == 0 {
		return host
	}
	return host + ":" + strconv.Itoa(int(a.port))
}

// IsBlockable implements Address.
func (a IPv4Address) IsBlockable() bool { return !a.IsUnknown() }

// IsLocal implements Address.
func (a IPv4Address) IsLocal() bool {
	return a.ip != nil && addrmgr.IsLocal(a.ip)
}

// IsLoopback implements Address.
func (a IPv4Address) IsLoopback() bool {
	return a.ip != nil && a.ip.IsLoopback()
}

// IsUnknown implements Address.
func (a IPv4Address) IsUnknown() bool { return a.ip == nil }

// IsRoutable reports whether the address is routable over the public
// internet.
func (a IPv4Address) IsRoutable() bool {
	return a.ip != nil && addrmgr.IsRoutable(a.ip)
}

// GroupKey returns the network diversity group this address belongs to.
func (a IPv4Address) GroupKey() string {
	if a.ip == nil {
		return "unroutable"
	}
	return addrmgr.GroupKey(a.ip)
}

// IP returns the underlying net.IP. The caller must not mutate it.
func (a IPv4Address) IP() net.IP { return a.ip }
