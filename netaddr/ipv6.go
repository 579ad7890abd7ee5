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

// UnknownIPv6Host is the distinguished sentinel host string for an IPv6
// address that could not be determined or was never assigned a value.
const UnknownIPv6Host = "<unknown ipv6 host>"

// IPv6Address is an immutable IPv6 address and port.
type IPv6Address struct {
	ip   net.IP
	port uint16
}

// UnknownIPv6Address returns the distinguished IPv6 "unknown" sentinel
// value.
func UnknownIPv6Address() IPv6Address {
	return IPv6Address{}
}

// NewIPv6Address validates text as an IPv6 host, accepting either a bare
// RFC 4291 literal ("::1") or one bracketed with an optional port
// ("[::1]:1234"), and returns the resulting address.  If text carries no
// port suffix, defaultPort is used.
func NewIPv6Address(text string, defaultPort uint16) (IPv6Address, error) {
	host := text
	port := defaultPort

	if strings.HasPrefix(text, "[") {
		end := strings.IndexByte(text, ']')
		if end < 0 {
			return IPv6Address{}, makeError(ErrUnsupportedAddress,
				"unterminated IPv6 literal: "+text)
		}
		host = text[1:end]

		rest := text[end+1:]
		if strings.HasPrefix(rest, ":") {
			p, err := strconv.ParseUint(rest[1:], 10, 16)
			if err != nil {
				return IPv6Address{}, makeError(ErrInvalidPort,
					"invalid port suffix: "+rest[1:])
			}
			port = uint16(p)
		} else if rest != "" {
			return IPv6Address{}, makeError(ErrUnsupportedAddress,
				"unexpected trailer after IPv6 literal: "+rest)
		}
	}

	ip := net.ParseIP(host)
	if ip == nil || ip.To4() != nil {
		return IPv6Address{}, makeError(ErrUnsupportedAddress,
			"not an IPv6 literal: "+host)
	}

	return IPv6Address{ip: ip, port: port}, nil
}

// Zone implements Address.
func (a IPv6Address) Zone() Zone {
	if a.IsUnknown() {
		return ZoneInvalid
	}
	return ZonePublic
}

// Type implements Address.
func (a IPv6Address) Type() AddressType { return TypeIPv6 }

// Port implements Address.
func (a IPv6Address) Port() uint16 { return a.port }

// HostStr implements Address.
func (a IPv6Address) HostStr() string {
	if a.ip == nil {
		return UnknownIPv6Host
	}
	return a.ip.String()
}

// String implements Address.
func (a IPv6Address) String() string {
	host := a.HostStr()
	if a.IsUnknown() {
		return host
	}
	if a.port == 0 {
		return host
	}
	return "[" + host + "]:" + strconv.Itoa(int(a.port))
}

// IsBlockable implements Address.
func (a IPv6Address) IsBlockable() bool { return !a.IsUnknown() }

// IsLocal implements Address.
func (a IPv6Address) IsLocal() bool {
	return a.ip != nil && addrmgr.IsLocal(a.ip)
}

// IsLoopback implements Address.
func (a IPv6Address) IsLoopback() bool {
	return a.ip != nil && a.ip.IsLoopback()
}

// IsUnknown implements Address.
func (a IPv6Address) IsUnknown() bool { return a.ip == nil }

// IsRoutable reports whether the address is routable over the public
// internet.
func (a IPv6Address) IsRoutable() bool {
	return a.ip != nil && addrmgr.IsRoutable(a.ip)
}

// GroupKey returns the network diversity group this address belongs to.
func (a IPv6Address) GroupKey() string {
	if a.ip == nil {
		return "unroutable"
	}
	return addrmgr.GroupKey(a.ip)
}

// IP returns the underlying net.IP. The caller must not mutate it.
func (a IPv6Address) IP() net.IP { return a.ip }
