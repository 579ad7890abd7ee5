// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

// Zone identifies the namespace an Address's host is drawn from.
type Zone uint8

// These constants enumerate the possible Zone values.  ZoneInvalid is the
// only zone reachable by a default-constructed or explicitly-unknown
// Address value.
const (
	ZoneInvalid Zone = iota
	ZonePublic
	ZoneTor
	ZoneI2P
)

// String returns the human-readable name of z.
func (z Zone) String() string {
	switch z {
	case ZonePublic:
		return "public"
	case ZoneTor:
		return "tor"
	case ZoneI2P:
		return "i2p"
	default:
		return "invalid"
	}
}

// AddressType identifies the concrete representation carried by an Address.
type AddressType uint8

// These constants enumerate the possible AddressType values.
const (
	TypeInvalid AddressType = iota
	TypeIPv4
	TypeIPv6
	TypeTor
	TypeI2P
)

// String returns the human-readable name of t.
func (t AddressType) String() string {
	switch t {
	case TypeIPv4:
		return "ipv4"
	case TypeIPv6:
		return "ipv6"
	case TypeTor:
		return "tor"
	case TypeI2P:
		return "i2p"
	default:
		return "invalid"
	}
}

// Address is the Go-native rendering of the tagged union over
// {IPv4, IPv6, Tor, I2P} described by the generic network address data
// model: every concrete address variant in this package satisfies it, and
// callers that need the concrete representation can still switch on Zone or
// Type to recover it.
type Address interface {
	// Zone returns the namespace the address's host is drawn from.
	Zone() Zone

	// Type returns the concrete representation carried by the address.
	Type() AddressType

	// Port returns the address's 16-bit port, 0 meaning "unspecified".
	Port() uint16

	// HostStr returns the address's host, verbatim for a valid address or
	// the variant's unknown sentinel otherwise.
	HostStr() string

	// String returns the host, or "host:port" if the port is non-zero
	// ("[host]:port" for IPv6). For an unknown address it returns the
	// sentinel regardless of port.
	String() string

	// IsBlockable reports whether the address names an entity that can
	// meaningfully be blocked or allow-listed -- false for unknown
	// addresses, true otherwise.
	IsBlockable() bool

	// IsLocal reports whether the address names a local-only endpoint.
	IsLocal() bool

	// IsLoopback reports whether the address names a loopback endpoint.
	IsLoopback() bool

	// IsUnknown reports whether the address is the variant's unknown
	// sentinel.
	IsUnknown() bool
}
