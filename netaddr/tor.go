// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

import (
	"strconv"
	"strings"

	"github.com/javabudd/oxen-core/addrmgr"
)

// UnknownTorHost is the distinguished sentinel host string for a Tor
// address that could not be determined or was never assigned a value.
const UnknownTorHost = "<unknown tor host>"

const (
	torV2HostLen = 16
	torV3HostLen = 56
	torSuffix    = ".onion"

	torV2Len = torV2HostLen + len(torSuffix)
	torV3Len = torV3HostLen + len(torSuffix)
)

// TorAddress is an immutable Tor v2 or v3 onion address and port.
type TorAddress struct {
	host string
	port uint16
}

// UnknownTorAddress returns the distinguished Tor "unknown" sentinel value.
// The zero value of TorAddress is treated as the same sentinel: IsUnknown
// reports true for it and Equal reports it equal to this value, although the
// two differ under ==.
func UnknownTorAddress() TorAddress {
	return TorAddress{host: UnknownTorHost}
}

// NewTorAddress validates text (optionally suffixed with ":port") as a Tor
// v2 or v3 onion host and returns the resulting address.  If text has no
// port suffix, defaultPort is used.  An Error wrapping ErrInvalidPort or
// ErrInvalidTorAddress is returned on failure.
func NewTorAddress(text string, defaultPort uint16) (TorAddress, error) {
	host, port, err := splitHostPort(text, defaultPort)
	if err != nil {
		return TorAddress{}, err
	}

	if !isValidTorHost(host) {
		return TorAddress{}, makeError(ErrInvalidTorAddress,
			"invalid tor address: "+host)
	}

	return TorAddress{host: host, port: port}, nil
}

// isValidTorHost reports whether host is a syntactically valid Tor v2 or
// v3 onion address: a base32 host of exactly the length required by either
// variant, followed by the .onion suffix.
func isValidTorHost(host string) bool {
	if !strings.HasSuffix(host, torSuffix) {
		return false
	}

	switch len(host) {
	case torV2Len:
		return isBase32(host[:torV2HostLen])
	case torV3Len:
		return isBase32(host[:torV3HostLen])
	default:
		return false
	}
}

// Zone implements Address.
func (a TorAddress) Zone() Zone {
	if a.IsUnknown() {
		return ZoneInvalid
	}
	return ZoneTor
}

// Type implements Address.
func (a TorAddress) Type() AddressType { return TypeTor }

// Port implements Address.
func (a TorAddress) Port() uint16 { return a.port }

// HostStr implements Address.
func (a TorAddress) HostStr() string {
	if a.host == "" {
		return UnknownTorHost
	}
	return a.host
}

// String implements Address.
func (a TorAddress) String() string {
	host := a.HostStr()
	if a.IsUnknown() || a.port == 0 {
		return host
	}
	return host + ":" + strconv.Itoa(int(a.port))
}

// IsBlockable implements Address.
func (a TorAddress) IsBlockable() bool { return !a.IsUnknown() }

// IsLocal implements Address. Tor addresses are never local.
func (a TorAddress) IsLocal() bool { return false }

// IsLoopback implements Address. Tor addresses are never loopback.
func (a TorAddress) IsLoopback() bool { return false }

// IsUnknown implements Address.
func (a TorAddress) IsUnknown() bool {
	return a.host == "" || a.host == UnknownTorHost
}

// GroupKey returns the network diversity group this address belongs to, for
// peer-selection callers that want to avoid over-concentrating on one
// /4 of onion key space.
func (a TorAddress) GroupKey() string {
	return addrmgr.OnionGroupKey(a.HostStr())
}

// Equal reports whether a and b have the same host and port.
func (a TorAddress) Equal(b TorAddress) bool {
	return a.HostStr() == b.HostStr() && a.port == b.port
}

// IsSameHost reports whether a and b name the same host, ignoring port.
func (a TorAddress) IsSameHost(b TorAddress) bool {
	return a.HostStr() == b.HostStr()
}

// Less implements a total order: the unknown sentinel sorts before any valid
// onion host, other hosts compare lexicographically, and ties are broken by
// port.
func (a TorAddress) Less(b TorAddress) bool {
	if au, bu := a.IsUnknown(), b.IsUnknown(); au != bu {
		return au
	}
	ah, bh := a.HostStr(), b.HostStr()
	if ah != bh {
		return ah < bh
	}
	return a.port < b.port
}
