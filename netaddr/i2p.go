// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

import (
	"strconv"
	"strings"

	"github.com/javabudd/oxen-core/addrmgr"
)

// UnknownI2PHost is the distinguished sentinel host string for an I2P
// address that could not be determined or was never assigned a value.
const UnknownI2PHost = "<unknown i2p host>"

const (
	i2pHostLen = 52
	i2pSuffix  = ".b32.i2p"
	i2pLen     = i2pHostLen + len(i2pSuffix)
)

// I2PAddress is an immutable I2P b32 address and port.
type I2PAddress struct {
	host string
	port uint16
}

// UnknownI2PAddress returns the distinguished I2P "unknown" sentinel value.
func UnknownI2PAddress() I2PAddress {
	return I2PAddress{host: UnknownI2PHost}
}

// NewI2PAddress validates text (optionally suffixed with ":port") as an I2P
// b32 host and returns the resulting address.  If text has no port suffix,
// defaultPort is used.  An Error wrapping ErrInvalidPort or
// ErrInvalidI2PAddress is returned on failure.
func NewI2PAddress(text string, defaultPort uint16) (I2PAddress, error) {
	host, port, err := splitHostPort(text, defaultPort)
	if err != nil {
		return I2PAddress{}, err
	}

	if !isValidI2PHost(host) {
		return I2PAddress{}, makeError(ErrInvalidI2PAddress,
			"invalid i2p address: "+host)
	}

	return I2PAddress{host: host, port: port}, nil
}

// isValidI2PHost reports whether host is a syntactically valid I2P b32
// address: exactly 52 base32 characters followed by ".b32.i2p".
func isValidI2PHost(host string) bool {
	if len(host) != i2pLen || !strings.HasSuffix(host, i2pSuffix) {
		return false
	}
	return isBase32(host[:i2pHostLen])
}

// Zone implements Address.
func (a I2PAddress) Zone() Zone {
	if a.IsUnknown() {
		return ZoneInvalid
	}
	return ZoneI2P
}

// Type implements Address.
func (a I2PAddress) Type() AddressType { return TypeI2P }

// Port implements Address.
func (a I2PAddress) Port() uint16 { return a.port }

// HostStr implements Address.
func (a I2PAddress) HostStr() string {
	if a.host == "" {
		return UnknownI2PHost
	}
	return a.host
}

// String implements Address.
func (a I2PAddress) String() string {
	host := a.HostStr()
	if a.IsUnknown() || a.port == 0 {
		return host
	}
	return host + ":" + strconv.Itoa(int(a.port))
}

// IsBlockable implements Address.
func (a I2PAddress) IsBlockable() bool { return !a.IsUnknown() }

// IsLocal implements Address. I2P addresses are never local.
func (a I2PAddress) IsLocal() bool { return false }

// IsLoopback implements Address. I2P addresses are never loopback.
func (a I2PAddress) IsLoopback() bool { return false }

// IsUnknown implements Address.
func (a I2PAddress) IsUnknown() bool {
	return a.host == "" || a.host == UnknownI2PHost
}

// GroupKey returns the network diversity group this address belongs to.
func (a I2PAddress) GroupKey() string {
	return addrmgr.I2PGroupKey(a.HostStr())
}

// Equal reports whether a and b have the same host and port.
func (a I2PAddress) Equal(b I2PAddress) bool {
	return a.HostStr() == b.HostStr() && a.port == b.port
}

// IsSameHost reports whether a and b name the same host, ignoring port.
func (a I2PAddress) IsSameHost(b I2PAddress) bool {
	return a.HostStr() == b.HostStr()
}

// Less implements a total order: hosts compare lexicographically, ties
// broken by port.
func (a I2PAddress) Less(b I2PAddress) bool {
	ah, bh := a.HostStr(), b.HostStr()
	if ah != bh {
		return ah < bh
	}
	return a.port < b.port
}
