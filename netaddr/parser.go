// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

import (
	"net"
	"strings"
)

// GetNetworkAddress classifies text as one of the supported endpoint
// variants and returns the corresponding typed Address. Dispatching rules,
// evaluated in order:
//
//  1. If text ends with ".onion", delegate to Tor construction; Tor
//     validation failures are returned as ErrInvalidTorAddress.
//  2. Else if text ends with ".b32.i2p", delegate to I2P construction;
//     validation failures are returned as ErrInvalidI2PAddress.
//  3. Else if text is a dotted-quad IPv4 host, optionally followed by
//     ":port", construct an IPv4 address.
//  4. Else if text is a bracketed ("[::1]:1234") or bare ("::1") IPv6
//     literal, construct an IPv6 address.
//  5. Else fail with ErrUnsupportedAddress.
//
// A bare "onion" or "i2p" with no leading label never reaches rule 1 or 2
// (it doesn't end with the dotted suffix) and falls through to
// ErrUnsupportedAddress. A present-but-empty label before the suffix
// (".onion", ".b32.i2p") does reach the respective constructor and fails
// there as an invalid address, not an unsupported one.
func GetNetworkAddress(text string, defaultPort uint16) (Address, error) {
	host := stripDispatchPort(text)

	switch {
	case strings.HasSuffix(host, torSuffix):
		addr, err := NewTorAddress(text, defaultPort)
		if err != nil {
			return nil, err
		}
		return addr, nil

	case strings.HasSuffix(host, i2pSuffix):
		addr, err := NewI2PAddress(text, defaultPort)
		if err != nil {
			return nil, err
		}
		return addr, nil

	case isDottedQuad(host):
		addr, err := NewIPv4Address(text, defaultPort)
		if err != nil {
			return nil, err
		}
		return addr, nil
	}

	if strings.HasPrefix(text, "[") || isBareIPv6(text) {
		addr, err := NewIPv6Address(text, defaultPort)
		if err != nil {
			return nil, err
		}
		return addr, nil
	}

	return nil, makeError(ErrUnsupportedAddress,
		"unsupported address: "+text)
}

// stripDispatchPort returns text with a trailing ":<digits>" port suffix
// removed, for the sole purpose of classifying the address variant. It does
// not validate the port range -- the chosen constructor does that. Tor,
// I2P, and IPv4 hosts never themselves contain a colon, so this is
// unambiguous for those three variants.
func stripDispatchPort(text string) string {
	idx := lastIndexByte(text, ':')
	if idx < 0 {
		return text
	}
	portText := text[idx+1:]
	if portText == "" {
		return text
	}
	for i := 0; i < len(portText); i++ {
		if portText[i] < '0' || portText[i] > '9' {
			return text
		}
	}
	return text[:idx]
}

// isBareIPv6 reports whether text parses as an un-bracketed IPv6 literal
// with no port suffix.
func isBareIPv6(text string) bool {
	ip := net.ParseIP(text)
	return ip != nil && ip.To4() == nil
}
