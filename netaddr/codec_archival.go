// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

import (
	"io"

	"github.com/javabudd/oxen-core/wire"
)

// archivalVersion0 is the only version this codec currently emits. A future
// wire-format change would introduce archivalVersion1 and switch on it in
// Decode, the same way wire's own NetAddressV2 keys behavior off a leading
// discriminant.
const archivalVersion0 = 0

// Encode writes the binary archival record for a. The record is a version
// byte, the host as a varstring, and the port as a varint; round-tripping it
// through Decode reproduces a exactly, including the unknown sentinel.
func (a TorAddress) Encode(w io.Writer) error {
	if err := wire.WriteVarInt(w, archivalVersion0); err != nil {
		return err
	}
	if err := wire.WriteVarString(w, a.HostStr()); err != nil {
		return err
	}
	return wire.WriteVarInt(w, uint64(a.port))
}

// Decode reads a binary archival record produced by Encode into a. Per the
// same silent-sanitize policy as UnmarshalJSON, a host that fails to
// validate as a v2 or v3 onion host (and isn't the sentinel itself) yields
// the unknown sentinel rather than an error. A host field whose declared
// length exceeds wire.MaxVarStringLen is not sanitized: Decode returns the
// ErrVarStringTooLong error from wire.ReadVarString instead.
func (a *TorAddress) Decode(r io.Reader) error {
	if _, err := wire.ReadVarInt(r); err != nil {
		return err
	}

	host, err := wire.ReadVarString(r)
	if err != nil {
		return err
	}
	port, err := wire.ReadVarInt(r)
	if err != nil {
		return err
	}

	if host != UnknownTorHost && !isValidTorHost(host) {
		if len(host) > torV3Len {
			log.Debugf("netaddr: sanitizing oversized archival tor host "+
				"field (length %d, max %d)", len(host), torV3Len)
		}
		*a = UnknownTorAddress()
		return nil
	}
	if host == UnknownTorHost || port > 0xffff {
		*a = UnknownTorAddress()
		return nil
	}

	*a = TorAddress{host: host, port: uint16(port)}
	return nil
}

// Encode writes the binary archival record for a.
func (a I2PAddress) Encode(w io.Writer) error {
	if err := wire.WriteVarInt(w, archivalVersion0); err != nil {
		return err
	}
	if err := wire.WriteVarString(w, a.HostStr()); err != nil {
		return err
	}
	return wire.WriteVarInt(w, uint64(a.port))
}

// Decode reads a binary archival record produced by Encode into a.
func (a *I2PAddress) Decode(r io.Reader) error {
	if _, err := wire.ReadVarInt(r); err != nil {
		return err
	}

	host, err := wire.ReadVarString(r)
	if err != nil {
		return err
	}
	port, err := wire.ReadVarInt(r)
	if err != nil {
		return err
	}

	if host != UnknownI2PHost && !isValidI2PHost(host) {
		if len(host) > i2pLen {
			log.Debugf("netaddr: sanitizing oversized archival i2p host "+
				"field (length %d, max %d)", len(host), i2pLen)
		}
		*a = UnknownI2PAddress()
		return nil
	}
	if host == UnknownI2PHost || port > 0xffff {
		*a = UnknownI2PAddress()
		return nil
	}

	*a = I2PAddress{host: host, port: uint16(port)}
	return nil
}
