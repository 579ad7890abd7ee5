// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

import "encoding/json"

// torKeyed is the self-describing keyed representation of a TorAddress,
// named "tor" the same way addrmgr's own on-disk peer cache names its
// sections after the field they hold. Port is decoded as an int64, wider
// than the uint16 it logically represents, so that an out-of-range value in
// the wire form sanitizes to the unknown sentinel instead of failing
// json.Unmarshal outright with an overflow error.
type torKeyed struct {
	Host string `json:"host"`
	Port int64  `json:"port"`
}

// i2pKeyed is the self-describing keyed representation of an I2PAddress.
// See torKeyed for why Port is int64.
type i2pKeyed struct {
	Host string `json:"host"`
	Port int64  `json:"port"`
}

// MarshalJSON implements json.Marshaler, writing the keyed wire format: a
// host string and a port under a "tor" section.
func (a TorAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Tor torKeyed `json:"tor"`
	}{Tor: torKeyed{Host: a.HostStr(), Port: int64(a.port)}})
}

// UnmarshalJSON implements json.Unmarshaler. If the decoded host field is
// longer than the longest legal Tor host (the v3 length) or otherwise fails
// to validate as a v2 or v3 onion host, or the decoded port falls outside
// [0, 65535], the result silently becomes the unknown sentinel rather than
// storing the malformed value or returning an error -- a hostile peer must
// not be able to use a malformed field to force unbounded allocation.
func (a *TorAddress) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Tor torKeyed `json:"tor"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	host := wrapper.Tor.Host
	if host == UnknownTorHost {
		*a = UnknownTorAddress()
		return nil
	}
	if !isValidTorHost(host) {
		if len(host) > torV3Len {
			log.Debugf("netaddr: sanitizing oversized tor host field "+
				"(length %d, max %d)", len(host), torV3Len)
		}
		*a = UnknownTorAddress()
		return nil
	}
	if wrapper.Tor.Port < 0 || wrapper.Tor.Port > 0xffff {
		*a = UnknownTorAddress()
		return nil
	}

	*a = TorAddress{host: host, port: uint16(wrapper.Tor.Port)}
	return nil
}

// MarshalJSON implements json.Marshaler, writing the keyed wire format: a
// host string and a port under an "i2p" section.
func (a I2PAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		I2P i2pKeyed `json:"i2p"`
	}{I2P: i2pKeyed{Host: a.HostStr(), Port: int64(a.port)}})
}

// UnmarshalJSON implements json.Unmarshaler, applying the same
// silent-sanitize hardening as TorAddress.UnmarshalJSON.
func (a *I2PAddress) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		I2P i2pKeyed `json:"i2p"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	host := wrapper.I2P.Host
	if host == UnknownI2PHost {
		*a = UnknownI2PAddress()
		return nil
	}
	if !isValidI2PHost(host) {
		if len(host) > i2pLen {
			log.Debugf("netaddr: sanitizing oversized i2p host field "+
				"(length %d, max %d)", len(host), i2pLen)
		}
		*a = UnknownI2PAddress()
		return nil
	}
	if wrapper.I2P.Port < 0 || wrapper.I2P.Port > 0xffff {
		*a = UnknownI2PAddress()
		return nil
	}

	*a = I2PAddress{host: host, port: uint16(wrapper.I2P.Port)}
	return nil
}
