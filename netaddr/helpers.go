// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netaddr

import "strconv"

// splitHostPort splits text at the last colon.  If a suffix exists, it must
// parse as a decimal integer in [0, 65535]; otherwise ErrInvalidPort is
// returned.  If text has no colon, defaultPort is used and the entirety of
// text is the host.
func splitHostPort(text string, defaultPort uint16) (string, uint16, error) {
	idx := lastIndexByte(text, ':')
	if idx < 0 {
		return text, defaultPort, nil
	}

	host := text[:idx]
	portText := text[idx+1:]

	port, err := strconv.ParseUint(portText, 10, 16)
	if err != nil {
		return "", 0, makeError(ErrInvalidPort,
			"invalid port suffix: "+portText)
	}

	return host, uint16(port), nil
}

// lastIndexByte returns the index of the last occurrence of c in s, or -1
// if c is not present.
func lastIndexByte(s string, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// isBase32 reports whether s consists entirely of characters from the
// base32 alphabet used by onion and I2P b32 hosts: lowercase a-z and 2-7.
// Any other byte, including an embedded NUL or control byte, fails this
// check.
func isBase32(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '2' && c <= '7':
		default:
			return false
		}
	}
	return true
}
