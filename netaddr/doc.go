// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package netaddr implements the anonymity-network address value types
manipulated by the Dandelion++ stem router: Tor v2/v3 onion addresses and
I2P b32 addresses, plus plain IPv4 and IPv6 network addresses, all unified
behind a single Address interface.

Addresses are immutable value types. None of the constructors in this
package perform hostname resolution or Tor/I2P cryptography; GetNetworkAddress
only classifies and syntactically validates the text it is given.
*/
package netaddr
