// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the variable-length integer and string primitives
used by the oxen-core wire encodings.

This is a trimmed descendant of dcrd's wire package: the full Decred block
and peer-to-peer message protocol (headers, inventory vectors, the mixing
messages, committed filters, and so on) lives in the upstream package and is
an external collaborator of this module, not something it reimplements. Only
the variable-length integer and string helpers survive here, because
netaddr's archival address codec (see netaddr.TorAddress.Encode and
netaddr.I2PAddress.Encode) depends on exactly those two primitives and
nothing else from the wire protocol.
*/
package wire
