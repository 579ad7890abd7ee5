// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package addrmgr implements RFC-reserved-range classification for network
addresses: routability, local-address detection, and the network-group key
used to diversify peer selection.

Only this classifier survives from dcrd's address manager here. The
concurrency-safe bucket store, peer scoring, and getaddr/addr persistence
built around it in dcrd belong to the address-caching and peer-selection
subsystem of a full node, which is an external collaborator of the stem
router (see the out-of-scope transport in netaddr's and dandelion's package
docs), not something this module reimplements. IsRoutable, GroupKey, and
IsLocal are consumed directly by netaddr's IPv4Address and IPv6Address
variants; OnionGroupKey and I2PGroupKey extend the same scheme to the two
anonymity-network variants, which have no IP-level representation for this
package to classify.

Every exported function here is total: none of them fail, so this package
carries no ErrorKind/Error taxonomy of its own -- dcrd's address manager
needed one for its bucket-store lookups, but that subsystem didn't survive
the trim.
*/
package addrmgr
