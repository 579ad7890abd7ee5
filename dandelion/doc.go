// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package dandelion implements the Dandelion++ stem-routing connection map: a
data structure that deterministically and stably maps inbound transaction
sources to a small set of outbound stem peers.

ConnectionMap is a single-threaded value with no internal locking -- it is
intended to live behind a lock held by the surrounding transport. Concurrent
calls on the same map instance are undefined; the caller must serialize
access.
*/
package dandelion
