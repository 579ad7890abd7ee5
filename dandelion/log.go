// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dandelion

import "github.com/decred/slog"

// log is the package-level logger used by the dandelion package. It defaults
// to disabled output and is set by callers via UseLogger.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}
