// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2023 The Thought Network developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"go.uber.org/zap"
)

// log is a logger that is initialized with no output filters.  This means the
// package will not perform any logging by default until the caller requests
// it.
var log = zap.NewNop()

// DisableLog disables all library log output.  Logging output is disabled by
// default until UseLogger is called.
func DisableLog() {
	log = zap.NewNop()
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger *zap.Logger) {
	log = logger
}
