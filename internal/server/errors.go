// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoTransports means neither an HTTP nor a gRPC handler was built for
	// the configured addresses.
	errNoTransports = errors.New("no transport configured: set an HTTP or gRPC address")

	// ErrShutdownIncomplete wraps the errors of transports that did not stop
	// cleanly within the shutdown deadline.
	ErrShutdownIncomplete = errors.New("server shutdown incomplete")
)
