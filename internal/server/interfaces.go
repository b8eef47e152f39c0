// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the transports in this package.
type Server interface {
	// RunServer serves until ctx is cancelled or a listener fails, then
	// shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops serving and frees the listener.
	Shutdown(ctx context.Context) error
}
