// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC transports of the fee-sponsor and
// stops them gracefully when the run context is cancelled.
package server
