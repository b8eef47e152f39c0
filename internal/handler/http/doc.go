// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the fee-sponsor server.
//
// It wires chi routes, bearer authentication, request tracing and access
// logging in front of the custody and sponsorship services. Service errors
// are mapped to fixed messages in errors_mapper.go so that internal causes
// never reach the client.
package http
