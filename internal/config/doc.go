// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the server configuration.
//
// Sources are consulted in this order, the first non-zero value of each
// field winning:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig].
package config
