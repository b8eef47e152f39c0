// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated platform user id (string).
	UserIDCtxKey = contextKey("userID")

	// TraceIDCtxKey holds the request trace id set by the trace middleware.
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext returns the user id placed in ctx by the auth
// middleware. ok is false when absent or empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTraceIDFromContext returns the trace id, or "" when none is set.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
