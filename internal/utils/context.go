// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the server, the CLI and
// the transport layer: context keys, admin token minting and parsing, JSON
// responses, trace id generation and the outbound HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey stores the subject of a verified admin token.
//
//	ctx := context.WithValue(ctx, utils.OperatorCtxKey, "ops@example.com")
var OperatorCtxKey = contextKey("operator")

// GetOperatorFromContext returns the operator stored under [OperatorCtxKey].
// ok is false when the value is missing, empty or of another type.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}
