// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import "errors"

// Rejection reasons. They are for logs only; callers must not tell them apart
// in anything a client can see.
var (
	ErrRateLimited      = errors.New("too many failed attempts")
	ErrCodeReused       = errors.New("code was already used")
	ErrScratchTokenUsed = errors.New("scratch token was already used")
	ErrInvalidCode      = errors.New("invalid code")
	ErrInvalidSecret    = errors.New("invalid otp secret")
)
