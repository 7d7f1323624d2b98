// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// RateLimit bounds the number of verification attempts inside a rolling
// window.
type RateLimit struct {
	// Count is the number of failed attempts allowed inside Window.
	Count int `json:"count"`

	// Window is the rolling period the Count applies to.
	Window time.Duration `json:"window"`
}

// UserSecret is the provisioned OTP configuration of a user. It is never
// mutated by verification traffic.
type UserSecret struct {
	// Secret is the base32 shared TOTP secret.
	Secret string `json:"-"`

	// RateLimit is nil when no policy is stored for the user; callers then
	// apply their default policy. It is never a zeroed placeholder.
	RateLimit *RateLimit `json:"rate_limit,omitempty"`

	// WindowSize is the verification window in TOTP steps, nil when unset.
	WindowSize *int `json:"window_size,omitempty"`

	// ScratchTokens is the pool of provisioned single-use backup codes.
	ScratchTokens []string `json:"-"`
}

// HasScratchToken reports whether token belongs to the provisioned pool.
func (s UserSecret) HasScratchToken(token string) bool {
	return slices.Contains(s.ScratchTokens, token)
}
