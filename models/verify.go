// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VerifyRequest is a single OTP authentication attempt.
type VerifyRequest struct {
	// Username identifies the account.
	Username string `json:"username"`

	// Code is the submitted TOTP code or scratch token.
	Code string `json:"code"`

	// Pincode is the secondary PIN, required only when the PIN gate is on.
	Pincode string `json:"pincode,omitempty"`
}

// VerifyResult is the outcome returned to the caller. Rejection reasons are
// deliberately not part of it.
type VerifyResult struct {
	Accepted bool `json:"accepted"`
}
