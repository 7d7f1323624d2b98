// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthRejected covers every negative verification outcome. The
	// underlying reason is wrapped for logs only.
	ErrAuthRejected = errors.New("authentication rejected")

	ErrAdminDisabled           = errors.New("admin API is disabled")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
