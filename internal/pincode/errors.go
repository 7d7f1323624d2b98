// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pincode

import "errors"

var (
	// ErrUnsupportedHash is returned for a stored hash of an unknown scheme.
	ErrUnsupportedHash = errors.New("unsupported pincode hash scheme")

	// ErrMalformedHash is returned when a hash of a known scheme cannot be
	// parsed.
	ErrMalformedHash = errors.New("malformed pincode hash")
)
