// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/zeebo/xxh3"

// LockClass folds a lock namespace into the first key of the two-key form of
// pg_advisory_xact_lock. The second key is the user id, so two deployments
// sharing one database only contend when they use the same namespace.
func LockClass(namespace string) int32 {
	return int32(xxh3.HashString(namespace))
}
