// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PincodeRecord is the optional secondary PIN of a user. Only the hash is
// ever stored.
type PincodeRecord struct {
	UserID int64  `json:"-"`
	Hash   string `json:"-"`
}
