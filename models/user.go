// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserIdentity is the long-lived anchor every other credential record
// references. It is created the first time a username is seen and never
// changes afterwards; deleting it cascades to history, secret and pincode.
type UserIdentity struct {
	// UserID is the store-assigned numeric identifier. It doubles as the
	// advisory lock key of the user's authentication history.
	UserID int64 `json:"user_id"`

	// Username is the unique login the identity was created for.
	Username string `json:"username"`
}

// TableName returns the name of the database table
// associated with the UserIdentity model.
func (u UserIdentity) TableName() string {
	return "users"
}
