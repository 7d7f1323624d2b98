// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// AuthHistory is the per-user replay and rate-limit ledger.
//
// It is always read in full under the user's lock, changed in memory and
// written back in full. UsedScratchTokens only ever grows for the lifetime
// of a secret: once a scratch token is consumed it is never valid again.
type AuthHistory struct {
	// SuccessTimestamps are the moments (TOTP step start for codes, wall
	// clock for scratch tokens) of accepted attempts, oldest first.
	SuccessTimestamps []time.Time `json:"success_timestamps"`

	// FailTimestamps are the wall-clock moments of rejected attempts,
	// oldest first.
	FailTimestamps []time.Time `json:"fail_timestamps"`

	// UsedScratchTokens is the set of consumed scratch tokens.
	UsedScratchTokens []string `json:"used_scratch_tokens"`
}

// Clone returns a deep copy so that callers can mutate the result without
// touching the snapshot held by a lease.
func (h AuthHistory) Clone() AuthHistory {
	return AuthHistory{
		SuccessTimestamps: slices.Clone(h.SuccessTimestamps),
		FailTimestamps:    slices.Clone(h.FailTimestamps),
		UsedScratchTokens: slices.Clone(h.UsedScratchTokens),
	}
}

// IsEmpty reports whether the history holds no records at all.
func (h AuthHistory) IsEmpty() bool {
	return len(h.SuccessTimestamps) == 0 && len(h.FailTimestamps) == 0 && len(h.UsedScratchTokens) == 0
}

// HasUsedScratchToken reports whether token was already consumed.
func (h AuthHistory) HasUsedScratchToken(token string) bool {
	return slices.Contains(h.UsedScratchTokens, token)
}

// HasSuccessAt reports whether a success was already recorded for the exact
// moment ts. Used for TOTP replay detection.
func (h AuthHistory) HasSuccessAt(ts time.Time) bool {
	return slices.ContainsFunc(h.SuccessTimestamps, ts.Equal)
}
