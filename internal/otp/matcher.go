// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otp decides whether a submitted code is acceptable for a user and
// computes the history that has to be written back under the user's lock.
//
// Codes are RFC 6238 TOTP values. Scratch tokens are 8-digit single-use
// backup codes taken from the user's provisioned pool.
package otp

import (
	"encoding/base32"
	"strings"
	"time"

	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/xlzd/gotp"
)

// ScratchTokenLength is the length of a scratch token.
const ScratchTokenLength = 8

// MaxWindowSize bounds the number of steps searched for one code.
const MaxWindowSize = 101

// Config holds the defaults applied when a secret does not carry its own
// policy.
type Config struct {
	Digits            int
	Period            time.Duration
	DefaultWindowSize int
	DefaultRateLimit  models.RateLimit
}

// Result is the verdict of one attempt.
type Result struct {
	Accepted bool
	// Reason is one of the package errors when Accepted is false.
	Reason error
}

// Matcher checks codes against a secret and an authentication history.
// It holds no state and is safe for concurrent use.
type Matcher struct {
	cfg Config
}

// NewMatcher returns a [Matcher] for cfg.
func NewMatcher(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// Check evaluates code at now and returns the verdict together with the
// history to commit. The returned history is always safe to commit: it is
// history, pruned, plus the record of this attempt. A rate-limited attempt
// is not recorded. A rate limit with a non-positive count or window is
// treated as no limit.
func (m *Matcher) Check(secret models.UserSecret, history models.AuthHistory, code string, now time.Time) (Result, models.AuthHistory) {
	now = now.Truncate(time.Second).UTC()
	rateLimit := m.rateLimit(secret)
	window := m.windowSize(secret)
	period := int64(m.cfg.Period / time.Second)

	updated := m.prune(history.Clone(), now, rateLimit, window)

	if rateLimit.Count > 0 && rateLimit.Window > 0 && len(updated.FailTimestamps) >= rateLimit.Count {
		return reject(ErrRateLimited), updated
	}

	normalized, ok := normalizeSecret(secret.Secret)
	if !ok {
		return reject(ErrInvalidSecret), updated
	}

	code = strings.TrimSpace(code)

	if len(code) == m.cfg.Digits {
		totp := gotp.NewTOTP(normalized, m.cfg.Digits, int(period), nil)
		current := now.Unix() - now.Unix()%period
		reused := false

		lo, hi := -(window-1)/2, window/2
		for offset := lo; offset <= hi; offset++ {
			step := time.Unix(current+int64(offset)*period, 0).UTC()
			if !totp.VerifyTime(code, step) {
				continue
			}
			if updated.HasSuccessAt(step) {
				reused = true
				continue
			}

			updated.SuccessTimestamps = append(updated.SuccessTimestamps, step)
			return Result{Accepted: true}, updated
		}

		if reused {
			updated.FailTimestamps = append(updated.FailTimestamps, now)
			return reject(ErrCodeReused), updated
		}
	}

	if len(code) == ScratchTokenLength && secret.HasScratchToken(code) {
		if updated.HasUsedScratchToken(code) {
			updated.FailTimestamps = append(updated.FailTimestamps, now)
			return reject(ErrScratchTokenUsed), updated
		}

		// success timestamps are TOTP step starts used for replay detection,
		// the used set alone records a scratch success
		updated.UsedScratchTokens = append(updated.UsedScratchTokens, code)
		return Result{Accepted: true}, updated
	}

	updated.FailTimestamps = append(updated.FailTimestamps, now)
	return reject(ErrInvalidCode), updated
}

func (m *Matcher) rateLimit(secret models.UserSecret) models.RateLimit {
	if secret.RateLimit != nil {
		return *secret.RateLimit
	}

	return m.cfg.DefaultRateLimit
}

func (m *Matcher) windowSize(secret models.UserSecret) int {
	window := m.cfg.DefaultWindowSize
	if secret.WindowSize != nil && *secret.WindowSize > 0 {
		window = *secret.WindowSize
	}

	return min(max(window, 1), MaxWindowSize)
}

// prune drops failures outside the rate-limit window and successes too old
// to be matched by any code inside the verification window. Used scratch
// tokens are kept forever.
func (m *Matcher) prune(history models.AuthHistory, now time.Time, rateLimit models.RateLimit, window int) models.AuthHistory {
	failCutoff := now.Add(-rateLimit.Window)
	successCutoff := now.Add(-time.Duration(window/2+1) * m.cfg.Period)

	history.FailTimestamps = keepSince(history.FailTimestamps, failCutoff)
	history.SuccessTimestamps = keepSince(history.SuccessTimestamps, successCutoff)

	return history
}

func keepSince(timestamps []time.Time, cutoff time.Time) []time.Time {
	var kept []time.Time
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	return kept
}

// normalizeSecret uppercases and strips spaces from a base32 secret and
// checks that it decodes the way gotp decodes it (padded to a multiple of 8,
// standard encoding), since gotp panics on an undecodable secret.
func normalizeSecret(secret string) (string, bool) {
	normalized := strings.ToUpper(strings.ReplaceAll(secret, " ", ""))
	normalized = strings.TrimRight(normalized, "=")
	if normalized == "" {
		return "", false
	}

	padded := normalized + strings.Repeat("=", (8-len(normalized)%8)%8)
	if _, err := base32.StdEncoding.DecodeString(padded); err != nil {
		return "", false
	}

	return normalized, true
}

func reject(reason error) Result {
	return Result{Reason: reason}
}
