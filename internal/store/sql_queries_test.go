// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertTimestamps(t *testing.T) {
	history := models.AuthHistory{
		SuccessTimestamps: []time.Time{time.Unix(100, 0), time.Unix(130, 999)},
		FailTimestamps:    []time.Time{time.Unix(120, 0)},
	}

	query, args, ok, err := buildInsertTimestamps(7, history)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "INSERT INTO timestamps (userid,success,timestamp) VALUES ($1,$2,$3),($4,$5,$6),($7,$8,$9)", query)
	assert.Equal(t, []any{
		int64(7), true, int64(100),
		int64(7), true, int64(130),
		int64(7), false, int64(120),
	}, args)
}

func TestBuildInsertTimestamps_Empty(t *testing.T) {
	_, _, ok, err := buildInsertTimestamps(7, models.AuthHistory{UsedScratchTokens: []string{"x"}})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuildInsertUsedScratchTokens(t *testing.T) {
	history := models.AuthHistory{UsedScratchTokens: []string{"b", "a", "b"}}

	query, args, ok, err := buildInsertUsedScratchTokens(7, history)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "INSERT INTO used_scratch_tokens (userid,token) VALUES ($1,$2),($3,$4)", query)
	assert.Equal(t, []any{int64(7), "b", int64(7), "a"}, args)

	_, _, ok, err = buildInsertUsedScratchTokens(7, models.AuthHistory{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLockClass(t *testing.T) {
	assert.Equal(t, LockClass("go-otp-keeper/state"), LockClass("go-otp-keeper/state"))
	assert.NotEqual(t, LockClass("go-otp-keeper/state"), LockClass("other-app"))
}
