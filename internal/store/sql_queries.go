// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"

	"github.com/MKhiriev/go-otp-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	findUserByUsername = `SELECT userid, username
		FROM users
		WHERE username = $1;`

	insertUser = `INSERT INTO users (username)
		VALUES ($1)
		ON CONFLICT (username) DO NOTHING
		RETURNING userid;`

	deleteUser = `DELETE FROM users
		WHERE username = $1;`

	// $1 lock class, $2 user id
	acquireStateLock = `SELECT pg_advisory_xact_lock($1::int4, $2::int4);`

	getTimestamps = `SELECT success, timestamp
		FROM timestamps
		WHERE userid = $1
		ORDER BY timestamp, success;`

	getUsedScratchTokens = `SELECT token
		FROM used_scratch_tokens
		WHERE userid = $1
		ORDER BY token;`

	deleteTimestamps = `DELETE FROM timestamps
		WHERE userid = $1;`

	deleteUsedScratchTokens = `DELETE FROM used_scratch_tokens
		WHERE userid = $1;`

	getUserSecret = `SELECT s.secret, s.rate_limit_times, s.rate_limit_seconds, s.window_size
		FROM secrets s
		JOIN users u ON u.userid = s.userid
		WHERE u.username = $1;`

	getScratchTokens = `SELECT t.token
		FROM scratch_tokens t
		JOIN users u ON u.userid = t.userid
		WHERE u.username = $1
		ORDER BY t.token;`

	getPincode = `SELECT p.userid, p.pincode
		FROM pincodes p
		JOIN users u ON u.userid = p.userid
		WHERE u.username = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertTimestamps builds one multi-row INSERT for every timestamp of
// history. ok is false when there is nothing to insert.
func buildInsertTimestamps(userID int64, history models.AuthHistory) (query string, args []any, ok bool, err error) {
	if len(history.SuccessTimestamps)+len(history.FailTimestamps) == 0 {
		return "", nil, false, nil
	}

	builder := psql.Insert("timestamps").Columns("userid", "success", "timestamp")
	for _, ts := range history.SuccessTimestamps {
		builder = builder.Values(userID, true, ts.Unix())
	}
	for _, ts := range history.FailTimestamps {
		builder = builder.Values(userID, false, ts.Unix())
	}

	query, args, err = builder.ToSql()
	return query, args, true, err
}

// buildInsertUsedScratchTokens builds one multi-row INSERT for the distinct
// used tokens of history. ok is false when there is nothing to insert.
func buildInsertUsedScratchTokens(userID int64, history models.AuthHistory) (query string, args []any, ok bool, err error) {
	tokens := distinct(history.UsedScratchTokens)
	if len(tokens) == 0 {
		return "", nil, false, nil
	}

	builder := psql.Insert("used_scratch_tokens").Columns("userid", "token")
	for _, token := range tokens {
		builder = builder.Values(userID, token)
	}

	query, args, err = builder.ToSql()
	return query, args, true, err
}

// distinct keeps the first occurrence of every value, in order.
func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}

	return out
}
