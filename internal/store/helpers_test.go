// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testNamespace = "go-otp-keeper/test"

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestStateRepo(t *testing.T) (*stateRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock := newTestDB(t)
	db := newDBFromSQL(sqlDB)
	repo := NewStateRepository(db, NewUserRepository(db, logger.Nop()), testNamespace, logger.Nop())
	return repo.(*stateRepository), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func expectFindUser(mock sqlmock.Sqlmock, username string, userID int64) {
	mock.ExpectQuery("SELECT userid, username").
		WithArgs(username).
		WillReturnRows(sqlmock.NewRows([]string{"userid", "username"}).AddRow(userID, username))
}

// expectAcquire registers the statements AcquireAndLoadState issues for an
// existing user with the given stored rows.
func expectAcquire(mock sqlmock.Sqlmock, username string, userID int64, timestamps *sqlmock.Rows, tokens *sqlmock.Rows) {
	expectFindUser(mock, username, userID)
	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs(LockClass(testNamespace), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT success, timestamp").
		WithArgs(userID).
		WillReturnRows(timestamps)
	mock.ExpectQuery("SELECT token").
		WithArgs(userID).
		WillReturnRows(tokens)
}

func timestampRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"success", "timestamp"})
}

func tokenRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"token"})
}
