// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-otp-keeper/internal/adapter"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/mock"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeBackend struct {
	migrated   bool
	removed    []string
	removeErr  error
	closed     bool
	migrateErr error
}

func (f *fakeBackend) Migrate(context.Context) error {
	f.migrated = true
	return f.migrateErr
}

func (f *fakeBackend) RemoveUserState(_ context.Context, username string) error {
	f.removed = append(f.removed, username)
	return f.removeErr
}

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

type testApp struct {
	app     *App
	adapter *mock.MockServerAdapter
	admin   *mock.MockAdminService
	backend *fakeBackend
	opened  int
	out     *bytes.Buffer
}

func newTestApp(t *testing.T, ctrl *gomock.Controller) *testApp {
	t.Helper()
	ta := &testApp{
		adapter: mock.NewMockServerAdapter(ctrl),
		admin:   mock.NewMockAdminService(ctrl),
		backend: &fakeBackend{},
		out:     &bytes.Buffer{},
	}
	opener := func(context.Context) (Backend, error) {
		ta.opened++
		return ta.backend, nil
	}
	ta.app = NewApp(ta.adapter, ta.admin, opener, ta.out, logger.Nop())
	return ta
}

func TestApp_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)

	assert.ErrorIs(t, ta.app.Run(context.Background(), nil), ErrUnknownCommand)
	assert.ErrorIs(t, ta.app.Run(context.Background(), []string{"frobnicate"}), ErrUnknownCommand)
	assert.Contains(t, ta.out.String(), "usage: otpctl")
}

func TestApp_Migrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)

	require.NoError(t, ta.app.Run(context.Background(), []string{"migrate"}))

	assert.True(t, ta.backend.migrated)
	assert.True(t, ta.backend.closed)
	assert.Contains(t, ta.out.String(), "migrations applied")
}

func TestApp_Migrate_OpenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)
	ta.app.open = func(context.Context) (Backend, error) {
		return nil, store.ErrStoreUnavailable
	}

	err := ta.app.Run(context.Background(), []string{"migrate"})

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestApp_RemoveUser_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)

	require.NoError(t, ta.app.Run(context.Background(), []string{"remove-user", "-u", "alice"}))

	assert.Equal(t, []string{"alice"}, ta.backend.removed)
	assert.True(t, ta.backend.closed)
}

func TestApp_RemoveUser_OfflineNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)
	ta.backend.removeErr = store.ErrUserNotFound

	err := ta.app.Run(context.Background(), []string{"remove-user", "-u", "ghost"})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, ta.backend.closed)
}

func TestApp_RemoveUser_Remote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		ta.admin.EXPECT().CreateToken(ctx, "ops").Return(models.AdminToken{SignedString: "signed"}, nil),
		ta.adapter.EXPECT().SetToken("signed"),
		ta.adapter.EXPECT().RemoveUser(ctx, "alice").Return(nil),
	)

	require.NoError(t, ta.app.Run(ctx, []string{"remove-user", "-u", "alice", "-remote", "-operator", "ops"}))
	assert.Zero(t, ta.opened, "remote removal must not open the store")
}

func TestApp_RemoveUser_MissingUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)

	assert.ErrorIs(t, ta.app.Run(context.Background(), []string{"remove-user"}), ErrMissingFlag)
}

func TestApp_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)
	ctx := context.Background()

	ta.adapter.EXPECT().
		Verify(ctx, models.VerifyRequest{Username: "alice", Code: "123456", Pincode: "0000"}).
		Return(models.VerifyResult{Accepted: true}, nil)

	require.NoError(t, ta.app.Run(ctx, []string{"verify", "-u", "alice", "-code", " 123456 ", "-pin", "0000"}))
	assert.Equal(t, "accepted\n", ta.out.String())
}

func TestApp_Verify_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)
	ctx := context.Background()

	ta.adapter.EXPECT().Verify(ctx, gomock.Any()).Return(models.VerifyResult{}, adapter.ErrRejected)

	err := ta.app.Run(ctx, []string{"verify", "-u", "alice", "-code", "000000"})

	assert.ErrorIs(t, err, adapter.ErrRejected)
	assert.Equal(t, "rejected\n", ta.out.String())
}

func TestApp_Verify_MissingFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)

	assert.ErrorIs(t, ta.app.Run(context.Background(), []string{"verify", "-u", "alice"}), ErrMissingFlag)
}

func TestApp_Token(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)
	ctx := context.Background()

	ta.admin.EXPECT().CreateToken(ctx, "otpctl").Return(models.AdminToken{SignedString: "signed"}, nil)

	require.NoError(t, ta.app.Run(ctx, []string{"token"}))
	assert.Equal(t, "signed\n", ta.out.String())
}

func TestApp_Token_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ta := newTestApp(t, ctrl)
	ctx := context.Background()
	tokenErr := errors.New("admin API is disabled")

	ta.admin.EXPECT().CreateToken(ctx, "otpctl").Return(models.AdminToken{}, tokenErr)

	assert.ErrorIs(t, ta.app.Run(ctx, []string{"token"}), tokenErr)
}
