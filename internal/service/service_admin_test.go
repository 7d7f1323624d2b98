// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/mock"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAdminSvc(t *testing.T, ctrl *gomock.Controller, signKey string) (AdminService, *mock.MockStateRepository) {
	t.Helper()
	states := mock.NewMockStateRepository(ctrl)
	cfg := config.App{
		AdminTokenSignKey:  signKey,
		AdminTokenIssuer:   "go-otp-keeper",
		AdminTokenDuration: time.Hour,
	}
	return NewAdminService(states, cfg, logger.Nop()), states
}

func TestAdminService_RemoveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, states := newTestAdminSvc(t, ctrl, "key")
	ctx := context.WithValue(context.Background(), utils.OperatorCtxKey, "ops")

	states.EXPECT().RemoveUserState(ctx, "alice").Return(nil)

	require.NoError(t, svc.RemoveUser(ctx, "alice"))
}

func TestAdminService_RemoveUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, states := newTestAdminSvc(t, ctrl, "key")
	ctx := context.Background()

	states.EXPECT().RemoveUserState(ctx, "ghost").Return(store.ErrUserNotFound)

	err := svc.RemoveUser(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAdminService_RemoveUser_EmptyUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAdminSvc(t, ctrl, "key")

	assert.ErrorIs(t, svc.RemoveUser(context.Background(), ""), ErrInvalidDataProvided)
}

func TestAdminService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAdminSvc(t, ctrl, "key")
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "ops")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "ops", parsed.Operator)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAdminService_CreateToken_EmptyOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAdminSvc(t, ctrl, "key")

	_, err := svc.CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAdminService_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAdminSvc(t, ctrl, "")
	ctx := context.Background()

	_, err := svc.CreateToken(ctx, "ops")
	assert.ErrorIs(t, err, ErrAdminDisabled)

	_, err = svc.ParseToken(ctx, "anything")
	assert.ErrorIs(t, err, ErrAdminDisabled)
}
