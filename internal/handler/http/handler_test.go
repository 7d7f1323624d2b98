// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/mock"
	"github.com/MKhiriev/go-otp-keeper/internal/otp"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRouter builds the full router on top of mocked services.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, *mock.MockVerifyService, *mock.MockAdminService) {
	t.Helper()
	verifySvc := mock.NewMockVerifyService(ctrl)
	adminSvc := mock.NewMockAdminService(ctrl)

	h := NewHandler(&service.Services{
		VerifyService: verifySvc,
		AdminService:  adminSvc,
	}, config.Server{RequestTimeout: time.Second}, logger.Nop())

	return h.Init(), verifySvc, adminSvc
}

func serve(router http.Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.Server{RequestTimeout: 3 * time.Second}, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.NotNil(t, h.traceIDs)
}

func TestVerify_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, verifySvc, _ := newTestRouter(t, ctrl)

	verifySvc.EXPECT().
		Verify(gomock.Any(), models.VerifyRequest{Username: "alice", Code: "123456", Pincode: "0000"}).
		DoAndReturn(func(ctx context.Context, _ models.VerifyRequest) (models.VerifyResult, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "request timeout must reach the service")
			return models.VerifyResult{Accepted: true}, nil
		})

	rr := serve(router, http.MethodPost, "/api/otp/verify", `{"username":"alice","code":"123456","pincode":"0000"}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"accepted":true}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestVerify_RejectionsAreIndistinguishable(t *testing.T) {
	causes := []error{
		fmt.Errorf("%w: %w", service.ErrAuthRejected, otp.ErrInvalidCode),
		fmt.Errorf("%w: %w", service.ErrAuthRejected, otp.ErrCodeReused),
		fmt.Errorf("%w: %w", service.ErrAuthRejected, otp.ErrRateLimited),
		fmt.Errorf("%w: %w", service.ErrAuthRejected, store.ErrUserNotFound),
		fmt.Errorf("%w: %w", service.ErrAuthRejected, store.ErrNoPincodeRecord),
		service.ErrAuthRejected,
	}

	var bodies []string
	for _, cause := range causes {
		ctrl := gomock.NewController(t)
		router, verifySvc, _ := newTestRouter(t, ctrl)
		verifySvc.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(models.VerifyResult{}, cause)

		rr := serve(router, http.MethodPost, "/api/otp/verify", `{"username":"alice","code":"1"}`, nil)

		assert.Equal(t, http.StatusForbidden, rr.Code, cause.Error())
		bodies = append(bodies, rr.Body.String())
		ctrl.Finish()
	}

	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
	assert.NotContains(t, bodies[0], "not found")
}

func TestVerify_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "store unavailable", err: fmt.Errorf("state update: %w", store.ErrStoreUnavailable), wantStatus: http.StatusServiceUnavailable},
		{name: "deadline", err: fmt.Errorf("%w: %w", store.ErrAcquiringLock, context.DeadlineExceeded), wantStatus: http.StatusServiceUnavailable},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			router, verifySvc, _ := newTestRouter(t, ctrl)

			verifySvc.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(models.VerifyResult{}, tt.err)

			rr := serve(router, http.MethodPost, "/api/otp/verify", `{"username":"alice","code":"123456"}`, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.NotContains(t, body.Error, "boom")
		})
	}
}

func TestVerify_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _, _ := newTestRouter(t, ctrl)

	rr := serve(router, http.MethodPost, "/api/otp/verify", `{"username":`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerify_BodyTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _, _ := newTestRouter(t, ctrl)

	body := `{"username":"` + strings.Repeat("a", maxVerifyBodyBytes) + `","code":"1"}`
	rr := serve(router, http.MethodPost, "/api/otp/verify", body, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutes_UnknownMethodAndPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _, _ := newTestRouter(t, ctrl)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/otp/verify", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/api/admin/users/alice", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/nope", "", nil).Code)
}

func TestRemoveUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _, adminSvc := newTestRouter(t, ctrl)

	adminSvc.EXPECT().ParseToken(gomock.Any(), "good").Return(models.AdminToken{Operator: "ops"}, nil)
	adminSvc.EXPECT().RemoveUser(gomock.Any(), "alice").DoAndReturn(func(ctx context.Context, _ string) error {
		operator, ok := utils.GetOperatorFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "ops", operator)
		return nil
	})

	rr := serve(router, http.MethodDelete, "/api/admin/users/alice", "", bearer("good"))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRemoveUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _, adminSvc := newTestRouter(t, ctrl)

	adminSvc.EXPECT().ParseToken(gomock.Any(), "good").Return(models.AdminToken{Operator: "ops"}, nil)
	adminSvc.EXPECT().RemoveUser(gomock.Any(), "ghost").Return(fmt.Errorf("user removal failed: %w", store.ErrUserNotFound))

	rr := serve(router, http.MethodDelete, "/api/admin/users/ghost", "", bearer("good"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     http.Header
		parseErr   error
		callsParse bool
		wantStatus int
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: http.Header{"Authorization": []string{"Basic abc"}}, wantStatus: http.StatusUnauthorized},
		{name: "missing token", header: http.Header{"Authorization": []string{"Bearer"}}, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: bearer("bad"), parseErr: service.ErrTokenIsExpiredOrInvalid, callsParse: true, wantStatus: http.StatusUnauthorized},
		{name: "admin disabled", header: bearer("bad"), parseErr: service.ErrAdminDisabled, callsParse: true, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			router, _, adminSvc := newTestRouter(t, ctrl)

			if tt.callsParse {
				adminSvc.EXPECT().ParseToken(gomock.Any(), "bad").Return(models.AdminToken{}, tt.parseErr)
			}

			rr := serve(router, http.MethodDelete, "/api/admin/users/alice", "", tt.header)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestStatusFromError_RejectionWinsOverCause(t *testing.T) {
	status, message := statusFromError(fmt.Errorf("%w: %w", service.ErrAuthRejected, store.ErrUserNotFound))

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "authentication rejected", message)
}
