// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is matched in order. A rejection wraps its cause, so
// ErrAuthRejected must precede the store errors it may carry.
var errorStatuses = []errorStatus{
	{target: ErrInvalidJSON, status: http.StatusBadRequest, message: ErrInvalidJSON.Error()},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, message: "invalid data provided"},
	{target: service.ErrAuthRejected, status: http.StatusForbidden, message: "authentication rejected"},
	{target: service.ErrAdminDisabled, status: http.StatusNotFound, message: http.StatusText(http.StatusNotFound)},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: http.StatusText(http.StatusUnauthorized)},
	{target: store.ErrStoreUnavailable, status: http.StatusServiceUnavailable, message: "storage unavailable"},
	{target: context.DeadlineExceeded, status: http.StatusServiceUnavailable, message: "request timed out"},
	{target: store.ErrUserNotFound, status: http.StatusNotFound, message: "user not found"},
	{target: store.ErrInvalidUsername, status: http.StatusBadRequest, message: "invalid username"},
}

func statusFromError(err error) (int, string) {
	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.target) {
			return candidate.status, candidate.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError maps err to a status and a fixed message. The error text itself
// never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request refused")
	}

	utils.WriteError(w, message, status)
}
