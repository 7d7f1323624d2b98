// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler creates a Handler with a nop logger and no services.
func newTestHandler(timeout time.Duration) *Handler {
	return &Handler{
		traceIDs:       utils.NewTraceIDGenerator(),
		requestTimeout: timeout,
		logger:         logger.Nop(),
	}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id"},
		{name: "no trace ID in request, UUID generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(0)
			var ctxLogger *logger.Logger

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxLogger = logger.FromRequest(r)
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", got)
			}
			assert.NotNil(t, ctxLogger)
			assert.Equal(t, http.StatusTeapot, rr.Code)
		})
	}
}

func TestWithTimeout(t *testing.T) {
	t.Run("deadline is set", func(t *testing.T) {
		h := newTestHandler(time.Minute)
		var hasDeadline bool

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		})
		h.withTimeout(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, hasDeadline)
	})

	t.Run("zero disables the deadline", func(t *testing.T) {
		h := newTestHandler(0)
		hasDeadline := true

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		})
		h.withTimeout(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, hasDeadline)
	})
}

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200 on write", func(t *testing.T) {
		rr := httptest.NewRecorder()
		lw := &responseWriter{ResponseWriter: rr}

		n, err := lw.Write([]byte("hello"))

		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, http.StatusOK, lw.status)
		assert.Equal(t, 5, lw.size)
	})

	t.Run("second WriteHeader is ignored", func(t *testing.T) {
		rr := httptest.NewRecorder()
		lw := &responseWriter{ResponseWriter: rr}

		lw.WriteHeader(http.StatusForbidden)
		lw.WriteHeader(http.StatusOK)

		assert.Equal(t, http.StatusForbidden, lw.status)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestWithLogging_PassesThrough(t *testing.T) {
	h := newTestHandler(0)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}
