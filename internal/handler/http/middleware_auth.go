// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/utils"
)

// adminAuth enforces an admin bearer token.
//
// On success the token's operator is stored in the request context under
// [utils.OperatorCtxKey]. Requests are rejected with:
//   - 401 when the header is missing or malformed, or the token is invalid;
//   - 404 when the admin API is disabled, hiding its existence.
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AdminService.ParseToken(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrAdminDisabled) {
				log.Err(err).Msg("admin token rejected")
			}
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.OperatorCtxKey, token.Operator)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
