// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withTimeout)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/otp/verify", h.verify)
	})

	// operator routes
	router.Group(func(r chi.Router) {
		r.Use(h.adminAuth)
		r.Delete("/api/admin/users/{username}", h.removeUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
