// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the OTP service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as admin authentication, request tracing,
// access logging and per-request deadlines are handled in this package before
// requests are delegated to the service layer.
package http
