// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements otpctl, the operator command line.
//
// Commands either talk to a running server through the HTTP adapter
// (verify, remote removal) or open the store directly (migrate, offline
// removal). Admin tokens are minted locally with the configured sign key.
package client
