// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// Backend is the direct store access the offline commands need.
type Backend interface {
	Migrate(ctx context.Context) error
	RemoveUserState(ctx context.Context, username string) error
	Close() error
}

// BackendOpener connects to the store on demand, so that commands which
// only talk to the server never open a database connection.
type BackendOpener func(ctx context.Context) (Backend, error)
