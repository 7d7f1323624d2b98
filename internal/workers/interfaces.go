// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must return promptly; long-lived work runs in goroutines that stop
// when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusSetter receives the probe result.
type StatusSetter interface {
	SetServing(serving bool)
}
