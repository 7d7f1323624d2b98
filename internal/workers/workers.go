// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the server. status may be nil
// when no gRPC health service is exposed.
func NewWorkers(db Pinger, status StatusSetter, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewHealthProbe(db, status, cfg.HealthCheckInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// HealthProbe pings the store on a fixed interval and publishes the result.
type HealthProbe struct {
	db       Pinger
	status   StatusSetter
	interval time.Duration
	logger   *logger.Logger
}

func NewHealthProbe(db Pinger, status StatusSetter, interval time.Duration, logger *logger.Logger) *HealthProbe {
	return &HealthProbe{
		db:       db,
		status:   status,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once synchronously, then keeps probing in the background until
// ctx is done. A non-positive interval leaves only the first probe.
func (p *HealthProbe) Run(ctx context.Context) {
	serving := p.probe(ctx)

	if p.interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				serving = p.probeChanged(ctx, serving)
			}
		}
	}()
}

func (p *HealthProbe) probeChanged(ctx context.Context, was bool) bool {
	now := p.probe(ctx)
	if now != was {
		p.logger.Info().Bool("serving", now).Msg("store health changed")
	}
	return now
}

func (p *HealthProbe) probe(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, p.pingTimeout())
	defer cancel()

	err := p.db.Ping(pingCtx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("store ping failed")
	}

	if p.status != nil {
		p.status.SetServing(err == nil)
	}
	return err == nil
}

func (p *HealthProbe) pingTimeout() time.Duration {
	if p.interval <= 0 || p.interval > 5*time.Second {
		return 5 * time.Second
	}
	return p.interval
}
