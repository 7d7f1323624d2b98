// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		LockNamespace          string   `json:"lock_namespace"`
		RequirePincode         bool     `json:"require_pincode"`
		OTPDigits              int      `json:"otp_digits"`
		OTPPeriod              Duration `json:"otp_period"`
		DefaultWindowSize      int      `json:"default_window_size"`
		DefaultRateLimitCount  int      `json:"default_rate_limit_count"`
		DefaultRateLimitWindow Duration `json:"default_rate_limit_window"`
		AdminTokenSignKey      string   `json:"admin_token_sign_key"`
		AdminTokenIssuer       string   `json:"admin_token_issuer"`
		AdminTokenDuration     Duration `json:"admin_token_duration"`
		LogLevel               string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string   `json:"dsn"`
			MaxOpenConns   int      `json:"max_open_conns"`
			MaxIdleConns   int      `json:"max_idle_conns"`
			ConnectTimeout Duration `json:"connect_timeout"`
			RunMigrations  bool     `json:"run_migrations"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LockNamespace:          jsonCfg.App.LockNamespace,
			RequirePincode:         jsonCfg.App.RequirePincode,
			OTPDigits:              jsonCfg.App.OTPDigits,
			OTPPeriod:              time.Duration(jsonCfg.App.OTPPeriod),
			DefaultWindowSize:      jsonCfg.App.DefaultWindowSize,
			DefaultRateLimitCount:  jsonCfg.App.DefaultRateLimitCount,
			DefaultRateLimitWindow: time.Duration(jsonCfg.App.DefaultRateLimitWindow),
			AdminTokenSignKey:      jsonCfg.App.AdminTokenSignKey,
			AdminTokenIssuer:       jsonCfg.App.AdminTokenIssuer,
			AdminTokenDuration:     time.Duration(jsonCfg.App.AdminTokenDuration),
			LogLevel:               jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				MaxOpenConns:   jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:   jsonCfg.Storage.DB.MaxIdleConns,
				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
				RunMigrations:  jsonCfg.Storage.DB.RunMigrations,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
		},
		Adapter: Adapter{
			ServerURL:      jsonCfg.Adapter.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
