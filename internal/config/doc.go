// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the OTP keeper binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (only fills variables that are not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Zero fields left after merging are filled from [Defaults]. The main entry
// points are [GetStructuredConfig] for the server and [LoadStructuredConfig]
// for tools that parse their own flags.
package config
