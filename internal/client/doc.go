// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows, the application services, and the
// background backup worker into a single process lifecycle.
package client
