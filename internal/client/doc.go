// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the kiosk shell runtime.
//
// It resolves runtime configuration, writes the startup log, and wires the
// reachability prober, the navigation gate and the command bridge into a
// single assembly the host windowing layer drives.
package client
