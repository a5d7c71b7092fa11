// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the reader-sync client process.
//
// It wires the settings directory, the local store, the remote backends and
// the client services into a single process lifecycle, and turns OS signals
// into lifecycle events.
package client
