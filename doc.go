// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dsipanel is a container for MIPI-DSI panel lifecycle drivers.
//
// The panel package implements the lifecycle state machine shared by all
// panel variants; per-panel packages such as sw49410 provide the descriptor
// data (timings, power rails, init command tables) that parameterize it.
package dsipanel
