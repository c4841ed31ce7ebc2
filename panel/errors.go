// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import "errors"

// Fault classes surfaced by the lifecycle. Every error returned by this
// package wraps exactly one of these; match with errors.Is.
var (
	// ErrRegulator is a power rail load-set or bulk enable/disable failure.
	ErrRegulator = errors.New("panel: regulator fault")
	// ErrPinctrl is a named pin state lookup or select failure.
	ErrPinctrl = errors.New("panel: pinctrl fault")
	// ErrChannel is a command channel write/read failure, including a
	// malformed command table.
	ErrChannel = errors.New("panel: command channel fault")
	// ErrResource means a required leaf resource was missing at
	// construction time.
	ErrResource = errors.New("panel: missing resource")
	// ErrState is a lifecycle call made out of order.
	ErrState = errors.New("panel: lifecycle order fault")
)
