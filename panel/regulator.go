// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import "periph.io/x/conn/v3/physic"

// Regulator is a single controllable power rail supply.
//
// SetLoad programs the expected electrical load before the matching Enable
// or Disable call; some shared regulators pick their operating mode from it.
type Regulator interface {
	SetLoad(load physic.ElectricCurrent) error
	Enable() error
	Disable() error
}

// Pinctrl applies named pin multiplexing states atomically.
type Pinctrl interface {
	SelectState(name string) error
}

// Pin state names the lifecycle selects.
const (
	StateActive  = "active"
	StateSuspend = "suspend"
)
