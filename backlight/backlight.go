// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package backlight models a backlight device the way a host display stack
// sees one: a set of power and brightness properties plus two callbacks
// into the driver that owns the light source.
package backlight

import "errors"

// Power is the requested power state of the backlight.
type Power int

// Power states, brightest first. Only PowerOn means fully unblanked;
// everything else is treated as blanked by drivers.
const (
	PowerOn Power = iota
	PowerStandby
	PowerSuspend
	PowerOff
)

// Props are the externally visible properties of a backlight device.
type Props struct {
	Brightness    int
	MaxBrightness int
	Power         Power
	// CoreBlank is set while the owning frame buffer is blanked; drivers
	// must treat it like a power-off request regardless of Power.
	CoreBlank bool
}

// Ops are the driver callbacks behind a Device.
type Ops interface {
	// UpdateStatus pushes the device's current properties to the hardware.
	UpdateStatus(d *Device) error
	// GetBrightness reads the effective brightness back from the hardware.
	GetBrightness(d *Device) (int, error)
}

// Device is a registered backlight.
//
// Props may be mutated between calls; every mutation must be followed by
// UpdateStatus (the helpers below do that). Not concurrency safe.
type Device struct {
	name string
	ops  Ops

	Props Props
}

// New registers a backlight named name, driven by ops.
func New(name string, props Props, ops Ops) (*Device, error) {
	if ops == nil {
		return nil, errors.New("backlight: nil ops")
	}
	return &Device{name: name, ops: ops, Props: props}, nil
}

// Name returns the name the device was registered under.
func (d *Device) Name() string {
	return d.name
}

// Enable unblanks the backlight at its current brightness.
func (d *Device) Enable() error {
	d.Props.Power = PowerOn
	return d.ops.UpdateStatus(d)
}

// Disable blanks the backlight.
func (d *Device) Disable() error {
	d.Props.Power = PowerOff
	return d.ops.UpdateStatus(d)
}

// SetBrightness requests a new brightness, clamped to MaxBrightness.
func (d *Device) SetBrightness(v int) error {
	if v < 0 {
		v = 0
	}
	if v > d.Props.MaxBrightness {
		v = d.Props.MaxBrightness
	}
	d.Props.Brightness = v
	return d.ops.UpdateStatus(d)
}

// Brightness reads the effective brightness from the hardware.
func (d *Device) Brightness() (int, error) {
	return d.ops.GetBrightness(d)
}
