// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import (
	"time"

	"periph.io/x/conn/v3/physic"

	"github.com/displaylab/dsipanel/dsc"
)

// DisplayMode is a fixed video timing advertised to the host display stack.
type DisplayMode struct {
	// Clock is the pixel clock in kHz.
	Clock int

	HDisplay   int
	HSyncStart int
	HSyncEnd   int
	HTotal     int

	VDisplay   int
	VSyncStart int
	VSyncEnd   int
	VTotal     int
}

// VRefresh returns the vertical refresh rate in Hz, rounded to nearest.
func (m DisplayMode) VRefresh() int {
	total := m.HTotal * m.VTotal
	if total == 0 {
		return 0
	}
	return (m.Clock*1000 + total/2) / total
}

// PixelFormat is the wire format of pixel data on the DSI link.
type PixelFormat int

// Supported DSI pixel formats.
const (
	RGB888 PixelFormat = iota
	RGB666
	RGB666Packed
	RGB565
)

// Rail names a power supply and the electrical load hints to program before
// enabling or disabling it.
type Rail struct {
	Name        string
	EnableLoad  physic.ElectricCurrent
	DisableLoad physic.ElectricCurrent
}

// ResetPulse is the three-phase reset line sequence a panel requires: out
// of reset, held in reset, then out again, with a hold time after each
// transition.
type ResetPulse struct {
	OutOfReset time.Duration
	InReset    time.Duration
	Settle     time.Duration
}

// Command is one panel command: {delay in ms, DCS address, payload...}.
// A length of 2 is an address-only write; the empty Command terminates a
// Batch. The delay is applied after the write completes.
type Command []byte

// Batch is an ordered command sequence ending in the empty sentinel.
// The order encodes electrical and initialization dependencies between
// registers and must never be rearranged.
type Batch []Command

// Desc describes one panel variant. It is immutable; a Dev holds it for its
// lifetime and never writes to it.
type Desc struct {
	Name string

	Mode     DisplayMode
	WidthMM  int
	HeightMM int

	Lanes  int
	Format PixelFormat

	Rails []Rail

	// InitialReset is pulsed exactly once per panel lifetime, before the
	// first power-on. PowerOnReset is pulsed on every power-on.
	InitialReset ResetPulse
	PowerOnReset ResetPulse

	// InitDelay is the settle time before power-on; SleepExitDelay is the
	// settle time after the exit-sleep command.
	InitDelay      time.Duration
	SleepExitDelay time.Duration

	// InitCmds is transmitted before exiting sleep, WakeCmds after the
	// sleep-exit settle.
	InitCmds Batch
	WakeCmds Batch

	// DSC, when set, carries the compressed-stream parameters whose
	// picture parameter set is produced during Enable.
	DSC *dsc.Config
}
