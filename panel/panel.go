// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package panel implements the lifecycle state machine of a command-mode
// MIPI-DSI panel: power rail and reset sequencing, ordered transmission of
// the vendor initialization tables, sleep-mode transitions and brightness
// control.
//
// The package is data driven. One Dev, parameterized by a Desc, serves any
// panel variant; the Desc carries the timings, rails and command tables.
// All operations are synchronous and blocking, including settle delays.
// A Dev performs no locking and no retries; the caller serializes lifecycle
// calls and decides what to do with a failure.
package panel

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"

	"github.com/displaylab/dsipanel/backlight"
	"github.com/displaylab/dsipanel/dcs"
)

// TeardownPolicy selects what Unprepare and Disable actually do.
type TeardownPolicy int

const (
	// SkipTeardown makes Unprepare and Disable unconditional no-ops.
	// This is the deployed behavior: after a full teardown the panel does
	// not light up again on resume with current hardware, so teardown is
	// skipped until that regression is understood.
	SkipTeardown TeardownPolicy = iota
	// FullTeardown performs the documented display-off, sleep-in and
	// power-off sequence.
	FullTeardown
)

// DSCPolicy selects what Enable does with the picture parameter set of a
// compressed-stream panel.
type DSCPolicy int

const (
	// DSCLogOnly packs the picture parameter set and logs it without
	// transmitting, matching the deployed behavior.
	DSCLogOnly DSCPolicy = iota
	// DSCTransmit sends the picture parameter set to the panel.
	DSCTransmit
)

// Settle delays mandated by the DCS specification, applied around the
// display-on/off and sleep transitions.
const (
	displayOnDelay  = 5 * time.Millisecond
	displayOnSettle = 120 * time.Millisecond
	displayOffDelay = 120 * time.Millisecond
	sleepInDelay    = 100 * time.Millisecond
)

const defaultMaxBrightness = 255

// Opts holds the construction options of a Dev.
type Opts struct {
	Teardown TeardownPolicy
	DSC      DSCPolicy
	// Logger receives step-level traces. nil disables logging.
	Logger *zerolog.Logger
}

// Dev is an open handle to one panel.
//
// A Dev is not concurrency safe: the host display stack is expected to
// issue at most one lifecycle call at a time.
type Dev struct {
	link  dcs.Conn
	desc  *Desc
	reset gpio.PinOut
	rails []Regulator
	pins  Pinctrl
	bl    *backlight.Device

	log       zerolog.Logger
	teardown  TeardownPolicy
	dscPolicy DSCPolicy

	// sleep is swapped out by tests to observe settle delays.
	sleep func(time.Duration)

	prepared     bool
	enabled      bool
	firstBringUp bool
}

// New returns a Dev driving the panel described by desc through the given
// leaf resources. rails must carry one regulator per desc.Rails entry, in
// the same order.
func New(link dcs.Conn, reset gpio.PinOut, rails []Regulator, pins Pinctrl, desc *Desc, opts *Opts) (*Dev, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: descriptor", ErrResource)
	}
	if link == nil {
		return nil, fmt.Errorf("%w: command channel", ErrResource)
	}
	if reset == nil {
		return nil, fmt.Errorf("%w: reset line", ErrResource)
	}
	if pins == nil {
		return nil, fmt.Errorf("%w: pinctrl", ErrResource)
	}
	if len(rails) != len(desc.Rails) {
		return nil, fmt.Errorf("%w: %d regulators for %d rails", ErrResource, len(rails), len(desc.Rails))
	}
	for i, r := range rails {
		if r == nil {
			return nil, fmt.Errorf("%w: regulator %s", ErrResource, desc.Rails[i].Name)
		}
	}

	d := &Dev{
		link:         link,
		desc:         desc,
		reset:        reset,
		rails:        rails,
		pins:         pins,
		log:          zerolog.Nop(),
		sleep:        time.Sleep,
		firstBringUp: true,
	}
	if opts != nil {
		d.teardown = opts.Teardown
		d.dscPolicy = opts.DSC
		if opts.Logger != nil {
			d.log = *opts.Logger
		}
	}

	bl, err := backlight.New(desc.Name, backlight.Props{
		Brightness:    defaultMaxBrightness,
		MaxBrightness: defaultMaxBrightness,
		Power:         backlight.PowerOn,
	}, (*backlightOps)(d))
	if err != nil {
		return nil, err
	}
	d.bl = bl

	return d, nil
}

// Prepare powers the panel and runs the vendor initialization protocol:
// one-time initial reset, power-on, setup writes, the init command batch,
// sleep exit, the wake command batch and display-on, each followed by its
// mandated settle delay. Calling Prepare on a prepared panel is a no-op.
//
// On failure the panel is left unprepared with the reset line deasserted;
// nothing is retried.
func (d *Dev) Prepare() error {
	if d.prepared {
		return nil
	}
	if d.firstBringUp {
		d.firstBringUp = false
		if err := d.resetAtBeginning(); err != nil {
			return err
		}
	}

	d.sleep(d.desc.InitDelay)

	if err := d.powerOn(); err != nil {
		// Leave the panel out of reset so the next attempt starts from a
		// known line state.
		_ = d.reset.Out(gpio.High)
		return err
	}

	if err := d.writeDCS(dcs.SetTearOn, byte(dcs.TearModeVBlank)); err != nil {
		return err
	}
	if err := d.setPageAddress(0, d.desc.Mode.VDisplay-1); err != nil {
		return err
	}
	if err := d.setBrightness(defaultMaxBrightness); err != nil {
		return err
	}

	if err := d.transmit(d.desc.InitCmds); err != nil {
		return err
	}

	if err := d.writeDCS(dcs.ExitSleepMode); err != nil {
		return err
	}
	d.sleep(d.desc.SleepExitDelay)

	if err := d.transmit(d.desc.WakeCmds); err != nil {
		return err
	}

	if err := d.writeDCS(dcs.CompressionMode); err != nil {
		return err
	}
	// Black frame setting.
	if err := d.writeDCS(0xbd, 0x01, 0x05); err != nil {
		return err
	}
	if err := d.writeDCS(dcs.SetDisplayOn); err != nil {
		return err
	}
	d.sleep(displayOnDelay)
	d.sleep(displayOnSettle)

	d.prepared = true
	d.log.Debug().Str("panel", d.desc.Name).Msg("prepared")
	return nil
}

// Unprepare reverses Prepare: display-off, sleep-in, power-off, with the
// DCS-mandated settle delays in between. Teardown is best-effort; every
// step runs and the first failure is reported.
//
// Under SkipTeardown (the default) Unprepare returns success without
// touching the hardware; see TeardownPolicy.
func (d *Dev) Unprepare() error {
	if d.teardown == SkipTeardown {
		d.log.Debug().Str("panel", d.desc.Name).Msg("teardown skipped by policy")
		return nil
	}
	if !d.prepared {
		return nil
	}

	var first error
	note := func(err error) {
		if err == nil {
			return
		}
		if first == nil {
			first = err
		}
		d.log.Warn().Err(err).Msg("teardown step failed")
	}

	note(d.writeDCS(dcs.SetDisplayOff))
	d.sleep(displayOffDelay)
	note(d.writeDCS(dcs.EnterSleepMode))
	d.sleep(sleepInDelay)
	note(d.powerOff())

	// An unpowered panel cannot stay enabled.
	d.enabled = false
	d.prepared = false
	return first
}

// Enable attaches the brightness path and, for a compressed-stream panel,
// produces the picture parameter set per the DSC policy. The panel must be
// prepared first. Calling Enable on an enabled panel is a no-op.
func (d *Dev) Enable() error {
	if d.enabled {
		return nil
	}
	if !d.prepared {
		return fmt.Errorf("%w: enable before prepare", ErrState)
	}

	if err := d.bl.Enable(); err != nil {
		return err
	}

	if d.desc.DSC != nil {
		pps := d.desc.DSC.PPS()
		if d.dscPolicy == DSCTransmit {
			if err := d.link.Write(dcs.PictureParameterSet, pps[:]); err != nil {
				return fmt.Errorf("%w: picture parameter set: %v", ErrChannel, err)
			}
		} else {
			d.log.Debug().Hex("pps", pps[:]).Msg("picture parameter set (not transmitted)")
		}
	}

	d.enabled = true
	return nil
}

// Disable detaches the brightness path and clears the enabled state.
//
// Under SkipTeardown (the default) Disable returns success without touching
// the hardware; see TeardownPolicy.
func (d *Dev) Disable() error {
	if d.teardown == SkipTeardown {
		return nil
	}
	if !d.enabled {
		return nil
	}
	err := d.bl.Disable()
	d.enabled = false
	return err
}

// Prepared reports whether the panel completed Prepare.
func (d *Dev) Prepared() bool {
	return d.prepared
}

// Enabled reports whether the panel completed Enable.
func (d *Dev) Enabled() bool {
	return d.enabled
}

// Modes returns the single fixed mode this panel supports.
func (d *Dev) Modes() []DisplayMode {
	return []DisplayMode{d.desc.Mode}
}

// Size returns the physical active area in millimeters.
func (d *Dev) Size() (widthMM, heightMM int) {
	return d.desc.WidthMM, d.desc.HeightMM
}

// Backlight returns the backlight device registered for this panel.
func (d *Dev) Backlight() *backlight.Device {
	return d.bl
}

// Halt disables and unprepares the panel, honoring the teardown policy.
func (d *Dev) Halt() error {
	if err := d.Disable(); err != nil {
		return err
	}
	return d.Unprepare()
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("panel.Dev{%s, %dx%d}", d.desc.Name, d.desc.Mode.HDisplay, d.desc.Mode.VDisplay)
}

// writeDCS issues a single DCS write and classifies a failure as a channel
// fault.
func (d *Dev) writeDCS(addr byte, payload ...byte) error {
	if err := d.link.Write(addr, payload); err != nil {
		return fmt.Errorf("%w: write 0x%02x: %v", ErrChannel, addr, err)
	}
	return nil
}

// setPageAddress programs the vertical write window, inclusive of end.
func (d *Dev) setPageAddress(start, end int) error {
	return d.writeDCS(dcs.SetPageAddress, byte(start>>8), byte(start), byte(end>>8), byte(end))
}

// setBrightness issues the 16-bit little-endian display brightness write.
func (d *Dev) setBrightness(v uint16) error {
	return d.writeDCS(dcs.SetDisplayBrightness, byte(v), byte(v>>8))
}

var _ conn.Resource = &Dev{}
