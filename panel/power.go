// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// setLoads programs every rail's load hint, enable-side or disable-side,
// in descriptor order.
func (d *Dev) setLoads(enable bool) error {
	for i, r := range d.rails {
		load := d.desc.Rails[i].DisableLoad
		if enable {
			load = d.desc.Rails[i].EnableLoad
		}
		if err := r.SetLoad(load); err != nil {
			return fmt.Errorf("%w: set load on %s: %v", ErrRegulator, d.desc.Rails[i].Name, err)
		}
	}
	return nil
}

// bulkEnable enables every rail in descriptor order, stopping at the first
// failure. Rails already enabled stay enabled; there is no rollback.
func (d *Dev) bulkEnable() error {
	for i, r := range d.rails {
		if err := r.Enable(); err != nil {
			return fmt.Errorf("%w: enable %s: %v", ErrRegulator, d.desc.Rails[i].Name, err)
		}
	}
	return nil
}

// bulkDisable attempts to disable every rail and reports the first failure.
func (d *Dev) bulkDisable() error {
	var first error
	for i, r := range d.rails {
		if err := r.Disable(); err != nil && first == nil {
			first = fmt.Errorf("%w: disable %s: %v", ErrRegulator, d.desc.Rails[i].Name, err)
		}
	}
	return first
}

// resetPulse drives the three-phase reset sequence: out of reset, held in
// reset, out again, sleeping the pulse's hold time after each transition.
func (d *Dev) resetPulse(p ResetPulse) error {
	eh := errorHandler{d: d}

	eh.rstOut(gpio.High)
	eh.sleep(p.OutOfReset)
	eh.rstOut(gpio.Low)
	eh.sleep(p.InReset)
	eh.rstOut(gpio.High)
	eh.sleep(p.Settle)

	return eh.err
}

// resetAtBeginning pre-conditions the shared rails by cycling them once
// with their load hints programmed, then pulses the initial reset sequence.
// It runs exactly once per panel lifetime. The sequence aborts at the first
// failure, leaving the rails wherever the failing call left them.
func (d *Dev) resetAtBeginning() error {
	d.log.Debug().Str("panel", d.desc.Name).Msg("one-time rail cycle and reset")

	if err := d.setLoads(true); err != nil {
		return err
	}
	if err := d.bulkEnable(); err != nil {
		return err
	}
	if err := d.setLoads(false); err != nil {
		return err
	}
	if err := d.bulkDisable(); err != nil {
		return err
	}
	return d.resetPulse(d.desc.InitialReset)
}

// powerOn brings the rails up, selects the active pin state and pulses the
// power-on reset sequence. On failure the panel must be treated as
// unpowered; no commands may be transmitted.
func (d *Dev) powerOn() error {
	d.log.Debug().Str("panel", d.desc.Name).Msg("powering on")

	if err := d.setLoads(true); err != nil {
		return err
	}
	if err := d.bulkEnable(); err != nil {
		return err
	}
	if err := d.pins.SelectState(StateActive); err != nil {
		return fmt.Errorf("%w: select %q: %v", ErrPinctrl, StateActive, err)
	}
	return d.resetPulse(d.desc.PowerOnReset)
}

// powerOff is best-effort teardown: every step runs even after a failure
// and the first error encountered is reported. Safe to call on a panel that
// never fully powered on.
func (d *Dev) powerOff() error {
	d.log.Debug().Str("panel", d.desc.Name).Msg("powering off")

	var first error
	note := func(err error) {
		if err == nil {
			return
		}
		if first == nil {
			first = err
		}
		d.log.Warn().Err(err).Msg("power-off step failed")
	}

	note(d.reset.Out(gpio.Low))
	if err := d.pins.SelectState(StateSuspend); err != nil {
		note(fmt.Errorf("%w: select %q: %v", ErrPinctrl, StateSuspend, err))
	}
	note(d.setLoads(false))
	note(d.bulkDisable())
	return first
}
