// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import (
	"encoding/binary"
	"fmt"

	"github.com/displaylab/dsipanel/backlight"
	"github.com/displaylab/dsipanel/dcs"
)

// backlightOps adapts a Dev to the backlight callback interface.
type backlightOps Dev

// UpdateStatus translates the backlight request into a display brightness
// write. Unless the backlight is fully unblanked and the owning frame
// buffer is not blanked, the effective brightness is forced to zero.
func (o *backlightOps) UpdateStatus(b *backlight.Device) error {
	d := (*Dev)(o)

	v := uint16(b.Props.Brightness)
	if b.Props.Power != backlight.PowerOn || b.Props.CoreBlank {
		v = 0
	}
	return d.setBrightness(v)
}

// GetBrightness reads the display brightness back from the panel and masks
// it to its low byte.
func (o *backlightOps) GetBrightness(b *backlight.Device) (int, error) {
	d := (*Dev)(o)

	var buf [2]byte
	if _, err := d.link.Read(dcs.GetDisplayBrightness, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: read 0x%02x: %v", ErrChannel, dcs.GetDisplayBrightness, err)
	}
	return int(binary.LittleEndian.Uint16(buf[:])) & 0xff, nil
}

var _ backlight.Ops = &backlightOps{}
