// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package backlight

import (
	"errors"
	"testing"
)

type fakeOps struct {
	updates []Props
	err     error
}

func (f *fakeOps) UpdateStatus(d *Device) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, d.Props)
	return nil
}

func (f *fakeOps) GetBrightness(d *Device) (int, error) {
	return d.Props.Brightness, nil
}

func TestNewNilOps(t *testing.T) {
	if _, err := New("x", Props{}, nil); err == nil {
		t.Fatal("New() accepted nil ops")
	}
}

func TestEnableDisable(t *testing.T) {
	ops := &fakeOps{}
	d, err := New("panel", Props{Brightness: 200, MaxBrightness: 255, Power: PowerOff}, ops)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Enable(); err != nil {
		t.Fatalf("Enable() failed: %v", err)
	}
	if err := d.Disable(); err != nil {
		t.Fatalf("Disable() failed: %v", err)
	}
	if len(ops.updates) != 2 {
		t.Fatalf("got %d updates", len(ops.updates))
	}
	if ops.updates[0].Power != PowerOn || ops.updates[1].Power != PowerOff {
		t.Errorf("power transitions %v, %v", ops.updates[0].Power, ops.updates[1].Power)
	}
}

func TestSetBrightnessClamps(t *testing.T) {
	ops := &fakeOps{}
	d, err := New("panel", Props{MaxBrightness: 255}, ops)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		req, want int
	}{
		{req: 100, want: 100},
		{req: 4000, want: 255},
		{req: -3, want: 0},
	} {
		if err := d.SetBrightness(tc.req); err != nil {
			t.Fatalf("SetBrightness(%d) failed: %v", tc.req, err)
		}
		if d.Props.Brightness != tc.want {
			t.Errorf("SetBrightness(%d) left %d, want %d", tc.req, d.Props.Brightness, tc.want)
		}
	}
}

func TestUpdateFailurePropagates(t *testing.T) {
	boom := errors.New("link down")
	d, err := New("panel", Props{MaxBrightness: 255}, &fakeOps{err: boom})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Enable(); !errors.Is(err, boom) {
		t.Errorf("Enable() = %v, want %v", err, boom)
	}
}
