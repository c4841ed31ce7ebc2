// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sw49410

import (
	"testing"

	"periph.io/x/conn/v3/physic"

	"github.com/displaylab/dsipanel/panel"
)

func TestBatchesWellFormed(t *testing.T) {
	for _, tc := range []struct {
		name  string
		batch panel.Batch
	}{
		{"init", Rev1.InitCmds},
		{"wake", Rev1.WakeCmds},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.batch) == 0 {
				t.Fatal("empty batch")
			}
			if len(tc.batch[len(tc.batch)-1]) != 0 {
				t.Error("batch is not sentinel terminated")
			}
			for i, cmd := range tc.batch[:len(tc.batch)-1] {
				if len(cmd) < 2 {
					t.Errorf("command %d is truncated: %v", i, cmd)
				}
			}
		})
	}
}

func TestMode(t *testing.T) {
	m := Rev1.Mode
	if m.HDisplay != 1440 || m.VDisplay != 3120 {
		t.Errorf("active area %dx%d, want 1440x3120", m.HDisplay, m.VDisplay)
	}
	if got := m.VRefresh(); got != 60 {
		t.Errorf("VRefresh() = %d, want 60", got)
	}
	if m.HSyncStart <= m.HDisplay || m.HSyncEnd <= m.HSyncStart || m.HTotal <= m.HSyncEnd {
		t.Errorf("horizontal timings out of order: %d %d %d %d",
			m.HDisplay, m.HSyncStart, m.HSyncEnd, m.HTotal)
	}
	if m.VSyncStart <= m.VDisplay || m.VSyncEnd <= m.VSyncStart || m.VTotal <= m.VSyncEnd {
		t.Errorf("vertical timings out of order: %d %d %d %d",
			m.VDisplay, m.VSyncStart, m.VSyncEnd, m.VTotal)
	}
}

func TestRails(t *testing.T) {
	if len(Rev1.Rails) != 1 {
		t.Fatalf("got %d rails, want 1", len(Rev1.Rails))
	}
	r := Rev1.Rails[0]
	if r.Name != "vddio" {
		t.Errorf("rail name %q, want vddio", r.Name)
	}
	if r.EnableLoad != 1800*physic.MilliAmpere || r.DisableLoad != 0 {
		t.Errorf("rail loads %v/%v, want 1.8A/0", r.EnableLoad, r.DisableLoad)
	}
}

func TestDSC(t *testing.T) {
	cfg := Rev1.DSC
	if cfg == nil {
		t.Fatal("no DSC configuration")
	}
	// Two horizontal slices of compressed pixels per line.
	if cfg.SliceWidth*2 != cfg.PictureWidth {
		t.Errorf("slice width %d does not halve picture width %d", cfg.SliceWidth, cfg.PictureWidth)
	}
	if cfg.PictureHeight%cfg.SliceHeight != 0 {
		t.Errorf("slice height %d does not divide picture height %d", cfg.SliceHeight, cfg.PictureHeight)
	}
	// 8 bpp in 5.4 fixed point over a 720 pixel slice gives 720 byte chunks.
	if want := int(cfg.SliceWidth) * int(cfg.BitsPerPixel>>4) / 8; int(cfg.ChunkSize) != want {
		t.Errorf("chunk size %d, want %d", cfg.ChunkSize, want)
	}

	pps := cfg.PPS()
	if pps[0] != 0x11 {
		t.Errorf("pps version byte 0x%02x, want 0x11", pps[0])
	}
}
