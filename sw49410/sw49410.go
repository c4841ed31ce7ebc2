// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sw49410 contains the panel descriptor for the LG SW49410 rev1,
// a 1440x3120 command-mode MIPI-DSI panel with Display Stream Compression.
//
// Everything here is data sheet material: timings, rail loads, reset hold
// times and the vendor register tables. The lifecycle that consumes it
// lives in the panel package.
package sw49410

import (
	"time"

	"periph.io/x/conn/v3/physic"

	"github.com/displaylab/dsipanel/dsc"
	"github.com/displaylab/dsipanel/panel"
)

// Rev1 describes the SW49410 rev1 panel.
var Rev1 = panel.Desc{
	Name: "lg-sw49410-rev1",

	Mode: panel.DisplayMode{
		Clock:      (1440 + 168 + 4 + 84) * (3120 + 2 + 18 + 18) * 60 / 1000,
		HDisplay:   1440,
		HSyncStart: 1440 + 168,
		HSyncEnd:   1440 + 168 + 4,
		HTotal:     1440 + 168 + 4 + 84,
		VDisplay:   3120,
		VSyncStart: 3120 + 2,
		VSyncEnd:   3120 + 2 + 18,
		VTotal:     3120 + 2 + 18 + 18,
	},
	WidthMM:  65,
	HeightMM: 140,

	Lanes:  4,
	Format: panel.RGB888,

	Rails: []panel.Rail{
		{Name: "vddio", EnableLoad: 1800 * physic.MilliAmpere, DisableLoad: 0},
	},

	// The panel must be out of reset for 6 ms, held in reset for 1 ms and
	// released again before the first power-on; the power-on pulse uses
	// 9 ms holds instead.
	InitialReset: panel.ResetPulse{
		OutOfReset: 6 * time.Millisecond,
		InReset:    1 * time.Millisecond,
		Settle:     6 * time.Millisecond,
	},
	PowerOnReset: panel.ResetPulse{
		OutOfReset: 9 * time.Millisecond,
		InReset:    1 * time.Millisecond,
		Settle:     9 * time.Millisecond,
	},

	InitDelay:      5 * time.Millisecond,
	SleepExitDelay: 256 * time.Millisecond,

	InitCmds: initCmds,
	WakeCmds: wakeCmds,

	DSC: &dscConfig,
}

// initCmds is transmitted before exiting sleep mode. Order matters; the
// register annotations come from the panel data sheet.
var initCmds = panel.Batch{
	{0x00, 0x53, 0x2c}, // BLU control 2
	{0x00, 0x5e, 0x00}, // BLU control 3
	{0x00, 0x55, 0x81}, // BLU control 4
	{0x00, 0xb4, // gate & mux control
		0x11, 0x04, 0x02, 0x02, 0x02, 0x02, 0x02, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0xd0, 0xe4, 0xe4, 0xe4, 0x93,
		0x4e, 0x39, 0x0a, 0x10, 0x18, 0x25, 0x24, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00},
	{0x00, 0xb6, 0x03, 0x05, 0x0b, 0xb3, 0x30}, // panel setting
	{0x00, 0xba, // DSC configuration
		0x3d, 0x1f, 0x01, 0xff, 0x01, 0x3c, 0x1f, 0x01, 0xff,
		0x01, 0x00},
	{0x00, 0xc1, 0x01, 0x00, 0xf0, 0xc2, 0xcf, 0x0c}, // power control 1
	{0x00, 0xc2, // power control 2
		0xcc, 0x44, 0x44, 0x20, 0x22, 0x26, 0x21, 0x00},
	{0x00, 0xc3, // power control 3
		0x92, 0x11, 0x09, 0x09, 0x11, 0xcc, 0x02, 0x02, 0xa4,
		0xa4, 0x02, 0xa2, 0x38, 0x28, 0x14, 0x40, 0x38, 0xc0},
	{0x00, 0xc4, 0x26, 0x00}, // Vcom setting
	{0x00, 0xe5, // GIP setting
		0x0b, 0x0a, 0x0c, 0x00, 0x02, 0x04, 0x06, 0x08, 0x0f,
		0x1b, 0x02, 0x1a, 0x1a, 0x0b, 0x0a, 0x0c, 0x01, 0x03,
		0x05, 0x07, 0x09, 0x10, 0x1b, 0x03, 0x1a, 0x1a},
	{0x00, 0xe6, // mux setting
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x11,
		0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18},
	{0x00, 0xfc, // BLU PWM control
		0x13, 0x70, 0xd0, 0x26, 0x30, 0x7c, 0x02, 0xff, 0x12,
		0x22, 0x22, 0x10, 0x00},
	{0x00, 0x13}, // enter normal mode

	{},
}

// wakeCmds is transmitted after the sleep-exit settle delay.
var wakeCmds = panel.Batch{
	{0x00, 0xb0, 0xac}, // manufacturer protection off
	{0x00, 0xcd,
		0x00, 0x00, 0x00, 0x19, 0x19, 0x19, 0x19, 0x19,
		0x19, 0x19, 0x19, 0x19, 0x19, 0x19, 0x19, 0x19,
		0x16, 0x16},
	{0x00, 0xcb, 0x80, 0x5c, 0x07, 0x03, 0x28},
	{0x00, 0xc0, 0x02, 0x02, 0x0f},
	{0x00, 0xe5, 0x00, 0x3a, 0x00, 0x3a, 0x00, 0x0e, 0x10},
	{0x00, 0xb5,
		0x75, 0x60, 0x2d, 0x5d, 0x80, 0x00, 0x0a, 0x0b,
		0x00, 0x05, 0x0b, 0x00, 0x80, 0x0d, 0x0e, 0x40,
		0x00, 0x0c, 0x00, 0x16, 0x00, 0xb8, 0x00, 0x80,
		0x0d, 0x0e, 0x40, 0x00, 0x0c, 0x00, 0x16, 0x00,
		0xb8, 0x00, 0x81, 0x00, 0x03, 0x03, 0x03, 0x01,
		0x01},
	{0x00, 0x55, 0x04, 0x61, 0xdb, 0x04, 0x70, 0xdb},
	{0x00, 0xb0, 0xca}, // manufacturer protection on

	{},
}

// dscConfig is the compressed-stream configuration from the vendor DSC
// tool: DSC 1.1, one 720x60 slice per half, 10 bits per component
// compressed to 8 bits per pixel.
var dscConfig = dsc.Config{
	VersionMajor: 1,
	VersionMinor: 1,

	BitsPerComponent: 10,
	LineBufDepth:     11,
	ConvertRGB:       true,

	BitsPerPixel: 8 << 4,

	PictureHeight: 3120,
	PictureWidth:  1440,
	SliceHeight:   60,
	SliceWidth:    720,
	ChunkSize:     720,

	InitialXmitDelay: 512,
	InitialDecDelay:  526,

	InitialScaleValue:      32,
	ScaleIncrementInterval: 1494,
	ScaleDecrementInterval: 10,

	FirstLineBPGOffset: 12,
	NflBPGOffset:       417,
	SliceBPGOffset:     327,
	InitialOffset:      6144,
	FinalOffset:        4342,

	FlatnessMinQP: 7,
	FlatnessMaxQP: 16,

	RCModelSize:       8192,
	RCEdgeFactor:      6,
	RCQuantIncrLimit0: 15,
	RCQuantIncrLimit1: 15,
	RCTgtOffsetHigh:   3,
	RCTgtOffsetLow:    3,

	RCBufThresh: [14]uint16{
		896, 1792, 2688, 3584, 4480, 5376, 6272, 6720,
		7168, 7616, 7744, 7872, 8000, 8064,
	},
	RCRangeParams: [15]dsc.RCRange{
		{MinQP: 0, MaxQP: 8, BPGOffset: 2},
		{MinQP: 8, MaxQP: 12, BPGOffset: 0},
		{MinQP: 9, MaxQP: 13, BPGOffset: 0},
		{MinQP: 9, MaxQP: 14, BPGOffset: -2},
		{MinQP: 11, MaxQP: 15, BPGOffset: -4},
		{MinQP: 11, MaxQP: 15, BPGOffset: -6},
		{MinQP: 11, MaxQP: 15, BPGOffset: -8},
		{MinQP: 11, MaxQP: 16, BPGOffset: -8},
		{MinQP: 11, MaxQP: 17, BPGOffset: -8},
		{MinQP: 11, MaxQP: 18, BPGOffset: -10},
		{MinQP: 13, MaxQP: 19, BPGOffset: -10},
		{MinQP: 13, MaxQP: 20, BPGOffset: -12},
		{MinQP: 13, MaxQP: 21, BPGOffset: -12},
		{MinQP: 15, MaxQP: 21, BPGOffset: -12},
		{MinQP: 21, MaxQP: 23, BPGOffset: -12},
	},
}
