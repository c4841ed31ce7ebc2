// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dsc

import "testing"

func TestPPS(t *testing.T) {
	c := Config{
		VersionMajor:           1,
		VersionMinor:           1,
		BitsPerComponent:       8,
		LineBufDepth:           9,
		ConvertRGB:             true,
		BitsPerPixel:           128, // 8.0 bpp
		PictureHeight:          320,
		PictureWidth:           720,
		SliceHeight:            320,
		SliceWidth:             360,
		ChunkSize:              360,
		InitialXmitDelay:       512,
		InitialDecDelay:        526,
		InitialScaleValue:      32,
		ScaleIncrementInterval: 989,
		ScaleDecrementInterval: 7,
		FirstLineBPGOffset:     12,
		NflBPGOffset:           77,
		SliceBPGOffset:         46,
		InitialOffset:          6144,
		FinalOffset:            4336,
		FlatnessMinQP:          3,
		FlatnessMaxQP:          12,
		RCModelSize:            8192,
		RCEdgeFactor:           6,
		RCQuantIncrLimit0:      11,
		RCQuantIncrLimit1:      11,
		RCTgtOffsetHigh:        3,
		RCTgtOffsetLow:         3,
	}
	c.RCBufThresh[0] = 896
	c.RCBufThresh[13] = 8064
	c.RCRangeParams[0] = RCRange{MinQP: 0, MaxQP: 4, BPGOffset: 2}
	c.RCRangeParams[14] = RCRange{MinQP: 12, MaxQP: 13, BPGOffset: -12}

	pps := c.PPS()

	want := map[int]byte{
		0:  0x11,       // version 1.1
		3:  0x89,       // bpc 8, line buffer depth 9
		4:  0x10,       // convert RGB, bpp high bits 0
		5:  0x80,       // bpp low byte
		6:  0x01,       // picture height 320 big-endian
		7:  0x40,       //
		8:  0x02,       // picture width 720 big-endian
		9:  0xd0,       //
		12: 0x01,       // slice width 360 big-endian
		13: 0x68,       //
		16: 0x02,       // initial xmit delay 512
		17: 0x00,       //
		21: 0x20,       // initial scale value
		25: 0x07,       // scale decrement interval
		27: 0x0c,       // first line bpg offset
		32: 0x18,       // initial offset 6144 big-endian
		33: 0x00,       //
		36: 0x03,       // flatness min qp
		37: 0x0c,       // flatness max qp
		38: 0x20,       // rc model size 8192 big-endian
		39: 0x00,       //
		40: 0x06,       // rc edge factor
		43: 0x33,       // rc target offsets
		44: 896 >> 6,   // first rc buffer threshold
		57: 8064 >> 6,  // last rc buffer threshold
		58: 0x01,       // range 0: min 0, max 4, offset 2
		59: 0x02,       //
		86: 0x63,       // range 14: min 12, max 13, offset -12
		87: 0x74,       //
		94: 0x00,       // reserved tail stays zero
	}
	for i, b := range want {
		if pps[i] != b {
			t.Errorf("pps[%d] = 0x%02x, want 0x%02x", i, pps[i], b)
		}
	}
	if len(pps) != 128 {
		t.Fatalf("pps length %d", len(pps))
	}
}
