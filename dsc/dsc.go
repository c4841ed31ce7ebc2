// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dsc models a VESA Display Stream Compression configuration and
// packs it into the 128-byte Picture Parameter Set a DSC panel expects
// before the compressed stream starts.
package dsc

// RCRange is one entry of the rate-control range parameter table.
type RCRange struct {
	MinQP     uint8
	MaxQP     uint8
	BPGOffset int8
}

// Config holds the DSC encoder parameters for one panel. The values are
// vendor data; nothing here derives one field from another.
type Config struct {
	VersionMajor uint8
	VersionMinor uint8

	BitsPerComponent uint8
	LineBufDepth     uint8
	BlockPredEnable  bool
	ConvertRGB       bool
	Simple422        bool
	VBREnable        bool

	// BitsPerPixel is in units of 1/16th of a bit per pixel.
	BitsPerPixel uint16

	PictureHeight uint16
	PictureWidth  uint16
	SliceHeight   uint16
	SliceWidth    uint16
	ChunkSize     uint16

	InitialXmitDelay uint16
	InitialDecDelay  uint16

	InitialScaleValue      uint8
	ScaleIncrementInterval uint16
	ScaleDecrementInterval uint16

	FirstLineBPGOffset uint8
	NflBPGOffset       uint16
	SliceBPGOffset     uint16
	InitialOffset      uint16
	FinalOffset        uint16

	FlatnessMinQP uint8
	FlatnessMaxQP uint8

	RCModelSize       uint16
	RCEdgeFactor      uint8
	RCQuantIncrLimit0 uint8
	RCQuantIncrLimit1 uint8
	RCTgtOffsetHigh   uint8
	RCTgtOffsetLow    uint8

	// RCBufThresh is in bits; every entry must be divisible by 64.
	RCBufThresh   [14]uint16
	RCRangeParams [15]RCRange

	Native420 bool
	Native422 bool

	SecondLineBPGOffset uint8
	NslBPGOffset        uint16
	SecondLineOffsetAdj uint16
}

func putBE16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func flag(b bool, shift uint) byte {
	if b {
		return 1 << shift
	}
	return 0
}

// PPS packs the configuration into the Picture Parameter Set wire layout.
// Bytes 94 through 127 are reserved and transmitted as zero.
func (c *Config) PPS() [128]byte {
	var pps [128]byte

	pps[0] = c.VersionMinor&0xf | c.VersionMajor<<4
	// pps[1] is the PPS identifier, pps[2] is reserved.
	pps[3] = c.LineBufDepth&0xf | c.BitsPerComponent<<4
	pps[4] = byte(c.BitsPerPixel>>8)&0x3 |
		flag(c.VBREnable, 2) |
		flag(c.Simple422, 3) |
		flag(c.ConvertRGB, 4) |
		flag(c.BlockPredEnable, 5)
	pps[5] = byte(c.BitsPerPixel)
	putBE16(pps[6:], c.PictureHeight)
	putBE16(pps[8:], c.PictureWidth)
	putBE16(pps[10:], c.SliceHeight)
	putBE16(pps[12:], c.SliceWidth)
	putBE16(pps[14:], c.ChunkSize)
	pps[16] = byte(c.InitialXmitDelay>>8) & 0x3
	pps[17] = byte(c.InitialXmitDelay)
	putBE16(pps[18:], c.InitialDecDelay)
	pps[21] = c.InitialScaleValue & 0x3f
	putBE16(pps[22:], c.ScaleIncrementInterval)
	pps[24] = byte(c.ScaleDecrementInterval>>8) & 0xf
	pps[25] = byte(c.ScaleDecrementInterval)
	pps[27] = c.FirstLineBPGOffset & 0x1f
	putBE16(pps[28:], c.NflBPGOffset)
	putBE16(pps[30:], c.SliceBPGOffset)
	putBE16(pps[32:], c.InitialOffset)
	putBE16(pps[34:], c.FinalOffset)
	pps[36] = c.FlatnessMinQP & 0x1f
	pps[37] = c.FlatnessMaxQP & 0x1f
	putBE16(pps[38:], c.RCModelSize)
	pps[40] = c.RCEdgeFactor & 0xf
	pps[41] = c.RCQuantIncrLimit0 & 0x1f
	pps[42] = c.RCQuantIncrLimit1 & 0x1f
	pps[43] = c.RCTgtOffsetHigh<<4 | c.RCTgtOffsetLow&0xf
	for i, thresh := range c.RCBufThresh {
		pps[44+i] = byte(thresh >> 6)
	}
	for i, rc := range c.RCRangeParams {
		v := uint16(rc.MinQP&0x1f)<<11 |
			uint16(rc.MaxQP&0x1f)<<6 |
			uint16(rc.BPGOffset)&0x3f
		putBE16(pps[58+2*i:], v)
	}
	pps[88] = flag(c.Native420, 1) | flag(c.Native422, 0)
	pps[89] = c.SecondLineBPGOffset & 0x1f
	putBE16(pps[90:], c.NslBPGOffset)
	putBE16(pps[92:], c.SecondLineOffsetAdj)

	return pps
}
