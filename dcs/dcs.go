// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dcs defines the MIPI Display Command Set primitives used to talk
// to a command-mode DSI panel.
//
// The Conn interface is the single transmit primitive every higher layer is
// written against; Wire adapts it onto a packet-stream transport.
package dcs

// Command addresses from the MIPI Display Command Set specification.
const (
	EnterSleepMode       byte = 0x10
	ExitSleepMode        byte = 0x11
	EnterNormalMode      byte = 0x13
	SetGammaCurve        byte = 0x26
	SetDisplayOff        byte = 0x28
	SetDisplayOn         byte = 0x29
	SetColumnAddress     byte = 0x2A
	SetPageAddress       byte = 0x2B
	SetTearOn            byte = 0x35
	SetDisplayBrightness byte = 0x51
	GetDisplayBrightness byte = 0x52
	WriteControlDisplay  byte = 0x53
	WritePowerSave       byte = 0x55
	SetCABCMinBrightness byte = 0x5E
)

// DSI packet identifiers that are addressed like DCS commands but defined by
// the DSI layer rather than the command set.
const (
	// CompressionMode enables Display Stream Compression on the link.
	CompressionMode byte = 0x07
	// PictureParameterSet carries the 128-byte DSC configuration payload.
	PictureParameterSet byte = 0x0A
)

// TearMode selects when the panel raises its tearing effect signal.
type TearMode byte

// Valid tear modes for SetTearOn.
const (
	TearModeVBlank  TearMode = 0
	TearModeVHBlank TearMode = 1
)

// Conn is a DCS command channel to a panel.
//
// Both methods block until the transaction has been handed to the link.
// Implementations are not required to be concurrency safe; the panel
// lifecycle issues at most one transaction at a time.
type Conn interface {
	// Write issues a single DCS write of addr, carrying payload if any.
	Write(addr byte, payload []byte) error
	// Read issues a DCS read of addr into buf and returns the number of
	// bytes the panel returned.
	Read(addr byte, buf []byte) (int, error)
}
