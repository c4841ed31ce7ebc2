// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dcstest is meant to be used to test drivers against a fake DCS
// command channel.
package dcstest

import (
	"errors"

	"github.com/displaylab/dsipanel/dcs"
)

// Errs returned when the scripted operations are exhausted or a failure is
// injected.
var (
	ErrInjected = errors.New("dcstest: injected write failure")
	ErrNoRead   = errors.New("dcstest: unexpected read")
)

// Write is one recorded DCS write.
type Write struct {
	Addr    byte
	Payload []byte
}

// Record implements dcs.Conn and records every successful write in issue
// order.
//
// FailAt, when non-zero, makes the FailAt'th write (1-based, counted across
// the Record's lifetime) fail without being recorded; Err overrides the
// error returned. Reads are served front to back from Reads.
type Record struct {
	Writes []Write
	Reads  [][]byte
	FailAt int
	Err    error

	attempts int
}

// Write implements dcs.Conn.
func (r *Record) Write(addr byte, payload []byte) error {
	r.attempts++
	if r.FailAt != 0 && r.attempts == r.FailAt {
		if r.Err != nil {
			return r.Err
		}
		return ErrInjected
	}
	r.Writes = append(r.Writes, Write{Addr: addr, Payload: append([]byte(nil), payload...)})
	return nil
}

// Read implements dcs.Conn.
func (r *Record) Read(addr byte, buf []byte) (int, error) {
	if len(r.Reads) == 0 {
		return 0, ErrNoRead
	}
	d := r.Reads[0]
	r.Reads = r.Reads[1:]
	return copy(buf, d), nil
}

var _ dcs.Conn = &Record{}
