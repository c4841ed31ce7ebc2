// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestCRC16(t *testing.T) {
	var tests = []struct {
		bytes  []byte
		result uint16
	}{
		{bytes: nil, result: 0xffff},
		{bytes: []byte("123456789"), result: 0x6f91},
		// A packet with its own checksum appended LSB-first leaves a zero
		// residue, which is how a receiver validates a DSI long packet.
		{bytes: []byte("123456789\x91\x6f"), result: 0x0000},
	}
	for _, test := range tests {
		res := CRC16(test.bytes)
		if res != test.result {
			t.Errorf("CRC16(%#v)!=0x%04x received 0x%04x", test.bytes, test.result, res)
		}
	}
}
