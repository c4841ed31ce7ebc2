// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, the DSI packet checksum calculation.
package common

// CRC16 calculates the 16-bit CCITT CRC (polynomial x^16+x^12+x^5+1,
// LSB-first, initial value 0xFFFF) of the byte slice parameter and returns
// the calculated value. This is the checksum carried in the footer of DSI
// long packets.
func CRC16(bytes []byte) uint16 {
	var crc uint16 = 0xffff
	for _, val := range bytes {
		crc ^= uint16(val)
		for i := 0; i < 8; i++ {
			if (crc & 1) == 0 {
				crc >>= 1
			} else {
				crc = (crc >> 1) ^ 0x8408
			}
		}
	}
	return crc
}
