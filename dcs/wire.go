// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dcs

import (
	"fmt"

	"periph.io/x/conn/v3"

	"github.com/displaylab/dsipanel/common"
)

// DSI packet data types, low-power transmission.
const (
	pktDCSShortWrite0 byte = 0x05
	pktDCSRead        byte = 0x06
	pktDCSShortWrite1 byte = 0x15
	pktDCSLongWrite   byte = 0x39
)

// Wire implements Conn by framing DCS transactions as DSI short and long
// packets over a raw packet-stream transport.
//
// The fourth header byte is the ECC slot; hosts that validate it compute it
// in hardware on the way out, so it is left zero here. Long packets carry
// the standard CCITT checksum over their payload.
type Wire struct {
	c conn.Conn
}

// NewWire returns a Wire framing DCS transactions over c.
func NewWire(c conn.Conn) *Wire {
	return &Wire{c: c}
}

// Write issues a single DCS write packet. Payloads of zero or one byte go
// out as short packets, anything longer as one long packet.
func (w *Wire) Write(addr byte, payload []byte) error {
	switch len(payload) {
	case 0:
		return w.c.Tx([]byte{pktDCSShortWrite0, addr, 0x00, 0x00}, nil)
	case 1:
		return w.c.Tx([]byte{pktDCSShortWrite1, addr, payload[0], 0x00}, nil)
	default:
		n := len(payload) + 1
		if n > 0xffff {
			return fmt.Errorf("dcs: payload for 0x%02x exceeds long packet limit", addr)
		}
		pkt := make([]byte, 0, 4+n+2)
		pkt = append(pkt, pktDCSLongWrite, byte(n), byte(n>>8), 0x00)
		pkt = append(pkt, addr)
		pkt = append(pkt, payload...)
		crc := common.CRC16(pkt[4:])
		pkt = append(pkt, byte(crc), byte(crc>>8))
		return w.c.Tx(pkt, nil)
	}
}

// Read issues a DCS read packet and fills buf with the panel's response.
func (w *Wire) Read(addr byte, buf []byte) (int, error) {
	if err := w.c.Tx([]byte{pktDCSRead, addr, 0x00, 0x00}, buf); err != nil {
		return 0, err
	}
	return len(buf), nil
}

func (w *Wire) String() string {
	return fmt.Sprintf("dcs.Wire{%s}", w.c)
}

var _ Conn = &Wire{}
