// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import (
	"fmt"
	"time"
)

// transmit sends a batch in order. Each non-sentinel entry is one blocking
// write followed by the entry's settle delay. A write failure aborts the
// remainder of the batch; entries already written stay written, so the
// panel is left in whatever intermediate register state it reached.
func (d *Dev) transmit(b Batch) error {
	if len(b) == 0 || len(b[len(b)-1]) != 0 {
		return fmt.Errorf("%w: command batch missing terminator", ErrChannel)
	}
	for i := 0; len(b[i]) != 0; i++ {
		cmd := b[i]
		if len(cmd) < 2 {
			return fmt.Errorf("%w: command %d is truncated", ErrChannel, i)
		}
		var payload []byte
		if len(cmd) > 2 {
			payload = cmd[2:]
		}
		if err := d.link.Write(cmd[1], payload); err != nil {
			return fmt.Errorf("%w: command %d (0x%02x): %v", ErrChannel, i, cmd[1], err)
		}
		d.sleep(time.Duration(cmd[0]) * time.Millisecond)
	}
	return nil
}
