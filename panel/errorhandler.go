// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package panel

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management. After the first failure
// the remaining operations become no-ops and the error is kept.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.reset.Out(l)
}

func (eh *errorHandler) sleep(t time.Duration) {
	if eh.err != nil {
		return
	}
	eh.d.sleep(t)
}
