// Copyright 2026 The DSIPanel Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sw49410_test

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/displaylab/dsipanel/panel"
	"github.com/displaylab/dsipanel/sw49410"
)

// pmicRegulator programs a PMIC rail over whatever bus the board exposes.
// A real board driver replaces this with its PMIC client.
type pmicRegulator struct {
	name string
}

func (r *pmicRegulator) SetLoad(l physic.ElectricCurrent) error {
	fmt.Printf("%s: load %s\n", r.name, l)
	return nil
}

func (r *pmicRegulator) Enable() error {
	fmt.Printf("%s: on\n", r.name)
	return nil
}

func (r *pmicRegulator) Disable() error {
	fmt.Printf("%s: off\n", r.name)
	return nil
}

// socPinctrl selects a named pin group state on the SoC.
type socPinctrl struct{}

func (socPinctrl) SelectState(name string) error {
	fmt.Printf("pinctrl: %s\n", name)
	return nil
}

// dsiHost is the board's DSI command channel. A real board driver wraps its
// DSI host controller, or a raw packet transport via dcs.NewWire.
type dsiHost struct{}

func (dsiHost) Write(addr byte, payload []byte) error {
	return nil
}

func (dsiHost) Read(addr byte, buf []byte) (int, error) {
	return len(buf), nil
}

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	rst := gpioreg.ByName("GPIO6")
	if rst == nil {
		log.Fatal("no reset pin")
	}

	rails := make([]panel.Regulator, len(sw49410.Rev1.Rails))
	for i, r := range sw49410.Rev1.Rails {
		rails[i] = &pmicRegulator{name: r.Name}
	}

	dev, err := panel.New(dsiHost{}, rst, rails, socPinctrl{}, &sw49410.Rev1, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Prepare(); err != nil {
		log.Fatal(err)
	}
	if err := dev.Enable(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("device=%s\n", dev)

	if err := dev.Backlight().SetBrightness(128); err != nil {
		log.Fatal(err)
	}
}
