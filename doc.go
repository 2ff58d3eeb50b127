// go-nextion
// Copyright (c) 2025 The OpenHMI Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-nextion.
//
// go-nextion is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-nextion is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-nextion; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

/*
Package nextion uploads TFT firmware images to Nextion-family HMI displays
over a serial link, speaking the display's "whmi-wri" bootloader protocol.

The upload is a strictly linear, single-threaded flow over one serial port:

 1. Baud negotiation: candidate rates are probed in descending order with the
    "connect" command until the display answers with its identification record.
 2. Speed upgrade: the display is told the upload size and target baud rate
    and must acknowledge before the link is switched.
 3. Transfer: the image is streamed in 4096-byte chunks, each of which the
    display acknowledges with a single 0x05 byte.

Any stage failing aborts the whole upload; the protocol has no retry or
resume semantics.

Basic Usage:

	import (
	    "github.com/OpenHMIProject/go-nextion"
	    "github.com/OpenHMIProject/go-nextion/transport/uart"
	)

	port, err := uart.Open("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer port.Close()

	dev, err := nextion.New(port,
	    nextion.WithExpectedModel("NX3224T024"),
	)
	if err != nil {
	    log.Fatal(err)
	}

	if err := dev.Upload("screen.tft"); err != nil {
	    log.Fatal(err)
	}

Progress and per-stage status can be observed by supplying a Reporter via
WithReporter; the protocol core itself never prints anything.
*/
package nextion
