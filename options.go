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

package nextion

import "fmt"

// Option is a functional option for configuring a Device
type Option func(*Device) error

// WithReporter sets the sink for stage and progress events
func WithReporter(reporter Reporter) Option {
	return func(d *Device) error {
		if reporter == nil {
			reporter = nopReporter{}
		}
		d.config.Reporter = reporter
		return nil
	}
}

// WithExpectedModel requires the connected display to report a model
// containing the given name. The name is checked against the NX####[TK]###
// naming scheme here, before any serial I/O happens.
func WithExpectedModel(model string) Option {
	return func(d *Device) error {
		if err := ValidateModelName(model); err != nil {
			return err
		}
		d.config.ExpectedModel = model
		return nil
	}
}

// WithUploadBaudRate overrides the rate used for the transfer phase
func WithUploadBaudRate(baud int) Option {
	return func(d *Device) error {
		if baud <= 0 {
			return fmt.Errorf("upload baud rate must be positive, got %d", baud)
		}
		d.config.UploadBaudRate = baud
		return nil
	}
}
