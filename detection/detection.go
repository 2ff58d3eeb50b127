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

// Package detection enumerates serial ports a display could be attached to.
// The uploader uses it to suggest candidates when the requested device
// cannot be opened.
package detection

import (
	"fmt"

	"go.bug.st/serial/enumerator"
)

// PortInfo describes one serial port visible on the system.
type PortInfo struct {
	// Path is the device path, e.g. /dev/ttyUSB0 or COM3.
	Path string

	// VIDPID is the USB vendor:product pair, empty for non-USB ports.
	VIDPID string

	// SerialNumber is the USB serial number, when available.
	SerialNumber string

	// IsUSB reports whether the port sits behind a USB adapter.
	IsUSB bool
}

// String renders the port for user-facing listings.
func (p PortInfo) String() string {
	if !p.IsUSB {
		return p.Path
	}
	s := fmt.Sprintf("%s (USB %s", p.Path, p.VIDPID)
	if p.SerialNumber != "" {
		s += ", serial " + p.SerialNumber
	}
	return s + ")"
}

// ListPorts returns the serial ports visible on the system, USB adapters
// first since displays are nearly always attached through one.
func ListPorts() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}

	var usb, native []PortInfo
	for _, d := range details {
		info := PortInfo{
			Path:         d.Name,
			IsUSB:        d.IsUSB,
			SerialNumber: d.SerialNumber,
		}
		if d.IsUSB {
			info.VIDPID = fmt.Sprintf("%s:%s", d.VID, d.PID)
			usb = append(usb, info)
		} else {
			native = append(native, info)
		}
	}
	return append(usb, native...), nil
}
