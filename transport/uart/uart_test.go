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

package uart

import (
	"testing"

	"go.bug.st/serial"
)

// TestPortProperties verifies stored port metadata without opening hardware
func TestPortProperties(t *testing.T) {
	t.Parallel()

	testPortName := "/dev/ttyUSB0"
	port := &Port{
		portName: testPortName,
		baudRate: initialBaudRate,
	}

	if port.Name() != testPortName {
		t.Errorf("Expected port name %s, got %s", testPortName, port.Name())
	}
	if port.BaudRate() != initialBaudRate {
		t.Errorf("Expected initial baud rate %d, got %d", initialBaudRate, port.BaudRate())
	}
}

// TestMode verifies the 8N1 mode the bootloader protocol requires
func TestMode(t *testing.T) {
	t.Parallel()

	m := mode(115200)
	if m.BaudRate != 115200 {
		t.Errorf("Expected baud rate 115200, got %d", m.BaudRate)
	}
	if m.DataBits != 8 {
		t.Errorf("Expected 8 data bits, got %d", m.DataBits)
	}
	if m.Parity != serial.NoParity {
		t.Errorf("Expected no parity, got %v", m.Parity)
	}
	if m.StopBits != serial.OneStopBit {
		t.Errorf("Expected one stop bit, got %v", m.StopBits)
	}
}

// TestOpenMissingDevice verifies open failures surface the device path
func TestOpenMissingDevice(t *testing.T) {
	t.Parallel()

	_, err := Open("/dev/does-not-exist-nextion")
	if err == nil {
		t.Fatal("Expected error opening a nonexistent device")
	}
}
