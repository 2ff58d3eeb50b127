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

// Package uart provides the serial-port implementation of nextion.Port,
// backed by go.bug.st/serial.
package uart

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// initialBaudRate is the rate the port opens at; the baud negotiation
// reconfigures it immediately afterwards.
const initialBaudRate = 9600

// Port is a nextion.Port over a local serial device.
type Port struct {
	port     serial.Port
	portName string
	baudRate int
}

// Open opens the serial device in 8N1 mode at the initial rate.
func Open(portName string) (*Port, error) {
	port, err := serial.Open(portName, mode(initialBaudRate))
	if err != nil {
		return nil, fmt.Errorf("open serial device %s: %w", portName, err)
	}
	return &Port{
		port:     port,
		portName: portName,
		baudRate: initialBaudRate,
	}, nil
}

// SetBaudRate reconfigures the link speed without closing the device.
func (p *Port) SetBaudRate(baud int) error {
	if err := p.port.SetMode(mode(baud)); err != nil {
		return fmt.Errorf("set %s to %d baud: %w", p.portName, baud, err)
	}
	p.baudRate = baud
	return nil
}

// SetReadTimeout sets the timeout applied to subsequent Read calls.
func (p *Port) SetReadTimeout(timeout time.Duration) error {
	if err := p.port.SetReadTimeout(timeout); err != nil {
		return fmt.Errorf("set read timeout on %s: %w", p.portName, err)
	}
	return nil
}

// Write sends raw bytes to the device.
func (p *Port) Write(b []byte) (int, error) {
	n, err := p.port.Write(b)
	if err != nil {
		return n, fmt.Errorf("write to %s: %w", p.portName, err)
	}
	return n, nil
}

// Read reads available bytes, returning (0, nil) when the read timeout
// lapses with nothing received.
func (p *Port) Read(b []byte) (int, error) {
	n, err := p.port.Read(b)
	if err != nil {
		return n, fmt.Errorf("read from %s: %w", p.portName, err)
	}
	return n, nil
}

// Close closes the serial device.
func (p *Port) Close() error {
	if err := p.port.Close(); err != nil {
		return fmt.Errorf("close %s: %w", p.portName, err)
	}
	return nil
}

// Name returns the device path the port was opened with.
func (p *Port) Name() string {
	return p.portName
}

// BaudRate returns the last rate the port was set to.
func (p *Port) BaudRate() int {
	return p.baudRate
}

func mode(baud int) *serial.Mode {
	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}
