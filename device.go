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

import (
	"fmt"
	"os"
	"time"
)

// Config contains configuration options for the Device
type Config struct {
	// Reporter receives stage and progress events. Never nil after
	// DefaultConfig.
	Reporter Reporter

	// ExpectedModel, when non-empty, must appear as a substring of the
	// model the display reports during the handshake.
	ExpectedModel string

	// UploadBaudRate is the rate the link is switched to for the data
	// transfer phase.
	UploadBaudRate int
}

// DefaultConfig returns the default device configuration
func DefaultConfig() *Config {
	return &Config{
		Reporter:       nopReporter{},
		UploadBaudRate: DefaultUploadBaudRate,
	}
}

// Device drives the Nextion bootloader protocol over a Port.
//
// Thread Safety: Device is NOT thread-safe. The upload flow is strictly
// sequential and the Device assumes exclusive ownership of its Port; all
// methods must be called from a single goroutine.
type Device struct {
	port   Port
	config *Config
	info   *DeviceInfo

	// baudRate is the currently active link rate, 0 before negotiation.
	baudRate int

	// sleep is swapped out in tests to avoid real protocol delays.
	sleep func(time.Duration)
}

// New creates a new Device over the given port
func New(port Port, opts ...Option) (*Device, error) {
	device := &Device{
		port:   port,
		config: DefaultConfig(),
		sleep:  time.Sleep,
	}

	for _, opt := range opts {
		if err := opt(device); err != nil {
			return nil, err
		}
	}

	return device, nil
}

// Info returns the identification record parsed during negotiation, or nil
// if no handshake has succeeded yet.
func (d *Device) Info() *DeviceInfo {
	return d.info
}

// BaudRate returns the currently active link rate, 0 before negotiation.
func (d *Device) BaudRate() int {
	return d.baudRate
}

// Upload runs the complete flow against the display: baud negotiation,
// speed upgrade, then the chunked transfer. The file size comes from the
// filesystem and is used both for the flash-size check and the whmi-wri
// command. Any stage failing aborts the upload.
func (d *Device) Upload(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	size := fi.Size()

	if _, err := d.Negotiate(size); err != nil {
		return fmt.Errorf("baud negotiation failed: %w", err)
	}

	if err := d.SetUploadBaudRate(size, d.config.UploadBaudRate); err != nil {
		return fmt.Errorf("could not set upload speed: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := d.Transfer(f, size); err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}
	return nil
}

// writeAll writes each slice in order, failing on the first short write.
func (d *Device) writeAll(chunks ...[]byte) error {
	for _, chunk := range chunks {
		if _, err := d.port.Write(chunk); err != nil {
			return err
		}
	}
	return nil
}

// writeCommand sends an ASCII command followed by the frame terminator.
func (d *Device) writeCommand(cmd string) error {
	debugf("-> %q", cmd)
	return d.writeAll([]byte(cmd), frameTerminator)
}

// readUpTo accumulates up to limit bytes, stopping early when a read times
// out (a zero-byte read under serial timeout semantics).
func (d *Device) readUpTo(limit int) ([]byte, error) {
	buf := make([]byte, limit)
	total := 0
	for total < limit {
		n, err := d.port.Read(buf[total:])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		total += n
	}
	return buf[:total], nil
}

// readAck reads a single byte and reports whether it is the 0x05
// acknowledgement. A timeout (empty read) is a failed acknowledgement,
// not an error.
func (d *Device) readAck() (bool, error) {
	buf := make([]byte, 1)
	n, err := d.port.Read(buf)
	if err != nil {
		return false, err
	}
	ok := n == 1 && buf[0] == ackByte
	if !ok {
		debugf("<- no ack (%d bytes)", n)
	}
	return ok, nil
}
