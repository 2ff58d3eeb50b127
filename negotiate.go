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
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Negotiate probes the candidate baud rates in descending order until the
// display answers the connect command with its identification record. The
// scan stops at the first working rate; lower rates are never tried after
// a success.
//
// fileSize, when positive, is checked against the flash size the display
// reports; an expected model set via WithExpectedModel is checked against
// the reported model. Either check failing fails the negotiation.
func (d *Device) Negotiate(fileSize int64) (*DeviceInfo, error) {
	for _, baud := range negotiationBaudRates {
		resp, err := d.probe(baud)
		if err != nil {
			return nil, portErr("negotiate", err)
		}

		ok := bytes.Contains(resp, []byte(handshakeOK))
		d.config.Reporter.BaudTried(baud, ok)
		debugf("probe %d baud: %d bytes, ok=%v", baud, len(resp), ok)
		if !ok {
			continue
		}

		info, err := parseHandshake(resp)
		if err != nil {
			return nil, err
		}
		d.baudRate = baud
		d.info = info
		d.config.Reporter.Connected(info, baud)

		if err := d.validateHandshake(info, fileSize); err != nil {
			return nil, err
		}
		return info, nil
	}
	return nil, protocolErr("negotiate", ErrNoHandshake)
}

// probe sends the connect command at the given rate and collects the
// response. The command is wrapped in frame terminators on both sides so a
// display mid-command from a previous attempt resynchronizes.
func (d *Device) probe(baud int) ([]byte, error) {
	if err := d.port.SetBaudRate(baud); err != nil {
		return nil, err
	}
	if err := d.port.SetReadTimeout(negotiationTimeout(baud)); err != nil {
		return nil, err
	}
	if err := d.writeAll(frameTerminator, []byte(cmdConnect), frameTerminator); err != nil {
		return nil, err
	}
	return d.readUpTo(handshakeReadLimit)
}

// negotiationTimeout scales the response window with the candidate rate:
// 3000 bit-times plus a fixed 200ms margin, so slower links get
// proportionally longer to answer.
func negotiationTimeout(baud int) time.Duration {
	return time.Duration(3000*float64(time.Second)/float64(baud)) + 200*time.Millisecond
}

// validateHandshake applies the post-parse checks: the upload must fit the
// reported flash, and the reported model must contain the expected one.
func (d *Device) validateHandshake(info *DeviceInfo, fileSize int64) error {
	if fileSize > 0 {
		flash, err := strconv.ParseInt(info.FlashSizeRaw, 10, 64)
		if err != nil {
			return validationErr("negotiate",
				fmt.Errorf("%w: %q", ErrInvalidFlashSize, info.FlashSizeRaw))
		}
		if fileSize > flash {
			return validationErr("negotiate",
				fmt.Errorf("%w: file is %d bytes, flash is %d bytes", ErrFileTooLarge, fileSize, flash))
		}
	}
	if expected := d.config.ExpectedModel; expected != "" && !strings.Contains(info.Model, expected) {
		return validationErr("negotiate",
			fmt.Errorf("%w: connected %q, expected %q", ErrModelMismatch, info.Model, expected))
	}
	return nil
}
