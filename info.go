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
)

// DeviceInfo is the identification record the display sends in answer to
// the connect command. It is parsed once during negotiation and never
// mutated afterwards.
type DeviceInfo struct {
	// Status is the first word of the response, "comok" on success.
	Status string

	// Model is the full model designation, e.g. "NX3224T024_011R".
	Model string

	// FirmwareVersion is the bootloader firmware version field.
	FirmwareVersion string

	// MCUCode identifies the display's microcontroller.
	MCUCode string

	// SerialNumber is the display's unique serial number.
	SerialNumber string

	// FlashSizeRaw is the flash size field as the display sent it.
	FlashSizeRaw string

	// FlashSize is FlashSizeRaw parsed as bytes, 0 when unparseable.
	FlashSize int64

	// Touchscreen reports whether the display has a touch panel.
	Touchscreen bool
}

// parseHandshake decodes the comok identification record. The response is
// stripped of frame terminator and null padding, then split into exactly
// seven comma-separated fields; the first field carries the status word and
// the touchscreen flag separated by a space. Field text is decoded
// best-effort: bytes that are not printable ASCII are dropped rather than
// failing the parse.
func parseHandshake(raw []byte) (*DeviceInfo, error) {
	trimmed := bytes.Trim(raw, "\xff\x00")
	fields := bytes.Split(trimmed, []byte{','})
	if len(fields) != handshakeFieldCount {
		return nil, protocolErr("parse handshake",
			fmt.Errorf("%w: %d fields, want %d", ErrMalformedHandshake, len(fields), handshakeFieldCount))
	}

	status, touch, _ := strings.Cut(cleanText(fields[0]), " ")
	// fields[1] is reserved and ignored, matching the display's protocol.
	info := &DeviceInfo{
		Status:          status,
		Touchscreen:     touch == "1",
		Model:           cleanText(fields[2]),
		FirmwareVersion: cleanText(fields[3]),
		MCUCode:         cleanText(fields[4]),
		SerialNumber:    cleanText(fields[5]),
		FlashSizeRaw:    cleanText(fields[6]),
	}
	if size, err := strconv.ParseInt(info.FlashSizeRaw, 10, 64); err == nil {
		info.FlashSize = size
	}
	return info, nil
}

// cleanText decodes a response field, dropping anything outside printable
// ASCII. Displays with corrupted identification records stay readable this
// way instead of failing the upload.
func cleanText(field []byte) string {
	var b strings.Builder
	b.Grow(len(field))
	for _, c := range field {
		if c >= 0x20 && c <= 0x7E {
			b.WriteByte(c)
		}
	}
	return b.String()
}
