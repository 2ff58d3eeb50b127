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
	"errors"
	"fmt"
	"io"
)

// SetUploadBaudRate tells the display the upload size and target rate, then
// switches the host side of the link. The whmi-wri command is written at
// the currently negotiated rate; the display gets a short settle delay
// before the switch and must acknowledge with 0x05 at the new rate. A
// missing or wrong acknowledgement fails the upload with no retry.
func (d *Device) SetUploadBaudRate(fileSize int64, baud int) error {
	cmd := fmt.Sprintf("%s %d,%d,0", cmdWhmiWri, fileSize, baud)
	if err := d.writeCommand(cmd); err != nil {
		return portErr("set upload baud", err)
	}

	d.sleep(baudSwitchDelay)

	if err := d.port.SetBaudRate(baud); err != nil {
		return portErr("set upload baud", err)
	}
	if err := d.port.SetReadTimeout(ackTimeout); err != nil {
		return portErr("set upload baud", err)
	}

	ok, err := d.readAck()
	if err != nil {
		return portErr("set upload baud", err)
	}
	d.config.Reporter.UploadBaudSet(baud, ok)
	if !ok {
		return protocolErr("set upload baud",
			fmt.Errorf("%w: %d baud", ErrUploadBaudRejected, baud))
	}
	d.baudRate = baud
	return nil
}

// Transfer streams the image in 4096-byte chunks, requiring a 0x05
// acknowledgement after each one. The first chunk that is not acknowledged
// aborts the transfer; the protocol has no resume, so a failed transfer
// means re-running the whole upload.
func (d *Device) Transfer(r io.Reader, fileSize int64) error {
	buf := make([]byte, chunkSize)
	var sent int64

	for {
		n, readErr := io.ReadFull(r, buf)
		if n > 0 {
			if err := d.sendChunk(buf[:n], sent); err != nil {
				return err
			}
			sent += int64(n)
			d.config.Reporter.Progress(sent, fileSize)
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("read image: %w", readErr)
		}
	}
}

// sendChunk writes one chunk and waits for its acknowledgement. The display
// needs its full per-chunk processing delay before it answers, so the ack
// read is preceded by a fixed settle sleep.
func (d *Device) sendChunk(chunk []byte, offset int64) error {
	if err := d.port.SetReadTimeout(chunkWriteTimeout); err != nil {
		return portErr("transfer", err)
	}
	if _, err := d.port.Write(chunk); err != nil {
		return portErr("transfer", err)
	}

	if err := d.port.SetReadTimeout(ackTimeout); err != nil {
		return portErr("transfer", err)
	}
	d.sleep(chunkSettleDelay)

	ok, err := d.readAck()
	if err != nil {
		return portErr("transfer", err)
	}
	if !ok {
		return protocolErr("transfer",
			fmt.Errorf("%w: chunk at offset %d", ErrChunkNotAcked, offset))
	}
	return nil
}
