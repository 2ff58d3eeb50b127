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

// Reporter receives the observable events of an upload. Implementations
// should return quickly; they are called synchronously from the protocol
// loop. The zero-cost default installed by DefaultConfig discards all
// events, keeping presentation out of the protocol core.
type Reporter interface {
	// BaudTried is called once per candidate rate during negotiation,
	// whether or not the display answered.
	BaudTried(baud int, ok bool)

	// Connected is called after a successful handshake with the parsed
	// identification record and the rate it was achieved at.
	Connected(info *DeviceInfo, baud int)

	// UploadBaudSet is called with the outcome of the whmi-wri baud
	// switch command.
	UploadBaudSet(baud int, ok bool)

	// Progress is called after each chunk write with cumulative bytes
	// sent out of the total.
	Progress(sent, total int64)
}

type nopReporter struct{}

func (nopReporter) BaudTried(int, bool)        {}
func (nopReporter) Connected(*DeviceInfo, int) {}
func (nopReporter) UploadBaudSet(int, bool)    {}
func (nopReporter) Progress(int64, int64)      {}
