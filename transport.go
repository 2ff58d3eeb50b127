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

import "time"

// Port is the serial channel the bootloader protocol runs over. The baud
// negotiation changes the rate mid-session, so the channel must support
// reconfiguration while open.
//
// Read follows serial-port semantics: it blocks until at least one byte is
// available or the configured read timeout lapses, in which case it returns
// (0, nil). The Device is the exclusive owner of the Port for the duration
// of an upload; implementations need not be safe for concurrent use.
type Port interface {
	// SetBaudRate reconfigures the link speed without closing the port.
	SetBaudRate(baud int) error

	// SetReadTimeout sets the timeout applied to subsequent Read calls.
	SetReadTimeout(timeout time.Duration) error

	// Write sends raw bytes to the display.
	Write(p []byte) (int, error)

	// Read reads available bytes, returning (0, nil) on timeout.
	Read(p []byte) (int, error)

	// Close closes the underlying port.
	Close() error
}
