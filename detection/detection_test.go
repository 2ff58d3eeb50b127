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

package detection

import "testing"

func TestPortInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		port PortInfo
		want string
	}{
		{
			name: "native port",
			port: PortInfo{Path: "/dev/ttyAMA0"},
			want: "/dev/ttyAMA0",
		},
		{
			name: "usb adapter",
			port: PortInfo{Path: "/dev/ttyUSB0", IsUSB: true, VIDPID: "1A86:7523"},
			want: "/dev/ttyUSB0 (USB 1A86:7523)",
		},
		{
			name: "usb adapter with serial",
			port: PortInfo{Path: "COM3", IsUSB: true, VIDPID: "0403:6001", SerialNumber: "A5002xyz"},
			want: "COM3 (USB 0403:6001, serial A5002xyz)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.port.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
