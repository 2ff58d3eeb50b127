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
	"strconv"
	"time"
)

// MockPort is a scripted serial endpoint for tests. Each QueueRead entry is
// one exchange: the display's answer to one command. An exchange is served
// only after a Write has happened since the previous exchange ended, the way
// a real display stays silent until the next command; once an exchange is
// drained, further Reads return (0, nil) like a timed-out serial read. Every
// write, baud change, and timeout change is recorded, and the op log
// preserves their relative order.
type MockPort struct {
	readQueue [][][]byte
	current   [][]byte
	writes    [][]byte
	bauds     []int
	timeouts  []time.Duration
	ops       []string

	// ReadErr and WriteErr, when set, fail the respective calls.
	ReadErr  error
	WriteErr error

	// armed gates the next exchange on a preceding write.
	armed  bool
	closed bool
}

// NewMockPort creates an empty scripted port
func NewMockPort() *MockPort {
	return &MockPort{armed: true}
}

// QueueRead appends one scripted exchange. Multiple fragments are served
// across successive Read calls, for displays that deliver a response in
// pieces; no fragments (or a nil one) scripts a display that stays silent.
func (m *MockPort) QueueRead(fragments ...[]byte) {
	m.readQueue = append(m.readQueue, fragments)
}

// SetBaudRate records the requested rate
func (m *MockPort) SetBaudRate(baud int) error {
	m.bauds = append(m.bauds, baud)
	m.ops = append(m.ops, opBaud(baud))
	return nil
}

// SetReadTimeout records the requested timeout
func (m *MockPort) SetReadTimeout(timeout time.Duration) error {
	m.timeouts = append(m.timeouts, timeout)
	return nil
}

// Write records a copy of the written bytes
func (m *MockPort) Write(p []byte) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.writes = append(m.writes, append([]byte(nil), p...))
	m.ops = append(m.ops, "write")
	m.armed = true
	return len(p), nil
}

// Read serves the current exchange, retaining any bytes that do not fit the
// caller's buffer for the following Read. With the exchange drained it
// returns (0, nil) until a Write unlocks the next one.
func (m *MockPort) Read(p []byte) (int, error) {
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if len(m.current) == 0 {
		if !m.armed || len(m.readQueue) == 0 {
			return 0, nil // timeout
		}
		m.current = m.readQueue[0]
		m.readQueue = m.readQueue[1:]
		m.armed = false
	}
	frag := m.current[0]
	n := copy(p, frag)
	if n < len(frag) {
		m.current[0] = frag[n:]
	} else {
		m.current = m.current[1:]
	}
	return n, nil
}

// Close marks the port closed
func (m *MockPort) Close() error {
	m.closed = true
	return nil
}

// Writes returns all recorded writes in order
func (m *MockPort) Writes() [][]byte {
	return m.writes
}

// WrittenBytes returns every written byte concatenated
func (m *MockPort) WrittenBytes() []byte {
	var all []byte
	for _, w := range m.writes {
		all = append(all, w...)
	}
	return all
}

// BaudRates returns the sequence of requested rates
func (m *MockPort) BaudRates() []int {
	return m.bauds
}

// Timeouts returns the sequence of requested read timeouts
func (m *MockPort) Timeouts() []time.Duration {
	return m.timeouts
}

// Ops returns the interleaved log of writes and baud changes
func (m *MockPort) Ops() []string {
	return m.ops
}

// Closed reports whether Close was called
func (m *MockPort) Closed() bool {
	return m.closed
}

func opBaud(baud int) string {
	return "baud:" + strconv.Itoa(baud)
}
