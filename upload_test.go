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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	display "github.com/OpenHMIProject/go-nextion/internal/testing"
)

func TestSetUploadBaudRateAcknowledged(t *testing.T) {
	t.Parallel()

	port := NewMockPort()
	port.QueueRead(display.Ack())
	rep := &recordReporter{}
	dev := newTestDevice(t, port, WithReporter(rep))

	err := dev.SetUploadBaudRate(1024, 115200)
	require.NoError(t, err)

	writes := port.Writes()
	require.Len(t, writes, 2)
	assert.Equal(t, []byte("whmi-wri 1024,115200,0"), writes[0])
	assert.Equal(t, frameTerminator, writes[1])

	// The command goes out before the host switches its own rate.
	assert.Equal(t, []string{"write", "write", "baud:115200"}, port.Ops())
	assert.Equal(t, 115200, dev.BaudRate())
	assert.Equal(t, 115200, rep.uploadBaud)
	assert.True(t, rep.uploadOK)
}

func TestSetUploadBaudRateNotAcknowledged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response []byte
	}{
		{name: "timeout", response: nil},
		{name: "wrong byte", response: display.Nak()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			port := NewMockPort()
			if tt.response != nil {
				port.QueueRead(tt.response)
			}
			rep := &recordReporter{}
			dev := newTestDevice(t, port, WithReporter(rep))

			err := dev.SetUploadBaudRate(1024, 115200)
			assert.ErrorIs(t, err, ErrUploadBaudRejected)
			assert.False(t, rep.uploadOK)
		})
	}
}

func TestSetUploadBaudRateAfterNegotiation(t *testing.T) {
	t.Parallel()

	// The handshake read polls until it times out; the ack for the
	// following whmi-wri must still be there when it is asked for.
	port := NewMockPort()
	port.QueueRead(display.DefaultHandshake().Build())
	port.QueueRead(display.Ack())
	dev := newTestDevice(t, port)

	_, err := dev.Negotiate(0)
	require.NoError(t, err)
	require.NoError(t, dev.SetUploadBaudRate(1024, DefaultUploadBaudRate))
}

func TestTransferTwoFullChunks(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0xAB}, 2*chunkSize)
	port := NewMockPort()
	port.QueueRead(display.Ack())
	port.QueueRead(display.Ack())
	rep := &recordReporter{}
	dev := newTestDevice(t, port, WithReporter(rep))

	err := dev.Transfer(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	writes := port.Writes()
	require.Len(t, writes, 2)
	assert.Len(t, writes[0], chunkSize)
	assert.Len(t, writes[1], chunkSize)

	require.Len(t, rep.progress, 2)
	assert.Equal(t, int64(chunkSize), rep.progress[0])
	assert.Equal(t, int64(2*chunkSize), rep.progress[1], "final progress must reach 100%")
	assert.Equal(t, int64(2*chunkSize), rep.progressTotal)
}

func TestTransferAbortsWhenSecondChunkNotAcked(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0xCD}, 2*chunkSize)
	port := NewMockPort()
	port.QueueRead(display.Ack()) // first chunk only
	dev := newTestDevice(t, port)

	err := dev.Transfer(bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrChunkNotAcked)
	assert.Len(t, port.Writes(), 2, "abort happens after the unacknowledged chunk, with no retry")
}

func TestTransferFinalShortChunk(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0x42}, chunkSize+904)
	port := NewMockPort()
	port.QueueRead(display.Ack())
	port.QueueRead(display.Ack())
	dev := newTestDevice(t, port)

	err := dev.Transfer(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	writes := port.Writes()
	require.Len(t, writes, 2)
	assert.Len(t, writes[0], chunkSize)
	assert.Len(t, writes[1], 904)
}

func TestTransferEmptyFile(t *testing.T) {
	t.Parallel()

	port := NewMockPort()
	dev := newTestDevice(t, port)

	err := dev.Transfer(bytes.NewReader(nil), 0)
	require.NoError(t, err)
	assert.Empty(t, port.Writes())
}

func TestTransferTimeoutSequencePerChunk(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0x01}, chunkSize)
	port := NewMockPort()
	port.QueueRead(display.Ack())
	dev := newTestDevice(t, port)

	require.NoError(t, dev.Transfer(bytes.NewReader(data), int64(len(data))))

	// Write phase uses the long timeout, the ack read the short one.
	timeouts := port.Timeouts()
	require.Len(t, timeouts, 2)
	assert.Equal(t, chunkWriteTimeout, timeouts[0])
	assert.Equal(t, ackTimeout, timeouts[1])
}

// writeImage writes a scratch image file of the given size.
func writeImage(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "screen.tft")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0x5A}, size), 0o600))
	return path
}

func TestUploadFullFlow(t *testing.T) {
	t.Parallel()

	path := writeImage(t, 2*chunkSize)

	port := NewMockPort()
	port.QueueRead(display.DefaultHandshake().Build()) // negotiation
	port.QueueRead(display.Ack())                      // baud switch
	port.QueueRead(display.Ack())                      // chunk 1
	port.QueueRead(display.Ack())                      // chunk 2
	rep := &recordReporter{}
	dev := newTestDevice(t, port, WithReporter(rep))

	require.NoError(t, dev.Upload(path))

	// Negotiated at 115200, then switched to the upload rate.
	assert.Equal(t, []int{115200, 115200}, port.BaudRates())
	assert.Equal(t, int64(2*chunkSize), rep.progress[len(rep.progress)-1])

	// The whmi-wri command carries the size the filesystem reported.
	assert.Contains(t, string(port.WrittenBytes()), "whmi-wri 8192,115200,0")
}

func TestUploadRepeatedRunsAreIdentical(t *testing.T) {
	t.Parallel()

	path := writeImage(t, chunkSize)

	run := func() ([]int, error) {
		port := NewMockPort()
		port.QueueRead(display.DefaultHandshake().Build())
		port.QueueRead(display.Ack())
		port.QueueRead(display.Ack())
		dev := newTestDevice(t, port)
		err := dev.Upload(path)
		return port.BaudRates(), err
	}

	bauds1, err1 := run()
	bauds2, err2 := run()
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, bauds1, bauds2, "a re-run must behave exactly like a cold run")
}

func TestUploadAbortsBeforeTransferWhenNegotiationFails(t *testing.T) {
	t.Parallel()

	path := writeImage(t, chunkSize)

	port := NewMockPort()
	dev := newTestDevice(t, port)

	err := dev.Upload(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoHandshake)

	// Only connect probes went out, never whmi-wri or data.
	assert.NotContains(t, string(port.WrittenBytes()), "whmi-wri")
}

func TestUploadMissingFile(t *testing.T) {
	t.Parallel()

	port := NewMockPort()
	dev := newTestDevice(t, port)

	err := dev.Upload(filepath.Join(t.TempDir(), "nope.tft"))
	require.Error(t, err)
	assert.Empty(t, port.Writes(), "no serial I/O before the file is readable")
}
