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
)

// Protocol errors
var (
	// ErrNoHandshake indicates no candidate baud rate produced a comok
	// response from the display.
	ErrNoHandshake = errors.New("no baud rate achieved handshake")

	// ErrMalformedHandshake indicates the display answered comok but the
	// identification record could not be parsed.
	ErrMalformedHandshake = errors.New("malformed handshake response")

	// ErrUploadBaudRejected indicates the whmi-wri command was not
	// acknowledged at the target rate.
	ErrUploadBaudRejected = errors.New("upload baud rate not acknowledged")

	// ErrChunkNotAcked indicates a data chunk was not acknowledged.
	ErrChunkNotAcked = errors.New("data chunk not acknowledged")
)

// Validation errors
var (
	// ErrFileTooLarge indicates the image exceeds the display's flash size.
	ErrFileTooLarge = errors.New("file larger than device flash")

	// ErrModelMismatch indicates the connected display is not the model
	// the caller asked for.
	ErrModelMismatch = errors.New("wrong display model connected")

	// ErrInvalidModelName indicates a model name not matching the
	// NX####[TK]### naming scheme.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidFlashSize indicates the display reported a flash size
	// field that is not a number.
	ErrInvalidFlashSize = errors.New("invalid flash size in handshake")
)

// ErrorType classifies upload failures. All of them are terminal for the
// run; the classification exists for reporting, not for retry decisions.
type ErrorType int

const (
	// ErrorTypeUnknown is the zero classification.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeValidation covers pre-flight and post-handshake checks
	// (model pattern, flash size, model match).
	ErrorTypeValidation
	// ErrorTypeProtocol covers the device not answering as the bootloader
	// protocol requires (no handshake, missing acknowledgements).
	ErrorTypeProtocol
	// ErrorTypePort covers failures of the serial channel itself.
	ErrorTypePort
)

// ProtocolError wraps a stage failure with the operation that produced it.
type ProtocolError struct {
	Err  error
	Op   string
	Type ErrorType
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the classification of err, unwrapping as needed.
func GetErrorType(err error) ErrorType {
	var perr *ProtocolError
	if errors.As(err, &perr) {
		return perr.Type
	}
	switch {
	case errors.Is(err, ErrNoHandshake),
		errors.Is(err, ErrMalformedHandshake),
		errors.Is(err, ErrUploadBaudRejected),
		errors.Is(err, ErrChunkNotAcked):
		return ErrorTypeProtocol
	case errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrModelMismatch),
		errors.Is(err, ErrInvalidModelName),
		errors.Is(err, ErrInvalidFlashSize):
		return ErrorTypeValidation
	}
	return ErrorTypeUnknown
}

func protocolErr(op string, err error) *ProtocolError {
	return &ProtocolError{Op: op, Err: err, Type: ErrorTypeProtocol}
}

func validationErr(op string, err error) *ProtocolError {
	return &ProtocolError{Op: op, Err: err, Type: ErrorTypeValidation}
}

func portErr(op string, err error) *ProtocolError {
	return &ProtocolError{Op: op, Err: err, Type: ErrorTypePort}
}
