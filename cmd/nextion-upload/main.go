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

// nextion-upload sends a TFT firmware image to a Nextion display over a
// serial port.
//
// Usage:
//
//	nextion-upload [-debug] <file.tft> <serial-device> [expected-model]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	nextion "github.com/OpenHMIProject/go-nextion"
	"github.com/OpenHMIProject/go-nextion/detection"
	"github.com/OpenHMIProject/go-nextion/transport/uart"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  nextion-upload [-debug] <file.tft> <serial-device> [expected-model]
Example:
  nextion-upload screen.tft /dev/ttyUSB0 NX3224T024
`)
	flag.PrintDefaults()
}

func main() {
	debug := flag.Bool("debug", false, "enable wire-level debug output")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		usage()
		os.Exit(1)
	}
	if *debug {
		nextion.SetDebugEnabled(true)
	}

	filePath, devicePath := args[0], args[1]

	opts := []nextion.Option{nextion.WithReporter(newConsoleReporter())}
	if len(args) == 3 {
		// Reject model typos before touching the serial device.
		if err := nextion.ValidateModelName(args[2]); err != nil {
			printError(fmt.Sprintf("Invalid model name: %s", args[2]))
			os.Exit(1)
		}
		opts = append(opts, nextion.WithExpectedModel(args[2]))
	}

	port, err := uart.Open(devicePath)
	if err != nil {
		printError(fmt.Sprintf("Could not open serial device %s", devicePath))
		listPorts()
		os.Exit(1)
	}
	defer func() { _ = port.Close() }()

	dev, err := nextion.New(port, opts...)
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	if err := dev.Upload(filePath); err != nil {
		printError(failureMessage(err))
		if nextion.DebugEnabled() {
			fmt.Fprintf(os.Stderr, "[nextion] %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("%sFile transferred successfully ✔%s\n", colorGreen, colorReset)
}

// failureMessage maps a stage failure to the message the tool has always
// printed for it.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, nextion.ErrFileTooLarge):
		return "File too big!"
	case errors.Is(err, nextion.ErrModelMismatch):
		return "Wrong Display!"
	case errors.Is(err, nextion.ErrNoHandshake):
		return "Could not find baudrate"
	case errors.Is(err, nextion.ErrUploadBaudRejected):
		return "Could not set upload speed"
	case errors.Is(err, nextion.ErrChunkNotAcked):
		return "Transfer failed!"
	default:
		return err.Error()
	}
}

// listPorts prints the serial ports visible on the system as a hint after
// an open failure.
func listPorts() {
	ports, err := detection.ListPorts()
	if err != nil || len(ports) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "Detected serial ports:")
	for _, p := range ports {
		fmt.Fprintf(os.Stderr, "  %s\n", p)
	}
}
