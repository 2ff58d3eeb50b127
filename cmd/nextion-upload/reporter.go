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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	nextion "github.com/OpenHMIProject/go-nextion"
)

const (
	colorGreen = "\033[0;32m"
	colorRed   = "\033[0;31m"
	colorReset = "\033[0m"

	labelWidth = 18
)

// consoleReporter renders upload events as the aligned, colored status
// lines the tool has always printed, plus a progress bar for the transfer.
type consoleReporter struct {
	bar *progressbar.ProgressBar
}

func newConsoleReporter() *consoleReporter {
	return &consoleReporter{}
}

func (*consoleReporter) BaudTried(baud int, ok bool) {
	printAligned(fmt.Sprintf("Trying %d", baud), "", mark(ok), colorFor(ok))
}

func (*consoleReporter) Connected(info *nextion.DeviceInfo, baud int) {
	printAligned("Connected Speed", fmt.Sprint(baud), "✔", colorGreen)
	status := strings.ToLower(info.Status)
	if statusOK(info.Status) {
		printAligned("Status", status, "✔", colorGreen)
	} else {
		printAligned("Status", status, "⚠", colorRed)
	}
	printAligned("Touchscreen", yesNo(info.Touchscreen), "", "")
	printAligned("Model", info.Model, "✔", colorGreen)
	printAligned("Firmware version", info.FirmwareVersion, "", "")
	printAligned("MCU code", info.MCUCode, "", "")
	printAligned("Serial", info.SerialNumber, "", "")
	printAligned("Flash size", info.FlashSizeRaw, "", "")
}

func (*consoleReporter) UploadBaudSet(baud int, ok bool) {
	printAligned("Upload Speed", fmt.Sprint(baud), mark(ok), colorFor(ok))
}

func (r *consoleReporter) Progress(sent, total int64) {
	if r.bar == nil {
		r.bar = progressbar.NewOptions64(total,
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Downloading"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionOnCompletion(func() { fmt.Println() }),
		)
	}
	_ = r.bar.Set64(sent)
}

// statusOK ignores case; some firmware revisions report the status
// field in upper case.
func statusOK(status string) bool {
	return strings.ToLower(status) == "comok"
}

func printAligned(label, value, symbol, color string) {
	pad := strings.Repeat(" ", max(labelWidth-len(label), 0))
	if color != "" {
		fmt.Printf("%s%s: %s%s %s%s\n", label, pad, color, value, symbol, colorReset)
		return
	}
	fmt.Printf("%s\n", strings.TrimRight(fmt.Sprintf("%s%s: %s %s", label, pad, value, symbol), " "))
}

func mark(ok bool) string {
	if ok {
		return "✔"
	}
	return "✗"
}

func colorFor(ok bool) string {
	if ok {
		return colorGreen
	}
	return colorRed
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func printError(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorRed, msg, colorReset)
}
