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
	"fmt"
	"regexp"
)

// modelNamePattern is the Nextion model naming scheme: NX, four digits,
// T (resistive touch) or K (capacitive), three digits, e.g. NX3224T024.
var modelNamePattern = regexp.MustCompile(`^NX\d{4}[TK]\d{3}$`)

// ValidateModelName checks a user-supplied model name against the Nextion
// naming scheme. The check runs before any serial I/O so typos are caught
// without touching the display.
func ValidateModelName(name string) error {
	if !modelNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidModelName, name)
	}
	return nil
}
