// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package arith

import (
	cerrors "github.com/kraklabs/arith/internal/errors"
)

var errDivisionByZero = cerrors.NewInputError(
	"Cannot divide by zero",
	"The divisor is zero",
	"Pass a non-zero divisor",
)

// ErrDivisionByZero matches, under errors.Is, the error Divide returns when
// the divisor is zero. Divide returns a fresh copy on every call; the
// sentinel itself must not be modified.
var ErrDivisionByZero error = errDivisionByZero

// Add returns a + b. -0 + 0 is +0.
func Add(a, b float64) float64 {
	return a + b
}

// Multiply returns a * b. The sign of a zero product follows IEEE-754,
// so -0 * 5 is -0.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or an error matching ErrDivisionByZero if b is
// zero (+0 or -0), whatever the value of a.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivisionByZero.Clone()
	}
	return a / b, nil
}
