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

// Package arith provides float64 addition, multiplication and division.
//
// The functions follow IEEE-754 double-precision semantics, including
// signed zero:
//
//	arith.Add(math.Copysign(0, -1), 0)      // +0
//	arith.Multiply(math.Copysign(0, -1), 5) // -0
//	arith.Divide(0, -5)                     // -0, nil
//
// Divide is the only operation that can fail. A zero divisor, of either
// sign, yields ErrDivisionByZero whose message is "Cannot divide by zero":
//
//	if _, err := arith.Divide(5, 0); errors.Is(err, arith.ErrDivisionByZero) {
//	    // handle
//	}
//
// # Instrumentation
//
// Calculator exposes the same operations and counts them with Prometheus:
//
//	calc, err := arith.NewCalculator(prometheus.DefaultRegisterer)
//	if err != nil {
//	    return err
//	}
//	q, err := calc.Divide(6, 2)
//
// All functions are pure and safe for concurrent use.
package arith
