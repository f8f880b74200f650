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

// Package testing provides test helpers for arith tests.
//
// # Float Comparisons
//
// testify's Equal treats -0 and +0 as equal, so signed-zero results need
// explicit assertions:
//
//	got := arith.Multiply(math.Copysign(0, -1), 5)
//	testing.RequireNegativeZero(t, got)
//
// Approximate results use Tolerance:
//
//	assert.InDelta(t, 0.3, arith.Add(0.1, 0.2), testing.Tolerance)
//
// # Scenario Fixtures
//
// LoadScenarios reads table-driven cases from a YAML file:
//
//	- name: divide by zero
//	  op: divide
//	  a: 5
//	  b: 0
//	  error: Cannot divide by zero
//
// Operands are parsed with strconv.ParseFloat, so "-0" keeps its sign.
// The literal max_safe_integer stands for 2^53-1.
package testing
