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

package testing

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Tolerance is the absolute delta used for approximate float comparisons.
const Tolerance = 1e-6

// MaxSafeInteger is the largest integer n such that n and n+1 are both
// exactly representable as float64.
const MaxSafeInteger = 1<<53 - 1

// RequireNegativeZero fails the test unless v is -0.
func RequireNegativeZero(t *testing.T, v float64) {
	t.Helper()
	require.Zero(t, v, "expected -0, got %v", v)
	require.True(t, math.Signbit(v), "expected -0, got +0")
}

// RequirePositiveZero fails the test unless v is +0.
func RequirePositiveZero(t *testing.T, v float64) {
	t.Helper()
	require.Zero(t, v, "expected +0, got %v", v)
	require.False(t, math.Signbit(v), "expected +0, got -0")
}

// Operand is a float64 decoded from a YAML scalar.
type Operand float64

// UnmarshalYAML parses the scalar with strconv.ParseFloat so that "-0"
// decodes to negative zero. yaml.v3 would otherwise resolve it as the
// integer 0.
func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operand must be a scalar", node.Line)
	}
	if node.Value == "max_safe_integer" {
		*o = MaxSafeInteger
		return nil
	}
	f, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		return fmt.Errorf("line %d: parse operand %q: %w", node.Line, node.Value, err)
	}
	*o = Operand(f)
	return nil
}

// Scenario is one table-driven arithmetic case.
type Scenario struct {
	Name string  `yaml:"name"`
	Op   string  `yaml:"op"`
	A    Operand `yaml:"a"`
	B    Operand `yaml:"b"`
	Want Operand `yaml:"want"`

	// Approx compares Want within Tolerance instead of exactly.
	Approx bool `yaml:"approx"`

	// NegativeZero requires the result to be -0.
	NegativeZero bool `yaml:"negative_zero"`

	// Error is the exact error message expected; empty means success.
	Error string `yaml:"error"`
}

// LoadScenarios reads a YAML list of scenarios from path.
//
// Example:
//
//	for _, sc := range testing.LoadScenarios(t, "testdata/scenarios.yaml") {
//	    t.Run(sc.Name, func(t *testing.T) { ... })
//	}
func LoadScenarios(t *testing.T, path string) []Scenario {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec // G304: fixture path chosen by the test
	require.NoError(t, err, "failed to read scenario fixture: %s", path)

	var scenarios []Scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios), "failed to decode scenario fixture: %s", path)
	require.NotEmpty(t, scenarios, "scenario fixture %s is empty", path)

	return scenarios
}
