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
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/kraklabs/arith/internal/errors"
	arithtest "github.com/kraklabs/arith/internal/testing"
)

var negZero = math.Copysign(0, -1)

// run dispatches a scenario to the package-level function it names.
func run(t *testing.T, op string, a, b float64) (float64, error) {
	t.Helper()
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	}
	t.Fatalf("unknown op %q", op)
	return 0, nil
}

func TestScenarios(t *testing.T) {
	for _, sc := range arithtest.LoadScenarios(t, "testdata/scenarios.yaml") {
		t.Run(sc.Name, func(t *testing.T) {
			got, err := run(t, sc.Op, float64(sc.A), float64(sc.B))

			if sc.Error != "" {
				require.Error(t, err)
				assert.EqualError(t, err, sc.Error)
				assert.ErrorIs(t, err, ErrDivisionByZero)
				return
			}
			require.NoError(t, err)

			switch {
			case sc.Approx:
				assert.InDelta(t, float64(sc.Want), got, arithtest.Tolerance)
			case sc.NegativeZero:
				arithtest.RequireNegativeZero(t, got)
			case sc.Want == 0:
				arithtest.RequirePositiveZero(t, got)
			default:
				assert.Equal(t, float64(sc.Want), got)
			}
		})
	}
}

func TestDivide_ByZero(t *testing.T) {
	dividends := []struct {
		name string
		a    float64
	}{
		{"positive", 5},
		{"negative", -5},
		{"zero", 0},
		{"negative zero", negZero},
		{"large", math.MaxFloat64},
		{"infinity", math.Inf(1)},
		{"nan", math.NaN()},
	}

	for _, d := range dividends {
		for _, b := range []float64{0, negZero} {
			t.Run(fmt.Sprintf("%s/b=%v", d.name, b), func(t *testing.T) {
				got, err := Divide(d.a, b)
				require.Error(t, err)
				assert.Equal(t, "Cannot divide by zero", err.Error())
				assert.True(t, errors.Is(err, ErrDivisionByZero))
				assert.Zero(t, got)
			})
		}
	}
}

func TestDivide_ErrorDetails(t *testing.T) {
	_, err := Divide(5, 0)

	var ue *cerrors.UserError
	require.True(t, errors.As(err, &ue), "ErrDivisionByZero should be a UserError")
	assert.Equal(t, cerrors.ExitInput, ue.ExitCode)
	assert.Equal(t, cerrors.ExitInput, cerrors.ExitCode(err))
	assert.NotEmpty(t, ue.Cause)
	assert.NotEmpty(t, ue.Fix)
	assert.Contains(t, ue.Format(true), "Error: Cannot divide by zero")
	assert.Equal(t, "Cannot divide by zero", ue.ToJSON().Error)
}

func TestDivide_Idempotent(t *testing.T) {
	_, err1 := Divide(5, 0)
	_, err2 := Divide(5, 0)
	assert.NotSame(t, err1, err2, "each failure should be a fresh error")
	assert.ErrorIs(t, err1, ErrDivisionByZero)
	assert.ErrorIs(t, err2, ErrDivisionByZero)
	assert.Equal(t, err1.Error(), err2.Error())

	q1, _ := Divide(1, 3)
	q2, _ := Divide(1, 3)
	assert.Equal(t, q1, q2)
}

func TestDivide_ReturnedErrorIsIsolated(t *testing.T) {
	_, err := Divide(5, 0)
	var ue *cerrors.UserError
	require.True(t, errors.As(err, &ue))
	ue.Message = "changed"
	ue.ExitCode = cerrors.ExitInternal

	_, err = Divide(-5, 0)
	assert.EqualError(t, err, "Cannot divide by zero")
	assert.Equal(t, cerrors.ExitInput, cerrors.ExitCode(err))
	assert.EqualError(t, ErrDivisionByZero, "Cannot divide by zero")
}

func TestSignedZero(t *testing.T) {
	arithtest.RequirePositiveZero(t, Add(negZero, 0))
	arithtest.RequirePositiveZero(t, Add(0, negZero))
	arithtest.RequireNegativeZero(t, Add(negZero, negZero))

	arithtest.RequireNegativeZero(t, Multiply(negZero, 5))
	arithtest.RequireNegativeZero(t, Multiply(5, negZero))
	arithtest.RequirePositiveZero(t, Multiply(negZero, negZero))

	q, err := Divide(0, -5)
	require.NoError(t, err)
	arithtest.RequireNegativeZero(t, q)

	q, err = Divide(negZero, -5)
	require.NoError(t, err)
	arithtest.RequirePositiveZero(t, q)
}

// operands is a deterministic grid of finite values covering signs,
// magnitudes and fractions.
var operands = []float64{
	0, 1, -1, 2, -3, 0.1, 0.2, -0.5, 1.5, 2.5, 7, -13,
	1e-3, 1e3, -1e6, 123456.789, arithtest.MaxSafeInteger, -arithtest.MaxSafeInteger,
}

func TestProperties_Commutativity(t *testing.T) {
	for _, a := range operands {
		for _, b := range operands {
			assert.Equal(t, Add(a, b), Add(b, a), "Add(%v, %v)", a, b)
			assert.Equal(t, Multiply(a, b), Multiply(b, a), "Multiply(%v, %v)", a, b)
		}
	}
}

func TestProperties_Identities(t *testing.T) {
	for _, a := range operands {
		assert.Equal(t, a, Add(a, 0), "Add(%v, 0)", a)
		assert.Equal(t, a, Multiply(a, 1), "Multiply(%v, 1)", a)

		zero := Multiply(a, 0)
		assert.Zero(t, zero, "Multiply(%v, 0)", a)
		assert.Equal(t, math.Signbit(a), math.Signbit(zero), "sign of Multiply(%v, 0)", a)
	}
}

func TestProperties_DivideRoundTrip(t *testing.T) {
	for _, a := range operands {
		for _, b := range operands {
			if b == 0 {
				continue
			}
			q, err := Divide(a, b)
			require.NoError(t, err)
			delta := 1e-9 * math.Max(1, math.Abs(a))
			assert.InDelta(t, a, Multiply(q, b), delta, "Divide(%v, %v) * %v", a, b, b)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n float64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, n+2, Add(n, 2))
				assert.Equal(t, n*2, Multiply(n, 2))
				q, err := Divide(n, 2)
				assert.NoError(t, err)
				assert.Equal(t, n/2, q)
				_, err = Divide(n, 0)
				assert.ErrorIs(t, err, ErrDivisionByZero)
			}
		}(float64(i))
	}
	wg.Wait()
}
