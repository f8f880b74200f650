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
	"github.com/prometheus/client_golang/prometheus"

	cerrors "github.com/kraklabs/arith/internal/errors"
)

// Operation labels for arith_operations_total.
const (
	OpAdd      = "add"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// Calculator wraps Add, Multiply and Divide with Prometheus counters.
// Create one with NewCalculator. A nil or zero Calculator computes the
// same results without counting.
type Calculator struct {
	ops          *prometheus.CounterVec
	divideByZero prometheus.Counter
}

// NewCalculator creates a Calculator and registers its collectors with reg.
//
// A nil reg leaves the collectors unregistered; the counters still count.
// Registering twice with the same registry fails with an internal
// UserError wrapping prometheus.AlreadyRegisteredError.
func NewCalculator(reg prometheus.Registerer) (*Calculator, error) {
	c := &Calculator{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arith_operations_total",
			Help: "Arithmetic operations performed, by operation",
		}, []string{"op"}),
		divideByZero: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arith_division_by_zero_total",
			Help: "Divisions rejected because the divisor was zero",
		}),
	}

	// Export every op at zero before its first call.
	for _, op := range []string{OpAdd, OpMultiply, OpDivide} {
		c.ops.WithLabelValues(op)
	}

	if reg == nil {
		return c, nil
	}

	collectors := []prometheus.Collector{c.ops, c.divideByZero}
	for i, col := range collectors {
		if err := reg.Register(col); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, cerrors.NewInternalError(
				"Cannot register arith metrics",
				"A collector with the same name is already registered",
				"Create one Calculator per registry and share it",
				err,
			)
		}
	}
	return c, nil
}

// Add returns Add(a, b) and counts the call.
func (c *Calculator) Add(a, b float64) float64 {
	c.count(OpAdd)
	return Add(a, b)
}

// Multiply returns Multiply(a, b) and counts the call.
func (c *Calculator) Multiply(a, b float64) float64 {
	c.count(OpMultiply)
	return Multiply(a, b)
}

// Divide returns Divide(a, b) and counts the call. Rejected divisions
// also increment arith_division_by_zero_total.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	c.count(OpDivide)
	q, err := Divide(a, b)
	if err != nil && c != nil && c.divideByZero != nil {
		c.divideByZero.Inc()
	}
	return q, err
}

func (c *Calculator) count(op string) {
	if c == nil || c.ops == nil {
		return
	}
	c.ops.WithLabelValues(op).Inc()
}
