/*
 * Copyright 2020 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     https://www.apache.org/licenses/LICENSE-2.0
 *
 *     Unless required by applicable law or agreed to in writing, software
 *     distributed under the License is distributed on an "AS IS" BASIS,
 *     WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *     See the License for the specific language governing permissions and
 *     limitations under the License.
 */
package signals

import (
	"errors"
	"fmt"
	"math"

	"github.com/google-research/analogue/tools/workerpool"
)

var (
	// ErrInvalidTable means that a table was declared with a non positive rate or period.
	ErrInvalidTable = errors.New("invalid sample table")
	// ErrShortTable means that a table has too few samples to cover its declared period.
	ErrShortTable = errors.New("sample table does not cover its period")
	// ErrLargeTable means that a rate and period need more than MaxTableLen samples.
	ErrLargeTable = errors.New("sample table too large")
)

// MaxTableLen is the largest number of samples FromFunc and SumTables will allocate.
const MaxTableLen = math.MaxInt32

// tableLen returns floor(rate*period) as a length.
func tableLen(rate float64, period Seconds) (int, error) {
	n := math.Floor(rate * float64(period))
	if n > MaxTableLen {
		return 0, fmt.Errorf("%w: rate %v and period %v need %v samples, max is %v", ErrLargeTable, rate, period, n, MaxTableLen)
	}
	return int(n), nil
}

// Table is a signal realized as one period of precomputed samples.
//
// Evaluation is a constant time lookup, exact only at sample boundaries.
// A Table is never modified after construction.
type Table struct {
	samples []float64
	rate    float64
	period  Seconds
}

// TableOption configures how FromFunc computes sample times.
type TableOption func(*tableConfig)

type tableConfig struct {
	indexTime bool
}

// WithIndexTime makes FromFunc evaluate sample k at time k instead of k/rate.
// This only yields correct seconds when the rate is 1, and exists to reproduce
// tables built with that convention.
func WithIndexTime() TableOption {
	return func(c *tableConfig) {
		c.indexTime = true
	}
}

// NewTable returns a table of the given samples, covering one period at the given rate.
func NewTable(samples []float64, rate float64, period Seconds) (*Table, error) {
	if !(rate > 0) || !(period > 0) || math.IsInf(rate, 0) || math.IsInf(float64(period), 0) {
		return nil, fmt.Errorf("%w: rate %v, period %v", ErrInvalidTable, rate, period)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrShortTable)
	}
	if needed := math.Floor(rate*float64(period)) - 1; float64(len(samples)) < needed {
		return nil, fmt.Errorf("%w: %v samples, need at least %v for rate %v and period %v", ErrShortTable, len(samples), needed, rate, period)
	}
	t := &Table{
		samples: make([]float64, len(samples)),
		rate:    rate,
		period:  period,
	}
	copy(t.samples, samples)
	return t, nil
}

// FromFunc returns a table of floor(rate*period) samples of e.
func FromFunc(e Evaluator, rate float64, period Seconds, opts ...TableOption) (*Table, error) {
	cfg := tableConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !(rate > 0) || !(period > 0) || math.IsInf(rate, 0) || math.IsInf(float64(period), 0) {
		return nil, fmt.Errorf("%w: rate %v, period %v", ErrInvalidTable, rate, period)
	}
	n, err := tableLen(rate, period)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: rate %v and period %v produce no samples", ErrShortTable, rate, period)
	}
	samples := make([]float64, n)
	for k := range samples {
		t := Seconds(float64(k) / rate)
		if cfg.indexTime {
			t = Seconds(k)
		}
		samples[k] = e.Evaluate(t)
	}
	return &Table{
		samples: samples,
		rate:    rate,
		period:  period,
	}, nil
}

// Len returns the number of samples in the table.
func (t *Table) Len() int {
	return len(t.samples)
}

// Rate returns the sample rate of the table.
func (t *Table) Rate() float64 {
	return t.rate
}

// Period returns the period covered by the table.
func (t *Table) Period() Seconds {
	return t.period
}

// Samples returns a copy of the samples in the table.
func (t *Table) Samples() Float64Slice {
	res := make(Float64Slice, len(t.samples))
	copy(res, t.samples)
	return res
}

// index returns floor(rate * (at mod period)) mod len, using the euclidean
// remainder so that negative times wrap into the period.
func (t *Table) index(at Seconds) int {
	rem := math.Mod(float64(at), float64(t.period))
	if rem < 0 {
		rem += float64(t.period)
	}
	idx := int(math.Floor(t.rate*rem)) % len(t.samples)
	if idx < 0 {
		idx += len(t.samples)
	}
	return idx
}

// Evaluate returns the stored sample for time at.
func (t *Table) Evaluate(at Seconds) float64 {
	return t.samples[t.index(at)]
}

// At returns the stored sample for time at.
func (t *Table) At(at Seconds) float64 {
	return t.Evaluate(at)
}

// Signal returns the table as a Signal.
func (t *Table) Signal() Signal {
	return New(t)
}

// Scale returns a table with every sample multiplied by by.
func (t *Table) Scale(by float64) *Table {
	res := &Table{
		samples: make([]float64, len(t.samples)),
		rate:    t.rate,
		period:  t.period,
	}
	for idx, v := range t.samples {
		res.samples[idx] = v * by
	}
	return res
}

// IncrFrequency returns a table replaying the same samples by times faster.
// The period is divided and the rate multiplied by by, without resampling,
// so the result only approximates a compressed waveform.
// Panics if by is not strictly positive.
func (t *Table) IncrFrequency(by float64) *Table {
	if !(by > 0) {
		panic(fmt.Sprintf("signals: frequency factor must be positive, got %v", by))
	}
	return &Table{
		samples: t.samples,
		rate:    t.rate * by,
		period:  t.period / Seconds(by),
	}
}

// Phase returns a table whose samples are rotated left by floor(rate*by)
// positions. This matches Signal.Phase only when by is a whole number of
// samples. Panics if rate*by is not finite.
func (t *Table) Phase(by Seconds) *Table {
	shift := math.Floor(t.rate * float64(by))
	if math.IsNaN(shift) || math.IsInf(shift, 0) {
		panic(fmt.Sprintf("signals: can't rotate a table at %vHz by %v", t.rate, by))
	}
	n := len(t.samples)
	pivot := int(math.Mod(shift, float64(n)))
	if pivot < 0 {
		pivot += n
	}
	res := &Table{
		samples: make([]float64, 0, n),
		rate:    t.rate,
		period:  t.period,
	}
	res.samples = append(res.samples, t.samples[pivot:]...)
	res.samples = append(res.samples, t.samples[:pivot]...)
	return res
}

// SumTables returns the pointwise sum of the tables, resampled onto a common
// table with the largest period and the largest rate among them.
// The sum of no tables is a single silent sample.
func SumTables(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return &Table{samples: []float64{0}, rate: 1, period: 1}, nil
	}
	rate := 0.0
	period := Seconds(0)
	for _, t := range tables {
		if t.rate > rate {
			rate = t.rate
		}
		if t.period > period {
			period = t.period
		}
	}
	n, err := tableLen(rate, period)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		n = 1
	}
	resampled := make([][]float64, len(tables))
	if err := workerpool.Each(0, len(tables), func(idx int) error {
		operand := make([]float64, n)
		for k := range operand {
			operand[k] = tables[idx].Evaluate(Seconds(float64(k) / rate))
		}
		resampled[idx] = operand
		return nil
	}); err != nil {
		return nil, err
	}
	res := &Table{
		samples: make([]float64, n),
		rate:    rate,
		period:  period,
	}
	for _, operand := range resampled {
		for k := range res.samples {
			res.samples[k] += operand[k]
		}
	}
	return res, nil
}
