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
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google-research/analogue/tools/synthesize/signals"
	"github.com/mjibson/go-dsp/fft"
)

// ErrInvalidBand means that a band limited noise can't be synthesized with the given limits.
var ErrInvalidBand = errors.New("invalid noise band")

// BandLimited returns one period of white noise containing only the
// frequencies in [lower, upper), at level relative to a full scale sine.
//
// The noise is synthesized in the frequency domain, with normally
// distributed coefficients for every bin in the band, and transformed back.
// The result is a deterministic table that repeats every period without
// discontinuity. Frequencies are rounded to multiples of 1/period.
func BandLimited(lower, upper signals.Hz, level signals.DB, period signals.Seconds, rate signals.Hz, opts ...Option) (*signals.Table, error) {
	if rate == 0 || !(period > 0) || math.IsInf(float64(period), 0) {
		return nil, fmt.Errorf("%w: rate %v, period %v", ErrInvalidBand, rate, period)
	}
	if lower >= upper || 2*float64(upper) > float64(rate) {
		return nil, fmt.Errorf("%w: [%v, %v) at %v", ErrInvalidBand, lower, upper, rate)
	}
	size := math.Floor(float64(period) * float64(rate))
	if size > signals.MaxTableLen {
		return nil, fmt.Errorf("%w: %v samples at %v over %v", signals.ErrLargeTable, size, rate, period)
	}
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.source == nil {
		cfg.source = rand.NewSource(rand.Int63())
	}
	r := rand.New(cfg.source)

	coeffs := make([]complex128, int(size))
	minBin := int(math.Round(float64(lower) * float64(period)))
	maxBin := int(math.Round(float64(upper) * float64(period)))
	if maxBin > len(coeffs) {
		maxBin = len(coeffs)
	}
	for bin := minBin; bin < maxBin; bin++ {
		coeffs[bin] = complex(r.NormFloat64(), r.NormFloat64())
	}
	samples := make(signals.Float64Slice, len(coeffs))
	for idx, v := range fft.IFFT(coeffs) {
		samples[idx] = real(v)
	}
	samples.SetDBFS(level)
	return signals.NewTable(samples, float64(rate), period)
}
