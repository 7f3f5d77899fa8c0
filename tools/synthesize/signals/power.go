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
	"math"
)

const (
	// FullScaleSinePower is 0.5 due to power = avg(sum(v^2)) - avg(v)^2.
	FullScaleSinePower Power = 0.5
	// RMSSamples is the number of samples RMS draws from a signal.
	RMSSamples = 100
)

// PowerCalculator calculates power of signals.
//
// Means are kept as running means, mean_n = mean_n-1 + (x_n - mean_n-1) / n,
// to avoid accumulating large sums.
type PowerCalculator struct {
	mean       float64
	meanSquare float64
	len        float64
}

// Feed feeds the calculator the next sample.
func (p *PowerCalculator) Feed(f float64) {
	p.len++
	p.mean += (f - p.mean) / p.len
	p.meanSquare += (f*f - p.meanSquare) / p.len
}

// Len returns the number of samples fed so far.
func (p *PowerCalculator) Len() int {
	return int(p.len)
}

// MeanSquare returns the mean of the squared samples so far.
func (p *PowerCalculator) MeanSquare() float64 {
	return p.meanSquare
}

// RMS returns the root mean square of the samples so far.
func (p *PowerCalculator) RMS() float64 {
	return math.Sqrt(p.meanSquare)
}

// Power returns the power of the signal so far.
func (p *PowerCalculator) Power() Power {
	return Power(p.meanSquare - p.mean*p.mean)
}

// RMS estimates the root mean square of s by sampling it RMSSamples times
// evenly over the given period, starting at time 0.
//
// The sample count is fixed; callers needing more accuracy should average
// estimates over several periods.
func RMS(s Signal, period Seconds) float64 {
	pc := &PowerCalculator{}
	sampler := newSampler(RMSSamples/float64(period), s)
	for i := 0; i < RMSSamples; i++ {
		pc.Feed(sampler.Next())
	}
	return pc.RMS()
}
