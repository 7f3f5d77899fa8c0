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
	"fmt"
	"math"
)

// Seconds is a point in time, counted from phase zero.
type Seconds float64

// Hz is a whole number of cycles per second.
type Hz uint32

// At returns the phase, in cycles, accumulated by this frequency at time t.
func (h Hz) At(t Seconds) float64 {
	return float64(h) * float64(t)
}

// Period returns the period of this frequency.
// Panics if the frequency is zero.
func (h Hz) Period() Seconds {
	if h == 0 {
		panic("signals: period of 0Hz is undefined")
	}
	return Seconds(1.0 / float64(h))
}

func (h Hz) String() string {
	return fmt.Sprintf("%dHz", uint32(h))
}

// Power is the signal power, which is equivalent to the variance ( avg(sum(v^2)) - avg(v)^2 ) of a signal.
type Power float64

// DB returns the power converted to Decibel.
func (p Power) DB() DB {
	return DB(10 * math.Log10(float64(p)))
}

// DB is power expressed on a logarithm scale.
type DB float64

// Power returns the power ratio of this Decibel level.
func (d DB) Power() Power {
	return Power(math.Pow(10, float64(d/10)))
}

// Gain returns the amplitude ratio of this Decibel level.
func (d DB) Gain() float64 {
	return math.Pow(10, float64(d/20))
}

// TimeStretch defines a stretch of time.
type TimeStretch struct {
	// FromInclusive is the start of the stretch of time, inclusive.
	FromInclusive Seconds
	// ToExclusive is the end of the stretch of time, exclusive.
	ToExclusive Seconds
}

// Len returns the length of this time stretch.
func (t TimeStretch) Len() Seconds {
	return t.ToExclusive - t.FromInclusive
}

// FrequencyDiscrimination returns the theoretical minimum difference
// between two frequencies needed for a DCT or FFT to distinguish between
// them during this time stretch.
func (t TimeStretch) FrequencyDiscrimination() float64 {
	return float64(1.0 / t.Len())
}
