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

import "math"

// AM is an amplitude modulation modulating a signal.
type AM struct {
	// Fraction is the fraction of the amplitude coming from the AM.
	Fraction float64
	// Frequency is the frequency of oscillation between low and high amplitude.
	Frequency Hz
}

// FM is a frequency modulation modulating a signal.
type FM struct {
	// Width is the distance between low and high modulation.
	Width Hz
	// Frequency is the frequency of oscillation between low and high frequency.
	Frequency Hz
}

// FMSine returns a full scale sine of freq, its phase modulated by fm.
// A zero width or frequency leaves the sine unmodulated.
func FMSine(freq Hz, fm FM) Signal {
	if fm.Width == 0 || fm.Frequency == 0 {
		return Sine(freq)
	}
	index := float64(fm.Width) / float64(fm.Frequency)
	return NewFunc(func(t Seconds) float64 {
		return math.Sin(2*math.Pi*freq.At(t) + index*math.Sin(2*math.Pi*fm.Frequency.At(t)))
	})
}

// Modulated returns a sine of freq modulated by fm, mixed with a sine of
// am.Frequency carrying am.Fraction of the amplitude.
func Modulated(freq Hz, am AM, fm FM) Signal {
	carrier := FMSine(freq, fm)
	if am.Fraction == 0 {
		return carrier
	}
	return Sum(carrier.Scale(1-am.Fraction), Sine(am.Frequency).Scale(am.Fraction))
}
