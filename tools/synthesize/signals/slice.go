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
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Float64Slice represents a buffer of sampled amplitudes.
type Float64Slice []float64

// EqTol reports whether o has the length of f and is within tol of it at every index.
func (f Float64Slice) EqTol(o Float64Slice, tol float64) bool {
	if len(f) != len(o) {
		return false
	}
	for idx, v := range f {
		if math.Abs(v-o[idx]) > tol {
			return false
		}
	}
	return true
}

func (f Float64Slice) calculator() *PowerCalculator {
	pc := &PowerCalculator{}
	for _, val := range f {
		pc.Feed(val)
	}
	return pc
}

// Power returns the signal power of the slice.
func (f Float64Slice) Power() Power {
	return f.calculator().Power()
}

// RMS returns the root mean square of the slice.
func (f Float64Slice) RMS() float64 {
	return f.calculator().RMS()
}

// AddLevel scales the slice in place by d.
func (f Float64Slice) AddLevel(d DB) {
	scale := d.Gain()
	for idx := range f {
		f[idx] *= scale
	}
}

// SetDBFS scales the slice in place so that its power is d relative to a
// full scale sine. A silent slice stays silent.
func (f Float64Slice) SetDBFS(d DB) {
	power := f.Power()
	if power <= 0 {
		return
	}
	f.AddLevel(FullScaleSinePower.DB() - power.DB() + d)
}

// SpectrumGains returns the amplitudes of the sines making up the slice, one
// per bin up to the Nyquist frequency, so a full scale sine centered in a bin
// shows up as 1.
func (f Float64Slice) SpectrumGains() Float64Slice {
	coeffs := fft.FFTReal(f)
	gains := make(Float64Slice, len(coeffs)/2)
	for bin := range gains {
		gains[bin] = 2 * cmplx.Abs(coeffs[bin]) / float64(len(f))
	}
	return gains
}

// PeakFrequencies returns the frequencies of the local maxima in the spectrum
// of the slice, sampled at rate, whose gain is above ratio of the largest gain.
func (f Float64Slice) PeakFrequencies(rate float64, ratio float64) []float64 {
	gains := f.SpectrumGains()
	maxGain := 0.0
	for bin := 1; bin < len(gains); bin++ {
		if gains[bin] > maxGain {
			maxGain = gains[bin]
		}
	}
	cutoff := maxGain * ratio
	binBW := rate / float64(len(f))
	peaks := []float64{}
	for bin := 1; bin+1 < len(gains); bin++ {
		if gains[bin-1] < gains[bin] && gains[bin] > gains[bin+1] && gains[bin] > cutoff {
			peaks = append(peaks, binBW*float64(bin))
		}
	}
	return peaks
}
