/* spectrum contains functions analysing spectrum composition of signals.
 *
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
package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/google-research/analogue/tools/synthesize/signals"
	"github.com/google-research/analogue/tools/workerpool"
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/spectral"
	"github.com/mjibson/go-dsp/window"
)

// S is the spectrum of a sampled signal.
type S struct {
	Coeffs      []complex128
	SignalPower []signals.DB
	NoisePower  []signals.DB
	BinWidth    float64
	Rate        float64
}

type config struct {
	hann bool
}

// Option configures a spectrum computation.
type Option func(*config)

// WithHann applies a Hann window to the buffer before transforming it.
func WithHann() Option {
	return func(c *config) {
		c.hann = true
	}
}

// minNoisePower stands in for a residual that rounding made non positive.
const minNoisePower = 1e-20

// gain returns the amplitude of a sine producing coeff in a transform of n samples.
func gain(coeff complex128, n int) float64 {
	return 2 * cmplx.Abs(coeff) / float64(n)
}

// Gains returns the gain of each coefficient, normalized so that a full
// scale sine centered in a bin has gain 1.
func (s *S) Gains() []float64 {
	res := make([]float64, len(s.Coeffs))
	for idx, coeff := range s.Coeffs {
		res[idx] = gain(coeff, len(s.Coeffs))
	}
	return res
}

// PeakSNR returns the frequency of the bin with the highest signal to noise
// ratio, and that ratio. The DC bin is never a peak.
func (s *S) PeakSNR() (float64, signals.DB) {
	peakFreq := -1.0
	peakSNR := signals.DB(math.Inf(-1))
	for bin := 1; bin < len(s.SignalPower); bin++ {
		if snr := s.SignalPower[bin] - s.NoisePower[bin]; snr > peakSNR {
			peakSNR = snr
			peakFreq = float64(bin) * s.BinWidth
		}
	}
	return peakFreq, peakSNR
}

// Compute returns the spectrum of buffer, sampled at rate.
//
// For every bin below the Nyquist frequency, SignalPower is the power of a
// sine matching the bin, and NoisePower is the power of everything else in
// the buffer. An empty buffer has no bins.
func Compute(buffer signals.Float64Slice, rate float64, opts ...Option) *S {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if len(buffer) == 0 {
		return &S{Rate: rate}
	}
	samples := []float64(buffer)
	if cfg.hann {
		samples = make([]float64, len(buffer))
		copy(samples, buffer)
		window.Apply(samples, window.Hann)
	}
	n := len(samples)
	spec := &S{
		Coeffs:   fft.FFTReal(samples),
		BinWidth: rate / float64(n),
		Rate:     rate,
	}
	bins := n / 2

	// By Parseval, the mean square of the buffer is the sum of binEnergy.
	binEnergy := make([]float64, n)
	meanSquare := 0.0
	for bin, coeff := range spec.Coeffs {
		binEnergy[bin] = (real(coeff)*real(coeff) + imag(coeff)*imag(coeff)) / (float64(n) * float64(n))
		meanSquare += binEnergy[bin]
	}
	offset := (cmplx.Abs(spec.Coeffs[0]) + cmplx.Abs(spec.Coeffs[bins])) / float64(n)

	spec.SignalPower = make([]signals.DB, bins)
	spec.NoisePower = make([]signals.DB, bins)
	for bin := 1; bin < bins; bin++ {
		g := gain(spec.Coeffs[bin], n)
		spec.SignalPower[bin] = signals.Power(0.5 * g * g).DB()
		noisePower := meanSquare - binEnergy[bin] - binEnergy[n-bin] - offset*offset
		if noisePower <= 0 {
			noisePower = minNoisePower
		}
		spec.NoisePower[bin] = signals.Power(noisePower).DB()
	}
	return spec
}

// Analyze returns the spectrum of the first n samples of s at the given rate.
func Analyze(s signals.Signal, rate float64, n int, opts ...Option) (*S, error) {
	if n < 2 {
		return nil, fmt.Errorf("can't analyze %v samples", n)
	}
	if !(rate > 0) {
		return nil, fmt.Errorf("can't analyze at %vHz", rate)
	}
	return Compute(signals.RenderN(s, rate, n), rate, opts...), nil
}

// AnalyzeAll analyzes all the signals, running at most concurrency analyses at a time.
func AnalyzeAll(sigs []signals.Signal, rate float64, n int, concurrency int, opts ...Option) ([]*S, error) {
	res := make([]*S, len(sigs))
	if err := workerpool.Each(concurrency, len(sigs), func(idx int) error {
		spec, err := Analyze(sigs[idx], rate, n, opts...)
		if err != nil {
			return fmt.Errorf("signal %v: %w", idx, err)
		}
		res[idx] = spec
		return nil
	}); err != nil {
		return nil, err
	}
	return res, nil
}

// Welch returns the power spectral density of the first n samples of s at
// the given rate, estimated with Welch's method over Hann windowed segments
// of nfft samples overlapping by half.
func Welch(s signals.Signal, rate float64, n, nfft int) (psd, freqs []float64) {
	return spectral.Pwelch(signals.RenderN(s, rate, n), rate, &spectral.PwelchOptions{
		NFFT:     nfft,
		Noverlap: nfft / 2,
		Window:   window.Hann,
	})
}
