/* Package noise synthesizes random signals calibrated against other signals.
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
package noise

import (
	"math"
	"math/rand"
	"sync"

	"github.com/google-research/analogue/tools/synthesize/signals"
)

type config struct {
	source rand.Source
}

// Option configures the random source of a noise signal.
type Option func(*config)

// WithSeed makes the noise draw from a private source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.source = rand.NewSource(seed)
	}
}

// WithSource makes the noise draw from the provided source.
// The noise signal takes ownership of the source.
func WithSource(source rand.Source) Option {
	return func(c *config) {
		c.source = source
	}
}

// gaussian draws independent normally distributed values, ignoring time.
type gaussian struct {
	stddev float64
	// lock guards r, which is nil when drawing from the process wide source.
	lock sync.Mutex
	r    *rand.Rand
}

func (g *gaussian) Evaluate(signals.Seconds) float64 {
	if g.r == nil {
		return rand.NormFloat64() * g.stddev
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.r.NormFloat64() * g.stddev
}

func (g *gaussian) Stochastic() bool {
	return true
}

// Gaussian returns a stochastic signal drawing a new zero mean normally
// distributed value with the given standard deviation every time it's
// evaluated, regardless of time.
//
// Without options the process wide math/rand source is used.
func Gaussian(stddev float64, opts ...Option) signals.Signal {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	g := &gaussian{stddev: stddev}
	if cfg.source != nil {
		g.r = rand.New(cfg.source)
	}
	return signals.New(g)
}

// RMS returns the root mean square of a noise that would produce the given
// SNR against a signal with the given root mean square.
func RMS(signalRMS float64, snr signals.DB) float64 {
	return math.Sqrt(signalRMS * signalRMS / float64(snr.Power()))
}

// GaussianWhite returns s with additive white gaussian noise, calibrated to
// the given signal to noise ratio using the RMS of s over duration.
//
// The result is stochastic: evaluating it twice at the same time produces
// different values.
func GaussianWhite(s signals.Signal, snr signals.DB, duration signals.Seconds, opts ...Option) signals.Signal {
	return s.Add(Gaussian(RMS(signals.RMS(s, duration), snr), opts...))
}

// MeasureSNR estimates the signal to noise ratio of noisy compared to clean,
// using the RMS of both over duration.
func MeasureSNR(clean, noisy signals.Signal, duration signals.Seconds) signals.DB {
	signalRMS := signals.RMS(clean, duration)
	noiseRMS := signals.RMS(noisy.Add(clean.Scale(-1)), duration)
	return signals.Power(signalRMS * signalRMS / (noiseRMS * noiseRMS)).DB()
}
