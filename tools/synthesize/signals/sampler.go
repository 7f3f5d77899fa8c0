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

import "fmt"

// Sampler is a one-shot cursor over the samples of a signal at a fixed rate.
//
// Sample n is the signal evaluated at n/rate. Nothing is cached, and a
// Sampler can't be rewound: create a new one to start over.
type Sampler struct {
	signal Signal
	rate   float64
	n      uint64
}

// Sample returns a Sampler producing s at the given rate, starting at time 0.
// Panics if rate is 0.
func Sample(rate Hz, s Signal) *Sampler {
	if rate == 0 {
		panic("signals: can't sample at 0Hz")
	}
	return newSampler(float64(rate), s)
}

func newSampler(rate float64, s Signal) *Sampler {
	if !(rate > 0) {
		panic(fmt.Sprintf("signals: can't sample at %vHz", rate))
	}
	return &Sampler{
		signal: s,
		rate:   rate,
	}
}

// Next returns the next sample.
func (s *Sampler) Next() float64 {
	t := Seconds(float64(s.n) / s.rate)
	s.n++
	return s.signal.At(t)
}

// Index returns the index of the sample the next call to Next will produce.
func (s *Sampler) Index() uint64 {
	return s.n
}

// Take returns the next n samples.
func (s *Sampler) Take(n int) Float64Slice {
	res := make(Float64Slice, n)
	for idx := range res {
		res[idx] = s.Next()
	}
	return res
}

// RenderN returns the first n samples of s at the given rate, starting at time 0.
// Panics if rate is not strictly positive.
func RenderN(s Signal, rate float64, n int) Float64Slice {
	return newSampler(rate, s).Take(n)
}

// Render returns the samples of s at the given rate during the time stretch.
// Sample k is taken at ts.FromInclusive + k/rate.
func Render(s Signal, ts TimeStretch, rate float64) Float64Slice {
	n := int(float64(ts.Len()) * rate)
	if n < 0 {
		n = 0
	}
	return RenderN(s.Phase(ts.FromInclusive), rate, n)
}
