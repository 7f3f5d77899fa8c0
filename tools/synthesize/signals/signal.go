/* Package signals contains logic to express, combine and sample audio signals. *
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
package signals

import (
	"fmt"
)

// Evaluator returns the amplitude of a signal at a given time.
//
// Evaluators are shared between every Signal derived from the same
// constructor call, and may be called from several goroutines at once.
// They must not change observable state while evaluating, unless they
// also implement Stochastic.
type Evaluator interface {
	Evaluate(t Seconds) float64
}

// EvaluatorFunc adapts a plain function to an Evaluator.
type EvaluatorFunc func(t Seconds) float64

// Evaluate returns f(t).
func (f EvaluatorFunc) Evaluate(t Seconds) float64 {
	return f(t)
}

// Stochastic is implemented by evaluators that draw a new random value on
// every call. Signals built on them are not referentially transparent:
// evaluating the same time twice produces different amplitudes.
type Stochastic interface {
	Evaluator
	Stochastic() bool
}

// Signal is an amplitude as a function of time.
//
// The zero Signal is silent everywhere. Signals are values: every transform
// returns a new Signal and leaves the receiver untouched, and copying a
// Signal is a cheap clone sharing the underlying Evaluator.
type Signal struct {
	eval Evaluator
	// mulInput is applied to the time before evaluation, by IncrFrequency.
	mulInput float64
	// addInput is added to the time before evaluation, by Phase.
	addInput float64
	// mulOutput is applied to the amplitude after evaluation, by Scale.
	mulOutput float64
}

// New returns a Signal evaluating e with identity adjustments.
func New(e Evaluator) Signal {
	return Signal{
		eval:      e,
		mulInput:  1,
		addInput:  0,
		mulOutput: 1,
	}
}

// NewFunc returns a Signal evaluating f with identity adjustments.
func NewFunc(f func(t Seconds) float64) Signal {
	return New(EvaluatorFunc(f))
}

// At returns the amplitude of the signal at time t.
func (s Signal) At(t Seconds) float64 {
	if s.eval == nil {
		return 0
	}
	return s.eval.Evaluate(Seconds(s.mulInput*float64(t)+s.addInput)) * s.mulOutput
}

// Evaluate makes Signal an Evaluator, so signals can be tabulated or nested.
func (s Signal) Evaluate(t Seconds) float64 {
	return s.At(t)
}

// Scale returns the signal with its amplitude multiplied by by.
// A zero factor silences the signal and a negative one inverts it.
func (s Signal) Scale(by float64) Signal {
	s.mulOutput *= by
	return s
}

// Phase returns the signal shifted by the given offset. The offset is added
// to the time before evaluation, so a positive offset moves the waveform
// earlier.
func (s Signal) Phase(by Seconds) Signal {
	s.addInput += float64(by)
	return s
}

// IncrFrequency returns the signal with its time axis multiplied by by.
// Factors above 1 compress the waveform, factors in (0, 1) stretch it.
// Panics if by is not strictly positive.
func (s Signal) IncrFrequency(by float64) Signal {
	if !(by > 0) {
		panic(fmt.Sprintf("signals: frequency factor must be positive, got %v", by))
	}
	s.mulInput *= by
	return s
}

// Add returns the pointwise sum of s and o.
func (s Signal) Add(o Signal) Signal {
	return Sum(s, o)
}

// Stochastic returns whether evaluating the signal twice at the same time
// may produce different results.
func (s Signal) Stochastic() bool {
	if st, ok := s.eval.(Stochastic); ok {
		return st.Stochastic()
	}
	return false
}

// Tabulate converts the signal to a periodic sample table.
func (s Signal) Tabulate(rate float64, period Seconds, opts ...TableOption) (*Table, error) {
	return FromFunc(s, rate, period, opts...)
}

func (s Signal) String() string {
	if s.eval == nil {
		return "Signal{silent}"
	}
	return fmt.Sprintf("Signal{mulInput:%v addInput:%v mulOutput:%v}", s.mulInput, s.addInput, s.mulOutput)
}

type sum []Signal

func (s sum) Evaluate(t Seconds) float64 {
	res := 0.0
	for _, sig := range s {
		res += sig.At(t)
	}
	return res
}

func (s sum) Stochastic() bool {
	for _, sig := range s {
		if sig.Stochastic() {
			return true
		}
	}
	return false
}

// Sum returns the pointwise sum of the provided signals.
// The signals need not share a period. Sum of no signals is silent.
func Sum(signals ...Signal) Signal {
	if len(signals) == 0 {
		return Signal{}
	}
	operands := make(sum, len(signals))
	copy(operands, signals)
	return New(operands)
}

