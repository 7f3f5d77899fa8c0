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

// OnsetShape defines the shape of a signal onset.
type OnsetShape int

const (
	// Sudden is when the signal gets peak level between one sample and the next.
	Sudden OnsetShape = iota
	// Linear is when the signal increases linearly.
	Linear
)

func (o OnsetShape) String() string {
	switch o {
	case Sudden:
		return "Sudden"
	case Linear:
		return "Linear"
	}
	return "Unknown"
}

// Onset defines how a signal starts.
type Onset struct {
	// Shape is the shape of the ramp up.
	Shape OnsetShape
	// Delay is the time before the onset starts. The signal is silent before it.
	Delay Seconds
	// Duration is how long it takes for a Linear onset to reach peak level.
	Duration Seconds
}

// Gain returns the factor the onset applies to a signal at time t.
func (o Onset) Gain(t Seconds) float64 {
	if t < o.Delay {
		return 0
	}
	if o.Shape == Linear && t < o.Delay+o.Duration {
		return float64((t - o.Delay) / o.Duration)
	}
	return 1
}

type onset struct {
	signal Signal
	onset  Onset
}

func (o onset) Evaluate(t Seconds) float64 {
	if g := o.onset.Gain(t); g != 0 {
		return g * o.signal.At(t)
	}
	return 0
}

func (o onset) Stochastic() bool {
	return o.signal.Stochastic()
}

// Apply returns s silenced before the onset and ramped up according to its shape.
// Later transforms of the result move the onset along with the signal.
func (o Onset) Apply(s Signal) (Signal, error) {
	switch o.Shape {
	case Sudden, Linear:
		return New(onset{signal: s, onset: o}), nil
	}
	return Signal{}, fmt.Errorf("unknown onset shape %v", o.Shape)
}
