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

// Sine returns a full scale sine wave of the given frequency.
func Sine(freq Hz) Signal {
	return NewFunc(func(t Seconds) float64 {
		return math.Sin(2 * math.Pi * freq.At(t))
	})
}

// Square returns a full scale square wave of the given frequency.
//
// The wave is -1 while the phase rounds to an even number of cycles and +1
// while it rounds to an odd number, so it starts at -1. Phases exactly
// halfway between two integers round away from zero.
func Square(freq Hz) Signal {
	return NewFunc(func(t Seconds) float64 {
		if math.Abs(math.Mod(math.Round(freq.At(t)), 2)) == 1 {
			return 1
		}
		return -1
	})
}
