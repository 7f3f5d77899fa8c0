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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const (
	tolerance = 1e-5
)

func approxEq(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// testFrequencies returns a spread of positive frequencies, including the extremes.
func testFrequencies(seed int64, n int, max uint32) []Hz {
	r := rand.New(rand.NewSource(seed))
	res := []Hz{1, 2, 3, 440, 1000, 48000, Hz(max)}
	for i := 0; i < n; i++ {
		res = append(res, Hz(1+r.Int63n(int64(max))))
	}
	return res
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%v didn't panic", name)
		}
	}()
	f()
}

func TestHz(t *testing.T) {
	if got := Hz(4).At(0.5); got != 2 {
		t.Errorf("Hz(4).At(0.5) = %v, wanted 2", got)
	}
	if got := Hz(4).Period(); got != 0.25 {
		t.Errorf("Hz(4).Period() = %v, wanted 0.25", got)
	}
	mustPanic(t, "Hz(0).Period()", func() { Hz(0).Period() })
}

func TestDB(t *testing.T) {
	for _, tc := range []struct {
		db          DB
		wantedPower Power
		wantedGain  float64
	}{
		{db: 0, wantedPower: 1, wantedGain: 1},
		{db: 10, wantedPower: 10, wantedGain: math.Sqrt(10)},
		{db: -20, wantedPower: 0.01, wantedGain: 0.1},
	} {
		if p := tc.db.Power(); !approxEq(float64(p), float64(tc.wantedPower), tolerance) {
			t.Errorf("%v.Power() = %v, wanted %v", tc.db, p, tc.wantedPower)
		}
		if g := tc.db.Gain(); !approxEq(g, tc.wantedGain, tolerance) {
			t.Errorf("%v.Gain() = %v, wanted %v", tc.db, g, tc.wantedGain)
		}
		if d := tc.wantedPower.DB(); !approxEq(float64(d), float64(tc.db), tolerance) {
			t.Errorf("%v.DB() = %v, wanted %v", tc.wantedPower, d, tc.db)
		}
	}
}

func TestSineQuarterPeriods(t *testing.T) {
	for _, freq := range testFrequencies(1, 1000, math.MaxUint32) {
		wave := Sine(freq)
		if got := wave.At(freq.Period() * 0.25); !approxEq(got, 1, tolerance) {
			t.Errorf("Sine(%v).At(period/4) = %v, wanted 1", freq, got)
		}
		if got := wave.At(0.75 * freq.Period()); !approxEq(got, -1, tolerance) {
			t.Errorf("Sine(%v).At(3*period/4) = %v, wanted -1", freq, got)
		}
	}
}

func TestSinePhaseAndScale(t *testing.T) {
	for _, freq := range testFrequencies(2, 1000, math.MaxUint32) {
		at := freq.Period() * 0.25
		wave := Sine(freq).Scale(2).Phase(2 * at)
		if got := wave.At(at); !approxEq(got, -2, tolerance) {
			t.Errorf("Sine(%v).Scale(2).Phase(period/2).At(period/4) = %v, wanted -2", freq, got)
		}
	}
}

func TestSquare(t *testing.T) {
	for _, freq := range append(testFrequencies(3, 1000, math.MaxUint32), 0) {
		if got := Square(freq).At(0); got != -1 {
			t.Errorf("Square(%v).At(0) = %v, wanted -1", freq, got)
		}
	}
	wave := Square(1)
	for _, tc := range []struct {
		at     Seconds
		wanted float64
	}{
		{at: 0.25, wanted: -1},
		{at: 0.49, wanted: -1},
		{at: 0.5, wanted: 1},
		{at: 0.75, wanted: 1},
		{at: 1.49, wanted: 1},
		{at: 1.5, wanted: -1},
		{at: 2.5, wanted: 1},
		{at: -0.5, wanted: 1},
		{at: -0.25, wanted: -1},
		{at: 1e300, wanted: -1},
	} {
		if got := wave.At(tc.at); got != tc.wanted {
			t.Errorf("Square(1).At(%v) = %v, wanted %v", tc.at, got, tc.wanted)
		}
	}
}

func TestZeroSignal(t *testing.T) {
	silent := []Signal{{}, Sum(), Signal{}.Scale(3).Phase(1), Sine(10).Scale(0)}
	for _, s := range silent {
		for _, at := range []Seconds{0, 0.1, -3, 1e9} {
			if got := s.At(at); got != 0 {
				t.Errorf("%v.At(%v) = %v, wanted 0", s, at, got)
			}
		}
	}
}

func TestScale(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	wave := Sum(Sine(3), Square(7).Scale(0.3))
	for i := 0; i < 1000; i++ {
		a := r.NormFloat64() * 10
		b := r.NormFloat64() * 10
		at := Seconds(r.Float64())
		chained := wave.Scale(a).Scale(b).At(at)
		combined := wave.Scale(a * b).At(at)
		if !approxEq(chained, combined, 1e-9*math.Max(1, math.Abs(combined))) {
			t.Errorf("Scale(%v).Scale(%v).At(%v) = %v, but Scale(%v).At(%v) = %v", a, b, at, chained, a*b, at, combined)
		}
	}
	if got := Sine(1).Scale(-1).At(0.25); !approxEq(got, -1, tolerance) {
		t.Errorf("Sine(1).Scale(-1).At(0.25) = %v, wanted -1", got)
	}
}

func TestPhase(t *testing.T) {
	if got := Sine(1).Phase(0.25).At(0); !approxEq(got, 1, tolerance) {
		t.Errorf("Sine(1).Phase(0.25).At(0) = %v, wanted 1", got)
	}
	if got := Sine(1).Phase(0.25).Phase(0.5).At(0); !approxEq(got, -1, tolerance) {
		t.Errorf("Sine(1).Phase(0.25).Phase(0.5).At(0) = %v, wanted -1", got)
	}
}

func TestIncrFrequency(t *testing.T) {
	faster := Sine(1).IncrFrequency(3)
	slower := Sine(6).IncrFrequency(0.5)
	for i := 0; i < 100; i++ {
		at := Seconds(i) / 37
		if got, want := faster.At(at), Sine(3).At(at); !approxEq(got, want, 1e-9) {
			t.Errorf("Sine(1).IncrFrequency(3).At(%v) = %v, wanted %v", at, got, want)
		}
		if got, want := slower.At(at), Sine(3).At(at); !approxEq(got, want, 1e-9) {
			t.Errorf("Sine(6).IncrFrequency(0.5).At(%v) = %v, wanted %v", at, got, want)
		}
	}
	// Phase is applied after the time is scaled.
	if got := Sine(1).IncrFrequency(2).Phase(0.25).At(0); !approxEq(got, 1, tolerance) {
		t.Errorf("Sine(1).IncrFrequency(2).Phase(0.25).At(0) = %v, wanted 1", got)
	}
	for _, by := range []float64{0, -1, math.NaN()} {
		by := by
		mustPanic(t, "IncrFrequency", func() { Sine(1).IncrFrequency(by) })
	}
}

func TestTransformsLeaveReceiverAlone(t *testing.T) {
	wave := Sine(1)
	clone := wave
	_ = wave.Scale(5)
	_ = wave.Phase(0.5)
	_ = wave.IncrFrequency(4)
	_ = wave.Add(Square(1))
	if got := wave.At(0.25); !approxEq(got, 1, tolerance) {
		t.Errorf("transformed signal changed the original to %v at 0.25", got)
	}
	if got := clone.At(0.25); !approxEq(got, 1, tolerance) {
		t.Errorf("transformed signal changed the clone to %v at 0.25", got)
	}
}

func TestReferentialTransparency(t *testing.T) {
	wave := Sum(Sine(13).Phase(0.1), Square(5).Scale(0.5)).IncrFrequency(1.5)
	want := wave.At(0.123)
	for i := 0; i < 100; i++ {
		if got := wave.At(0.123); got != want {
			t.Fatalf("evaluation %v produced %v, wanted %v", i, got, want)
		}
	}
	if wave.Stochastic() {
		t.Errorf("deterministic signal claims to be stochastic")
	}
}

func TestSum(t *testing.T) {
	operands := []Signal{Sine(3), Square(5).Scale(0.25), Sine(7).Phase(0.01)}
	summed := Sum(operands...)
	added := operands[0].Add(operands[1]).Add(operands[2])
	var want, gotSum, gotAdd Float64Slice
	for i := 0; i < 64; i++ {
		at := Seconds(i) / 64
		want = append(want, operands[0].At(at)+operands[1].At(at)+operands[2].At(at))
		gotSum = append(gotSum, summed.At(at))
		gotAdd = append(gotAdd, added.At(at))
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff(want, gotSum, opt); diff != "" {
		t.Errorf("Sum produced unexpected values: %v", diff)
	}
	if diff := cmp.Diff(want, gotAdd, opt); diff != "" {
		t.Errorf("Add produced unexpected values: %v", diff)
	}

	operands[0] = Signal{}
	if got := summed.At(Seconds(1) / 64); !approxEq(got, want[1], 1e-12) {
		t.Errorf("Sum observed a change to its argument slice, got %v, wanted %v", got, want[1])
	}
}

type coinFlip struct {
	r *rand.Rand
}

func (c coinFlip) Evaluate(Seconds) float64 {
	return float64(c.r.Intn(2))
}

func (c coinFlip) Stochastic() bool {
	return true
}

func TestStochastic(t *testing.T) {
	flips := New(coinFlip{r: rand.New(rand.NewSource(5))})
	if !flips.Stochastic() {
		t.Errorf("coin flips aren't stochastic")
	}
	if !Sum(Sine(1), flips.Scale(0.1)).Stochastic() {
		t.Errorf("sum of coin flips isn't stochastic")
	}
	// Plain functions hide what they call.
	if NewFunc(Sine(1).Add(flips).Evaluate).Stochastic() {
		t.Errorf("plain function wrapping a stochastic signal claims to be stochastic")
	}
	if !New(Sine(1).Add(flips)).Stochastic() {
		t.Errorf("nested stochastic signal isn't stochastic")
	}
}
