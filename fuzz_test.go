// Copyright 2026 The abiguess Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package abiguess_test

import (
	"math/big"
	"testing"

	"github.com/abiguess/abiguess"
)

// FuzzGuess feeds arbitrary byte strings into Guess. There is no oracle to
// check success against here -- arbitrary bytes are overwhelmingly rejected
// -- the only properties under test are that the backtracking search and the
// prettifier never panic, that a rejected guess returns no fragment, and
// that an accepted fragment always re-renders to the same text twice in a
// row.
func FuzzGuess(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xde, 0xad, 0xbe, 0xef})
	f.Add(calldataSeed())

	f.Fuzz(func(t *testing.T, b []byte) {
		frag, ok := abiguess.Guess(b)
		if !ok {
			if frag != nil {
				t.Fatalf("Guess returned a non-nil fragment alongside ok=false")
			}
			return
		}
		if frag.String() != frag.String() {
			t.Fatalf("fragment rendering is not stable across calls")
		}
	})
}

func calldataSeed() []byte {
	selector := []byte{0x01, 0x02, 0x03, 0x04}
	buf := make([]byte, 0, 4+32*3)
	buf = append(buf, selector...)
	buf = append(buf, word(big.NewInt(1))...)
	buf = append(buf, word(big.NewInt(0x60))...)
	buf = append(buf, word(big.NewInt(5))...)
	return buf
}

func word(n *big.Int) []byte {
	b := make([]byte, 32)
	n.FillBytes(b)
	return b
}
