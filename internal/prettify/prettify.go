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

// Package prettify refines the inferencer's generic output types (bytes32,
// bytes) into more specific ones (address, uintN-narrow-but-still-uint256,
// bytesN, string) by inspecting the oracle's decoded values, and merges
// per-element refinements back into a single uniform array element type.
package prettify

import (
	"unicode/utf8"

	"github.com/abiguess/abiguess/internal/oracle"
	"github.com/abiguess/abiguess/internal/shape"
)

// Refine walks params alongside their decoded values and returns a new
// parameter list with every bytes32/bytes leaf refined per spec.md 4.4.
func Refine(params []shape.Parameter, values []oracle.Value) []shape.Parameter {
	out := make([]shape.Parameter, len(params))
	for i := range params {
		out[i] = refine(params[i], values[i])
	}
	return out
}

func refine(p shape.Parameter, v oracle.Value) shape.Parameter {
	switch p.Kind {
	case shape.KindBytes32:
		return refineBytes32(v.Raw)
	case shape.KindBytes:
		return refineBytes(v.Raw)
	case shape.KindTuple:
		elems := make([]shape.Parameter, len(p.Elems))
		for i := range p.Elems {
			elems[i] = refine(p.Elems[i], v.Elems[i])
		}
		return shape.Tuple(elems...)
	case shape.KindArray:
		elemParam := p.Element()
		if len(v.Elems) == 0 {
			return shape.Array(elemParam)
		}
		merged := refine(elemParam, v.Elems[0])
		for _, ev := range v.Elems[1:] {
			merged = Merge(merged, refine(elemParam, ev))
		}
		return shape.Array(merged)
	default:
		return p
	}
}

// refineBytes32 applies the leading/trailing zero-count thresholds of
// spec.md 4.4: 12-17 leading zero bytes reads as an address, more than 16
// (and not already an address) reads as uint256, any trailing zero bytes
// reads as the narrowest bytesN that covers the non-zero prefix, and
// anything else stays bytes32.
func refineBytes32(raw []byte) shape.Parameter {
	lead := leadingZeros(raw)
	switch {
	case lead >= 12 && lead <= 17:
		return shape.Parameter{Kind: shape.KindAddress}
	case lead > 16:
		return shape.Uint256()
	}
	if trail := trailingZeros(raw); trail > 0 {
		return shape.Parameter{Kind: shape.KindBytesN, Width: len(raw) - trail}
	}
	return shape.Bytes32()
}

// refineBytes promotes a bytes parameter to string when its contents are
// valid, non-empty UTF-8.
func refineBytes(raw []byte) shape.Parameter {
	if len(raw) > 0 && utf8.Valid(raw) {
		return shape.Parameter{Kind: shape.KindString}
	}
	return shape.BytesKind()
}

func leadingZeros(b []byte) int {
	n := 0
	for _, x := range b {
		if x != 0 {
			break
		}
		n++
	}
	return n
}

func trailingZeros(b []byte) int {
	n := 0
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0 {
			break
		}
		n++
	}
	return n
}
