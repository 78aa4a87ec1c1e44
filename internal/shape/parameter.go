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

package shape

// Kind enumerates the ABI parameter type algebra: the elementary and
// composite kinds the inferencer emits (Bytes32, Bytes, Tuple, Array), plus
// the kinds only the prettifier ever introduces (Uint256, BytesN, String,
// Address). Both halves of the algebra live in one enum because the
// prettifier refines a Parameter tree in place rather than building a
// separate type.
type Kind int

const (
	KindUint256 Kind = iota
	KindBytes32
	KindBytesN
	KindBytes
	KindString
	KindAddress
	KindTuple
	KindArray
)

// Parameter is a node in the ABI parameter type algebra (spec.md data model:
// elementary, fixed-width-bytes, address, tuple of parameters, or array of
// parameter).
type Parameter struct {
	Kind Kind

	// Width is the byte width of a KindBytesN parameter. Unused otherwise.
	Width int

	// Elems holds a tuple's components for KindTuple, or the single shared
	// element type for KindArray (always len(Elems) == 1 in that case).
	Elems []Parameter
}

// Uint256 returns the elementary uint256 parameter.
func Uint256() Parameter { return Parameter{Kind: KindUint256} }

// Bytes32 returns the elementary bytes32 parameter, the inferencer's
// canonical stand-in for any 32-byte-wide static type.
func Bytes32() Parameter { return Parameter{Kind: KindBytes32} }

// BytesKind returns the elementary dynamic bytes parameter.
func BytesKind() Parameter { return Parameter{Kind: KindBytes} }

// Tuple returns a composite tuple parameter over the given components.
func Tuple(elems ...Parameter) Parameter {
	return Parameter{Kind: KindTuple, Elems: elems}
}

// Array returns a composite, always-dynamic array parameter over elem.
func Array(elem Parameter) Parameter {
	return Parameter{Kind: KindArray, Elems: []Parameter{elem}}
}

// Element returns an array parameter's shared element type. Panics if p is
// not a KindArray parameter.
func (p Parameter) Element() Parameter {
	return p.Elems[0]
}

// Equal reports whether a and b are the same shape: same Kind, same Width
// where relevant, and recursively equal Elems.
func Equal(a, b Parameter) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindBytesN && a.Width != b.Width {
		return false
	}
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if !Equal(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	return true
}

// EqualSlice reports whether two parameter slices are pairwise Equal.
func EqualSlice(a, b []Parameter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
