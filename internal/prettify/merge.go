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

package prettify

import "github.com/abiguess/abiguess/internal/shape"

// Merge reconciles two refined parameters that occupy the same structural
// position (typically two elements of the same array) into one uniform
// type, per spec.md 4.5: equal types merge to themselves, tuples merge
// component-wise, arrays merge on element type, string/bytes disagreement
// collapses to bytes, uint256/scalar disagreement collapses to uint256, and
// any other scalar disagreement collapses to bytes32.
func Merge(a, b shape.Parameter) shape.Parameter {
	if shape.Equal(a, b) {
		return a
	}

	switch {
	case isStringBytesPair(a, b):
		return shape.BytesKind()
	case isUint256Pair(a, b):
		return shape.Uint256()
	case a.Kind == shape.KindTuple && b.Kind == shape.KindTuple && len(a.Elems) == len(b.Elems):
		elems := make([]shape.Parameter, len(a.Elems))
		for i := range elems {
			elems[i] = Merge(a.Elems[i], b.Elems[i])
		}
		return shape.Tuple(elems...)
	case a.Kind == shape.KindArray && b.Kind == shape.KindArray:
		return shape.Array(Merge(a.Element(), b.Element()))
	default:
		return shape.Bytes32()
	}
}

func isStringBytesPair(a, b shape.Parameter) bool {
	return (a.Kind == shape.KindString && b.Kind == shape.KindBytes) ||
		(a.Kind == shape.KindBytes && b.Kind == shape.KindString)
}

func isScalar(k shape.Kind) bool {
	return k != shape.KindTuple && k != shape.KindArray
}

func isUint256Pair(a, b shape.Parameter) bool {
	if a.Kind == shape.KindUint256 && isScalar(b.Kind) {
		return true
	}
	if b.Kind == shape.KindUint256 && isScalar(a.Kind) {
		return true
	}
	return false
}
