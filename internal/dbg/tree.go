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

package dbg

import (
	"fmt"

	"github.com/abiguess/abiguess/internal/shape"
)

var kindNames = map[shape.Kind]string{
	shape.KindUint256: "uint256",
	shape.KindBytes32: "bytes32",
	shape.KindBytesN:  "bytesN",
	shape.KindBytes:   "bytes",
	shape.KindString:  "string",
	shape.KindAddress: "address",
	shape.KindTuple:   "tuple",
	shape.KindArray:   "array",
}

// Tree renders p as a nested dictionary: its kind, its width when that
// matters (bytesN), and its elements when it has any (tuple, array). It is
// meant for -v style diagnostics, never for the cosmetic signature text
// FunctionFragment.String produces.
func Tree(p shape.Parameter) Formatter {
	return Formatter(func(s fmt.State) {
		fmt.Fprint(s, render(p))
	})
}

func render(p shape.Parameter) Formatter {
	var width any
	if p.Kind == shape.KindBytesN {
		width = p.Width
	}

	var elems any
	if len(p.Elems) > 0 {
		list := make([]Formatter, len(p.Elems))
		for i, e := range p.Elems {
			list[i] = Dict(FieldName(i), "kind", kindNames[e.Kind], "shape", render(e))
		}
		elems = list
	}

	return Dict(kindNames[p.Kind], "width", width, "elems", elems)
}
