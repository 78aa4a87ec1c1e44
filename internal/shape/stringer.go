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

import (
	"fmt"
	"strings"
)

// String renders p using canonical Solidity-style type syntax: elementary
// scalars by name, bytesN for fixed-byte vectors, (...) for tuples, and a []
// suffix for dynamic arrays.
func (p Parameter) String() string {
	switch p.Kind {
	case KindUint256:
		return "uint256"
	case KindBytes32:
		return "bytes32"
	case KindBytesN:
		return fmt.Sprintf("bytes%d", p.Width)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindAddress:
		return "address"
	case KindTuple:
		parts := make([]string, len(p.Elems))
		for i, e := range p.Elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	case KindArray:
		return p.Element().String() + "[]"
	default:
		return fmt.Sprintf("<invalid kind %d>", p.Kind)
	}
}

// Format implements fmt.Formatter so Parameter values print as their
// canonical signature text under %v and %s.
func (p Parameter) Format(s fmt.State, verb rune) {
	fmt.Fprint(s, p.String())
}
