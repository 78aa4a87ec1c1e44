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

package abiguess

import (
	"fmt"
	"strings"
)

// String renders f as name(t1,...,tn) using canonical Solidity-style type
// syntax.
func (f *FunctionFragment) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return f.Name + "(" + strings.Join(parts, ",") + ")"
}

// Format implements fmt.Formatter so fragments print as their signature
// text under %v and %s.
func (f *FunctionFragment) Format(s fmt.State, verb rune) {
	fmt.Fprint(s, f.String())
}
