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

import "fmt"

const (
	reasonOk reason = iota
	reasonShape
	reasonTail
	reasonOracle
	reasonDepth
)

// reason records why a search branch was abandoned. Infer returns it to its
// caller inside a *rejection error; the root package's Guess turns any such
// error into a plain false, so it never crosses the public API. Recording it
// lets tests assert on *why* a candidate was rejected instead of only that
// it was.
type reason int

// rejection is an abandoned-branch marker, attached to search nodes that
// fail purely for debugging and test introspection.
type rejection struct {
	why    reason
	offset int
}

func (r *rejection) Error() string {
	var what string
	switch r.why {
	case reasonShape:
		what = "head slot has no valid classification"
	case reasonTail:
		what = "tail could not be disambiguated"
	case reasonOracle:
		what = "oracle rejected candidate"
	case reasonDepth:
		what = "recursion depth exceeded"
	default:
		what = "unknown"
	}
	return fmt.Sprintf("shape: %s at offset %d", what, r.offset)
}
