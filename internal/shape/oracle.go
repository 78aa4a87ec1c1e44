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

// Oracle validates a candidate parameter list against the buffer it was
// guessed from. It is the search's only collaborator: all shape logic is
// internal to this package, and the oracle is consulted only to reject
// candidates that parse structurally but decode to non-canonical data.
//
// Defined here, on the consuming side, rather than alongside its
// implementation, so that this package never needs to import a concrete
// decoder.
type Oracle interface {
	Decode(params []Parameter, buf []byte) bool
}
