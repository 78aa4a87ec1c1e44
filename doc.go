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

// Package abiguess reconstructs a plausible function signature from raw
// transaction calldata, with no prior knowledge of the target contract's
// ABI. Given the first four bytes of a payload (treated opaquely as a
// selector) and the remainder (an encoded argument tuple), [Guess] returns
// either a single function fragment whose parameter list is consistent with
// the bytes, or reports that no consistent parse exists.
//
// The guess is produced by a backtracking search over the "well-formed"
// ABI encoding assumption: each 32-byte head word is either a static scalar
// or a dynamic pointer, and every pointed-to region is recursively
// reconstructed and checked against a reference ABI decoder before the
// candidate is accepted. See [Guess] for the entry point.
//
// # Support Status
//
// The search recovers shape, not names or signedness. The following are
// never recovered, by design:
//
//   - Parameter names. Guessed fragments always use positional parameters.
//   - Signed vs. unsigned integers of the same width, or integer widths
//     narrower than their canonical wide form -- both surface as uint256.
//   - Fixed-length arrays -- they always surface as an inlined tuple.
//   - Malformed, packed, or overlapping-region encodings.
//
// A guessed fragment's parameter list is shape-equivalent to the true one
// under exactly these relaxations; see the package's tests for the
// equivalence this implies for round-tripping.
package abiguess
