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

import "github.com/abiguess/abiguess/internal/shape"

// Parameter is a node in the ABI parameter type algebra: an elementary
// scalar (uint256, bytes32, bytesN, address, bytes, string) or a composite
// tuple or array of parameters. It is an alias for the inferencer's own
// representation, so [FunctionFragment] never needs to convert between a
// public and an internal type.
type Parameter = shape.Parameter

// ParameterKind identifies which branch of the parameter type algebra a
// Parameter occupies.
type ParameterKind = shape.Kind

// The recognized parameter kinds. KindUint256, KindBytesN, KindString, and
// KindAddress are only ever produced by the prettifier; the inferencer itself
// only emits KindBytes32, KindBytes, KindTuple, and KindArray.
const (
	KindUint256 = shape.KindUint256
	KindBytes32 = shape.KindBytes32
	KindBytesN  = shape.KindBytesN
	KindBytes   = shape.KindBytes
	KindString  = shape.KindString
	KindAddress = shape.KindAddress
	KindTuple   = shape.KindTuple
	KindArray   = shape.KindArray
)

// FunctionFragment is a guessed function signature: a cosmetic name plus an
// ordered list of resolved parameters. Only the parameter list carries
// semantic weight; the name is for display only.
type FunctionFragment struct {
	Name   string
	Params []Parameter
}
