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

package dbg_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abiguess/abiguess/internal/dbg"
	"github.com/abiguess/abiguess/internal/shape"
)

func TestFieldName(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Arg0", dbg.FieldName(0))
	require.Equal(t, "Arg12", dbg.FieldName(12))
}

func TestDict(t *testing.T) {
	t.Parallel()
	got := fmt.Sprintf("%v", dbg.Dict("tuple", "a", 1, "b", nil, "c", "x"))
	require.Equal(t, "tuple{a: 1, c: x}", got)
}

func TestTreeScalar(t *testing.T) {
	t.Parallel()
	got := fmt.Sprintf("%v", dbg.Tree(shape.Uint256()))
	require.Equal(t, "uint256{}", got)
}

func TestTreeArrayOfBytesN(t *testing.T) {
	t.Parallel()
	elem := shape.Parameter{Kind: shape.KindBytesN, Width: 4}
	arr := shape.Array(elem)
	got := fmt.Sprintf("%v", dbg.Tree(arr))
	require.Equal(t, "array{elems: [Arg0{kind: bytesN, shape: bytesN{width: 4}}]}", got)
}
