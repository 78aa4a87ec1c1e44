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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsBytesLikeZeroLength(t *testing.T) {
	t.Parallel()
	require.True(t, isBytesLike(0, nil, true))
	require.False(t, isBytesLike(0, []byte{1}, true))
}

func TestIsBytesLikeWholeWords(t *testing.T) {
	t.Parallel()
	tail := make([]byte, 64)
	require.True(t, isBytesLike(64, tail, false))
	require.True(t, isBytesLike(32, tail, true))
	require.False(t, isBytesLike(32, tail, false))
}

func TestIsBytesLikePartialWord(t *testing.T) {
	t.Parallel()
	tail := make([]byte, 32)
	copy(tail, []byte("hello"))
	require.True(t, isBytesLike(5, tail, true))

	tail[31] = 0xFF
	require.False(t, isBytesLike(5, tail, true))
}

func TestCollapseSingleton(t *testing.T) {
	t.Parallel()
	require.Equal(t, Uint256(), collapseSingleton(Tuple(Uint256())))
	require.Equal(t, BytesKind(), collapseSingleton(Tuple(BytesKind())))
	two := Tuple(Uint256(), Bytes32())
	require.True(t, Equal(two, collapseSingleton(two)))
}
