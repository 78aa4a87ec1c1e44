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

package abiguess_test

import (
	"math/big"
	"testing"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/abiguess/abiguess"
)

var selector = [4]byte{0xde, 0xad, 0xbe, 0xef}

func calldata(t *testing.T, types []string, values ...any) []byte {
	t.Helper()
	args := make(gethabi.Arguments, len(types))
	for i, ty := range types {
		typ, err := gethabi.NewType(ty, "", nil)
		require.NoError(t, err)
		args[i] = gethabi.Argument{Type: typ}
	}
	buf, err := args.Pack(values...)
	require.NoError(t, err)
	return append(append([]byte{}, selector[:]...), buf...)
}

func TestGuessTooShort(t *testing.T) {
	t.Parallel()
	_, ok := abiguess.Guess([]byte{0x01, 0x02})
	require.False(t, ok)
}

func TestGuessSelectorOnly(t *testing.T) {
	t.Parallel()
	frag, ok := abiguess.Guess(selector[:])
	require.True(t, ok)
	require.Equal(t, "()", signatureArgs(frag))
}

func TestGuessScalarUint256(t *testing.T) {
	t.Parallel()
	buf := calldata(t, []string{"uint256"}, big.NewInt(42))
	frag, ok := abiguess.Guess(buf)
	require.True(t, ok)
	require.Equal(t, "(uint256)", signatureArgs(frag))
}

func TestGuessBytes32(t *testing.T) {
	t.Parallel()
	var b [32]byte
	for i := range b {
		b[i] = 0xAB
	}
	buf := calldata(t, []string{"bytes32"}, b)
	frag, ok := abiguess.Guess(buf)
	require.True(t, ok)
	require.Equal(t, "(bytes32)", signatureArgs(frag))
}

func TestGuessAddressPrettified(t *testing.T) {
	t.Parallel()
	addr := common.HexToAddress("0xc0ffee0000000000000000000000000000c0ffee")
	buf := calldata(t, []string{"address"}, addr)
	frag, ok := abiguess.Guess(buf)
	require.True(t, ok)
	require.Equal(t, "(address)", signatureArgs(frag))
}

func TestGuessStaticTuplePrettified(t *testing.T) {
	t.Parallel()
	tupleTy, err := gethabi.NewType("tuple", "", []gethabi.ArgumentMarshaling{
		{Name: "a", Type: "uint256"},
		{Name: "b", Type: "uint256"},
		{Name: "c", Type: "bytes4"},
	})
	require.NoError(t, err)
	args := gethabi.Arguments{{Type: tupleTy}}
	type inner struct {
		A *big.Int
		B *big.Int
		C [4]byte
	}
	buf, err := args.Pack(inner{A: big.NewInt(1), B: big.NewInt(2), C: [4]byte{1, 2, 3, 4}})
	require.NoError(t, err)
	full := append(append([]byte{}, selector[:]...), buf...)

	frag, ok := abiguess.Guess(full)
	require.True(t, ok)
	// A static tuple is encoded inline, so its wrapping is not recovered and
	// its components surface as top-level parameters; the bytes4 width is.
	require.Equal(t, "(uint256,uint256,bytes4)", signatureArgs(frag))
}

func TestGuessDynamicArrayOfTuples(t *testing.T) {
	t.Parallel()
	arrTy, err := gethabi.NewType("tuple[]", "", []gethabi.ArgumentMarshaling{
		{Name: "s", Type: "string"},
		{Name: "v", Type: "uint256[]"},
	})
	require.NoError(t, err)
	args := gethabi.Arguments{{Type: arrTy}}
	type elem struct {
		S string
		V []*big.Int
	}
	buf, err := args.Pack([]elem{
		{S: "hello", V: []*big.Int{big.NewInt(1), big.NewInt(2)}},
		{S: "world", V: []*big.Int{big.NewInt(3)}},
	})
	require.NoError(t, err)
	full := append(append([]byte{}, selector[:]...), buf...)

	frag, ok := abiguess.Guess(full)
	require.True(t, ok)
	require.Equal(t, "((string,uint256[])[])", signatureArgs(frag))
}

func TestGuessEmptyDynamicArrayBecomesBytes(t *testing.T) {
	t.Parallel()
	buf := calldata(t, []string{"uint256[]"}, []*big.Int{})
	frag, ok := abiguess.Guess(buf)
	require.True(t, ok)
	require.Equal(t, "(bytes)", signatureArgs(frag))
}

func TestGuessNoConsistentParse(t *testing.T) {
	t.Parallel()
	// A handful of high-entropy bytes following a selector rarely satisfies
	// any offset/length discipline the oracle can validate.
	buf := append(append([]byte{}, selector[:]...), 0xff, 0x01, 0x02)
	_, ok := abiguess.Guess(buf)
	require.False(t, ok)
}

func TestGuessCustomSelectorName(t *testing.T) {
	t.Parallel()
	buf := calldata(t, []string{"uint256"}, big.NewInt(7))
	frag, ok := abiguess.Guess(buf, abiguess.WithSelectorName(func([4]byte) string {
		return "myFunc"
	}))
	require.True(t, ok)
	require.Equal(t, "myFunc(uint256)", frag.String())
}

// signatureArgs strips the cosmetic selector-derived name so assertions
// focus on the recovered parameter list.
func signatureArgs(frag *abiguess.FunctionFragment) string {
	full := frag.String()
	i := 0
	for i < len(full) && full[i] != '(' {
		i++
	}
	return full[i:]
}
