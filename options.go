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
	"encoding/hex"
	"io"

	"github.com/abiguess/abiguess/internal/oracle"
	"github.com/abiguess/abiguess/internal/shape"
)

// Value is a decoded argument value, used only to refine a guessed
// fragment's types; see [Oracle].
type Value = oracle.Value

// Oracle validates a candidate parameter list against a calldata buffer,
// using an external reference ABI decoder, and decodes the accepted
// candidate's values for [Guess]'s type-refinement pass. The default oracle
// is backed by go-ethereum's accounts/abi package; callers that already
// embed their own reference decoder may supply one via [WithOracle].
type Oracle interface {
	Decode(params []Parameter, buf []byte) bool
	DecodeValues(params []Parameter, buf []byte) ([]Value, bool)
}

// GuessOption configures a call to [Guess].
type GuessOption func(*config)

type config struct {
	oracle       Oracle
	maxDepth     int
	selectorName func([4]byte) string
	debug        io.Writer
}

func defaultConfig() *config {
	return &config{
		oracle:       oracle.New(),
		maxDepth:     shape.DefaultMaxDepth,
		selectorName: defaultSelectorName,
	}
}

// WithOracle overrides the default go-ethereum-backed oracle.
func WithOracle(o Oracle) GuessOption {
	return func(c *config) { c.oracle = o }
}

// WithMaxDepth bounds the inferencer's recursion depth. Buffer length
// already bounds nesting depth in well-formed calldata, but a small
// explicit cap guards against pathologically nested inputs driving
// backtracking into exponential blowup, the same DoS class reference
// decoders guard against with their own depth limits.
func WithMaxDepth(depth int) GuessOption {
	return func(c *config) { c.maxDepth = depth }
}

// WithSelectorName overrides how the cosmetic function name is derived from
// the 4-byte selector. The default renders guessed_<hex selector>.
func WithSelectorName(f func(selector [4]byte) string) GuessOption {
	return func(c *config) { c.selectorName = f }
}

// WithDebug writes a diagnostic dump of every accepted parameter's resolved
// shape to w. This is for verbose test output and manual inspection; it is
// never on Guess's search path and never affects its result.
func WithDebug(w io.Writer) GuessOption {
	return func(c *config) { c.debug = w }
}

func defaultSelectorName(selector [4]byte) string {
	return "guessed_" + hex.EncodeToString(selector[:])
}
