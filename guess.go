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

	"github.com/abiguess/abiguess/internal/dbg"
	"github.com/abiguess/abiguess/internal/prettify"
	"github.com/abiguess/abiguess/internal/shape"
)

// Guess reconstructs a plausible function signature from raw calldata. It
// splits the first four bytes off as an opaque selector, runs the tuple
// inferencer over the remainder, refines the result's generic types, and
// renders the accepted candidate as a fragment. Guess returns (nil, false)
// when calldata is too short to contain a selector, or when no consistent
// parse exists -- there is no partial result and no error reporting per
// parameter, by design.
func Guess(calldata []byte, opts ...GuessOption) (*FunctionFragment, bool) {
	if len(calldata) < 4 {
		return nil, false
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var selector [4]byte
	copy(selector[:], calldata[:4])
	args := calldata[4:]

	result, err := shape.Infer(args, nil, cfg.oracle, cfg.maxDepth)
	if err != nil {
		return nil, false
	}

	values, ok := cfg.oracle.DecodeValues(result.Elems, args)
	if !ok {
		return nil, false
	}

	params := prettify.Refine(result.Elems, values)
	if cfg.debug != nil {
		for i, p := range params {
			fmt.Fprintf(cfg.debug, "%s: %v\n", dbg.FieldName(i), dbg.Tree(p))
		}
	}

	return &FunctionFragment{
		Name:   cfg.selectorName(selector),
		Params: params,
	}, true
}
