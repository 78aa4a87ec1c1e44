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

// Package shape implements the calldata shape inferencer: a backtracking
// search that, under the well-formed ABI encoding assumption, assigns each
// head word a static-scalar or dynamic-pointer role and recursively resolves
// every pointed-to region. This is the hard core the rest of the module
// exists to drive and to refine the output of.
package shape

import "github.com/abiguess/abiguess/internal/word"

// DefaultMaxDepth bounds recursion when the caller does not override it.
// Nesting depth is in principle bounded by buffer length / 64 already (spec
// section 5), but pathological inputs constructed to maximize backtracking
// are the same class of DoS concern a reference decoder guards against with
// an explicit depth cap.
const DefaultMaxDepth = 64

type slotKind int

const (
	slotStatic slotKind = iota
	slotPointer
)

// placeholder is an unresolved dynamic parameter: an offset into the
// enclosing buffer, and an optional length word read at that offset.
type placeholder struct {
	offset int
	length *int
}

type slotResult struct {
	kind slotKind
	ph   placeholder
}

// searchState is one activation of the backtracking search: a candidate
// classification of an encoded tuple's head, with endOfStatic shrinking as
// pointers are discovered. A rejected branch undoes its own mutation of
// endOfStatic before returning, so siblings never observe it.
type searchState struct {
	buf         []byte
	endOfStatic int
	oc          Oracle
	mode        *Mode
	maxDepth    int
	depth       int
}

// Infer runs the tuple inferencer over buf: the backtracking search of
// spec.md section 4.3, optionally entered under a Mode constraint on every
// head slot (used when buf is believed to be the head of an array of
// same-shaped dynamic elements).
// It returns the resolved tuple and a nil error on success, or a non-nil
// error identifying why every branch was abandoned.
func Infer(buf []byte, mode *Mode, oc Oracle, maxDepth int) (Parameter, error) {
	return inferAt(buf, mode, oc, maxDepth, 0)
}

func inferAt(buf []byte, mode *Mode, oc Oracle, maxDepth, depth int) (Parameter, error) {
	if depth > maxDepth {
		return Parameter{}, &rejection{why: reasonDepth, offset: 0}
	}
	st := &searchState{
		buf:         buf,
		endOfStatic: len(buf),
		oc:          oc,
		mode:        mode,
		maxDepth:    maxDepth,
		depth:       depth,
	}
	return st.classify(0, nil)
}

// classify implements the Classify(i) state: at slot i, try pointer-with-
// length, then pointer-without-length, then static, in that order, each
// recursing into Classify(i+1); on reaching end of the static head, move to
// Resolving(0). The first branch whose subtree is accepted by the oracle
// wins; every other branch restores endOfStatic and falls through to the
// next.
func (st *searchState) classify(i int, acc []slotResult) (Parameter, error) {
	pos := i * word.Size
	if pos >= st.endOfStatic {
		return st.resolve(acc)
	}

	forced := st.mode != nil
	tryPointerLen, tryPointerNoLen, tryStatic := true, true, true
	if forced {
		tryStatic = false
		if st.mode.AssumeLength {
			tryPointerNoLen = false
		} else {
			tryPointerLen = false
		}
	}

	off, hasOffset := word.ProbeOffset(st.buf, pos)

	if tryPointerLen && hasOffset {
		if length, ok := word.ProbeLength(st.buf, off); ok {
			if res, err := st.tryPointer(i, acc, off, &length); err == nil {
				return res, nil
			}
		}
	}
	if tryPointerNoLen && hasOffset {
		if res, err := st.tryPointer(i, acc, off, nil); err == nil {
			return res, nil
		}
	}
	if tryStatic {
		next := appendSlot(acc, slotResult{kind: slotStatic})
		if res, err := st.classify(i+1, next); err == nil {
			return res, nil
		}
	}
	return Parameter{}, &rejection{why: reasonShape, offset: pos}
}

func (st *searchState) tryPointer(i int, acc []slotResult, off int, length *int) (Parameter, error) {
	saved := st.endOfStatic
	if off < st.endOfStatic {
		st.endOfStatic = off
	}
	next := appendSlot(acc, slotResult{kind: slotPointer, ph: placeholder{offset: off, length: length}})
	res, err := st.classify(i+1, next)
	if err != nil {
		st.endOfStatic = saved
	}
	return res, err
}

func appendSlot(acc []slotResult, s slotResult) []slotResult {
	next := make([]slotResult, len(acc)+1)
	copy(next, acc)
	next[len(acc)] = s
	return next
}

// resolve implements Resolving(0..n): every placeholder discovered during
// Classify is resolved against its tail span, in discovery order (which is
// also offset order, per the invariant that probe_offset only accepts
// forward pointers). If every placeholder resolves, the candidate parameter
// list is submitted to the oracle; acceptance is Done, rejection is Fail and
// does not retry at this level (failure propagates to the nearest branching
// point in classify).
func (st *searchState) resolve(acc []slotResult) (Parameter, error) {
	var placeholders []placeholder
	for _, s := range acc {
		if s.kind == slotPointer {
			placeholders = append(placeholders, s.ph)
		}
	}

	params := make([]Parameter, len(acc))
	next := 0
	for idx, s := range acc {
		if s.kind == slotStatic {
			params[idx] = Bytes32()
			continue
		}
		ph := placeholders[next]
		start := ph.offset
		if ph.length != nil {
			start += word.Size
		}
		end := len(st.buf)
		isTrailing := next == len(placeholders)-1
		if !isTrailing {
			end = placeholders[next+1].offset
		}
		if start > end || end > len(st.buf) {
			return Parameter{}, &rejection{why: reasonTail, offset: ph.offset}
		}
		tail := st.buf[start:end]

		param, err := st.resolveTail(ph, tail, isTrailing)
		if err != nil {
			return Parameter{}, err
		}
		params[idx] = param
		next++
	}

	if !st.oc.Decode(params, st.buf) {
		return Parameter{}, &rejection{why: reasonOracle, offset: 0}
	}
	return Tuple(params...), nil
}
