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

import "github.com/abiguess/abiguess/internal/word"

// resolveTail decodes the tail span belonging to one placeholder. A
// length-less placeholder's tail is itself a nested tuple encoding. A
// length-bearing placeholder's tail is disambiguated, in priority order,
// between a byte blob, an array of dynamic elements, an array of static
// elements, and (failing all of those) a tuple chunked into equal parts.
func (st *searchState) resolveTail(ph placeholder, tail []byte, isTrailing bool) (Parameter, error) {
	if ph.length == nil {
		return inferAt(tail, nil, st.oc, st.maxDepth, st.depth+1)
	}

	k := *ph.length
	if isBytesLike(k, tail, isTrailing) {
		return BytesKind(), nil
	}
	if k == 0 {
		return Parameter{}, &rejection{why: reasonTail, offset: ph.offset}
	}

	if res, err := st.dynamicElementArray(k, tail); err == nil {
		return res, nil
	}
	if res, err := st.staticElementArray(k, tail, isTrailing); err == nil {
		return res, nil
	}
	return st.tupleChunked(k, tail)
}

// isBytesLike implements the bytes-like criterion: a zero-length placeholder
// with an empty tail, a whole-word multiple that either is the trailing
// placeholder or exactly fills its tail, or a partial final word whose
// right-hand zero padding accounts for the gap between k and the next
// 32-byte boundary.
func isBytesLike(k int, tail []byte, isTrailing bool) bool {
	if k == 0 {
		return len(tail) == 0
	}
	if k%word.Size == 0 {
		return isTrailing || k == len(tail)
	}
	wordStart := ((k - 1) / word.Size) * word.Size
	wordEnd := wordStart + word.Size
	if wordEnd > len(tail) {
		return false
	}
	pad := word.Size - (k % word.Size)
	for _, b := range tail[wordEnd-pad : wordEnd] {
		if b != 0 {
			return false
		}
	}
	return true
}

// dynamicElementArray tries the hypothesis that tail holds k elements whose
// own encodings are dynamic: k offset words followed by k encoded elements.
// Both mode constraints are attempted (the element shape may itself begin
// with a length word, or may itself begin with an offset), and the
// assume-length result is preferred when both succeed, per spec.md 4.3's
// rationale that the stricter hypothesis, when it holds, is more likely the
// true shape.
func (st *searchState) dynamicElementArray(k int, tail []byte) (Parameter, error) {
	if len(tail)/word.Size <= k {
		return Parameter{}, &rejection{why: reasonTail, offset: 0}
	}
	for s := 0; s < k; s++ {
		if _, ok := word.ProbeOffset(tail, s*word.Size); !ok {
			return Parameter{}, &rejection{why: reasonTail, offset: s * word.Size}
		}
	}

	var best *Parameter
	for _, assumeLength := range [...]bool{true, false} {
		mode := &Mode{AssumeLength: assumeLength}
		res, err := inferAt(tail, mode, st.oc, st.maxDepth, st.depth+1)
		if err != nil {
			continue
		}
		if len(res.Elems) != k {
			continue
		}
		if !allSameShape(res.Elems) {
			continue
		}
		if best == nil {
			best = &res
		}
	}
	if best == nil {
		return Parameter{}, &rejection{why: reasonTail, offset: 0}
	}
	return Array(best.Elems[0]), nil
}

// staticElementArray tries the hypothesis that tail packs k statically-sized
// elements back to back. The trailing placeholder tolerates a short final
// element slice by truncating to the largest exact multiple of k words;
// every other position must divide evenly.
func (st *searchState) staticElementArray(k int, tail []byte, isTrailing bool) (Parameter, error) {
	if k <= 0 {
		return Parameter{}, &rejection{why: reasonTail, offset: 0}
	}
	totalWords := len(tail) / word.Size
	if totalWords%k != 0 {
		if !isTrailing {
			return Parameter{}, &rejection{why: reasonTail, offset: 0}
		}
		totalWords = (totalWords / k) * k
		tail = tail[:totalWords*word.Size]
	}
	elementWords := totalWords / k
	if elementWords == 0 {
		return Parameter{}, &rejection{why: reasonTail, offset: 0}
	}

	var elemType Parameter
	for e := 0; e < k; e++ {
		chunk := tail[e*elementWords*word.Size : (e+1)*elementWords*word.Size]
		res, err := inferAt(chunk, nil, st.oc, st.maxDepth, st.depth+1)
		if err != nil {
			return Parameter{}, err
		}
		if e == 0 {
			elemType = res
		} else if !Equal(elemType, res) {
			return Parameter{}, &rejection{why: reasonTail, offset: 0}
		}
	}
	return Array(collapseSingleton(elemType)), nil
}

// tupleChunked is the fallback disambiguation: decode the whole tail as one
// tuple, then require its components to split into k identically-shaped
// chunks.
func (st *searchState) tupleChunked(k int, tail []byte) (Parameter, error) {
	if k <= 0 {
		return Parameter{}, &rejection{why: reasonTail, offset: 0}
	}
	res, err := inferAt(tail, nil, st.oc, st.maxDepth, st.depth+1)
	if err != nil {
		return Parameter{}, err
	}
	if len(res.Elems)%k != 0 {
		return Parameter{}, &rejection{why: reasonTail, offset: 0}
	}
	chunkSize := len(res.Elems) / k
	first := res.Elems[:chunkSize]
	for c := 1; c < k; c++ {
		chunk := res.Elems[c*chunkSize : (c+1)*chunkSize]
		if !EqualSlice(first, chunk) {
			return Parameter{}, &rejection{why: reasonTail, offset: 0}
		}
	}
	var elem Parameter
	if chunkSize == 1 {
		elem = first[0]
	} else {
		elem = Tuple(first...)
	}
	return Array(elem), nil
}

// collapseSingleton unwraps a single-component tuple to its sole inner type
// (a lone bytes component included), leaving every other shape untouched.
func collapseSingleton(p Parameter) Parameter {
	if p.Kind == KindTuple && len(p.Elems) == 1 {
		return p.Elems[0]
	}
	return p
}

func allSameShape(params []Parameter) bool {
	for i := 1; i < len(params); i++ {
		if !Equal(params[0], params[i]) {
			return false
		}
	}
	return true
}
