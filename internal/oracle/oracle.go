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

// Package oracle adapts go-ethereum's accounts/abi decoder -- the reference
// ABI decoder this module treats as an external collaborator -- to the
// narrow contract the tuple inferencer needs: decode a candidate parameter
// list against a buffer, and reject it outright on any structural or
// canonicalization error. It never performs shape inference itself.
package oracle

import (
	"fmt"
	"math/big"
	"reflect"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/abiguess/abiguess/internal/shape"
)

// EthOracle validates candidates against go-ethereum's accounts/abi package.
type EthOracle struct{}

// New returns the default, go-ethereum-backed oracle.
func New() *EthOracle { return &EthOracle{} }

// Decode reports whether params decodes buf without error, implementing
// shape.Oracle.
func (o *EthOracle) Decode(params []shape.Parameter, buf []byte) bool {
	_, ok := o.decode(params, buf)
	return ok
}

// DecodeValues decodes buf under params and also returns the canonicalized
// values, for the prettifier's single extra pass over an already-accepted
// fragment (spec.md 4.4).
func (o *EthOracle) DecodeValues(params []shape.Parameter, buf []byte) ([]Value, bool) {
	return o.decode(params, buf)
}

func (o *EthOracle) decode(params []shape.Parameter, buf []byte) ([]Value, bool) {
	args, err := toArguments(params)
	if err != nil {
		return nil, false
	}
	raw, err := args.Unpack(buf)
	if err != nil {
		return nil, false
	}
	if len(raw) != len(params) {
		return nil, false
	}
	values := make([]Value, len(params))
	for i, v := range raw {
		values[i] = toValue(params[i], v)
	}
	return values, true
}

func toArguments(params []shape.Parameter) (gethabi.Arguments, error) {
	args := make(gethabi.Arguments, len(params))
	for i, p := range params {
		t, err := toType(p)
		if err != nil {
			return nil, err
		}
		args[i] = gethabi.Argument{Name: fmt.Sprintf("arg%d", i), Type: t}
	}
	return args, nil
}

func toType(p shape.Parameter) (gethabi.Type, error) {
	switch p.Kind {
	case shape.KindTuple:
		comps, err := toComponents(p.Elems)
		if err != nil {
			return gethabi.Type{}, err
		}
		return gethabi.NewType("tuple", "", comps)
	case shape.KindArray:
		elem := p.Element()
		if elem.Kind == shape.KindTuple {
			comps, err := toComponents(elem.Elems)
			if err != nil {
				return gethabi.Type{}, err
			}
			return gethabi.NewType("tuple[]", "", comps)
		}
		base, err := baseTypeName(elem)
		if err != nil {
			return gethabi.Type{}, err
		}
		return gethabi.NewType(base+"[]", "", nil)
	default:
		base, err := baseTypeName(p)
		if err != nil {
			return gethabi.Type{}, err
		}
		return gethabi.NewType(base, "", nil)
	}
}

func toComponents(elems []shape.Parameter) ([]gethabi.ArgumentMarshaling, error) {
	comps := make([]gethabi.ArgumentMarshaling, len(elems))
	for i, e := range elems {
		name := fmt.Sprintf("Arg%d", i)
		switch e.Kind {
		case shape.KindTuple:
			inner, err := toComponents(e.Elems)
			if err != nil {
				return nil, err
			}
			comps[i] = gethabi.ArgumentMarshaling{Name: name, Type: "tuple", Components: inner}
		case shape.KindArray:
			el := e.Element()
			if el.Kind == shape.KindTuple {
				inner, err := toComponents(el.Elems)
				if err != nil {
					return nil, err
				}
				comps[i] = gethabi.ArgumentMarshaling{Name: name, Type: "tuple[]", Components: inner}
			} else {
				base, err := baseTypeName(el)
				if err != nil {
					return nil, err
				}
				comps[i] = gethabi.ArgumentMarshaling{Name: name, Type: base + "[]"}
			}
		default:
			base, err := baseTypeName(e)
			if err != nil {
				return nil, err
			}
			comps[i] = gethabi.ArgumentMarshaling{Name: name, Type: base}
		}
	}
	return comps, nil
}

func baseTypeName(p shape.Parameter) (string, error) {
	switch p.Kind {
	case shape.KindUint256:
		return "uint256", nil
	case shape.KindBytes32:
		return "bytes32", nil
	case shape.KindBytes:
		return "bytes", nil
	case shape.KindBytesN:
		return fmt.Sprintf("bytes%d", p.Width), nil
	case shape.KindString:
		return "string", nil
	case shape.KindAddress:
		return "address", nil
	default:
		return "", fmt.Errorf("oracle: unexpected elementary kind %d", p.Kind)
	}
}

// Value is a decoded argument, canonicalized to text the way spec.md 4.2
// requires, and retaining the raw bytes the prettifier inspects to refine
// bytes32/bytes parameters (spec.md 4.4).
type Value struct {
	Kind  shape.Kind
	Raw   []byte
	Text  string
	Elems []Value
}

// Canonical returns the value's canonical textual form.
func (v Value) Canonical() string { return v.Text }

func toValue(p shape.Parameter, v any) Value {
	switch p.Kind {
	case shape.KindUint256:
		bi, _ := v.(*big.Int)
		if bi == nil {
			bi = new(big.Int)
		}
		return Value{Kind: p.Kind, Raw: bi.Bytes(), Text: bi.String()}
	case shape.KindBytes32:
		b := v.([32]byte)
		return Value{Kind: p.Kind, Raw: b[:], Text: "0x" + common.Bytes2Hex(b[:])}
	case shape.KindBytes:
		b, _ := v.([]byte)
		return Value{Kind: p.Kind, Raw: b, Text: "0x" + common.Bytes2Hex(b)}
	case shape.KindAddress:
		a := v.(common.Address)
		return Value{Kind: p.Kind, Raw: a.Bytes(), Text: a.Hex()}
	case shape.KindString:
		s, _ := v.(string)
		return Value{Kind: p.Kind, Raw: []byte(s), Text: s}
	case shape.KindBytesN:
		raw := copyFixedBytes(v)
		return Value{Kind: p.Kind, Raw: raw, Text: "0x" + common.Bytes2Hex(raw)}
	case shape.KindTuple:
		rv := reflect.ValueOf(v)
		elems := make([]Value, len(p.Elems))
		for i := range p.Elems {
			elems[i] = toValue(p.Elems[i], rv.Field(i).Interface())
		}
		return Value{Kind: p.Kind, Elems: elems}
	case shape.KindArray:
		rv := reflect.ValueOf(v)
		elemParam := p.Element()
		elems := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elems[i] = toValue(elemParam, rv.Index(i).Interface())
		}
		return Value{Kind: p.Kind, Elems: elems}
	default:
		return Value{Kind: p.Kind}
	}
}

// copyFixedBytes copies a go-ethereum fixed-size byte array value (e.g.
// [4]byte for bytes4) into a plain slice via reflection, since the concrete
// array length varies per parameter.
func copyFixedBytes(v any) []byte {
	rv := reflect.ValueOf(v)
	out := make([]byte, rv.Len())
	reflect.Copy(reflect.ValueOf(out), rv)
	return out
}
