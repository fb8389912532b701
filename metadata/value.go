// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata

import (
	"encoding/binary"
	"encoding/json"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/leonimella/bondd/fault"
)

// Kind - the type of a stored value
type Kind byte

// all value kinds, KindNone is the absent value
const (
	KindNone Kind = iota
	KindString
	KindUint
	KindAddress
	KindBool
	KindDecimal
)

var kindNames = map[Kind]string{
	KindNone:    "none",
	KindString:  "string",
	KindUint:    "uint",
	KindAddress: "address",
	KindBool:    "bool",
	KindDecimal: "decimal",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind - kind from its name
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindNone, fault.ErrInvalidMetadataValue
}

// Value - a typed metadata value
//
// the zero Value is the absent sentinel
type Value struct {
	Kind    Kind
	Text    string
	Uint    uint64
	Address common.Address
	Bool    bool
	Decimal decimal.Decimal
}

// StringValue - create a string value
func StringValue(s string) Value { return Value{Kind: KindString, Text: s} }

// UintValue - create an unsigned integer value
func UintValue(n uint64) Value { return Value{Kind: KindUint, Uint: n} }

// AddressValue - create an address value
func AddressValue(a common.Address) Value { return Value{Kind: KindAddress, Address: a} }

// BoolValue - create a boolean value
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// DecimalValue - create a decimal value
func DecimalValue(d decimal.Decimal) Value { return Value{Kind: KindDecimal, Decimal: d} }

// IsAbsent - true for the sentinel returned for unknown keys
func (v Value) IsAbsent() bool {
	return KindNone == v.Kind
}

// Equal - same kind and same content
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Text == other.Text
	case KindUint:
		return v.Uint == other.Uint
	case KindAddress:
		return v.Address == other.Address
	case KindBool:
		return v.Bool == other.Bool
	case KindDecimal:
		return v.Decimal.Equal(other.Decimal)
	}
	return true
}

// text form of the payload, the inverse of ParseValue
func (v Value) content() string {
	switch v.Kind {
	case KindString:
		return v.Text
	case KindUint:
		return strconv.FormatUint(v.Uint, 10)
	case KindAddress:
		return v.Address.Hex()
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDecimal:
		return v.Decimal.String()
	}
	return ""
}

func (v Value) String() string {
	return v.Kind.String() + ":" + v.content()
}

// ParseValue - create a value from a kind name and its text form
func ParseValue(kind string, text string) (Value, error) {
	k, err := ParseKind(kind)
	if nil != err {
		return Value{}, err
	}

	switch k {
	case KindString:
		return StringValue(text), nil

	case KindUint:
		n, err := strconv.ParseUint(text, 10, 64)
		if nil != err {
			return Value{}, fault.ErrInvalidMetadataValue
		}
		return UintValue(n), nil

	case KindAddress:
		if !common.IsHexAddress(text) {
			return Value{}, fault.ErrInvalidMetadataValue
		}
		return AddressValue(common.HexToAddress(text)), nil

	case KindBool:
		b, err := strconv.ParseBool(text)
		if nil != err {
			return Value{}, fault.ErrInvalidMetadataValue
		}
		return BoolValue(b), nil

	case KindDecimal:
		d, err := decimal.NewFromString(text)
		if nil != err {
			return Value{}, fault.ErrInvalidMetadataValue
		}
		return DecimalValue(d), nil
	}
	return Value{}, fault.ErrInvalidMetadataValue
}

// Pack - kind byte ++ payload
func (v Value) Pack() ([]byte, error) {
	packed := []byte{byte(v.Kind)}

	switch v.Kind {
	case KindString:
		packed = append(packed, v.Text...)
	case KindUint:
		buffer := make([]byte, 8)
		binary.BigEndian.PutUint64(buffer, v.Uint)
		packed = append(packed, buffer...)
	case KindAddress:
		packed = append(packed, v.Address.Bytes()...)
	case KindBool:
		if v.Bool {
			packed = append(packed, 0x01)
		} else {
			packed = append(packed, 0x00)
		}
	case KindDecimal:
		packed = append(packed, v.Decimal.String()...)
	default:
		return nil, fault.ErrInvalidMetadataValue
	}
	return packed, nil
}

// Unpack - the inverse of Pack
func Unpack(packed []byte) (Value, error) {
	if 0 == len(packed) {
		return Value{}, fault.ErrInvalidMetadataValue
	}

	payload := packed[1:]
	switch k := Kind(packed[0]); k {
	case KindString:
		return StringValue(string(payload)), nil

	case KindUint:
		if 8 != len(payload) {
			return Value{}, fault.ErrInvalidMetadataValue
		}
		return UintValue(binary.BigEndian.Uint64(payload)), nil

	case KindAddress:
		if common.AddressLength != len(payload) {
			return Value{}, fault.ErrInvalidMetadataValue
		}
		return AddressValue(common.BytesToAddress(payload)), nil

	case KindBool:
		if 1 != len(payload) || payload[0] > 1 {
			return Value{}, fault.ErrInvalidMetadataValue
		}
		return BoolValue(0x01 == payload[0]), nil

	case KindDecimal:
		d, err := decimal.NewFromString(string(payload))
		if nil != err {
			return Value{}, fault.ErrInvalidMetadataValue
		}
		return DecimalValue(d), nil
	}
	return Value{}, fault.ErrInvalidMetadataValue
}

type jsonValue struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// MarshalJSON - {"kind": "...", "value": "..."}
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonValue{
		Kind:  v.Kind.String(),
		Value: v.content(),
	})
}

// UnmarshalJSON - {"kind": "...", "value": "..."}
func (v *Value) UnmarshalJSON(b []byte) error {
	var j jsonValue
	if err := json.Unmarshal(b, &j); nil != err {
		return err
	}
	if KindNone.String() == j.Kind && "" == j.Value {
		*v = Value{}
		return nil
	}
	value, err := ParseValue(j.Kind, j.Value)
	if nil != err {
		return err
	}
	*v = value
	return nil
}
