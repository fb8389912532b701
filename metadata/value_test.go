// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/fixtures"
	"github.com/leonimella/bondd/metadata"
)

func TestPackUnpack(t *testing.T) {
	values := []metadata.Value{
		metadata.StringValue("BOND"),
		metadata.StringValue(""),
		metadata.UintValue(0),
		metadata.UintValue(1<<64 - 1),
		metadata.AddressValue(fixtures.Alice),
		metadata.BoolValue(true),
		metadata.BoolValue(false),
		metadata.DecimalValue(decimal.RequireFromString("4.25")),
	}

	for i, v := range values {
		packed, err := v.Pack()
		assert.Nil(t, err, "%d: pack", i)
		assert.Equal(t, byte(v.Kind), packed[0], "%d: kind byte", i)

		unpacked, err := metadata.Unpack(packed)
		assert.Nil(t, err, "%d: unpack", i)
		assert.True(t, v.Equal(unpacked), "%d: expected: %s  actual: %s", i, v, unpacked)
	}
}

func TestPackAbsent(t *testing.T) {
	_, err := metadata.Value{}.Pack()
	assert.Equal(t, fault.ErrInvalidMetadataValue, err, "absent value was packed")
}

func TestUnpackCorrupt(t *testing.T) {
	corrupt := [][]byte{
		{},
		{byte(metadata.KindNone)},
		{byte(metadata.KindUint), 1, 2, 3},
		{byte(metadata.KindAddress), 1},
		{byte(metadata.KindBool), 2},
		{byte(metadata.KindBool)},
		{byte(metadata.KindDecimal), 'x'},
		{0x7f, 0},
	}
	for i, packed := range corrupt {
		_, err := metadata.Unpack(packed)
		assert.Equal(t, fault.ErrInvalidMetadataValue, err, "%d: corrupt value accepted", i)
	}
}

func TestParseValue(t *testing.T) {
	v, err := metadata.ParseValue("uint", "86400")
	assert.Nil(t, err, "uint")
	assert.Equal(t, metadata.UintValue(86400), v, "uint")

	v, err = metadata.ParseValue("bool", "true")
	assert.Nil(t, err, "bool")
	assert.True(t, v.Bool, "bool")

	v, err = metadata.ParseValue("address", fixtures.Bob.Hex())
	assert.Nil(t, err, "address")
	assert.Equal(t, fixtures.Bob, v.Address, "address")

	v, err = metadata.ParseValue("decimal", "0.035")
	assert.Nil(t, err, "decimal")
	assert.True(t, decimal.RequireFromString("0.035").Equal(v.Decimal), "decimal")

	bad := [][2]string{
		{"uint", "-1"},
		{"uint", "many"},
		{"bool", "perhaps"},
		{"address", "0x12"},
		{"decimal", "1.2.3"},
		{"float", "1.0"},
		{"none", ""},
	}
	for _, b := range bad {
		_, err := metadata.ParseValue(b[0], b[1])
		assert.NotNil(t, err, "accepted: %s %q", b[0], b[1])
	}
}

func TestValueJSON(t *testing.T) {
	v := metadata.DecimalValue(decimal.RequireFromString("12.5"))

	b, err := json.Marshal(v)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"kind":"decimal","value":"12.5"}`, string(b), "json")

	var u metadata.Value
	err = json.Unmarshal([]byte(`{"kind":"string","value":"Treasury"}`), &u)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, metadata.StringValue("Treasury"), u, "unmarshalled")

	b, err = json.Marshal(metadata.Value{})
	assert.Nil(t, err, "marshal absent")
	err = json.Unmarshal(b, &u)
	assert.Nil(t, err, "unmarshal absent")
	assert.True(t, u.IsAbsent(), "absent value not restored")

	err = json.Unmarshal([]byte(`{"kind":"uint","value":"abc"}`), &u)
	assert.Equal(t, fault.ErrInvalidMetadataValue, err, "bad uint accepted")
}

func TestValueEqual(t *testing.T) {
	assert.True(t, metadata.Value{}.Equal(metadata.Value{}), "absent values differ")
	assert.False(t, metadata.UintValue(1).Equal(metadata.StringValue("1")), "kinds ignored")
	assert.True(t, metadata.DecimalValue(decimal.RequireFromString("1.50")).Equal(metadata.DecimalValue(decimal.RequireFromString("1.5"))), "decimal scale")
}
