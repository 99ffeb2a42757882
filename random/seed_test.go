package random

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterial(t *testing.T) {
	tests := []struct {
		name string
		seed Seed
		kind string
		want string
	}{
		{name: "IntZero", seed: Int(0), kind: "int", want: "696e74000000000000000000"},
		{name: "IntNegative", seed: Int(-2), kind: "int", want: "696e7400fffffffffffffffe"},
		{name: "Bytes", seed: Bytes([]byte{0x01, 0xff}), kind: "bytes", want: "627974657300" + "01ff"},
		{name: "EmptyBytes", seed: Bytes(nil), kind: "bytes", want: "627974657300"},
		{name: "String", seed: String("ab"), kind: "string", want: "737472696e6700" + "6162"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.seed.Kind())
			assert.Equal(t, tt.want, hex.EncodeToString(Material(tt.seed)))
		})
	}
}

func TestMaterial_Nil(t *testing.T) {
	assert.Nil(t, Material(nil))
}

func TestBytes_CopiesInput(t *testing.T) {
	b := []byte("seed")
	s := Bytes(b)
	b[0] = 'X'

	assert.Equal(t, Material(Bytes([]byte("seed"))), Material(s))
}

func TestParse(t *testing.T) {
	assert.Equal(t, Int(42), Parse("42"))
	assert.Equal(t, Int(-7), Parse("-7"))
	assert.Equal(t, String("0x2a"), Parse("0x2a"))
	assert.Equal(t, String("case-example"), Parse("case-example"))
	assert.Equal(t, String("99999999999999999999"), Parse("99999999999999999999"))
}
