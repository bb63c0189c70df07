// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package codec implements the canonical byte-string/list serializer used by
// every transaction encoding. A Value is either a byte string or an ordered
// list of values; its encoding is plain RLP.
//
// codec 包实现了所有交易编码使用的规范字节串/列表序列化器。
// Value 要么是字节串，要么是有序的值列表；其编码即为标准 RLP。
package codec

import (
	"bytes"
	"errors"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

var (
	ErrNotString    = errors.New("codec: value is a list, expected a string")
	ErrNotList      = errors.New("codec: value is a string, expected a list")
	ErrUintOverflow = errors.New("codec: integer overflow")
)

// Value is a node of an RLP tree.
// Value 是 RLP 树中的一个节点。
type Value struct {
	str    []byte
	items  []Value
	isList bool
}

// String creates a byte-string value. The slice is not copied.
func String(b []byte) Value {
	return Value{str: b}
}

// List creates a list value from the given items.
// List 用给定的元素创建一个列表值。
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{items: items, isList: true}
}

// Uint64 encodes x as its minimal big-endian byte string (empty for zero).
func Uint64(x uint64) Value {
	if x == 0 {
		return Value{}
	}
	return Value{str: new(big.Int).SetUint64(x).Bytes()}
}

// BigInt encodes a non-negative integer. A nil integer encodes as zero.
func BigInt(x *big.Int) Value {
	if x == nil || x.Sign() == 0 {
		return Value{}
	}
	return Value{str: x.Bytes()}
}

// Uint256 encodes a 256 bit integer. A nil integer encodes as zero.
func Uint256(x *uint256.Int) Value {
	if x == nil || x.IsZero() {
		return Value{}
	}
	return Value{str: x.Bytes()}
}

// Address encodes the full 20 bytes of an address.
func Address(a common.Address) Value {
	return Value{str: common.CopyBytes(a[:])}
}

// Bool encodes true as 0x01 and false as the empty string.
func Bool(b bool) Value {
	if b {
		return Value{str: []byte{0x01}}
	}
	return Value{}
}

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.isList }

// Bytes returns the content of a string value. It returns nil for lists.
func (v Value) Bytes() []byte { return v.str }

// Items returns the elements of a list value. It returns nil for strings.
func (v Value) Items() []Value { return v.items }

// Len returns the number of bytes of a string or the number of items of a list.
func (v Value) Len() int {
	if v.isList {
		return len(v.items)
	}
	return len(v.str)
}

// Equal reports whether two values have the same structure and content.
// Equal 判断两个值的结构与内容是否完全一致。
func (v Value) Equal(o Value) bool {
	if v.isList != o.isList {
		return false
	}
	if !v.isList {
		return bytes.Equal(v.str, o.str)
	}
	if len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// AsUint64 interprets a string value as a canonical big-endian integer.
// AsUint64 将字符串值解释为规范的大端整数。
func (v Value) AsUint64() (uint64, error) {
	b, err := v.intBytes()
	if err != nil {
		return 0, err
	}
	if len(b) > 8 {
		return 0, ErrUintOverflow
	}
	var x uint64
	for _, c := range b {
		x = x<<8 | uint64(c)
	}
	return x, nil
}

// AsUint256 interprets a string value as a canonical 256 bit integer.
func (v Value) AsUint256() (*uint256.Int, error) {
	b, err := v.intBytes()
	if err != nil {
		return nil, err
	}
	if len(b) > 32 {
		return nil, ErrUintOverflow
	}
	return new(uint256.Int).SetBytes(b), nil
}

// AsBigInt interprets a string value as a canonical non-negative integer.
func (v Value) AsBigInt() (*big.Int, error) {
	b, err := v.intBytes()
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

func (v Value) intBytes() ([]byte, error) {
	if v.isList {
		return nil, ErrNotString
	}
	if len(v.str) > 0 && v.str[0] == 0 {
		return nil, rlp.ErrCanonInt
	}
	return v.str, nil
}

// EncodeRLP implements rlp.Encoder.
func (v Value) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer(w)
	v.writeTo(buf)
	return buf.Flush()
}

func (v Value) writeTo(w rlp.EncoderBuffer) {
	if !v.isList {
		w.WriteBytes(v.str)
		return
	}
	idx := w.List()
	for _, item := range v.items {
		item.writeTo(w)
	}
	w.ListEnd(idx)
}

// DecodeRLP implements rlp.Decoder, so a Value can sit inside any struct
// decoded by the rlp package.
func (v *Value) DecodeRLP(s *rlp.Stream) error {
	raw, err := s.Raw()
	if err != nil {
		return err
	}
	dec, err := Decode(raw)
	if err != nil {
		return err
	}
	*v = dec
	return nil
}
