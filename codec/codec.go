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

package codec

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// Encode returns the canonical encoding of v.
// Encode 返回 v 的规范编码。
func Encode(v Value) []byte {
	w := rlp.NewEncoderBuffer(nil)
	v.writeTo(w)
	enc := w.ToBytes()
	w.Flush()
	return enc
}

// EncodeList is shorthand for Encode(List(items...)).
func EncodeList(items ...Value) []byte {
	return Encode(List(items...))
}

// Decode parses exactly one value from b. Input with trailing bytes,
// non-canonical size prefixes or truncated content is rejected.
//
// Decode 从 b 中解析恰好一个值。带有多余尾随字节、非规范长度前缀或内容被截断的输入都会被拒绝。
func Decode(b []byte) (Value, error) {
	v, rest, err := split(b)
	if err != nil {
		return Value{}, err
	}
	if len(rest) > 0 {
		return Value{}, rlp.ErrMoreThanOneValue
	}
	return v, nil
}

// DecodeList parses b and requires the result to be a list.
func DecodeList(b []byte) ([]Value, error) {
	v, err := Decode(b)
	if err != nil {
		return nil, err
	}
	if !v.IsList() {
		return nil, rlp.ErrExpectedList
	}
	return v.Items(), nil
}

func split(b []byte) (Value, []byte, error) {
	kind, content, rest, err := rlp.Split(b)
	if err != nil {
		return Value{}, b, err
	}
	switch kind {
	case rlp.Byte, rlp.String:
		str := make([]byte, len(content))
		copy(str, content)
		return String(str), rest, nil
	default:
		items := []Value{}
		for len(content) > 0 {
			var item Value
			if item, content, err = split(content); err != nil {
				return Value{}, b, err
			}
			items = append(items, item)
		}
		return List(items...), rest, nil
	}
}
