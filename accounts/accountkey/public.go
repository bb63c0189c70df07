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

package accountkey

import (
	"bytes"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/klaytn/caver-go/codec"
)

// Public is a single secp256k1 public key.
// Public 是单个 secp256k1 公钥。
type Public struct {
	compressed []byte // 33 byte SEC1 compressed form
}

// NewPublic accepts a public key in compressed (33 bytes), uncompressed
// (65 bytes, 0x04 prefix) or raw (64 bytes, X‖Y) form.
//
// NewPublic 接受压缩（33 字节）、未压缩（65 字节，0x04 前缀）或原始（64 字节，X‖Y）格式的公钥。
func NewPublic(pub []byte) (*Public, error) {
	compressed, err := compressPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &Public{compressed: compressed}, nil
}

// NewPublicFromHex is NewPublic for 0x-prefixed hex input.
func NewPublicFromHex(pub string) (*Public, error) {
	b, err := hexutil.Decode(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return NewPublic(b)
}

func (k *Public) Type() KeyType { return KeyTypePublic }

// RLPEncoding returns 0x02 ‖ rlp(compressedKey).
func (k *Public) RLPEncoding() []byte {
	return encodeTyped(KeyTypePublic, codec.String(k.compressed))
}

// CompressedKey returns a copy of the compressed public key.
func (k *Public) CompressedKey() []byte {
	return bytes.Clone(k.compressed)
}

// UncompressedKey returns the 65 byte uncompressed form of the key.
func (k *Public) UncompressedKey() []byte {
	pub, _ := secp256k1.ParsePubKey(k.compressed)
	return pub.SerializeUncompressed()
}

func decodePublic(payload []byte) (AccountKey, error) {
	v, err := codec.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	if v.IsList() {
		return nil, ErrInvalidKeyEncoding
	}
	return NewPublic(v.Bytes())
}

// compressPublicKey validates that pub is a point on the curve and returns
// its compressed encoding.
func compressPublicKey(pub []byte) ([]byte, error) {
	if len(pub) == 64 {
		pub = append([]byte{0x04}, pub...)
	}
	key, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return key.SerializeCompressed(), nil
}
