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

// Package accountkey implements the account key types that an AccountUpdate
// transaction installs on an account, together with their canonical
// encodings.
//
// Klaytn 账户背景：
// 与以太坊不同，Klaytn 的账户地址与密钥解耦。账户可以持有公钥、加权多签密钥或按角色划分的密钥，
// 这些密钥通过 AccountUpdate 交易写入链上状态。
package accountkey

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klaytn/caver-go/codec"
)

// KeyType is the leading type byte of an encoded account key.
type KeyType byte

const (
	KeyTypeNil              KeyType = 0x00
	KeyTypeLegacy           KeyType = 0x01
	KeyTypePublic           KeyType = 0x02
	KeyTypeFail             KeyType = 0x03
	KeyTypeWeightedMultiSig KeyType = 0x04
	KeyTypeRoleBased        KeyType = 0x05
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeNil:
		return "AccountKeyNil"
	case KeyTypeLegacy:
		return "AccountKeyLegacy"
	case KeyTypePublic:
		return "AccountKeyPublic"
	case KeyTypeFail:
		return "AccountKeyFail"
	case KeyTypeWeightedMultiSig:
		return "AccountKeyWeightedMultiSig"
	case KeyTypeRoleBased:
		return "AccountKeyRoleBased"
	}
	return fmt.Sprintf("AccountKey(%#x)", byte(t))
}

var (
	ErrInvalidKeyEncoding  = errors.New("Invalid RLP-encoded account key String")
	ErrInvalidPublicKey    = errors.New("Invalid Public Key format")
	ErrInvalidOptions      = errors.New("Invalid argument in passing params.")
	ErrTooManyPublicKeys   = errors.New("It exceeds maximum public key count.")
	ErrWeightCountMismatch = errors.New("The count of public keys is not equal to the length of weight array.")
	ErrEmptyMultiSig       = errors.New("weightedPublicKeys must have items for multisig.")
	ErrTooManyRoles        = errors.New("It exceeds maximum role based key count.")
	ErrNestedRoleBased     = errors.New("AccountKeyRoleBased cannot contain an AccountKeyRoleBased")
	ErrNilKeyOptions       = errors.New("Invalid options: AccountKeyNil cannot have options.")
)

// AccountKey is implemented by every account key variant.
// AccountKey 由所有账户密钥变体实现。
type AccountKey interface {
	Type() KeyType

	// RLPEncoding returns the canonical encoding: a type byte followed by
	// the RLP of the key payload. AccountKeyNil encodes as a bare 0x80.
	RLPEncoding() []byte
}

var (
	nilKeyEncoding    = []byte{0x80}
	legacyKeyEncoding = []byte{byte(KeyTypeLegacy), 0xc0}
	failKeyEncoding   = []byte{byte(KeyTypeFail), 0xc0}
)

// Nil leaves the account key untouched. It is only meaningful inside a
// role-based key, where it marks a role that keeps its current key.
type Nil struct{}

func (Nil) Type() KeyType       { return KeyTypeNil }
func (Nil) RLPEncoding() []byte { return bytes.Clone(nilKeyEncoding) }

// Legacy binds the account to the key its address was derived from.
// Legacy 将账户绑定到派生出其地址的那把密钥。
type Legacy struct{}

func (Legacy) Type() KeyType       { return KeyTypeLegacy }
func (Legacy) RLPEncoding() []byte { return bytes.Clone(legacyKeyEncoding) }

// Fail makes every signature check of the account fail.
// Fail 使该账户的所有签名校验都失败。
type Fail struct{}

func (Fail) Type() KeyType       { return KeyTypeFail }
func (Fail) RLPEncoding() []byte { return bytes.Clone(failKeyEncoding) }

// Decode parses an encoded account key.
// Decode 解析一个已编码的账户密钥。
func Decode(enc []byte) (AccountKey, error) {
	if len(enc) == 0 {
		return nil, ErrInvalidKeyEncoding
	}
	if bytes.Equal(enc, nilKeyEncoding) {
		return Nil{}, nil
	}
	switch KeyType(enc[0]) {
	case KeyTypeLegacy:
		if !bytes.Equal(enc, legacyKeyEncoding) {
			return nil, ErrInvalidKeyEncoding
		}
		return Legacy{}, nil
	case KeyTypeFail:
		if !bytes.Equal(enc, failKeyEncoding) {
			return nil, ErrInvalidKeyEncoding
		}
		return Fail{}, nil
	case KeyTypePublic:
		return decodePublic(enc[1:])
	case KeyTypeWeightedMultiSig:
		return decodeWeightedMultiSig(enc[1:])
	case KeyTypeRoleBased:
		return decodeRoleBased(enc[1:])
	}
	return nil, fmt.Errorf("%w: unknown key type %#x", ErrInvalidKeyEncoding, enc[0])
}

// encodeTyped prefixes the encoded payload with the key type byte.
func encodeTyped(t KeyType, payload codec.Value) []byte {
	return append([]byte{byte(t)}, codec.Encode(payload)...)
}
