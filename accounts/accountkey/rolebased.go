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
	"fmt"

	"github.com/klaytn/caver-go/codec"
	"github.com/klaytn/caver-go/params"
)

// Role selects one of the key groups of a role-based account.
// Role 选择基于角色的账户中的某一个密钥组。
type Role int

const (
	RoleTransaction   Role = iota // signs ordinary transactions
	RoleAccountUpdate             // signs AccountUpdate transactions
	RoleFeePayer                  // signs as fee payer
)

func (r Role) String() string {
	switch r {
	case RoleTransaction:
		return "transaction"
	case RoleAccountUpdate:
		return "accountUpdate"
	case RoleFeePayer:
		return "feePayer"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// RoleBased holds one account key per role. Missing trailing roles are
// simply absent; a Nil entry keeps the role's current key on chain.
//
// RoleBased 为每个角色持有一个账户密钥。
type RoleBased struct {
	Keys []AccountKey
}

// NewRoleBased validates the per-role keys.
func NewRoleBased(keys []AccountKey) (*RoleBased, error) {
	if len(keys) > params.RoleGroupCount {
		return nil, ErrTooManyRoles
	}
	for _, k := range keys {
		if k == nil {
			return nil, ErrInvalidKeyEncoding
		}
		if k.Type() == KeyTypeRoleBased {
			return nil, ErrNestedRoleBased
		}
	}
	return &RoleBased{Keys: keys}, nil
}

// NewRoleBasedFromPublicKeys builds a role-based key from one public key list
// per role. A single key becomes an AccountKeyPublic, several keys become an
// AccountKeyWeightedMultiSig using the options of that role, and an empty
// list becomes AccountKeyNil. opts may be nil for default options.
func NewRoleBasedFromPublicKeys(pubs [][][]byte, opts []*WeightedMultiSigOptions) (*RoleBased, error) {
	if len(pubs) > params.RoleGroupCount {
		return nil, ErrTooManyRoles
	}
	if opts != nil && len(opts) != len(pubs) {
		return nil, fmt.Errorf("%w: pubArray and options must have the same number of items", ErrInvalidOptions)
	}
	keys := make([]AccountKey, len(pubs))
	for i, group := range pubs {
		var opt *WeightedMultiSigOptions
		if opts != nil {
			opt = opts[i]
		}
		switch {
		case len(group) == 0:
			if !opt.IsEmpty() {
				return nil, ErrNilKeyOptions
			}
			keys[i] = Nil{}
		case len(group) == 1 && opt.IsEmpty():
			pk, err := NewPublic(group[0])
			if err != nil {
				return nil, err
			}
			keys[i] = pk
		default:
			if opt.IsEmpty() {
				opt = nil
			}
			mk, err := NewWeightedMultiSig(group, opt)
			if err != nil {
				return nil, err
			}
			keys[i] = mk
		}
	}
	return NewRoleBased(keys)
}

func (k *RoleBased) Type() KeyType { return KeyTypeRoleBased }

// RLPEncoding returns 0x05 ‖ rlp([encodedKey_0, encodedKey_1, ...]) where
// every sub-key encoding is embedded as a byte string.
func (k *RoleBased) RLPEncoding() []byte {
	items := make([]codec.Value, len(k.Keys))
	for i, sub := range k.Keys {
		items[i] = codec.String(sub.RLPEncoding())
	}
	return encodeTyped(KeyTypeRoleBased, codec.List(items...))
}

// KeyOf returns the key of the given role, or nil if the role is absent.
func (k *RoleBased) KeyOf(role Role) AccountKey {
	if int(role) < 0 || int(role) >= len(k.Keys) {
		return nil
	}
	return k.Keys[role]
}

func decodeRoleBased(payload []byte) (AccountKey, error) {
	items, err := codec.DecodeList(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	keys := make([]AccountKey, len(items))
	for i, item := range items {
		if item.IsList() {
			return nil, ErrInvalidKeyEncoding
		}
		if len(item.Bytes()) > 0 && KeyType(item.Bytes()[0]) == KeyTypeRoleBased {
			return nil, ErrNestedRoleBased
		}
		if keys[i], err = Decode(item.Bytes()); err != nil {
			return nil, err
		}
	}
	return NewRoleBased(keys)
}
