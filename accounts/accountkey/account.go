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
	"github.com/ethereum/go-ethereum/common"
)

// Account pairs an address with the key an AccountUpdate transaction will
// install for it.
// Account 将地址与 AccountUpdate 交易要为其设置的密钥配对。
type Account struct {
	Address common.Address
	Key     AccountKey
}

// NewAccount returns an account with an arbitrary key.
func NewAccount(address common.Address, key AccountKey) *Account {
	return &Account{Address: address, Key: key}
}

func NewAccountWithLegacyKey(address common.Address) *Account {
	return NewAccount(address, Legacy{})
}

func NewAccountWithFailKey(address common.Address) *Account {
	return NewAccount(address, Fail{})
}

// NewAccountWithPublicKey accepts the public key in any format NewPublic does.
func NewAccountWithPublicKey(address common.Address, pub []byte) (*Account, error) {
	key, err := NewPublic(pub)
	if err != nil {
		return nil, err
	}
	return NewAccount(address, key), nil
}

// NewAccountWithWeightedMultiSig uses default options (all weights and the
// threshold set to one) when opts is nil.
func NewAccountWithWeightedMultiSig(address common.Address, pubs [][]byte, opts *WeightedMultiSigOptions) (*Account, error) {
	key, err := NewWeightedMultiSig(pubs, opts)
	if err != nil {
		return nil, err
	}
	return NewAccount(address, key), nil
}

// NewAccountWithRoleBasedKey takes one public key list per role.
func NewAccountWithRoleBasedKey(address common.Address, pubs [][][]byte, opts []*WeightedMultiSigOptions) (*Account, error) {
	key, err := NewRoleBasedFromPublicKeys(pubs, opts)
	if err != nil {
		return nil, err
	}
	return NewAccount(address, key), nil
}

// NewAccountFromRLPEncoding decodes the key part from its canonical encoding.
// NewAccountFromRLPEncoding 从规范编码中解码账户密钥部分。
func NewAccountFromRLPEncoding(address common.Address, enc []byte) (*Account, error) {
	key, err := Decode(enc)
	if err != nil {
		return nil, err
	}
	return NewAccount(address, key), nil
}

// RLPEncoding returns the encoding of the account key.
func (a *Account) RLPEncoding() []byte {
	return a.Key.RLPEncoding()
}
