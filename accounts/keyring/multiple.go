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

package keyring

import (
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/klaytn/caver-go/accounts/accountkey"
	"github.com/klaytn/caver-go/core/types"
	"github.com/klaytn/caver-go/params"
)

// MultipleKeyring holds up to ten keys. Every role signs with all of them.
type MultipleKeyring struct {
	address common.Address
	keys    []*PrivateKey
}

// NewMultipleKeyring creates a keyring for address holding keys.
func NewMultipleKeyring(address common.Address, keys []*PrivateKey) (*MultipleKeyring, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	if len(keys) > params.MaxWeightedPublicKeys {
		return nil, ErrTooManyKeys
	}
	return &MultipleKeyring{address: address, keys: slices.Clone(keys)}, nil
}

// NewMultipleKeyringFromHex is NewMultipleKeyring for hex encoded keys.
func NewMultipleKeyringFromHex(address common.Address, keys []string) (*MultipleKeyring, error) {
	pks, err := parseKeys(keys)
	if err != nil {
		return nil, err
	}
	return NewMultipleKeyring(address, pks)
}

// GenerateMultipleKeyring creates n random keys for address.
func GenerateMultipleKeyring(address common.Address, n int) (*MultipleKeyring, error) {
	keys, err := generateKeys(n)
	if err != nil {
		return nil, err
	}
	return NewMultipleKeyring(address, keys)
}

func generateKeys(n int) ([]*PrivateKey, error) {
	keys := make([]*PrivateKey, n)
	for i := range keys {
		key, err := GeneratePrivateKey()
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}

func (kr *MultipleKeyring) Address() common.Address { return kr.address }

// Keys returns the private keys.
func (kr *MultipleKeyring) Keys() []*PrivateKey { return slices.Clone(kr.keys) }

// IsDecoupled always returns true.
func (kr *MultipleKeyring) IsDecoupled() bool { return true }

func (kr *MultipleKeyring) keysOf(role accountkey.Role) ([]*PrivateKey, error) {
	if err := checkRole(role); err != nil {
		return nil, err
	}
	return kr.keys, nil
}

func (kr *MultipleKeyring) KeyCount(role accountkey.Role) int {
	keys, _ := kr.keysOf(role)
	return len(keys)
}

func (kr *MultipleKeyring) Sign(hash common.Hash, chainID *big.Int, role accountkey.Role, index int) (types.SignatureData, error) {
	keys, err := kr.keysOf(role)
	if err != nil {
		return types.SignatureData{}, err
	}
	return signAt(keys, hash, chainID, index)
}

func (kr *MultipleKeyring) SignAll(hash common.Hash, chainID *big.Int, role accountkey.Role) ([]types.SignatureData, error) {
	keys, err := kr.keysOf(role)
	if err != nil {
		return nil, err
	}
	return signAll(keys, hash, chainID)
}

func (kr *MultipleKeyring) SignMessage(message []byte, role accountkey.Role) (*MessageSigned, error) {
	keys, err := kr.keysOf(role)
	if err != nil {
		return nil, err
	}
	return signMessage(keys, message)
}

func (kr *MultipleKeyring) SignMessageWithIndex(message []byte, role accountkey.Role, index int) (*MessageSigned, error) {
	keys, err := kr.keysOf(role)
	if err != nil {
		return nil, err
	}
	return signMessageAt(keys, message, index)
}

// ToAccount returns an account with an AccountKeyWeightedMultiSig of all
// keys, weight one each and threshold one.
func (kr *MultipleKeyring) ToAccount() (*accountkey.Account, error) {
	return kr.ToAccountWithOptions(nil)
}

// ToAccountWithOptions is ToAccount with explicit threshold and weights.
func (kr *MultipleKeyring) ToAccountWithOptions(opts *accountkey.WeightedMultiSigOptions) (*accountkey.Account, error) {
	return accountkey.NewAccountWithWeightedMultiSig(kr.address, publicKeys(kr.keys), opts)
}

func (kr *MultipleKeyring) Copy() Keyring {
	return &MultipleKeyring{address: kr.address, keys: slices.Clone(kr.keys)}
}
