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

	"github.com/ethereum/go-ethereum/common"
	"github.com/klaytn/caver-go/accounts/accountkey"
	"github.com/klaytn/caver-go/core/types"
)

// SingleKeyring holds one private key, used for every role. The address may
// be decoupled from the key.
// SingleKeyring 持有一个私钥，所有角色都使用它。
type SingleKeyring struct {
	address common.Address
	key     *PrivateKey
}

// NewSingleKeyring creates a keyring for address signing with key.
func NewSingleKeyring(address common.Address, key *PrivateKey) *SingleKeyring {
	return &SingleKeyring{address: address, key: key}
}

// NewSingleKeyringFromHex is NewSingleKeyring for a hex encoded key.
func NewSingleKeyringFromHex(address common.Address, key string) (*SingleKeyring, error) {
	pk, err := NewPrivateKey(key)
	if err != nil {
		return nil, err
	}
	return NewSingleKeyring(address, pk), nil
}

// GenerateSingleKeyring creates a coupled keyring with a random key.
func GenerateSingleKeyring() (*SingleKeyring, error) {
	key, err := GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return NewSingleKeyring(key.Address(), key), nil
}

func (kr *SingleKeyring) Address() common.Address { return kr.address }

// Key returns the private key.
func (kr *SingleKeyring) Key() *PrivateKey { return kr.key }

// IsDecoupled reports whether the address is not derived from the key.
func (kr *SingleKeyring) IsDecoupled() bool {
	return kr.address != kr.key.Address()
}

func (kr *SingleKeyring) keys(role accountkey.Role) ([]*PrivateKey, error) {
	if err := checkRole(role); err != nil {
		return nil, err
	}
	return []*PrivateKey{kr.key}, nil
}

func (kr *SingleKeyring) KeyCount(role accountkey.Role) int {
	keys, _ := kr.keys(role)
	return len(keys)
}

func (kr *SingleKeyring) Sign(hash common.Hash, chainID *big.Int, role accountkey.Role, index int) (types.SignatureData, error) {
	keys, err := kr.keys(role)
	if err != nil {
		return types.SignatureData{}, err
	}
	return signAt(keys, hash, chainID, index)
}

func (kr *SingleKeyring) SignAll(hash common.Hash, chainID *big.Int, role accountkey.Role) ([]types.SignatureData, error) {
	keys, err := kr.keys(role)
	if err != nil {
		return nil, err
	}
	return signAll(keys, hash, chainID)
}

func (kr *SingleKeyring) SignMessage(message []byte, role accountkey.Role) (*MessageSigned, error) {
	keys, err := kr.keys(role)
	if err != nil {
		return nil, err
	}
	return signMessage(keys, message)
}

func (kr *SingleKeyring) SignMessageWithIndex(message []byte, role accountkey.Role, index int) (*MessageSigned, error) {
	keys, err := kr.keys(role)
	if err != nil {
		return nil, err
	}
	return signMessageAt(keys, message, index)
}

// ToAccount returns an account with an AccountKeyPublic of the key.
func (kr *SingleKeyring) ToAccount() (*accountkey.Account, error) {
	return accountkey.NewAccountWithPublicKey(kr.address, kr.key.PublicKey(false))
}

// KlaytnWalletKey encodes the keyring as 0x{private key}0x00{address}.
func (kr *SingleKeyring) KlaytnWalletKey() string {
	return kr.key.Hex() + "0x00" + kr.address.Hex()
}

func (kr *SingleKeyring) Copy() Keyring {
	return &SingleKeyring{address: kr.address, key: kr.key}
}
