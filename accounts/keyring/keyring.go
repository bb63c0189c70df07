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

// Package keyring holds the private keys of a Klaytn account and signs
// transactions and messages with them.
//
// Three layouts exist: SingleKeyring (one key), MultipleKeyring (up to ten
// keys used for every role) and RoleBasedKeyring (one key group per role).
// All of them implement types.Keyring and can be passed to types.SignTx and
// types.SignTxAsFeePayer.
package keyring

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/klaytn/caver-go/accounts/accountkey"
	"github.com/klaytn/caver-go/core/types"
	"github.com/klaytn/caver-go/params"
)

var (
	ErrInvalidPrivateKey  = errors.New("Invalid private key.")
	ErrNegativeIndex      = errors.New("Invalid index : index cannot be negative")
	ErrIndexOutOfRange    = errors.New("Invalid index : index must be less than the length of the key.")
	ErrInvalidRole        = errors.New("Invalid role index")
	ErrEmptyRole          = errors.New("The Key with specified role group does not exists. The TRANSACTION role group is also empty")
	ErrTooManyKeys        = errors.New("MultipleKey has up to 10.")
	ErrTooManyRoles       = errors.New("RoleBasedKey component must have 3.")
	ErrTooManyRoleKeys    = errors.New("The keys in RoleBasedKey component has up to 10.")
	ErrNoKeys             = errors.New("keyring needs at least one key")
	ErrInvalidWalletKey   = errors.New("Invalid Klaytn wallet key.")
	ErrMissingChainID     = errors.New("chain id is required to sign a transaction hash")
	ErrInvalidMessageHash = errors.New("invalid message hash")
)

// Keyring is the signing interface shared by every keyring layout.
// Keyring 是所有 keyring 类型共享的签名接口。
type Keyring interface {
	types.Keyring

	// SignMessage signs the prefixed hash of message with every key of the role.
	SignMessage(message []byte, role accountkey.Role) (*MessageSigned, error)
	// SignMessageWithIndex signs with the key at index of the role only.
	SignMessageWithIndex(message []byte, role accountkey.Role, index int) (*MessageSigned, error)
	// ToAccount returns the account that installs the public keys of the
	// keyring through an AccountUpdate transaction.
	ToAccount() (*accountkey.Account, error)
	Copy() Keyring
}

var (
	_ Keyring = (*SingleKeyring)(nil)
	_ Keyring = (*MultipleKeyring)(nil)
	_ Keyring = (*RoleBasedKeyring)(nil)
)

func checkRole(role accountkey.Role) error {
	if role < 0 || int(role) >= params.RoleGroupCount {
		return fmt.Errorf("%w : %d", ErrInvalidRole, role)
	}
	return nil
}

func checkIndex(index, length int) error {
	if index < 0 {
		return ErrNegativeIndex
	}
	if index >= length {
		return ErrIndexOutOfRange
	}
	return nil
}

func signAt(keys []*PrivateKey, hash common.Hash, chainID *big.Int, index int) (types.SignatureData, error) {
	if err := checkIndex(index, len(keys)); err != nil {
		return types.SignatureData{}, err
	}
	return keys[index].Sign(hash, chainID)
}

func signAll(keys []*PrivateKey, hash common.Hash, chainID *big.Int) ([]types.SignatureData, error) {
	sigs := make([]types.SignatureData, 0, len(keys))
	for _, key := range keys {
		sig, err := key.Sign(hash, chainID)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

func signMessageAt(keys []*PrivateKey, message []byte, index int) (*MessageSigned, error) {
	if err := checkIndex(index, len(keys)); err != nil {
		return nil, err
	}
	return signMessage(keys[index:index+1], message)
}

func parseKeys(hexkeys []string) ([]*PrivateKey, error) {
	keys := make([]*PrivateKey, len(hexkeys))
	for i, h := range hexkeys {
		key, err := NewPrivateKey(h)
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}

func publicKeys(keys []*PrivateKey) [][]byte {
	pubs := make([][]byte, len(keys))
	for i, key := range keys {
		pubs[i] = key.PublicKey(false)
	}
	return pubs
}

// FromPrivateKey creates a coupled single keyring. A Klaytn wallet key is
// accepted as well.
func FromPrivateKey(key string) (*SingleKeyring, error) {
	if IsKlaytnWalletKey(key) {
		return FromKlaytnWalletKey(key)
	}
	pk, err := NewPrivateKey(key)
	if err != nil {
		return nil, err
	}
	return &SingleKeyring{address: pk.Address(), key: pk}, nil
}

// IsKlaytnWalletKey reports whether key has the 0x{private key}0x00{address}
// layout.
func IsKlaytnWalletKey(key string) bool {
	_, _, err := parseKlaytnWalletKey(key)
	return err == nil
}

// FromKlaytnWalletKey creates a single keyring from a Klaytn wallet key. The
// address part may differ from the key's own address.
func FromKlaytnWalletKey(walletKey string) (*SingleKeyring, error) {
	key, address, err := parseKlaytnWalletKey(walletKey)
	if err != nil {
		return nil, err
	}
	return &SingleKeyring{address: address, key: key}, nil
}

func parseKlaytnWalletKey(walletKey string) (*PrivateKey, common.Address, error) {
	s := strings.TrimPrefix(walletKey, "0x")
	if len(s) != 110 {
		return nil, common.Address{}, ErrInvalidWalletKey
	}
	parts := strings.Split(s, "0x")
	if len(parts) != 3 || parts[1] != "00" || !common.IsHexAddress(parts[2]) {
		return nil, common.Address{}, ErrInvalidWalletKey
	}
	key, err := NewPrivateKey(parts[0])
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("%w: %v", ErrInvalidWalletKey, err)
	}
	return key, common.HexToAddress(parts[2]), nil
}
