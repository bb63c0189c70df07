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
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/klaytn/caver-go/accounts/accountkey"
	"github.com/klaytn/caver-go/core/types"
	"github.com/klaytn/caver-go/params"
)

// RoleBasedKeyring holds one key group per role: transaction, account update
// and fee payer. An empty account update or fee payer group falls back to
// the transaction group.
//
// RoleBasedKeyring 为每个角色持有一组密钥；空的账户更新组或代付组回退到交易组。
type RoleBasedKeyring struct {
	address common.Address
	roles   [params.RoleGroupCount][]*PrivateKey
}

// NewRoleBasedKeyring creates a keyring for address from up to three key
// groups of up to ten keys each. Missing groups are empty.
func NewRoleBasedKeyring(address common.Address, groups [][]*PrivateKey) (*RoleBasedKeyring, error) {
	if len(groups) > params.RoleGroupCount {
		return nil, ErrTooManyRoles
	}
	kr := &RoleBasedKeyring{address: address}
	for i, group := range groups {
		if len(group) > params.MaxWeightedPublicKeys {
			return nil, ErrTooManyRoleKeys
		}
		kr.roles[i] = slices.Clone(group)
	}
	return kr, nil
}

// NewRoleBasedKeyringFromHex is NewRoleBasedKeyring for hex encoded keys.
func NewRoleBasedKeyringFromHex(address common.Address, groups [][]string) (*RoleBasedKeyring, error) {
	if len(groups) > params.RoleGroupCount {
		return nil, ErrTooManyRoles
	}
	parsed := make([][]*PrivateKey, len(groups))
	for i, group := range groups {
		keys, err := parseKeys(group)
		if err != nil {
			return nil, fmt.Errorf("role %v: %w", accountkey.Role(i), err)
		}
		parsed[i] = keys
	}
	return NewRoleBasedKeyring(address, parsed)
}

// GenerateRoleBasedKeyring creates counts[i] random keys for role i.
func GenerateRoleBasedKeyring(address common.Address, counts []int) (*RoleBasedKeyring, error) {
	if len(counts) > params.RoleGroupCount {
		return nil, ErrTooManyRoles
	}
	groups := make([][]*PrivateKey, len(counts))
	for i, n := range counts {
		keys, err := generateKeys(n)
		if err != nil {
			return nil, err
		}
		groups[i] = keys
	}
	return NewRoleBasedKeyring(address, groups)
}

func (kr *RoleBasedKeyring) Address() common.Address { return kr.address }

// IsDecoupled always returns true.
func (kr *RoleBasedKeyring) IsDecoupled() bool { return true }

// KeysByRole returns the keys the role signs with, applying the fallback to
// the transaction group.
func (kr *RoleBasedKeyring) KeysByRole(role accountkey.Role) ([]*PrivateKey, error) {
	if err := checkRole(role); err != nil {
		return nil, err
	}
	keys := kr.roles[role]
	if len(keys) == 0 && role > accountkey.RoleTransaction {
		keys = kr.roles[accountkey.RoleTransaction]
		if len(keys) == 0 {
			return nil, ErrEmptyRole
		}
	}
	return slices.Clone(keys), nil
}

func (kr *RoleBasedKeyring) KeyCount(role accountkey.Role) int {
	keys, _ := kr.KeysByRole(role)
	return len(keys)
}

func (kr *RoleBasedKeyring) Sign(hash common.Hash, chainID *big.Int, role accountkey.Role, index int) (types.SignatureData, error) {
	keys, err := kr.KeysByRole(role)
	if err != nil {
		return types.SignatureData{}, err
	}
	return signAt(keys, hash, chainID, index)
}

func (kr *RoleBasedKeyring) SignAll(hash common.Hash, chainID *big.Int, role accountkey.Role) ([]types.SignatureData, error) {
	keys, err := kr.KeysByRole(role)
	if err != nil {
		return nil, err
	}
	return signAll(keys, hash, chainID)
}

func (kr *RoleBasedKeyring) SignMessage(message []byte, role accountkey.Role) (*MessageSigned, error) {
	keys, err := kr.KeysByRole(role)
	if err != nil {
		return nil, err
	}
	return signMessage(keys, message)
}

func (kr *RoleBasedKeyring) SignMessageWithIndex(message []byte, role accountkey.Role, index int) (*MessageSigned, error) {
	keys, err := kr.KeysByRole(role)
	if err != nil {
		return nil, err
	}
	return signMessageAt(keys, message, index)
}

// ToAccount returns an account with an AccountKeyRoleBased of the groups.
// Each group uses default multisig options; empty groups become
// AccountKeyNil.
func (kr *RoleBasedKeyring) ToAccount() (*accountkey.Account, error) {
	return kr.ToAccountWithOptions(nil)
}

// ToAccountWithOptions is ToAccount with per-role multisig options.
func (kr *RoleBasedKeyring) ToAccountWithOptions(opts []*accountkey.WeightedMultiSigOptions) (*accountkey.Account, error) {
	pubs := make([][][]byte, len(kr.roles))
	for i, group := range kr.roles {
		pubs[i] = publicKeys(group)
	}
	return accountkey.NewAccountWithRoleBasedKey(kr.address, pubs, opts)
}

func (kr *RoleBasedKeyring) Copy() Keyring {
	cpy := &RoleBasedKeyring{address: kr.address}
	for i, group := range kr.roles {
		cpy.roles[i] = slices.Clone(group)
	}
	return cpy
}
