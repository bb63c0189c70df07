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

package types

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/klaytn/caver-go/accounts/accountkey"
)

// Keyring signs transaction digests with the keys of one account.
//
// The keys of a keyring are grouped by role. Sign uses the key at index of
// the role group, SignAll uses every key of the group in order. Both return
// signatures whose v value is 35 + 2*chainID + parity.
//
// Keyring 使用某个账户的密钥对交易摘要签名。密钥按角色分组。
type Keyring interface {
	Address() common.Address
	// IsDecoupled reports whether the keys are not derived from the address.
	IsDecoupled() bool
	KeyCount(role accountkey.Role) int
	Sign(hash common.Hash, chainID *big.Int, role accountkey.Role, index int) (SignatureData, error)
	SignAll(hash common.Hash, chainID *big.Int, role accountkey.Role) ([]SignatureData, error)
}

// Hasher computes the digest a keyring signs.
type Hasher func(tx *Transaction) (common.Hash, error)

type signConfig struct {
	index    int
	hasIndex bool // false: all keys of the role
	hasher   Hasher
}

// SignOption configures SignTx and SignTxAsFeePayer.
type SignOption func(*signConfig)

// WithKeyIndex signs with the single key at index i of the role group
// instead of all of its keys.
func WithKeyIndex(i int) SignOption {
	return func(c *signConfig) {
		c.index = i
		c.hasIndex = true
	}
}

// WithHasher replaces the digest function.
func WithHasher(h Hasher) SignOption {
	return func(c *signConfig) { c.hasher = h }
}

func newSignConfig(def Hasher, opts []SignOption) *signConfig {
	c := &signConfig{hasher: def}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignTx signs the transaction as its sender and returns the signed copy.
// The keys of the AccountUpdate role sign AccountUpdate transactions; the
// Transaction role signs everything else. A legacy transaction without a
// sender adopts the address of the keyring.
//
// SignTx 以发送者身份签名并返回签名后的副本，原交易保持不变。
func SignTx(tx *Transaction, kr Keyring, opts ...SignOption) (*Transaction, error) {
	if tx.IsLegacy() && kr.IsDecoupled() {
		return nil, ErrLegacyDecoupled
	}
	cfg := newSignConfig((*Transaction).HashForSignature, opts)
	cpy := tx.Copy()
	switch {
	case cpy.from == zeroAddress:
		cpy.from = kr.Address()
	case cpy.from != kr.Address():
		return nil, ErrFromMismatch
	}
	role := accountkey.RoleTransaction
	if cpy.typ.IsAccountUpdate() {
		role = accountkey.RoleAccountUpdate
	}
	sigs, err := signWith(cpy, kr, role, cfg)
	if err != nil {
		return nil, err
	}
	if err := cpy.appendSignatures(sigs); err != nil {
		return nil, err
	}
	log.Debug("Signed transaction", "type", cpy.typ, "from", cpy.from, "role", role, "signatures", len(sigs))
	return cpy, nil
}

// SignTxAsFeePayer signs a fee delegated transaction as its fee payer and
// returns the signed copy. An unset fee payer adopts the address of the
// keyring.
//
// SignTxAsFeePayer 以代付者身份签名代付交易并返回签名后的副本。
func SignTxAsFeePayer(tx *Transaction, kr Keyring, opts ...SignOption) (*Transaction, error) {
	if !tx.IsFeeDelegated() {
		return nil, ErrNotFeeDelegated
	}
	cfg := newSignConfig((*Transaction).HashForFeePayerSignature, opts)
	cpy := tx.Copy()
	switch {
	case cpy.feePayer == zeroAddress:
		cpy.feePayer = kr.Address()
	case cpy.feePayer != kr.Address():
		return nil, ErrFeePayerMismatch
	}
	sigs, err := signWith(cpy, kr, accountkey.RoleFeePayer, cfg)
	if err != nil {
		return nil, err
	}
	if err := cpy.appendFeePayerSignatures(sigs); err != nil {
		return nil, err
	}
	log.Debug("Signed transaction as fee payer", "type", cpy.typ, "feePayer", cpy.feePayer, "signatures", len(sigs))
	return cpy, nil
}

func signWith(tx *Transaction, kr Keyring, role accountkey.Role, cfg *signConfig) ([]SignatureData, error) {
	chainID, err := tx.chainIDBig()
	if err != nil {
		return nil, err
	}
	hash, err := cfg.hasher(tx)
	if err != nil {
		return nil, err
	}
	if cfg.hasIndex {
		sig, err := kr.Sign(hash, chainID, role, cfg.index)
		if err != nil {
			return nil, err
		}
		return []SignatureData{sig}, nil
	}
	return kr.SignAll(hash, chainID, role)
}

// RecoverPublicKeys recovers the public keys that produced the sender
// signatures. An undefined chain id is derived from the first signature.
func (tx *Transaction) RecoverPublicKeys() ([]*ecdsa.PublicKey, error) {
	return tx.recover(tx.signatures, (*Transaction).HashForSignature)
}

// RecoverFeePayerPublicKeys recovers the public keys that produced the fee
// payer signatures.
func (tx *Transaction) RecoverFeePayerPublicKeys() ([]*ecdsa.PublicKey, error) {
	if !tx.IsFeeDelegated() {
		return nil, ErrNotFeeDelegated
	}
	return tx.recover(tx.feePayerSignatures, (*Transaction).HashForFeePayerSignature)
}

func (tx *Transaction) recover(sigs []SignatureData, hasher Hasher) ([]*ecdsa.PublicKey, error) {
	if isEmptySignatures(sigs) {
		return nil, fmt.Errorf("%w: no signature to recover from", ErrInvalidSig)
	}
	cpy := tx.Copy()
	if cpy.chainID == nil {
		if id := sigs[0].ChainID(); id != nil {
			cpy.chainID, _ = uint256.FromBig(id)
		}
	}
	if err := cpy.checkChainID(sigs); err != nil {
		return nil, err
	}
	hash, err := hasher(cpy)
	if err != nil {
		return nil, err
	}
	pubs := make([]*ecdsa.PublicKey, 0, len(sigs))
	for _, sig := range sigs {
		pub, err := recoverPlain(hash, sig)
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, pub)
	}
	return pubs, nil
}

// recoverPlain recovers the public key of one signature over hash.
func recoverPlain(hash common.Hash, sig SignatureData) (*ecdsa.PublicKey, error) {
	recid, err := sig.RecoveryID()
	if err != nil {
		return nil, err
	}
	if len(sig.R) > 32 || len(sig.S) > 32 {
		return nil, ErrInvalidSig
	}
	r, s := new(big.Int).SetBytes(sig.R), new(big.Int).SetBytes(sig.S)
	if !crypto.ValidateSignatureValues(recid, r, s, false) {
		return nil, ErrInvalidSig
	}
	// encode the signature in uncompressed format
	raw := make([]byte, crypto.SignatureLength)
	r.FillBytes(raw[:32])
	s.FillBytes(raw[32:64])
	raw[64] = recid
	return crypto.SigToPub(hash[:], raw)
}

// RecoverPubkey returns the public key that produced s over hash. Any
// chain id folded into v is ignored.
func (s SignatureData) RecoverPubkey(hash common.Hash) (*ecdsa.PublicKey, error) {
	return recoverPlain(hash, s)
}
