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
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/klaytn/caver-go/core/types"
)

// PrivateKey is a secp256k1 key producing Klaytn transaction and message
// signatures.
// PrivateKey 是用于生成 Klaytn 交易签名与消息签名的 secp256k1 私钥。
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

// NewPrivateKey parses a hex encoded private key, with or without 0x prefix.
func NewPrivateKey(hexkey string) (*PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimPrefix(hexkey, "0x"), "0X"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return &PrivateKey{key: key}, nil
}

// NewPrivateKeyFromECDSA wraps an existing key.
func NewPrivateKeyFromECDSA(key *ecdsa.PrivateKey) *PrivateKey {
	return &PrivateKey{key: key}
}

// GeneratePrivateKey creates a fresh random key.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// Sign signs hash and folds chainID into v as EIP-155 does:
// v = chainID*2 + 35 + recovery id.
func (k *PrivateKey) Sign(hash common.Hash, chainID *big.Int) (types.SignatureData, error) {
	if chainID == nil {
		return types.SignatureData{}, ErrMissingChainID
	}
	sig, err := crypto.Sign(hash[:], k.key)
	if err != nil {
		return types.SignatureData{}, err
	}
	v := new(big.Int).Lsh(chainID, 1)
	v.Add(v, big.NewInt(35+int64(sig[crypto.RecoveryIDOffset])))
	return types.NewSignatureData(v.Bytes(), sig[:32], sig[32:64]), nil
}

// SignMessage signs an already prefixed message hash. v is 27 or 28.
func (k *PrivateKey) SignMessage(hash common.Hash) (types.SignatureData, error) {
	sig, err := crypto.Sign(hash[:], k.key)
	if err != nil {
		return types.SignatureData{}, err
	}
	return types.NewSignatureData([]byte{27 + sig[crypto.RecoveryIDOffset]}, sig[:32], sig[32:64]), nil
}

// PublicKey returns the public key as 64 bytes X‖Y, or in the 33 byte
// compressed form.
func (k *PrivateKey) PublicKey(compressed bool) []byte {
	if compressed {
		return crypto.CompressPubkey(&k.key.PublicKey)
	}
	return crypto.FromECDSAPub(&k.key.PublicKey)[1:]
}

// Address returns the address derived from the key.
func (k *PrivateKey) Address() common.Address {
	return crypto.PubkeyToAddress(k.key.PublicKey)
}

// Hex returns the 0x-prefixed 32 byte key.
func (k *PrivateKey) Hex() string {
	return hexutil.Encode(crypto.FromECDSA(k.key))
}

// ECDSA exposes the underlying key.
func (k *PrivateKey) ECDSA() *ecdsa.PrivateKey { return k.key }
