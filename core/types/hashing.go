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
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// hasherPool holds LegacyKeccak256 hashers for the transaction hashes.
// hasherPool 保存用于交易哈希的 LegacyKeccak256 哈希器。
var hasherPool = sync.Pool{
	// Legacy区分于新的 Keccak256 实现，保持与以太坊早期版本兼容。
	New: func() interface{} { return sha3.NewLegacyKeccak256() },
}

// keccak hashes the concatenation of data with a pooled hasher.
func keccak(data ...[]byte) (h common.Hash) {
	sha := hasherPool.Get().(crypto.KeccakState)
	defer hasherPool.Put(sha)
	sha.Reset()
	for _, b := range data {
		sha.Write(b)
	}
	sha.Read(h[:])
	return h
}

// hashOf hashes the output of an encoding function.
func hashOf(encode func() ([]byte, error)) (common.Hash, error) {
	enc, err := encode()
	if err != nil {
		return common.Hash{}, err
	}
	return keccak(enc), nil
}

// Hash returns the transaction hash, keccak256 of the full encoding.
// Hash 返回交易哈希，即完整编码的 keccak256。
func (tx *Transaction) Hash() (common.Hash, error) {
	return hashOf(tx.RLPEncoding)
}

// SenderTxHash returns the hash of the transaction as signed by the sender
// only. For fee delegated types the fee payer and its signatures are left out
// of the hashed encoding; for all other types it equals Hash.
//
// SenderTxHash 返回仅包含发送者签名部分的哈希，代付交易不包括代付者及其签名。
func (tx *Transaction) SenderTxHash() (common.Hash, error) {
	return hashOf(tx.senderTxEncoding)
}

// HashForSignature returns the digest signed by the sender.
func (tx *Transaction) HashForSignature() (common.Hash, error) {
	return hashOf(tx.RLPEncodingForSignature)
}

// HashForFeePayerSignature returns the digest signed by the fee payer.
func (tx *Transaction) HashForFeePayerSignature() (common.Hash, error) {
	return hashOf(tx.RLPEncodingForFeePayerSignature)
}
