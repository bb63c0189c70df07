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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/klaytn/caver-go/core/types"
	"golang.org/x/crypto/sha3"
)

// MessageSigned is the result of signing a message with a keyring.
// MessageSigned 是使用 keyring 签名消息的结果。
type MessageSigned struct {
	MessageHash common.Hash           `json:"messageHash"`
	Signatures  []types.SignatureData `json:"signatures"`
	Message     hexutil.Bytes         `json:"message"`
}

// HashMessage is a helper function that calculates a hash for the given message
// that can be safely used to calculate a signature from.
// HashMessage 是一个辅助函数，用于计算给定消息的哈希值，该哈希值可以安全地用于计算签名。
//
// The hash is calculated as
//
//	keccak256("\x19Klaytn Signed Message:\n"${message length}${message}).
//
// This gives context to the signed message and prevents signing of transactions.
func HashMessage(data []byte) common.Hash {
	hash, _ := HashMessageAndText(data)
	return hash
}

// HashMessageAndText returns the hash and the prefixed text it was computed over.
func HashMessageAndText(data []byte) (common.Hash, string) {
	msg := fmt.Sprintf("\x19Klaytn Signed Message:\n%d%s", len(data), data)
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(msg))
	return common.BytesToHash(hasher.Sum(nil)), msg
}

// RecoverMessageSigner returns the address that produced sig over the
// message. When hashed is true, message is already the prefixed hash.
func RecoverMessageSigner(message []byte, sig types.SignatureData, hashed bool) (common.Address, error) {
	var hash common.Hash
	if hashed {
		if len(message) != common.HashLength {
			return common.Address{}, fmt.Errorf("%w: message hash must be %d bytes", ErrInvalidMessageHash, common.HashLength)
		}
		hash = common.BytesToHash(message)
	} else {
		hash = HashMessage(message)
	}
	pub, err := sig.RecoverPubkey(hash)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}

func signMessage(keys []*PrivateKey, message []byte) (*MessageSigned, error) {
	hash := HashMessage(message)
	signed := &MessageSigned{MessageHash: hash, Message: common.CopyBytes(message)}
	for _, key := range keys {
		sig, err := key.SignMessage(hash)
		if err != nil {
			return nil, err
		}
		signed.Signatures = append(signed.Signatures, sig)
	}
	return signed, nil
}
