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
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var errMissingType = errors.New("missing required field 'type' in transaction")

// txJSON is the JSON representation of transactions.
// txJSON 是交易的 JSON 表示形式。
type txJSON struct {
	Type    string          `json:"type"`               // 类型名，如 TxTypeFeeDelegatedCancel
	TypeInt *hexutil.Uint64 `json:"typeInt,omitempty"` // 类型标签
	TxArgs

	// Only used for encoding:
	// 仅用于编码：
	Hash         *common.Hash `json:"hash,omitempty"`
	SenderTxHash *common.Hash `json:"senderTxHash,omitempty"`
}

// MarshalJSON marshals as JSON. The hashes are included once nonce, gas price
// and chain id are defined.
// MarshalJSON 将交易序列化为 JSON，延迟字段都已定义时附带哈希。
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	enc := txJSON{
		Type:    tx.typ.String(),
		TypeInt: Uint64(uint64(tx.typ)),
		TxArgs:  tx.Args(),
	}
	if enc.Account != nil {
		enc.Key = Bytes(enc.Account.RLPEncoding())
	}
	if hash, err := tx.Hash(); err == nil {
		enc.Hash = &hash
		senderHash, _ := tx.SenderTxHash()
		enc.SenderTxHash = &senderHash
	}
	return json.Marshal(&enc)
}

// UnmarshalJSON unmarshals from JSON. The type may be given by name, by tag
// or both, in which case they must agree. Hashes in the input are ignored.
func (tx *Transaction) UnmarshalJSON(input []byte) error {
	var dec txJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	var t TxType
	switch {
	case dec.Type != "":
		var err error
		if t, err = TxTypeByName(dec.Type); err != nil {
			return err
		}
		if dec.TypeInt != nil && TxType(*dec.TypeInt) != t {
			return ErrTxTypeMismatch
		}
	case dec.TypeInt != nil:
		t = TxType(*dec.TypeInt)
	default:
		return errMissingType
	}
	parsed, err := NewTransaction(t, dec.TxArgs)
	if err != nil {
		return err
	}
	*tx = *parsed
	return nil
}
