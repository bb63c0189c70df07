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
	"github.com/ethereum/go-ethereum/common"
	"github.com/klaytn/caver-go/codec"
)

// CancelTx cancels the pending transaction of the sender with the same nonce.
// It has no fields of its own.
// CancelTx 取消发送者具有相同 nonce 的待处理交易。
type CancelTx struct{}

func (tx *CancelTx) copy() TxData                           { return &CancelTx{} }
func (tx *CancelTx) fromArgs(*TxArgs, common.Address) error { return nil }
func (tx *CancelTx) toArgs(*TxArgs, common.Address)         {}

func (tx *CancelTx) getField(f Field) (codec.Value, error) {
	return codec.Value{}, fieldError(f, ErrUnknownField)
}

func (tx *CancelTx) setField(f Field, _ codec.Value) error {
	return fieldError(f, ErrUnknownField)
}

// ChainDataAnchoringTx anchors service chain data in the input field.
// ChainDataAnchoringTx 在 input 字段中锚定服务链数据。
type ChainDataAnchoringTx struct {
	Input []byte
}

func (tx *ChainDataAnchoringTx) copy() TxData {
	return &ChainDataAnchoringTx{Input: common.CopyBytes(tx.Input)}
}

func (tx *ChainDataAnchoringTx) fromArgs(args *TxArgs, _ common.Address) (err error) {
	tx.Input, err = requiredInput(args)
	return err
}

func (tx *ChainDataAnchoringTx) toArgs(args *TxArgs, _ common.Address) {
	args.Input = Bytes(tx.Input)
}

func (tx *ChainDataAnchoringTx) getField(f Field) (codec.Value, error) {
	if f != FieldInput {
		return codec.Value{}, fieldError(f, ErrUnknownField)
	}
	return codec.String(tx.Input), nil
}

func (tx *ChainDataAnchoringTx) setField(f Field, v codec.Value) (err error) {
	if f != FieldInput {
		return fieldError(f, ErrUnknownField)
	}
	tx.Input, err = decodeBytes(f, v)
	return err
}
