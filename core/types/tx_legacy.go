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
	"github.com/holiman/uint256"
	"github.com/klaytn/caver-go/codec"
)

// LegacyTx 是未带类型标签的原始交易格式。它最多只能携带一个签名，
// 发送者地址不参与编码，只能由签名恢复或由调用方提供。

// LegacyTx is the transaction data of the original, untagged transactions.
// LegacyTx 是原始（无类型标签）交易的交易数据。
type LegacyTx struct {
	To    *common.Address // nil means contract creation 为 nil 表示创建合约
	Value *uint256.Int
	Input []byte
}

func (tx *LegacyTx) copy() TxData {
	cpy := &LegacyTx{
		To:    copyAddressPtr(tx.To),
		Value: cloneU256(tx.Value),
		Input: common.CopyBytes(tx.Input),
	}
	return cpy
}

func (tx *LegacyTx) fromArgs(args *TxArgs, _ common.Address) error {
	if !isNoAddress(args.To) {
		to, err := parseAddress(FieldTo, *args.To)
		if err != nil {
			return err
		}
		tx.To = &to
	}
	if args.Value == nil {
		return fieldError(FieldValue, ErrValueMissing)
	}
	tx.Value = new(uint256.Int).Set((*uint256.Int)(args.Value))
	if args.Input != nil {
		tx.Input = common.CopyBytes(*args.Input)
	}
	return nil
}

func (tx *LegacyTx) toArgs(args *TxArgs, _ common.Address) {
	args.To = addressString(tx.To)
	args.Value = hexutilU256(tx.Value)
	args.Input = Bytes(tx.Input)
}

func (tx *LegacyTx) getField(f Field) (codec.Value, error) {
	switch f {
	case FieldTo:
		return optionalAddressValue(tx.To), nil
	case FieldValue:
		return codec.Uint256(tx.Value), nil
	case FieldInput:
		return codec.String(tx.Input), nil
	}
	return codec.Value{}, fieldError(f, ErrUnknownField)
}

func (tx *LegacyTx) setField(f Field, v codec.Value) (err error) {
	switch f {
	case FieldTo:
		tx.To, err = decodeOptionalAddress(f, v)
	case FieldValue:
		tx.Value, err = decodeUint256(f, v)
	case FieldInput:
		tx.Input, err = decodeBytes(f, v)
	default:
		err = fieldError(f, ErrUnknownField)
	}
	return err
}

func copyAddressPtr(a *common.Address) *common.Address {
	if a == nil {
		return nil
	}
	cpy := *a
	return &cpy
}
