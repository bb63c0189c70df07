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

// ValueTransferTx sends KLAY to an account. It is also the data of
// FeeDelegatedValueTransfer and FeeDelegatedValueTransferWithRatio.
// ValueTransferTx 向账户转账 KLAY。
type ValueTransferTx struct {
	To    common.Address
	Value *uint256.Int
}

func (tx *ValueTransferTx) copy() TxData {
	return &ValueTransferTx{To: tx.To, Value: cloneU256(tx.Value)}
}

func (tx *ValueTransferTx) fromArgs(args *TxArgs, _ common.Address) (err error) {
	if tx.To, err = requiredTo(args); err != nil {
		return err
	}
	tx.Value, err = requiredValue(args)
	return err
}

func (tx *ValueTransferTx) toArgs(args *TxArgs, _ common.Address) {
	args.To = addressString(&tx.To)
	args.Value = hexutilU256(tx.Value)
}

func (tx *ValueTransferTx) getField(f Field) (codec.Value, error) {
	switch f {
	case FieldTo:
		return codec.Address(tx.To), nil
	case FieldValue:
		return codec.Uint256(tx.Value), nil
	}
	return codec.Value{}, fieldError(f, ErrUnknownField)
}

func (tx *ValueTransferTx) setField(f Field, v codec.Value) (err error) {
	switch f {
	case FieldTo:
		tx.To, err = decodeAddress(f, v)
	case FieldValue:
		tx.Value, err = decodeUint256(f, v)
	default:
		err = fieldError(f, ErrUnknownField)
	}
	return err
}

// ValueTransferMemoTx is a value transfer carrying a memo in its input.
// ValueTransferMemoTx 是在 input 中携带备注的转账交易。
type ValueTransferMemoTx struct {
	To    common.Address
	Value *uint256.Int
	Input []byte
}

func (tx *ValueTransferMemoTx) copy() TxData {
	return &ValueTransferMemoTx{To: tx.To, Value: cloneU256(tx.Value), Input: common.CopyBytes(tx.Input)}
}

func (tx *ValueTransferMemoTx) fromArgs(args *TxArgs, _ common.Address) (err error) {
	if tx.To, err = requiredTo(args); err != nil {
		return err
	}
	if tx.Value, err = requiredValue(args); err != nil {
		return err
	}
	tx.Input, err = requiredInput(args)
	return err
}

func (tx *ValueTransferMemoTx) toArgs(args *TxArgs, _ common.Address) {
	args.To = addressString(&tx.To)
	args.Value = hexutilU256(tx.Value)
	args.Input = Bytes(tx.Input)
}

func (tx *ValueTransferMemoTx) getField(f Field) (codec.Value, error) {
	switch f {
	case FieldTo:
		return codec.Address(tx.To), nil
	case FieldValue:
		return codec.Uint256(tx.Value), nil
	case FieldInput:
		return codec.String(tx.Input), nil
	}
	return codec.Value{}, fieldError(f, ErrUnknownField)
}

func (tx *ValueTransferMemoTx) setField(f Field, v codec.Value) (err error) {
	switch f {
	case FieldTo:
		tx.To, err = decodeAddress(f, v)
	case FieldValue:
		tx.Value, err = decodeUint256(f, v)
	case FieldInput:
		tx.Input, err = decodeBytes(f, v)
	default:
		err = fieldError(f, ErrUnknownField)
	}
	return err
}

func requiredTo(args *TxArgs) (common.Address, error) {
	if isNoAddress(args.To) {
		return common.Address{}, fieldError(FieldTo, ErrToMissing)
	}
	return parseAddress(FieldTo, *args.To)
}

func requiredValue(args *TxArgs) (*uint256.Int, error) {
	if args.Value == nil {
		return nil, fieldError(FieldValue, ErrValueMissing)
	}
	return new(uint256.Int).Set((*uint256.Int)(args.Value)), nil
}

func requiredInput(args *TxArgs) ([]byte, error) {
	if args.Input == nil {
		return nil, fieldError(FieldInput, ErrInputMissing)
	}
	return common.CopyBytes(*args.Input), nil
}
