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
	"github.com/klaytn/caver-go/params"
)

// SmartContractDeployTx deploys the contract code held in Input. The
// recipient is always empty, human readable addresses are not supported and
// EVM is the only code format.
//
// SmartContractDeployTx 部署 Input 中的合约代码。
type SmartContractDeployTx struct {
	Value         *uint256.Int
	Input         []byte
	HumanReadable bool
	CodeFormat    uint64
}

func (tx *SmartContractDeployTx) copy() TxData {
	return &SmartContractDeployTx{
		Value:         cloneU256(tx.Value),
		Input:         common.CopyBytes(tx.Input),
		HumanReadable: tx.HumanReadable,
		CodeFormat:    tx.CodeFormat,
	}
}

func (tx *SmartContractDeployTx) fromArgs(args *TxArgs, _ common.Address) (err error) {
	if !isNoAddress(args.To) {
		return &FieldError{Field: FieldTo, Err: ErrDeployToNotNil, Value: *args.To}
	}
	if tx.Value, err = requiredValue(args); err != nil {
		return err
	}
	if tx.Input, err = requiredInput(args); err != nil {
		return err
	}
	if args.HumanReadable {
		return fieldError(FieldHumanReadable, ErrHumanReadable)
	}
	if args.CodeFormat != nil && uint64(*args.CodeFormat) != params.CodeFormatEVM {
		return &FieldError{Field: FieldCodeFormat, Err: ErrCodeFormat, Value: args.CodeFormat.String()}
	}
	tx.CodeFormat = params.CodeFormatEVM
	return nil
}

func (tx *SmartContractDeployTx) toArgs(args *TxArgs, _ common.Address) {
	args.Value = hexutilU256(tx.Value)
	args.Input = Bytes(tx.Input)
	args.HumanReadable = tx.HumanReadable
	args.CodeFormat = Uint64(tx.CodeFormat)
}

func (tx *SmartContractDeployTx) getField(f Field) (codec.Value, error) {
	switch f {
	case FieldTo:
		return codec.String(nil), nil
	case FieldValue:
		return codec.Uint256(tx.Value), nil
	case FieldInput:
		return codec.String(tx.Input), nil
	case FieldHumanReadable:
		return codec.Bool(tx.HumanReadable), nil
	case FieldCodeFormat:
		return codec.Uint64(tx.CodeFormat), nil
	}
	return codec.Value{}, fieldError(f, ErrUnknownField)
}

func (tx *SmartContractDeployTx) setField(f Field, v codec.Value) (err error) {
	switch f {
	case FieldTo:
		to, err := decodeOptionalAddress(f, v)
		if err != nil {
			return err
		}
		if to != nil {
			return &FieldError{Field: f, Err: ErrDeployToNotNil, Value: to.Hex()}
		}
	case FieldValue:
		tx.Value, err = decodeUint256(f, v)
	case FieldInput:
		tx.Input, err = decodeBytes(f, v)
	case FieldHumanReadable:
		tx.HumanReadable, err = decodeBool(f, v)
	case FieldCodeFormat:
		tx.CodeFormat, err = decodeUint64(f, v)
	default:
		err = fieldError(f, ErrUnknownField)
	}
	return err
}

// SmartContractExecutionTx calls a deployed contract with the given input.
// SmartContractExecutionTx 以给定的 input 调用已部署的合约。
type SmartContractExecutionTx struct {
	To    common.Address
	Value *uint256.Int
	Input []byte
}

func (tx *SmartContractExecutionTx) copy() TxData {
	return &SmartContractExecutionTx{To: tx.To, Value: cloneU256(tx.Value), Input: common.CopyBytes(tx.Input)}
}

func (tx *SmartContractExecutionTx) fromArgs(args *TxArgs, _ common.Address) (err error) {
	if tx.To, err = requiredTo(args); err != nil {
		return err
	}
	tx.Value = new(uint256.Int)
	if args.Value != nil {
		tx.Value.Set((*uint256.Int)(args.Value))
	}
	tx.Input, err = requiredInput(args)
	return err
}

func (tx *SmartContractExecutionTx) toArgs(args *TxArgs, _ common.Address) {
	args.To = addressString(&tx.To)
	args.Value = hexutilU256(tx.Value)
	args.Input = Bytes(tx.Input)
}

func (tx *SmartContractExecutionTx) getField(f Field) (codec.Value, error) {
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

func (tx *SmartContractExecutionTx) setField(f Field, v codec.Value) (err error) {
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
