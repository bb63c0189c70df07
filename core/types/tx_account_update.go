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
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/klaytn/caver-go/accounts/accountkey"
	"github.com/klaytn/caver-go/codec"
)

// AccountUpdateTx replaces the key of the sender account. The new key is
// encoded as a byte string holding its own encoding.
//
// AccountUpdateTx 替换发送者账户的密钥。
type AccountUpdateTx struct {
	Key accountkey.AccountKey
}

func (tx *AccountUpdateTx) copy() TxData {
	// Account keys are immutable once built.
	return &AccountUpdateTx{Key: tx.Key}
}

func (tx *AccountUpdateTx) fromArgs(args *TxArgs, from common.Address) error {
	account := args.Account
	if account == nil && args.Key != nil {
		var err error
		if account, err = accountkey.NewAccountFromRLPEncoding(from, *args.Key); err != nil {
			return &FieldError{Field: FieldAccount, Err: err}
		}
	}
	if account == nil || account.Key == nil {
		return fieldError(FieldAccount, ErrAccountMissing)
	}
	if account.Address != from {
		return fieldError(FieldAccount, ErrAccountMismatch)
	}
	tx.Key = account.Key
	return nil
}

func (tx *AccountUpdateTx) toArgs(args *TxArgs, from common.Address) {
	if tx.Key != nil {
		args.Account = accountkey.NewAccount(from, tx.Key)
	}
}

func (tx *AccountUpdateTx) getField(f Field) (codec.Value, error) {
	if f != FieldAccount {
		return codec.Value{}, fieldError(f, ErrUnknownField)
	}
	if tx.Key == nil {
		return codec.Value{}, fieldError(f, ErrAccountMissing)
	}
	return codec.String(tx.Key.RLPEncoding()), nil
}

func (tx *AccountUpdateTx) setField(f Field, v codec.Value) error {
	if f != FieldAccount {
		return fieldError(f, ErrUnknownField)
	}
	enc, err := decodeBytes(f, v)
	if err != nil {
		return err
	}
	key, err := accountkey.Decode(enc)
	if err != nil {
		return &FieldError{Field: f, Err: err, Value: hexutil.Encode(enc)}
	}
	tx.Key = key
	return nil
}
