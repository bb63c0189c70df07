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
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/klaytn/caver-go/accounts/accountkey"
	"github.com/klaytn/caver-go/codec"
)

// TxArgs represents the arguments to construct a new transaction. Pointer
// fields are optional; nonce, gasPrice and chainId may stay undefined until
// the transaction is filled.
//
// TxArgs 表示构造新交易所需的参数。指针字段可选。
type TxArgs struct {
	From     string          `json:"from,omitempty"`
	Gas      *hexutil.Uint64 `json:"gas,omitempty"`
	Nonce    *hexutil.Uint64 `json:"nonce,omitempty"`
	GasPrice *hexutil.U256   `json:"gasPrice,omitempty"`
	ChainID  *hexutil.U256   `json:"chainId,omitempty"`

	// Recipient. Nil, "" and "0x" all mean no recipient.
	To    *string        `json:"to,omitempty"`
	Value *hexutil.U256  `json:"value,omitempty"`
	Input *hexutil.Bytes `json:"input,omitempty"`

	// Account update. Key is the encoded account key and is only read when
	// Account is nil.
	Account *accountkey.Account `json:"-"`
	Key     *hexutil.Bytes      `json:"key,omitempty"`

	HumanReadable bool            `json:"humanReadable,omitempty"`
	CodeFormat    *hexutil.Uint64 `json:"codeFormat,omitempty"`

	FeeRatio *hexutil.Uint64 `json:"feeRatio,omitempty"`
	FeePayer string          `json:"feePayer,omitempty"`

	Signatures         []SignatureData `json:"signatures,omitempty"`
	FeePayerSignatures []SignatureData `json:"feePayerSignatures,omitempty"`
}

// ToTransaction builds a transaction of type t. It is the same code path as
// NewTransaction.
func (args TxArgs) ToTransaction(t TxType) (*Transaction, error) {
	return NewTransaction(t, args)
}

// Uint64 is a small helper to fill the optional integer arguments.
func Uint64(x uint64) *hexutil.Uint64 {
	return (*hexutil.Uint64)(&x)
}

// U256 is a small helper to fill the optional 256 bit arguments.
func U256(x uint64) *hexutil.U256 {
	return (*hexutil.U256)(uint256.NewInt(x))
}

// Bytes is a small helper to fill the optional byte arguments.
func Bytes(b []byte) *hexutil.Bytes {
	cpy := hexutil.Bytes(common.CopyBytes(b))
	return &cpy
}

// String is a small helper to fill the optional recipient.
func String(s string) *string {
	return &s
}

func hexutilUint64(x uint64) hexutil.Uint64 { return hexutil.Uint64(x) }

func hexutilU256(x *uint256.Int) *hexutil.U256 {
	if x == nil {
		return nil
	}
	return (*hexutil.U256)(new(uint256.Int).Set(x))
}

// parseAddress accepts 0x-prefixed or bare hex addresses in any letter case.
// parseAddress 接受任意大小写、带或不带 0x 前缀的十六进制地址。
func parseAddress(f Field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, &FieldError{Field: f, Err: ErrInvalidAddress, Value: s}
	}
	return common.HexToAddress(s), nil
}

// isNoAddress reports whether s stands for an absent address.
func isNoAddress(s *string) bool {
	return s == nil || *s == "" || *s == "0x"
}

func decodeUint64(f Field, v codec.Value) (uint64, error) {
	x, err := v.AsUint64()
	if err != nil {
		return 0, &FieldError{Field: f, Err: fmt.Errorf("%w %v", ErrInvalidFieldValue, err)}
	}
	return x, nil
}

func decodeUint256(f Field, v codec.Value) (*uint256.Int, error) {
	x, err := v.AsUint256()
	if err != nil {
		return nil, &FieldError{Field: f, Err: fmt.Errorf("%w %v", ErrInvalidFieldValue, err)}
	}
	return x, nil
}

func decodeBytes(f Field, v codec.Value) ([]byte, error) {
	if v.IsList() {
		return nil, &FieldError{Field: f, Err: fmt.Errorf("%w %v", ErrInvalidFieldValue, codec.ErrNotString)}
	}
	return common.CopyBytes(v.Bytes()), nil
}

func decodeBool(f Field, v codec.Value) (bool, error) {
	x, err := decodeUint64(f, v)
	if err != nil {
		return false, err
	}
	if x > 1 {
		return false, &FieldError{Field: f, Err: ErrInvalidFieldValue, Value: fmt.Sprint(x)}
	}
	return x == 1, nil
}

func decodeAddress(f Field, v codec.Value) (common.Address, error) {
	if v.IsList() || len(v.Bytes()) != common.AddressLength {
		return common.Address{}, &FieldError{Field: f, Err: ErrInvalidAddress, Value: hexutil.Encode(v.Bytes())}
	}
	return common.BytesToAddress(v.Bytes()), nil
}

// decodeOptionalAddress maps the empty string to nil.
func decodeOptionalAddress(f Field, v codec.Value) (*common.Address, error) {
	if !v.IsList() && len(v.Bytes()) == 0 {
		return nil, nil
	}
	addr, err := decodeAddress(f, v)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func optionalAddressValue(a *common.Address) codec.Value {
	if a == nil {
		return codec.String(nil)
	}
	return codec.Address(*a)
}

func addressString(a *common.Address) *string {
	if a == nil {
		return nil
	}
	s := a.Hex()
	return &s
}
