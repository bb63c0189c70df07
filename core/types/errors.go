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
	"errors"
	"fmt"
)

// Validation failures. They are returned wrapped in a *FieldError naming the
// offending field.
// 校验错误，返回时包装在指明字段的 *FieldError 中。
var (
	ErrInvalidAddress     = errors.New("Invalid address.")
	ErrInvalidFieldValue  = errors.New("Invalid field value.")
	ErrFromMissing        = errors.New("from is missing.")
	ErrGasMissing         = errors.New("gas is missing.")
	ErrToMissing          = errors.New("to is missing.")
	ErrValueMissing       = errors.New("value is missing.")
	ErrInputMissing       = errors.New("input is missing.")
	ErrAccountMissing     = errors.New("account is missing.")
	ErrFeeRatioMissing    = errors.New("feeRatio is missing.")
	ErrFeeRatioOutOfRange = errors.New("Invalid feeRatio: feeRatio is out of range. [1,99]")
	ErrFeePayerMissing    = errors.New("feePayer is missing: feePayer must be defined with feePayerSignatures.")
	ErrAccountMismatch    = errors.New("Transaction's 'from' address and 'account address' do not match.")
	ErrDeployToNotNil     = errors.New("'to' field must be nil('0x')")
	ErrHumanReadable      = errors.New("HumanReadable attribute must set false")
	ErrCodeFormat         = errors.New("CodeFormat attribute only support EVM(0)")
	ErrUnknownField       = errors.New("field is not part of the transaction type")
)

// Signature handling failures.
var (
	ErrInvalidSig              = errors.New("invalid transaction v, r, s values")
	ErrLegacySignaturesTooLong = errors.New("Signatures are too long TxTypeLegacyTransaction cannot include more than one signature.")
	ErrLegacySignatureDefined  = errors.New("Signatures already defined.TxTypeLegacyTransaction cannot include more than one signature.")
	ErrNotFeeDelegated         = errors.New("transaction type does not support fee delegation")
	ErrLegacyDecoupled         = errors.New("A legacy transaction cannot be signed with a decoupled keyring.")
	ErrFromMismatch            = errors.New("The from address of the transaction is different with the address of the keyring to use.")
	ErrFeePayerMismatch        = errors.New("The feePayer address of the transaction is different with the address of the keyring to use.")
	ErrChainIDMismatch         = errors.New("Invalid Signature data : chain id is not matched.")
	ErrFeePayerNotSet          = errors.New("Invalid fee payer: fee payer is not set.")
)

// Decoding and combining failures.
var (
	ErrInvalidTxTag     = errors.New("Invalid RLP-encoded tag")
	ErrTxTypeMismatch   = errors.New("transaction type not valid in this context")
	ErrShortTypedTx     = errors.New("typed transaction too short")
	ErrItemCount        = errors.New("unexpected number of RLP items")
	ErrCombineMismatch  = errors.New("Transactions containing different information cannot be combined.")
	ErrUndefinedField   = errors.New("field is undefined")
	ErrMissingRawInputs = errors.New("no raw transaction to combine")
)

// FieldError reports a validation failure of a single transaction field.
// FieldError 报告单个交易字段的校验失败。
type FieldError struct {
	Field Field
	Err   error
	Value string // offending input, if any
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v : %s", e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldError(f Field, err error) *FieldError {
	return &FieldError{Field: f, Err: err}
}

// UndefinedFieldError is returned by encoding, hashing and signing when a
// field that may be filled later (nonce, gasPrice, chainId) is still unset.
type UndefinedFieldError struct {
	Field Field
}

func (e *UndefinedFieldError) Error() string {
	return fmt.Sprintf("%s is undefined. Define %s in transaction or use 'transaction.fillTransaction' to fill values.", e.Field, e.Field)
}

func (e *UndefinedFieldError) Unwrap() error { return ErrUndefinedField }
