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

	"github.com/ethereum/go-ethereum/log"
)

// AppendSignatures adds sender signatures to the transaction. Placeholders
// and duplicates are dropped. A legacy transaction holds at most one
// signature: appending the identical signature again is a no-op and a
// different one fails with ErrLegacySignatureDefined.
//
// AppendSignatures 追加发送者签名，去除占位签名与重复签名。
func (tx *Transaction) AppendSignatures(sigs ...SignatureData) error {
	if err := tx.checkChainID(sigs); err != nil {
		return err
	}
	return tx.appendSignatures(sigs)
}

// AppendFeePayerSignatures adds fee payer signatures to a fee delegated
// transaction whose fee payer is set.
func (tx *Transaction) AppendFeePayerSignatures(sigs ...SignatureData) error {
	if !tx.IsFeeDelegated() {
		return ErrNotFeeDelegated
	}
	if err := tx.checkChainID(sigs); err != nil {
		return err
	}
	return tx.appendFeePayerSignatures(sigs)
}

func (tx *Transaction) appendSignatures(sigs []SignatureData) error {
	incoming := RefineSignatures(sigs)
	if !tx.IsLegacy() {
		tx.signatures = RefineSignatures(append(copySignatures(tx.signatures), incoming...))
		return nil
	}
	switch {
	case isEmptySignatures(incoming):
		return nil
	case len(incoming) > 1:
		return fieldError("signatures", ErrLegacySignaturesTooLong)
	case !isEmptySignatures(tx.signatures):
		if !tx.signatures[0].Equal(incoming[0]) {
			return fieldError("signatures", ErrLegacySignatureDefined)
		}
		return nil
	}
	tx.signatures = incoming
	return nil
}

func (tx *Transaction) appendFeePayerSignatures(sigs []SignatureData) error {
	incoming := RefineSignatures(sigs)
	if isEmptySignatures(incoming) {
		return nil
	}
	if tx.feePayer == zeroAddress {
		return fieldError(FieldFeePayer, ErrFeePayerMissing)
	}
	tx.feePayerSignatures = RefineSignatures(append(copySignatures(tx.feePayerSignatures), incoming...))
	return nil
}

// checkChainID rejects signatures whose v encodes a chain id different from
// the one of the transaction. Nothing is checked while the chain id is unset.
func (tx *Transaction) checkChainID(sigs []SignatureData) error {
	if tx.chainID == nil {
		return nil
	}
	want := tx.chainID.ToBig()
	for _, sig := range sigs {
		if sig.IsEmpty() {
			continue
		}
		if id := sig.ChainID(); id != nil && id.Cmp(want) != 0 {
			return &FieldError{Field: FieldChainID, Err: ErrChainIDMismatch, Value: sig.String()}
		}
	}
	return nil
}

// CombineSignedRawTransactions merges the signatures of the given raw
// transactions into tx and returns the resulting raw transaction.
//
// Every input must describe the same transaction as tx. While tx carries no
// signatures yet, undefined nonce, gas price and chain id are taken from the
// inputs, and so is the fee payer until one is found. Inputs are all decoded
// and checked before tx is modified; on failure tx is left untouched.
//
// CombineSignedRawTransactions 将各原始交易中的签名合并到 tx 中，失败时 tx 保持不变。
func (tx *Transaction) CombineSignedRawTransactions(raws []string) (string, error) {
	if len(raws) == 0 {
		return "", ErrMissingRawInputs
	}
	decoded := make([]*Transaction, len(raws))
	for i, raw := range raws {
		dec, err := DecodeRawTransaction(raw)
		if err != nil {
			return "", fmt.Errorf("raw transaction %d: %w", i, err)
		}
		decoded[i] = dec
	}

	cpy := tx.Copy()
	fill := isEmptySignatures(cpy.signatures)
	if cpy.IsFeeDelegated() && isEmptySignatures(cpy.feePayerSignatures) {
		fill = true
	}
	for i, dec := range decoded {
		if dec.typ != cpy.typ {
			return "", fmt.Errorf("%w: raw transaction %d is %v, want %v", ErrCombineMismatch, i, dec.typ, cpy.typ)
		}
		if fill {
			cpy.fillFrom(dec)
			if cpy.IsFeeDelegated() && cpy.feePayer == zeroAddress && dec.feePayer != zeroAddress {
				cpy.feePayer = dec.feePayer
				fill = false
			}
		}
		same, err := cpy.sameFields(dec)
		if err != nil {
			return "", err
		}
		if !same {
			return "", fmt.Errorf("%w: raw transaction %d", ErrCombineMismatch, i)
		}
		if err := cpy.appendSignatures(dec.signatures); err != nil {
			return "", err
		}
		if cpy.IsFeeDelegated() {
			if err := cpy.appendFeePayerSignatures(dec.feePayerSignatures); err != nil {
				return "", err
			}
		}
	}
	raw, err := cpy.RawTransaction()
	if err != nil {
		return "", err
	}
	*tx = *cpy
	log.Debug("Combined raw transactions", "type", tx.typ, "inputs", len(raws), "signatures", len(tx.signatures), "feePayerSignatures", len(tx.feePayerSignatures))
	return raw, nil
}

// fillFrom copies the deferred fields tx is missing from src.
func (tx *Transaction) fillFrom(src *Transaction) {
	if tx.nonce == nil && src.nonce != nil {
		nonce := *src.nonce
		tx.nonce = &nonce
	}
	if tx.gasPrice == nil {
		tx.gasPrice = cloneU256(src.gasPrice)
	}
	if tx.chainID == nil {
		tx.chainID = cloneU256(src.chainID)
	}
}

// sameFields reports whether both transactions encode the same fields and,
// for fee delegated types, name the same fee payer.
func (tx *Transaction) sameFields(o *Transaction) (bool, error) {
	if tx.typ != o.typ {
		return false, nil
	}
	for _, f := range tx.schema.Fields {
		a, err := tx.GetField(f)
		if err != nil {
			return false, err
		}
		b, err := o.GetField(f)
		if err != nil {
			return false, err
		}
		if !a.Equal(b) {
			return false, nil
		}
	}
	if tx.IsFeeDelegated() && tx.feePayer != o.feePayer {
		return false, nil
	}
	return true, nil
}
