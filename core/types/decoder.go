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

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/klaytn/caver-go/codec"
)

// DecodeRawTransaction decodes a 0x-prefixed hex encoded transaction.
func DecodeRawTransaction(raw string) (*Transaction, error) {
	b, err := hexutil.Decode(raw)
	if err != nil {
		return nil, err
	}
	return DecodeTransaction(b)
}

// DecodeTransaction parses the full encoding of a transaction of any type.
// A first byte in the RLP list range marks a legacy transaction; any other
// first byte is the type tag.
//
// The decoded transaction is validated exactly like a constructed one. The
// chain id, which is not part of the encoding, is derived from the v value of
// the first sender signature (or fee payer signature) that carries one.
//
// DecodeTransaction 解析任意类型交易的完整编码，链 ID 由第一个签名的 v 推导。
func DecodeTransaction(raw []byte) (*Transaction, error) {
	if len(raw) == 0 {
		return nil, ErrShortTypedTx
	}
	var (
		tx  *Transaction
		err error
	)
	if raw[0] >= 0xc0 {
		tx, err = decodeLegacy(raw)
	} else {
		tx, err = decodeTyped(raw)
	}
	if err != nil {
		return nil, err
	}
	tx.deriveChainID()
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	log.Debug("Decoded transaction", "type", tx.typ, "from", tx.from, "signatures", len(tx.signatures))
	return tx, nil
}

func decodeLegacy(raw []byte) (*Transaction, error) {
	items, err := codec.DecodeList(raw)
	if err != nil {
		return nil, err
	}
	tx, err := newEmptyTransaction(TxTypeLegacyTransaction)
	if err != nil {
		return nil, err
	}
	if want := len(tx.schema.Fields) + 3; len(items) != want {
		return nil, fmt.Errorf("%w: %v has %d, want %d", ErrItemCount, tx.typ, len(items), want)
	}
	if err := tx.setFields(items); err != nil {
		return nil, err
	}
	sig, err := signatureFromValue(codec.List(items[len(tx.schema.Fields):]...))
	if err != nil {
		return nil, err
	}
	tx.signatures = RefineSignatures([]SignatureData{sig})
	return tx, nil
}

func decodeTyped(raw []byte) (*Transaction, error) {
	if len(raw) < 2 {
		return nil, ErrShortTypedTx
	}
	if TxType(raw[0]) == TxTypeLegacyTransaction {
		return nil, fmt.Errorf("%w - %#x", ErrInvalidTxTag, raw[0])
	}
	tx, err := newEmptyTransaction(TxType(raw[0]))
	if err != nil {
		return nil, err
	}
	items, err := codec.DecodeList(raw[1:])
	if err != nil {
		return nil, err
	}
	n := len(tx.schema.Fields)
	want := n + 1
	if tx.IsFeeDelegated() {
		want += 2
	}
	if len(items) != want {
		return nil, fmt.Errorf("%w: %v has %d, want %d", ErrItemCount, tx.typ, len(items), want)
	}
	if err := tx.setFields(items); err != nil {
		return nil, err
	}
	sigs, err := signaturesFromValue(items[n])
	if err != nil {
		return nil, err
	}
	tx.signatures = RefineSignatures(sigs)
	if tx.IsFeeDelegated() {
		if err := tx.setField(FieldFeePayer, items[n+1]); err != nil {
			return nil, err
		}
		if sigs, err = signaturesFromValue(items[n+2]); err != nil {
			return nil, err
		}
		tx.feePayerSignatures = RefineSignatures(sigs)
	}
	return tx, nil
}

// setFields populates the schema fields from the leading items.
func (tx *Transaction) setFields(items []codec.Value) error {
	for i, f := range tx.schema.Fields {
		if err := tx.setField(f, items[i]); err != nil {
			return err
		}
	}
	return nil
}

// deriveChainID sets the chain id from the first signature carrying one.
func (tx *Transaction) deriveChainID() {
	if tx.chainID != nil {
		return
	}
	for _, sig := range append(tx.Signatures(), tx.FeePayerSignatures()...) {
		if sig.IsEmpty() {
			continue
		}
		if id := sig.ChainID(); id != nil {
			tx.chainID = new(uint256.Int)
			tx.chainID.SetFromBig(id)
			return
		}
	}
}
