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
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/klaytn/caver-go/codec"
)

// 三种编码视图：
//   完整编码      tag ‖ rlp([fields..., senderSigs, (feePayer, feePayerSigs)])
//   发送者签名    rlp([rlp([tag, fields...]), chainId, 0, 0])
//   代付者签名    rlp([rlp([tag, fields...]), feePayer, chainId, 0, 0])
// 传统交易没有标签，签名直接作为最后三个元素展开。

// fieldValues returns the canonical items of the given fields in order.
func (tx *Transaction) fieldValues(fields []Field) ([]codec.Value, error) {
	items := make([]codec.Value, 0, len(fields)+5)
	for _, f := range fields {
		v, err := tx.GetField(f)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// requireDefined fails with an *UndefinedFieldError naming the first of
// nonce, gasPrice and chainId that is still unset.
func (tx *Transaction) requireDefined() error {
	if tx.nonce == nil {
		return &UndefinedFieldError{Field: FieldNonce}
	}
	if tx.gasPrice == nil {
		return &UndefinedFieldError{Field: FieldGasPrice}
	}
	if tx.chainID == nil {
		return &UndefinedFieldError{Field: FieldChainID}
	}
	return nil
}

func (tx *Transaction) encodeTyped(items []codec.Value) []byte {
	return append([]byte{byte(tx.typ)}, codec.EncodeList(items...)...)
}

// RLPEncoding returns the full wire encoding of the transaction.
// RLPEncoding 返回交易完整的线上编码。
func (tx *Transaction) RLPEncoding() ([]byte, error) {
	if err := tx.requireDefined(); err != nil {
		return nil, err
	}
	items, err := tx.fieldValues(tx.schema.Fields)
	if err != nil {
		return nil, err
	}
	if tx.IsLegacy() {
		items = append(items, tx.signatures[0].value().Items()...)
		return codec.EncodeList(items...), nil
	}
	items = append(items, signatureListValue(tx.signatures))
	if tx.IsFeeDelegated() {
		items = append(items, codec.Address(tx.feePayer), signatureListValue(tx.feePayerSignatures))
	}
	return tx.encodeTyped(items), nil
}

// RawTransaction returns the full encoding as 0x-prefixed hex.
func (tx *Transaction) RawTransaction() (string, error) {
	enc, err := tx.RLPEncoding()
	if err != nil {
		return "", err
	}
	return hexutil.Encode(enc), nil
}

// EncodeRLP implements rlp.Encoder. Typed transactions are written as a byte
// string holding the typed envelope.
func (tx *Transaction) EncodeRLP(w io.Writer) error {
	enc, err := tx.RLPEncoding()
	if err != nil {
		return err
	}
	if tx.IsLegacy() {
		_, err = w.Write(enc)
		return err
	}
	return codec.String(enc).EncodeRLP(w)
}

// senderTxEncoding is the full encoding without the fee payer part. It is
// the full encoding itself for types without fee delegation.
func (tx *Transaction) senderTxEncoding() ([]byte, error) {
	if !tx.IsFeeDelegated() {
		return tx.RLPEncoding()
	}
	if err := tx.requireDefined(); err != nil {
		return nil, err
	}
	items, err := tx.fieldValues(tx.schema.Fields)
	if err != nil {
		return nil, err
	}
	items = append(items, signatureListValue(tx.signatures))
	return tx.encodeTyped(items), nil
}

// CommonRLPEncodingForSignature returns rlp([tag, fields...]), the part of
// the signing payload shared by the sender and the fee payer. It does not
// need the chain id. For legacy transactions it equals
// RLPEncodingForSignature.
func (tx *Transaction) CommonRLPEncodingForSignature() ([]byte, error) {
	if tx.IsLegacy() {
		return tx.RLPEncodingForSignature()
	}
	items, err := tx.fieldValues(tx.schema.SenderSigningFields)
	if err != nil {
		return nil, err
	}
	return codec.EncodeList(append([]codec.Value{codec.Uint64(uint64(tx.typ))}, items...)...), nil
}

// RLPEncodingForSignature returns the payload signed by the sender:
// rlp([common, chainId, 0, 0]) for typed transactions and the EIP-155
// payload rlp([fields..., chainId, 0, 0]) for legacy ones.
//
// RLPEncodingForSignature 返回发送者签名的载荷。
func (tx *Transaction) RLPEncodingForSignature() ([]byte, error) {
	if err := tx.requireDefined(); err != nil {
		return nil, err
	}
	chainID := codec.Uint256(tx.chainID)
	if tx.IsLegacy() {
		items, err := tx.fieldValues(tx.schema.SenderSigningFields)
		if err != nil {
			return nil, err
		}
		items = append(items, chainID, codec.Uint64(0), codec.Uint64(0))
		return codec.EncodeList(items...), nil
	}
	enc, err := tx.CommonRLPEncodingForSignature()
	if err != nil {
		return nil, err
	}
	return codec.EncodeList(codec.String(enc), chainID, codec.Uint64(0), codec.Uint64(0)), nil
}

// RLPEncodingForFeePayerSignature returns the payload signed by the fee
// payer: rlp([common, feePayer, chainId, 0, 0]).
//
// RLPEncodingForFeePayerSignature 返回代付者签名的载荷。
func (tx *Transaction) RLPEncodingForFeePayerSignature() ([]byte, error) {
	if !tx.IsFeeDelegated() {
		return nil, ErrNotFeeDelegated
	}
	if tx.feePayer == zeroAddress {
		return nil, fieldError(FieldFeePayer, ErrFeePayerNotSet)
	}
	if err := tx.requireDefined(); err != nil {
		return nil, err
	}
	enc, err := tx.CommonRLPEncodingForSignature()
	if err != nil {
		return nil, err
	}
	return codec.EncodeList(codec.String(enc), codec.Address(tx.feePayer), codec.Uint256(tx.chainID), codec.Uint64(0), codec.Uint64(0)), nil
}
