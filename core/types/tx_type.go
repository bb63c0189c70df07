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
	"slices"
)

// TxType is the one byte tag prefixed to a typed transaction. Legacy
// transactions are untagged; TxTypeLegacyTransaction is an internal value
// that never appears on the wire.
//
// TxType 是类型化交易前缀的单字节标签。传统交易不带标签。
type TxType byte

// Transaction types. The low bits select the fee delegation variant:
// +1 fee delegated, +2 fee delegated with ratio.
// 交易类型。低位选择手续费代付变体：+1 代付，+2 按比例代付。
const (
	TxTypeLegacyTransaction TxType = 0x00

	TxTypeValueTransfer                          TxType = 0x08
	TxTypeFeeDelegatedValueTransfer              TxType = 0x09
	TxTypeFeeDelegatedValueTransferWithRatio     TxType = 0x0a
	TxTypeValueTransferMemo                      TxType = 0x10
	TxTypeFeeDelegatedValueTransferMemo          TxType = 0x11
	TxTypeFeeDelegatedValueTransferMemoWithRatio TxType = 0x12

	TxTypeAccountUpdate                            TxType = 0x20
	TxTypeFeeDelegatedAccountUpdate                TxType = 0x21
	TxTypeFeeDelegatedAccountUpdateWithRatio       TxType = 0x22
	TxTypeSmartContractDeploy                      TxType = 0x28
	TxTypeFeeDelegatedSmartContractDeploy          TxType = 0x29
	TxTypeFeeDelegatedSmartContractDeployWithRatio TxType = 0x2a

	TxTypeSmartContractExecution                      TxType = 0x30
	TxTypeFeeDelegatedSmartContractExecution          TxType = 0x31
	TxTypeFeeDelegatedSmartContractExecutionWithRatio TxType = 0x32
	TxTypeCancel                                      TxType = 0x38
	TxTypeFeeDelegatedCancel                          TxType = 0x39
	TxTypeFeeDelegatedCancelWithRatio                 TxType = 0x3a

	TxTypeChainDataAnchoring                      TxType = 0x48
	TxTypeFeeDelegatedChainDataAnchoring          TxType = 0x49
	TxTypeFeeDelegatedChainDataAnchoringWithRatio TxType = 0x4a
)

// FeeDelegation tells who pays the transaction fee.
type FeeDelegation uint8

const (
	FeeDelegationNone  FeeDelegation = iota // sender pays
	FeeDelegationFull                       // fee payer pays everything
	FeeDelegationRatio                      // fee payer pays feeRatio percent
)

// Field names a transaction field. The names double as JSON keys.
// Field 为交易字段命名，同时用作 JSON 键。
type Field string

const (
	FieldNonce         Field = "nonce"
	FieldGasPrice      Field = "gasPrice"
	FieldGas           Field = "gas"
	FieldTo            Field = "to"
	FieldValue         Field = "value"
	FieldFrom          Field = "from"
	FieldInput         Field = "input"
	FieldAccount       Field = "account" // encoded as the account key bytes
	FieldHumanReadable Field = "humanReadable"
	FieldCodeFormat    Field = "codeFormat"
	FieldFeeRatio      Field = "feeRatio"
	FieldFeePayer      Field = "feePayer"
	FieldChainID       Field = "chainId"
)

// TxSchema describes the layout of one transaction type.
// TxSchema 描述一种交易类型的布局。
type TxSchema struct {
	Type          TxType
	Name          string
	Tagged        bool
	FeeDelegation FeeDelegation

	// Fields is the ordered list of fields encoded before the signatures.
	Fields []Field
	// SenderSigningFields are signed by the sender, in order.
	SenderSigningFields []Field
	// FeePayerSigningFields are signed by the fee payer, in order.
	FeePayerSigningFields []Field
	// Required fields must be present at construction time.
	Required []Field
}

// Has reports whether f is one of the fields of the type, including the
// fee payer of fee-delegated types.
func (s *TxSchema) Has(f Field) bool {
	if f == FieldFeePayer {
		return s.FeeDelegation != FeeDelegationNone
	}
	return slices.Contains(s.Fields, f)
}

// IsRequired reports whether f must be given at construction time.
func (s *TxSchema) IsRequired(f Field) bool {
	return slices.Contains(s.Required, f)
}

// txKind groups the three fee delegation variants of one transaction type.
type txKind struct {
	base     TxType
	name     string
	fields   []Field
	required []Field
	// ratioAt is the position at which feeRatio is inserted in ratio
	// variants; -1 appends it.
	ratioAt int
}

var txKinds = []txKind{
	{
		base:     TxTypeValueTransfer,
		name:     "ValueTransfer",
		fields:   []Field{FieldNonce, FieldGasPrice, FieldGas, FieldTo, FieldValue, FieldFrom},
		required: []Field{FieldFrom, FieldGas, FieldTo, FieldValue},
		ratioAt:  -1,
	},
	{
		base:     TxTypeValueTransferMemo,
		name:     "ValueTransferMemo",
		fields:   []Field{FieldNonce, FieldGasPrice, FieldGas, FieldTo, FieldValue, FieldFrom, FieldInput},
		required: []Field{FieldFrom, FieldGas, FieldTo, FieldValue, FieldInput},
		ratioAt:  -1,
	},
	{
		base:     TxTypeAccountUpdate,
		name:     "AccountUpdate",
		fields:   []Field{FieldNonce, FieldGasPrice, FieldGas, FieldFrom, FieldAccount},
		required: []Field{FieldFrom, FieldGas, FieldAccount},
		ratioAt:  -1,
	},
	{
		base:     TxTypeSmartContractDeploy,
		name:     "SmartContractDeploy",
		fields:   []Field{FieldNonce, FieldGasPrice, FieldGas, FieldTo, FieldValue, FieldFrom, FieldInput, FieldHumanReadable, FieldCodeFormat},
		required: []Field{FieldFrom, FieldGas, FieldValue, FieldInput},
		ratioAt:  8, // before codeFormat
	},
	{
		base:     TxTypeSmartContractExecution,
		name:     "SmartContractExecution",
		fields:   []Field{FieldNonce, FieldGasPrice, FieldGas, FieldTo, FieldValue, FieldFrom, FieldInput},
		required: []Field{FieldFrom, FieldGas, FieldTo, FieldInput},
		ratioAt:  -1,
	},
	{
		base:     TxTypeCancel,
		name:     "Cancel",
		fields:   []Field{FieldNonce, FieldGasPrice, FieldGas, FieldFrom},
		required: []Field{FieldFrom, FieldGas},
		ratioAt:  -1,
	},
	{
		base:     TxTypeChainDataAnchoring,
		name:     "ChainDataAnchoring",
		fields:   []Field{FieldNonce, FieldGasPrice, FieldGas, FieldFrom, FieldInput},
		required: []Field{FieldFrom, FieldGas, FieldInput},
		ratioAt:  -1,
	},
}

var schemas = buildSchemas()

func buildSchemas() map[TxType]*TxSchema {
	legacy := []Field{FieldNonce, FieldGasPrice, FieldGas, FieldTo, FieldValue, FieldInput}
	m := map[TxType]*TxSchema{
		TxTypeLegacyTransaction: {
			Type:                TxTypeLegacyTransaction,
			Name:                "TxTypeLegacyTransaction",
			Fields:              legacy,
			SenderSigningFields: legacy,
			Required:            []Field{FieldGas, FieldValue},
		},
	}
	for _, k := range txKinds {
		for _, fd := range []FeeDelegation{FeeDelegationNone, FeeDelegationFull, FeeDelegationRatio} {
			s := &TxSchema{
				Type:          k.base + TxType(fd),
				Tagged:        true,
				FeeDelegation: fd,
				Fields:        slices.Clone(k.fields),
				Required:      slices.Clone(k.required),
			}
			switch fd {
			case FeeDelegationNone:
				s.Name = "TxType" + k.name
			case FeeDelegationFull:
				s.Name = "TxTypeFeeDelegated" + k.name
			case FeeDelegationRatio:
				s.Name = "TxTypeFeeDelegated" + k.name + "WithRatio"
				if k.ratioAt < 0 {
					s.Fields = append(s.Fields, FieldFeeRatio)
				} else {
					s.Fields = slices.Insert(s.Fields, k.ratioAt, FieldFeeRatio)
				}
				s.Required = append(s.Required, FieldFeeRatio)
			}
			s.SenderSigningFields = s.Fields
			if fd != FeeDelegationNone {
				s.FeePayerSigningFields = append(slices.Clone(s.Fields), FieldFeePayer)
			}
			m[s.Type] = s
		}
	}
	return m
}

// Schema returns the layout of the given transaction type.
// Schema 返回给定交易类型的布局。
func Schema(t TxType) (*TxSchema, error) {
	s, ok := schemas[t]
	if !ok {
		return nil, fmt.Errorf("%w - %#x", ErrInvalidTxTag, byte(t))
	}
	return s, nil
}

// String returns the name of the type, e.g. TxTypeFeeDelegatedCancel.
func (t TxType) String() string {
	if s, ok := schemas[t]; ok {
		return s.Name
	}
	return fmt.Sprintf("TxType(%#x)", byte(t))
}

// IsFeeDelegated reports whether t is a fee delegated variant.
func (t TxType) IsFeeDelegated() bool {
	s, ok := schemas[t]
	return ok && s.FeeDelegation != FeeDelegationNone
}

// IsAccountUpdate reports whether t is one of the AccountUpdate variants.
func (t TxType) IsAccountUpdate() bool {
	return t&^0x07 == TxTypeAccountUpdate
}

// TxTypeByName resolves a type name such as TxTypeValueTransfer or
// FeeDelegatedValueTransfer.
func TxTypeByName(name string) (TxType, error) {
	for t, s := range schemas {
		if s.Name == name || s.Name == "TxType"+name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w - %s", ErrInvalidTxTag, name)
}
