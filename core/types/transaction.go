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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/klaytn/caver-go/accounts/accountkey"
	"github.com/klaytn/caver-go/codec"
	"github.com/klaytn/caver-go/params"
)

var zeroAddress common.Address

// Transaction is a Klaytn transaction of any type.
//
// A Transaction is not safe for concurrent mutation. Signing and combining
// append to the signature lists without synchronization.
//
// Transaction 表示任意类型的 Klaytn 交易。并发修改同一个交易需要调用方自行加锁。
type Transaction struct {
	typ    TxType
	schema *TxSchema
	inner  TxData // type specific fields 类型相关字段

	from     common.Address
	nonce    *uint64 // nil until filled 未填充时为 nil
	gas      uint64
	gasPrice *uint256.Int // nil until filled
	chainID  *uint256.Int // nil until filled

	signatures []SignatureData

	// fee delegation
	feePayer           common.Address // zero when unset
	feePayerSignatures []SignatureData
	feeRatio           uint8
}

// TxData holds the fields that are specific to one transaction kind.
//
// This is implemented by LegacyTx, ValueTransferTx, ValueTransferMemoTx,
// AccountUpdateTx, SmartContractDeployTx, SmartContractExecutionTx, CancelTx
// and ChainDataAnchoringTx. The fee delegated variants share the struct of
// their basic kind.
//
// TxData 保存某一种交易特有的字段。代付变体与其基础类型共用同一个结构体。
type TxData interface {
	copy() TxData

	// fromArgs validates and loads the kind fields of args.
	fromArgs(args *TxArgs, from common.Address) error
	// toArgs writes the kind fields back into args.
	toArgs(args *TxArgs, from common.Address)

	getField(f Field) (codec.Value, error)
	setField(f Field, v codec.Value) error
}

func newTxData(t TxType) TxData {
	switch t &^ 0x07 {
	case TxTypeLegacyTransaction:
		return new(LegacyTx)
	case TxTypeValueTransfer:
		return new(ValueTransferTx)
	case TxTypeValueTransferMemo:
		return new(ValueTransferMemoTx)
	case TxTypeAccountUpdate:
		return new(AccountUpdateTx)
	case TxTypeSmartContractDeploy:
		return new(SmartContractDeployTx)
	case TxTypeSmartContractExecution:
		return new(SmartContractExecutionTx)
	case TxTypeCancel:
		return new(CancelTx)
	case TxTypeChainDataAnchoring:
		return new(ChainDataAnchoringTx)
	}
	return nil
}

// NewTransaction validates args for the given type and creates the
// transaction. The first violated rule is returned as a *FieldError.
//
// NewTransaction 按给定类型校验 args 并创建交易，返回第一个违反的规则。
func NewTransaction(t TxType, args TxArgs) (*Transaction, error) {
	schema, err := Schema(t)
	if err != nil {
		return nil, err
	}
	tx := &Transaction{typ: t, schema: schema, inner: newTxData(t)}
	if err := tx.load(&args); err != nil {
		return nil, err
	}
	return tx, nil
}

// newEmptyTransaction returns a shell to be populated field by field.
func newEmptyTransaction(t TxType) (*Transaction, error) {
	schema, err := Schema(t)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		typ:                t,
		schema:             schema,
		inner:              newTxData(t),
		signatures:         RefineSignatures(nil),
		feePayerSignatures: RefineSignatures(nil),
	}, nil
}

func (tx *Transaction) load(args *TxArgs) error {
	if args.From != "" && args.From != "0x" {
		from, err := parseAddress(FieldFrom, args.From)
		if err != nil {
			return err
		}
		tx.from = from
	} else if tx.schema.IsRequired(FieldFrom) {
		return fieldError(FieldFrom, ErrFromMissing)
	}
	if args.Gas == nil {
		return fieldError(FieldGas, ErrGasMissing)
	}
	tx.gas = uint64(*args.Gas)
	if args.Nonce != nil {
		nonce := uint64(*args.Nonce)
		tx.nonce = &nonce
	}
	if args.GasPrice != nil {
		tx.gasPrice = new(uint256.Int).Set((*uint256.Int)(args.GasPrice))
	}
	if args.ChainID != nil {
		tx.chainID = new(uint256.Int).Set((*uint256.Int)(args.ChainID))
	}
	if err := tx.inner.fromArgs(args, tx.from); err != nil {
		return err
	}
	if err := tx.loadFeeDelegation(args); err != nil {
		return err
	}
	sigs := RefineSignatures(args.Signatures)
	if tx.IsLegacy() && len(sigs) > 1 {
		return fieldError("signatures", ErrLegacySignaturesTooLong)
	}
	tx.signatures = sigs
	return nil
}

func (tx *Transaction) loadFeeDelegation(args *TxArgs) error {
	if tx.schema.FeeDelegation == FeeDelegationNone {
		switch {
		case args.FeePayer != "" && args.FeePayer != "0x":
			return fieldError(FieldFeePayer, ErrUnknownField)
		case args.FeeRatio != nil:
			return fieldError(FieldFeeRatio, ErrUnknownField)
		case !isEmptySignatures(args.FeePayerSignatures):
			return fieldError("feePayerSignatures", ErrUnknownField)
		}
		tx.feePayerSignatures = RefineSignatures(nil)
		return nil
	}
	if tx.schema.FeeDelegation == FeeDelegationFull && args.FeeRatio != nil {
		return fieldError(FieldFeeRatio, ErrUnknownField)
	}
	if tx.schema.FeeDelegation == FeeDelegationRatio {
		if args.FeeRatio == nil {
			return fieldError(FieldFeeRatio, ErrFeeRatioMissing)
		}
		if err := checkFeeRatio(uint64(*args.FeeRatio)); err != nil {
			return err
		}
		tx.feeRatio = uint8(*args.FeeRatio)
	}
	if args.FeePayer != "" && args.FeePayer != "0x" {
		feePayer, err := parseAddress(FieldFeePayer, args.FeePayer)
		if err != nil {
			return err
		}
		tx.feePayer = feePayer
	}
	sigs := RefineSignatures(args.FeePayerSignatures)
	if !isEmptySignatures(sigs) && tx.feePayer == (common.Address{}) {
		return fieldError(FieldFeePayer, ErrFeePayerMissing)
	}
	tx.feePayerSignatures = sigs
	return nil
}

// Args returns the construction arguments of the transaction. Passing them
// to NewTransaction yields an identical transaction.
func (tx *Transaction) Args() TxArgs {
	gas := hexutilUint64(tx.gas)
	args := TxArgs{
		Gas:        &gas,
		Signatures: copySignatures(tx.signatures),
	}
	if tx.from != (common.Address{}) {
		args.From = tx.from.Hex()
	}
	if tx.nonce != nil {
		nonce := hexutilUint64(*tx.nonce)
		args.Nonce = &nonce
	}
	args.GasPrice = hexutilU256(tx.gasPrice)
	args.ChainID = hexutilU256(tx.chainID)
	tx.inner.toArgs(&args, tx.from)
	if tx.IsFeeDelegated() {
		if tx.feePayer != (common.Address{}) {
			args.FeePayer = tx.feePayer.Hex()
		}
		args.FeePayerSignatures = copySignatures(tx.feePayerSignatures)
		if tx.schema.FeeDelegation == FeeDelegationRatio {
			ratio := hexutilUint64(uint64(tx.feeRatio))
			args.FeeRatio = &ratio
		}
	}
	return args
}

// Validate re-runs every field check of the constructor against the current
// state of the transaction.
// Validate 针对交易的当前状态重新执行构造函数的全部字段检查。
func (tx *Transaction) Validate() error {
	_, err := NewTransaction(tx.typ, tx.Args())
	return err
}

// Copy returns a deep copy of the transaction.
func (tx *Transaction) Copy() *Transaction {
	cpy := *tx
	cpy.inner = tx.inner.copy()
	if tx.nonce != nil {
		nonce := *tx.nonce
		cpy.nonce = &nonce
	}
	if tx.gasPrice != nil {
		cpy.gasPrice = new(uint256.Int).Set(tx.gasPrice)
	}
	if tx.chainID != nil {
		cpy.chainID = new(uint256.Int).Set(tx.chainID)
	}
	cpy.signatures = copySignatures(tx.signatures)
	cpy.feePayerSignatures = copySignatures(tx.feePayerSignatures)
	return &cpy
}

// Type returns the transaction type.
func (tx *Transaction) Type() TxType { return tx.typ }

// Schema returns the layout of the transaction type.
func (tx *Transaction) Schema() *TxSchema { return tx.schema }

// IsLegacy reports whether the transaction is an untagged legacy transaction.
func (tx *Transaction) IsLegacy() bool { return tx.typ == TxTypeLegacyTransaction }

// IsFeeDelegated reports whether a fee payer can sign the transaction.
func (tx *Transaction) IsFeeDelegated() bool {
	return tx.schema.FeeDelegation != FeeDelegationNone
}

// From returns the sender address. It is the zero address for a legacy
// transaction whose sender was never given.
func (tx *Transaction) From() common.Address { return tx.from }

// Nonce returns the nonce and whether it is defined.
func (tx *Transaction) Nonce() (uint64, bool) {
	if tx.nonce == nil {
		return 0, false
	}
	return *tx.nonce, true
}

// Gas returns the gas limit.
func (tx *Transaction) Gas() uint64 { return tx.gas }

// GasPrice returns a copy of the gas price, nil if undefined.
func (tx *Transaction) GasPrice() *uint256.Int { return cloneU256(tx.gasPrice) }

// ChainID returns a copy of the chain id, nil if undefined.
func (tx *Transaction) ChainID() *uint256.Int { return cloneU256(tx.chainID) }

// To returns the recipient, or nil for types without one and for contract
// creation.
func (tx *Transaction) To() *common.Address {
	v, err := tx.inner.getField(FieldTo)
	if err != nil || len(v.Bytes()) != common.AddressLength {
		return nil
	}
	to := common.BytesToAddress(v.Bytes())
	return &to
}

// Value returns the transferred amount; zero for types without one.
func (tx *Transaction) Value() *uint256.Int {
	v, err := tx.inner.getField(FieldValue)
	if err != nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).SetBytes(v.Bytes())
}

// Input returns a copy of the input data; nil for types without one.
func (tx *Transaction) Input() []byte {
	v, err := tx.inner.getField(FieldInput)
	if err != nil {
		return nil
	}
	return common.CopyBytes(v.Bytes())
}

// Account returns the account update carried by AccountUpdate transactions.
func (tx *Transaction) Account() *accountkey.Account {
	if au, ok := tx.inner.(*AccountUpdateTx); ok && au.Key != nil {
		return accountkey.NewAccount(tx.from, au.Key)
	}
	return nil
}

// FeeRatio returns the share of the fee, in percent, covered by the fee payer.
func (tx *Transaction) FeeRatio() uint8 { return tx.feeRatio }

// FeePayer returns the fee payer address, the zero address when unset.
func (tx *Transaction) FeePayer() common.Address { return tx.feePayer }

// Signatures returns a copy of the sender signatures.
func (tx *Transaction) Signatures() []SignatureData { return copySignatures(tx.signatures) }

// FeePayerSignatures returns a copy of the fee payer signatures.
func (tx *Transaction) FeePayerSignatures() []SignatureData {
	return copySignatures(tx.feePayerSignatures)
}

// SetNonce defines the nonce of a transaction created without one.
func (tx *Transaction) SetNonce(nonce uint64) { tx.nonce = &nonce }

// SetGasPrice defines the gas price.
func (tx *Transaction) SetGasPrice(price *uint256.Int) { tx.gasPrice = cloneU256(price) }

// SetChainID defines the chain id.
func (tx *Transaction) SetChainID(id *uint256.Int) { tx.chainID = cloneU256(id) }

// SetFeePayer defines the fee payer of a fee delegated transaction.
func (tx *Transaction) SetFeePayer(addr common.Address) error {
	if !tx.IsFeeDelegated() {
		return ErrNotFeeDelegated
	}
	tx.feePayer = addr
	return nil
}

// GetField returns the canonical RLP item of a field. The deferred fields
// nonce, gasPrice and chainId fail with *UndefinedFieldError while unset.
//
// GetField 返回字段的规范 RLP 元素。
func (tx *Transaction) GetField(f Field) (codec.Value, error) {
	switch f {
	case FieldChainID:
		if tx.chainID == nil {
			return codec.Value{}, &UndefinedFieldError{Field: f}
		}
		return codec.Uint256(tx.chainID), nil
	case FieldFeePayer:
		if !tx.IsFeeDelegated() {
			return codec.Value{}, fieldError(f, ErrUnknownField)
		}
		return codec.Address(tx.feePayer), nil
	}
	if !tx.schema.Has(f) {
		return codec.Value{}, fieldError(f, ErrUnknownField)
	}
	switch f {
	case FieldNonce:
		if tx.nonce == nil {
			return codec.Value{}, &UndefinedFieldError{Field: f}
		}
		return codec.Uint64(*tx.nonce), nil
	case FieldGasPrice:
		if tx.gasPrice == nil {
			return codec.Value{}, &UndefinedFieldError{Field: f}
		}
		return codec.Uint256(tx.gasPrice), nil
	case FieldGas:
		return codec.Uint64(tx.gas), nil
	case FieldFrom:
		return codec.Address(tx.from), nil
	case FieldFeeRatio:
		return codec.Uint64(uint64(tx.feeRatio)), nil
	}
	return tx.inner.getField(f)
}

// SetField decodes v into field f and re-validates the transaction. The
// transaction is left untouched when the new value is rejected.
//
// SetField 将 v 解码到字段 f 并重新校验交易；新值被拒绝时交易保持不变。
func (tx *Transaction) SetField(f Field, v codec.Value) error {
	cpy := tx.Copy()
	if err := cpy.setField(f, v); err != nil {
		return err
	}
	if err := cpy.Validate(); err != nil {
		return err
	}
	*tx = *cpy
	return nil
}

func (tx *Transaction) setField(f Field, v codec.Value) error {
	if f != FieldChainID && !tx.schema.Has(f) {
		return fieldError(f, ErrUnknownField)
	}
	switch f {
	case FieldNonce:
		nonce, err := decodeUint64(f, v)
		if err != nil {
			return err
		}
		tx.nonce = &nonce
	case FieldGasPrice:
		price, err := decodeUint256(f, v)
		if err != nil {
			return err
		}
		tx.gasPrice = price
	case FieldChainID:
		id, err := decodeUint256(f, v)
		if err != nil {
			return err
		}
		tx.chainID = id
	case FieldGas:
		gas, err := decodeUint64(f, v)
		if err != nil {
			return err
		}
		tx.gas = gas
	case FieldFrom:
		from, err := decodeAddress(f, v)
		if err != nil {
			return err
		}
		tx.from = from
	case FieldFeePayer:
		feePayer, err := decodeOptionalAddress(f, v)
		if err != nil {
			return err
		}
		tx.feePayer = common.Address{}
		if feePayer != nil {
			tx.feePayer = *feePayer
		}
	case FieldFeeRatio:
		ratio, err := decodeUint64(f, v)
		if err != nil {
			return err
		}
		if err := checkFeeRatio(ratio); err != nil {
			return err
		}
		tx.feeRatio = uint8(ratio)
	default:
		return tx.inner.setField(f, v)
	}
	return nil
}

// String implements fmt.Stringer.
func (tx *Transaction) String() string {
	return fmt.Sprintf("%v{from: %s, gas: %d, signatures: %d}", tx.typ, tx.from.Hex(), tx.gas, len(tx.signatures))
}

func checkFeeRatio(ratio uint64) error {
	if ratio < uint64(params.MinFeeRatio) || ratio > uint64(params.MaxFeeRatio) {
		return &FieldError{Field: FieldFeeRatio, Err: ErrFeeRatioOutOfRange, Value: fmt.Sprint(ratio)}
	}
	return nil
}

func cloneU256(x *uint256.Int) *uint256.Int {
	if x == nil {
		return nil
	}
	return new(uint256.Int).Set(x)
}

// chainIDBig returns the chain id as a big integer, failing while undefined.
func (tx *Transaction) chainIDBig() (*big.Int, error) {
	if tx.chainID == nil {
		return nil, &UndefinedFieldError{Field: FieldChainID}
	}
	return tx.chainID.ToBig(), nil
}
