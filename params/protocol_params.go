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

package params

const (
	MinFeeRatio uint8 = 1  // Smallest share (in percent) a fee payer may cover in a ratio transaction.
	MaxFeeRatio uint8 = 99 // Largest share (in percent) a fee payer may cover in a ratio transaction.
	// 费用比例必须落在 [1, 99]。0 与 100 的情况应使用非比例的交易类型。

	MaxWeightedPublicKeys = 10 // Maximum number of keys in an AccountKeyWeightedMultiSig.
	RoleGroupCount        = 3  // Number of roles in an AccountKeyRoleBased (transaction, account update, fee payer).

	CodeFormatEVM uint64 = 0 // The only supported code format of a smart contract deploy.
)

// These are the multipliers for KLAY denominations.
// Example: To get the peb value of an amount in 'ston', use
//
//	new(big.Int).Mul(value, big.NewInt(params.Ston))
//
// 这些是 KLAY 面额的乘数。peb 是最小单位，1 KLAY = 10^18 peb。
const (
	Peb  = 1
	Ston = 1e9
	KLAY = 1e18
)
