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

// Klaytn 网络背景：
// Cypress 是 Klaytn 主网，Baobab 是公开测试网。两者都使用 EIP-155 风格的链 ID 来防止跨链重放，
// 签名中的 V 值为 recid + 35 + 2*chainId。

// These are the well-known network identifiers.
// 这些是常用的网络标识符。
const (
	CypressChainID uint64 = 8217 // Klaytn mainnet
	BaobabChainID  uint64 = 1001 // Klaytn public testnet
)

// DefaultRPCEndpoint is the JSON-RPC endpoint used when nothing else is configured.
// DefaultRPCEndpoint 是未进行任何配置时使用的 JSON-RPC 端点。
const DefaultRPCEndpoint = "http://localhost:8551"

// PendingBlockTag is the block parameter used for nonce lookups, so that
// transactions still sitting in the pool are taken into account.
const PendingBlockTag = "pending"
