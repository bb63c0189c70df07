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

// Package klayclient provides a client for the parts of the Klaytn RPC API
// needed to fill and submit transactions.
package klayclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/klaytn/caver-go/core/types"
	"github.com/klaytn/caver-go/params"
)

// Client defines typed wrappers for the Klaytn RPC API.
// Client 结构体定义了对 Klaytn RPC API 的类型化包装。
type Client struct {
	c *rpc.Client // 底层 RPC 客户端
}

var _ types.ChainStateReader = (*Client)(nil)

// Dial connects a client to the given URL.
// Dial 函数使用默认上下文连接到指定的 URL。
func Dial(rawurl string) (*Client, error) {
	return DialContext(context.Background(), rawurl)
}

// DialContext connects a client to the given URL with context.
func DialContext(ctx context.Context, rawurl string) (*Client, error) {
	c, err := rpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return NewClient(c), nil
}

// NewClient creates a client that uses the given RPC client.
// NewClient 函数通过传入已有的 RPC 客户端来创建 Client 实例。
func NewClient(c *rpc.Client) *Client {
	return &Client{c}
}

// Close closes the underlying RPC connection.
func (kc *Client) Close() {
	kc.c.Close()
}

// Client gets the underlying RPC client.
func (kc *Client) Client() *rpc.Client {
	return kc.c
}

// ChainID retrieves the chain id signatures must commit to.
// ChainID 方法通过调用 "klay_chainID" RPC 方法获取链 ID，用于防止交易在不同链上重放。
func (kc *Client) ChainID(ctx context.Context) (*big.Int, error) {
	var result hexutil.Big
	if err := kc.c.CallContext(ctx, &result, "klay_chainID"); err != nil {
		return nil, err
	}
	return (*big.Int)(&result), nil
}

// BlockNumber returns the most recent block number.
func (kc *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var result hexutil.Uint64
	err := kc.c.CallContext(ctx, &result, "klay_blockNumber")
	return uint64(result), err
}

// GasPrice retrieves the unit price of the network.
func (kc *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	var hex hexutil.Big
	if err := kc.c.CallContext(ctx, &hex, "klay_gasPrice"); err != nil {
		return nil, err
	}
	return (*big.Int)(&hex), nil
}

// NonceAt returns the account nonce including pending transactions, the
// value the next transaction of the account must use.
// NonceAt 方法返回包含待处理交易在内的账户 nonce。
func (kc *Client) NonceAt(ctx context.Context, account common.Address) (uint64, error) {
	var result hexutil.Uint64
	err := kc.c.CallContext(ctx, &result, "klay_getTransactionCount", account, params.PendingBlockTag)
	return uint64(result), err
}

// NonceAtBlock returns the account nonce at the given block. The latest
// known block is used if blockNumber is nil.
func (kc *Client) NonceAtBlock(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error) {
	var result hexutil.Uint64
	err := kc.c.CallContext(ctx, &result, "klay_getTransactionCount", account, toBlockNumArg(blockNumber))
	return uint64(result), err
}

// SendRawTransaction submits a raw transaction and returns the hash the node
// reports for it.
func (kc *Client) SendRawTransaction(ctx context.Context, raw string) (common.Hash, error) {
	var hash common.Hash
	if err := kc.c.CallContext(ctx, &hash, "klay_sendRawTransaction", raw); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

// SendTransaction submits a signed transaction. The node's hash must match
// the locally computed one.
// SendTransaction 方法提交已签名的交易，节点返回的哈希必须与本地计算的哈希一致。
func (kc *Client) SendTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	raw, err := tx.RawTransaction()
	if err != nil {
		return common.Hash{}, err
	}
	want, err := tx.Hash()
	if err != nil {
		return common.Hash{}, err
	}
	got, err := kc.SendRawTransaction(ctx, raw)
	if err != nil {
		return common.Hash{}, err
	}
	if got != want {
		return got, fmt.Errorf("node reported transaction hash %s, expected %s", got.Hex(), want.Hex())
	}
	log.Debug("Submitted transaction", "type", tx.Type(), "hash", got)
	return got, nil
}

func toBlockNumArg(number *big.Int) string {
	if number == nil {
		return "latest"
	}
	if number.Sign() >= 0 {
		return hexutil.EncodeBig(number)
	}
	// It's negative.
	if number.IsInt64() {
		return rpc.BlockNumber(number.Int64()).String()
	}
	// It's negative and large, which is invalid.
	return fmt.Sprintf("<invalid %d>", number)
}
