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
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"
)

// ChainStateReader provides the chain values a transaction may be filled
// with. It is implemented by klayclient.Client.
//
// ChainStateReader 提供用于填充交易的链上数据。
type ChainStateReader interface {
	// NonceAt returns the pending nonce of the account.
	NonceAt(ctx context.Context, account common.Address) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// FillTransaction queries the reader for the nonce, gas price and chain id
// the transaction lacks. Defined values are never overwritten and nothing is
// queried when all of them are set. The queries run concurrently; the
// transaction is only modified when all of them succeeded.
//
// FillTransaction 并发查询交易缺少的 nonce、gasPrice 与 chainId，全部成功后才修改交易。
func (tx *Transaction) FillTransaction(ctx context.Context, reader ChainStateReader) error {
	var (
		nonce    *uint64
		gasPrice *uint256.Int
		chainID  *uint256.Int
	)
	g, ctx := errgroup.WithContext(ctx)
	if tx.nonce == nil {
		if tx.from == zeroAddress {
			return &UndefinedFieldError{Field: FieldFrom}
		}
		from := tx.from
		g.Go(func() error {
			n, err := reader.NonceAt(ctx, from)
			if err != nil {
				return fmt.Errorf("failed to fetch nonce: %w", err)
			}
			nonce = &n
			return nil
		})
	}
	if tx.gasPrice == nil {
		g.Go(func() (err error) {
			gasPrice, err = fetchU256(ctx, reader.GasPrice, FieldGasPrice)
			return err
		})
	}
	if tx.chainID == nil {
		g.Go(func() (err error) {
			chainID, err = fetchU256(ctx, reader.ChainID, FieldChainID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if nonce != nil {
		tx.nonce = nonce
	}
	if gasPrice != nil {
		tx.gasPrice = gasPrice
	}
	if chainID != nil {
		tx.chainID = chainID
	}
	log.Debug("Filled transaction", "type", tx.typ, "nonce", nonce != nil, "gasPrice", gasPrice, "chainId", chainID)
	return nil
}

func fetchU256(ctx context.Context, fetch func(context.Context) (*big.Int, error), f Field) (*uint256.Int, error) {
	x, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", f, err)
	}
	if x == nil || x.Sign() < 0 {
		return nil, &FieldError{Field: f, Err: ErrInvalidFieldValue, Value: fmt.Sprint(x)}
	}
	v, overflow := uint256.FromBig(x)
	if overflow {
		return nil, &FieldError{Field: f, Err: ErrInvalidFieldValue, Value: x.String()}
	}
	return v, nil
}
