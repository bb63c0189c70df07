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

package klayclient

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/klaytn/caver-go/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testFrom    = common.HexToAddress("0xa94f5374Fce5edBC8E2a8697C15331677e6EbF0B")
	unknownFrom = common.HexToAddress("0x000000000000000000000000000000000000dead")
)

// klayService serves the klay namespace from memory.
type klayService struct {
	mu     sync.Mutex
	blocks []string
	sent   []*types.Transaction
}

func (s *klayService) ChainID() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(1001))
}

func (s *klayService) GasPrice() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(25000000000))
}

func (s *klayService) BlockNumber() hexutil.Uint64 {
	return 0x1234
}

func (s *klayService) GetTransactionCount(account common.Address, block string) (hexutil.Uint64, error) {
	s.mu.Lock()
	s.blocks = append(s.blocks, block)
	s.mu.Unlock()
	if account == unknownFrom {
		return 0, errors.New("unknown account")
	}
	return 0x4d2, nil
}

func (s *klayService) SendRawTransaction(raw hexutil.Bytes) (common.Hash, error) {
	tx, err := types.DecodeTransaction(raw)
	if err != nil {
		return common.Hash{}, err
	}
	s.mu.Lock()
	s.sent = append(s.sent, tx)
	s.mu.Unlock()
	return tx.Hash()
}

func newTestClient(t *testing.T) (*Client, *klayService) {
	t.Helper()
	svc := new(klayService)
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("klay", svc))
	client := NewClient(rpc.DialInProc(server))
	t.Cleanup(func() {
		client.Close()
		server.Stop()
	})
	return client, svc
}

func TestClientQueries(t *testing.T) {
	client, svc := newTestClient(t)
	ctx := context.Background()

	chainID, err := client.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1001), chainID)

	price, err := client.GasPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(25000000000), price)

	number, err := client.BlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1234), number)

	nonce, err := client.NonceAt(ctx, testFrom)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x4d2), nonce)

	_, err = client.NonceAtBlock(ctx, testFrom, nil)
	require.NoError(t, err)
	_, err = client.NonceAtBlock(ctx, testFrom, big.NewInt(16))
	require.NoError(t, err)
	assert.Equal(t, []string{"pending", "latest", "0x10"}, svc.blocks)

	_, err = client.NonceAt(ctx, unknownFrom)
	assert.ErrorContains(t, err, "unknown account")
}

func TestFillWithClient(t *testing.T) {
	client, _ := newTestClient(t)

	tx, err := types.NewTransaction(types.TxTypeValueTransfer, types.TxArgs{
		From:  testFrom.Hex(),
		To:    types.String("0x7b65B75d204aBed71587c9E519a89277766EE1d0"),
		Value: types.U256(0xa),
		Gas:   types.Uint64(0xf4240),
	})
	require.NoError(t, err)
	require.NoError(t, tx.FillTransaction(context.Background(), client))

	nonce, ok := tx.Nonce()
	require.True(t, ok)
	assert.Equal(t, uint64(0x4d2), nonce)
	assert.Equal(t, uint64(25000000000), tx.GasPrice().Uint64())
	assert.Equal(t, uint64(1001), tx.ChainID().Uint64())

	bad, err := types.NewTransaction(types.TxTypeValueTransfer, types.TxArgs{
		From:  unknownFrom.Hex(),
		To:    types.String("0x7b65B75d204aBed71587c9E519a89277766EE1d0"),
		Value: types.U256(0xa),
		Gas:   types.Uint64(0xf4240),
	})
	require.NoError(t, err)
	err = bad.FillTransaction(context.Background(), client)
	assert.ErrorContains(t, err, "failed to fetch nonce")
	assert.Nil(t, bad.ChainID())
}

func TestSendTransaction(t *testing.T) {
	client, svc := newTestClient(t)

	// Fee delegated value transfer with ratio, signed by sender and fee payer.
	const raw = "0x0af8d78204d219830f4240947b65b75d204abed71587c9e519a89277766ee1d00a94a94f5374fce5edbc8e2a8697c15331677e6ebf0b1ef845f84325a0dde32b8241f039a82b124fe94d3e556eb08f0d6f26d07dcc0f3fca621f1090caa01c8c336b358ab6d3a2bbf25de2adab4d01b754e2fb3b9b710069177d54c1e956945a0043070275d9f6054307ee7348bd660849d90ff845f84326a0091ecf53f91bb97bb694f2f2443f3563ac2b646d651497774524394aae396360a044228b88f275aa1ec1bab43681d21dc7e3a676786ed1906f6841d0a1a188f88a"
	tx, err := types.DecodeRawTransaction(raw)
	require.NoError(t, err)

	hash, err := client.SendTransaction(context.Background(), tx)
	require.NoError(t, err)
	want, err := tx.Hash()
	require.NoError(t, err)
	assert.Equal(t, want, hash)
	require.Len(t, svc.sent, 1)
	assert.Equal(t, raw, mustRaw(t, svc.sent[0]))

	_, err = client.SendRawTransaction(context.Background(), "0x08")
	assert.Error(t, err)
}

func mustRaw(t *testing.T, tx *types.Transaction) string {
	t.Helper()
	raw, err := tx.RawTransaction()
	require.NoError(t, err)
	return raw
}
