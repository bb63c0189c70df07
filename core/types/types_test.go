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
	"crypto/ecdsa"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/klaytn/caver-go/accounts/accountkey"
	"github.com/stretchr/testify/require"
)

// Values shared by the fixtures below.
const (
	senderKeyHex   = "45a915e4d060149eb4365960e6a7a45f334393093061116b197e3240065ff2d8"
	feePayerKeyHex = "b9d5558443585bca6f225b935950e3f6e69f9da8a5809a83f51c3365dff53936"

	fixtureFrom     = "0xa94f5374Fce5edBC8E2a8697C15331677e6EbF0B"
	fixtureTo       = "0x7b65B75d204aBed71587c9E519a89277766EE1d0"
	fixtureFeePayer = "0x5A0043070275d9f6054307Ee7348bD660849D90f"
)

// fixtureArgs returns the common arguments of the value transfer fixtures:
// nonce 0x4d2, gas price 0x19, gas 0xf4240, chain id 1.
func fixtureArgs() TxArgs {
	return TxArgs{
		From:     fixtureFrom,
		Nonce:    Uint64(0x4d2),
		GasPrice: U256(0x19),
		Gas:      Uint64(0xf4240),
		ChainID:  U256(1),
	}
}

func mustSig(t *testing.T, v, r, s string) SignatureData {
	t.Helper()
	sig, err := SignatureDataFromHex(v, r, s)
	require.NoError(t, err)
	return sig
}

func mustRaw(t *testing.T, tx *Transaction) string {
	t.Helper()
	raw, err := tx.RawTransaction()
	require.NoError(t, err)
	return raw
}

func mustHex(t *testing.T, enc func() ([]byte, error)) string {
	t.Helper()
	b, err := enc()
	require.NoError(t, err)
	return hexutil.Encode(b)
}

func mustHash(t *testing.T, hash func() (common.Hash, error)) string {
	t.Helper()
	h, err := hash()
	require.NoError(t, err)
	return h.Hex()
}

// testKeyring signs with plain private keys. The same keys serve every role.
type testKeyring struct {
	address common.Address
	keys    []*ecdsa.PrivateKey
	roles   []accountkey.Role // roles requested so far
}

func newTestKeyring(t *testing.T, address string, hexKeys ...string) *testKeyring {
	t.Helper()
	kr := &testKeyring{}
	for _, h := range hexKeys {
		key, err := crypto.HexToECDSA(h)
		require.NoError(t, err)
		kr.keys = append(kr.keys, key)
	}
	if address == "" {
		kr.address = crypto.PubkeyToAddress(kr.keys[0].PublicKey)
	} else {
		kr.address = common.HexToAddress(address)
	}
	return kr
}

func (kr *testKeyring) Address() common.Address { return kr.address }

func (kr *testKeyring) IsDecoupled() bool {
	return len(kr.keys) != 1 || crypto.PubkeyToAddress(kr.keys[0].PublicKey) != kr.address
}

func (kr *testKeyring) KeyCount(accountkey.Role) int { return len(kr.keys) }

func (kr *testKeyring) Sign(hash common.Hash, chainID *big.Int, role accountkey.Role, index int) (SignatureData, error) {
	kr.roles = append(kr.roles, role)
	if index < 0 {
		return SignatureData{}, errors.New("Invalid index : index cannot be negative")
	}
	if index >= len(kr.keys) {
		return SignatureData{}, errors.New("Invalid index : index must be less than the length of the key.")
	}
	sig, err := crypto.Sign(hash[:], kr.keys[index])
	if err != nil {
		return SignatureData{}, err
	}
	v := new(big.Int).Mul(chainID, big.NewInt(2))
	v.Add(v, big.NewInt(35+int64(sig[64])))
	return NewSignatureData(v.Bytes(), sig[:32], sig[32:64]), nil
}

func (kr *testKeyring) SignAll(hash common.Hash, chainID *big.Int, role accountkey.Role) ([]SignatureData, error) {
	sigs := make([]SignatureData, len(kr.keys))
	for i := range kr.keys {
		sig, err := kr.Sign(hash, chainID, role, i)
		if err != nil {
			return nil, err
		}
		sigs[i] = sig
	}
	return sigs, nil
}
