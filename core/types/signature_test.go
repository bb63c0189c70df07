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
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureDataCanonical(t *testing.T) {
	a := mustSig(t, "0xfe9", "0x00ab", "0x0000cd")
	assert.Equal(t, []byte{0x0f, 0xe9}, a.V)
	assert.Equal(t, []byte{0xab}, a.R)
	assert.Equal(t, []byte{0xcd}, a.S)
	assert.True(t, a.Equal(NewSignatureData([]byte{0, 0x0f, 0xe9}, []byte{0xab}, []byte{0, 0xcd})))
	assert.Equal(t, "[0x0fe9, 0xab, 0xcd]", a.String())

	_, err := SignatureDataFromHex("0x01", "0xzz", "0x")
	assert.ErrorIs(t, err, ErrInvalidSig)
}

func TestSignatureDataEmpty(t *testing.T) {
	assert.True(t, EmptySignature.IsEmpty())
	assert.True(t, mustSig(t, "0x01", "0x", "0x").IsEmpty())
	assert.False(t, mustSig(t, "0x01", "0x01", "0x").IsEmpty())
}

func TestSignatureRecoveryID(t *testing.T) {
	tests := []struct {
		v       uint64
		id      byte
		chainID *big.Int
		err     error
	}{
		{v: 0, id: 0},
		{v: 1, id: 1},
		{v: 27, id: 0},
		{v: 28, id: 1},
		{v: 37, id: 0, chainID: big.NewInt(1)},
		{v: 38, id: 1, chainID: big.NewInt(1)},
		{v: 0x0fe9, id: 0, chainID: big.NewInt(2019)},
		{v: 0x0fea, id: 1, chainID: big.NewInt(2019)},
		{v: 2, err: ErrInvalidSig},
		{v: 30, err: ErrInvalidSig},
	}
	for _, tt := range tests {
		sig := NewSignatureData(new(big.Int).SetUint64(tt.v).Bytes(), []byte{1}, []byte{1})
		id, err := sig.RecoveryID()
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "v=%d", tt.v)
			continue
		}
		require.NoError(t, err, "v=%d", tt.v)
		assert.Equal(t, tt.id, id, "v=%d", tt.v)
		assert.Equal(t, tt.chainID, sig.ChainID(), "v=%d", tt.v)
	}
}

func TestRefineSignatures(t *testing.T) {
	a := mustSig(t, "0x0fe9", "0x01", "0x02")
	b := mustSig(t, "0x0fea", "0x03", "0x04")
	padded := SignatureData{V: []byte{0x0f, 0xe9}, R: []byte{0, 0x01}, S: []byte{0x02}}

	refined := RefineSignatures([]SignatureData{EmptySignature, a, b, padded, a, EmptySignature})
	assert.Equal(t, []SignatureData{a, b}, refined)

	assert.Equal(t, []SignatureData{EmptySignature}, RefineSignatures(nil))
	assert.Equal(t, []SignatureData{EmptySignature}, RefineSignatures([]SignatureData{EmptySignature, EmptySignature}))

	// The input is not modified.
	in := []SignatureData{padded}
	RefineSignatures(in)
	assert.Equal(t, []byte{0, 0x01}, in[0].R)
}

func TestSignatureDataJSON(t *testing.T) {
	sig := mustSig(t, "0x0fe9", "0x4d9bf7a8bd15a41143eeecd3c39691cdc151b50d641534f0c73055849f7abca1", "0x7123185b4cc046eb6a78e1ee370c059dfe437012098ebe18379685acd907606f")
	enc, err := json.Marshal(sig)
	require.NoError(t, err)
	assert.JSONEq(t, `["0x0fe9","0x4d9bf7a8bd15a41143eeecd3c39691cdc151b50d641534f0c73055849f7abca1","0x7123185b4cc046eb6a78e1ee370c059dfe437012098ebe18379685acd907606f"]`, string(enc))

	var dec SignatureData
	require.NoError(t, json.Unmarshal(enc, &dec))
	assert.True(t, sig.Equal(dec))

	enc, err = json.Marshal(EmptySignature)
	require.NoError(t, err)
	assert.JSONEq(t, `["0x01","0x","0x"]`, string(enc))

	assert.ErrorIs(t, json.Unmarshal([]byte(`["0x01","0x"]`), &dec), ErrInvalidSig)
}
