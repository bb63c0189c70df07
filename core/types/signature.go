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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/klaytn/caver-go/codec"
)

// SignatureData is a (v, r, s) triple. Every component is kept as a minimal
// big-endian byte string, so zero is the empty string.
//
// SignatureData 是 (v, r, s) 三元组。每个分量都以最短的大端字节串保存，零即空串。
type SignatureData struct {
	V []byte
	R []byte
	S []byte
}

// EmptySignature is the placeholder carried by a transaction that has not
// been signed yet. It encodes as c3018080 and is never counted as a signature.
// EmptySignature 是尚未签名交易所携带的占位签名，编码为 c3018080。
var EmptySignature = SignatureData{V: []byte{0x01}, R: []byte{}, S: []byte{}}

// NewSignatureData copies and canonicalizes the given components.
func NewSignatureData(v, r, s []byte) SignatureData {
	return SignatureData{V: trimLeadingZeros(v), R: trimLeadingZeros(r), S: trimLeadingZeros(s)}
}

// SignatureDataFromHex parses 0x-prefixed hex components. Odd-length input is
// padded with a leading zero nibble.
func SignatureDataFromHex(v, r, s string) (SignatureData, error) {
	var (
		parts [3][]byte
		err   error
	)
	for i, in := range []string{v, r, s} {
		if parts[i], err = decodeLooseHex(in); err != nil {
			return SignatureData{}, fmt.Errorf("%w: %v", ErrInvalidSig, err)
		}
	}
	return NewSignatureData(parts[0], parts[1], parts[2]), nil
}

// IsEmpty reports whether s is the unsigned placeholder.
func (s SignatureData) IsEmpty() bool {
	return s.Equal(EmptySignature)
}

// Equal compares the canonical forms of both signatures.
func (s SignatureData) Equal(o SignatureData) bool {
	return bytes.Equal(trimLeadingZeros(s.V), trimLeadingZeros(o.V)) &&
		bytes.Equal(trimLeadingZeros(s.R), trimLeadingZeros(o.R)) &&
		bytes.Equal(trimLeadingZeros(s.S), trimLeadingZeros(o.S))
}

// RecoveryID returns the y-parity encoded in v. Raw parities (0, 1),
// homestead values (27, 28) and EIP-155 values (35 + 2*chainId + parity)
// are understood.
func (s SignatureData) RecoveryID() (byte, error) {
	v := new(big.Int).SetBytes(s.V)
	switch {
	case v.Cmp(big.NewInt(1)) <= 0:
		return byte(v.Uint64()), nil
	case v.Cmp(big.NewInt(27)) == 0, v.Cmp(big.NewInt(28)) == 0:
		return byte(v.Uint64() - 27), nil
	case v.Cmp(big.NewInt(35)) >= 0:
		return byte(new(big.Int).Sub(v, big.NewInt(35)).Bit(0)), nil
	}
	return 0, ErrInvalidSig
}

// ChainID derives the chain id from an EIP-155 v value. It returns nil when
// v carries no chain id.
// ChainID 从 EIP-155 的 v 值推导链 ID，v 中不含链 ID 时返回 nil。
func (s SignatureData) ChainID() *big.Int {
	v := new(big.Int).SetBytes(s.V)
	if v.Cmp(big.NewInt(35)) < 0 {
		return nil
	}
	v.Sub(v, big.NewInt(35))
	return v.Rsh(v, 1)
}

func (s SignatureData) value() codec.Value {
	return codec.List(codec.String(trimLeadingZeros(s.V)), codec.String(trimLeadingZeros(s.R)), codec.String(trimLeadingZeros(s.S)))
}

// EncodeRLP implements rlp.Encoder, writing the list [v, r, s].
func (s SignatureData) EncodeRLP(w io.Writer) error {
	return s.value().EncodeRLP(w)
}

// String renders the signature as [v, r, s] hex.
func (s SignatureData) String() string {
	return fmt.Sprintf("[%s, %s, %s]", encodeHex(s.V), encodeHex(s.R), encodeHex(s.S))
}

// MarshalJSON renders the signature as a three element hex array.
func (s SignatureData) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{encodeHex(s.V), encodeHex(s.R), encodeHex(s.S)})
}

// UnmarshalJSON accepts the three element hex array produced by MarshalJSON.
func (s *SignatureData) UnmarshalJSON(input []byte) error {
	var parts []string
	if err := json.Unmarshal(input, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("%w: signature must have three components, got %d", ErrInvalidSig, len(parts))
	}
	dec, err := SignatureDataFromHex(parts[0], parts[1], parts[2])
	if err != nil {
		return err
	}
	*s = dec
	return nil
}

func signatureFromValue(v codec.Value) (SignatureData, error) {
	items := v.Items()
	if !v.IsList() || len(items) != 3 {
		return SignatureData{}, fmt.Errorf("%w: signature must be a list of three strings", ErrInvalidSig)
	}
	for _, item := range items {
		if item.IsList() {
			return SignatureData{}, fmt.Errorf("%w: signature must be a list of three strings", ErrInvalidSig)
		}
	}
	return NewSignatureData(items[0].Bytes(), items[1].Bytes(), items[2].Bytes()), nil
}

func signatureListValue(sigs []SignatureData) codec.Value {
	items := make([]codec.Value, len(sigs))
	for i, sig := range sigs {
		items[i] = sig.value()
	}
	return codec.List(items...)
}

func signaturesFromValue(v codec.Value) ([]SignatureData, error) {
	if !v.IsList() {
		return nil, fmt.Errorf("%w: signatures must be a list", ErrInvalidSig)
	}
	sigs := make([]SignatureData, 0, v.Len())
	for _, item := range v.Items() {
		sig, err := signatureFromValue(item)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

// RefineSignatures drops empty placeholders and duplicates, keeping the first
// occurrence of every signature in order. An empty result is replaced by the
// single EmptySignature.
//
// RefineSignatures 去掉占位签名和重复签名，保留每个签名首次出现的顺序。
func RefineSignatures(sigs []SignatureData) []SignatureData {
	seen := mapset.NewThreadUnsafeSet[string]()
	refined := make([]SignatureData, 0, len(sigs))
	for _, sig := range sigs {
		if sig.IsEmpty() {
			continue
		}
		if !seen.Add(string(codec.Encode(sig.value()))) {
			continue
		}
		refined = append(refined, NewSignatureData(sig.V, sig.R, sig.S))
	}
	if len(refined) == 0 {
		refined = append(refined, NewSignatureData(EmptySignature.V, nil, nil))
	}
	return refined
}

// isEmptySignatures reports whether the list holds nothing but placeholders.
func isEmptySignatures(sigs []SignatureData) bool {
	for _, sig := range sigs {
		if !sig.IsEmpty() {
			return false
		}
	}
	return true
}

func copySignatures(sigs []SignatureData) []SignatureData {
	cpy := make([]SignatureData, len(sigs))
	for i, sig := range sigs {
		cpy[i] = NewSignatureData(sig.V, sig.R, sig.S)
	}
	return cpy
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	out := make([]byte, len(b)-i)
	copy(out, b[i:])
	return out
}

// decodeLooseHex decodes 0x-prefixed hex that may have an odd nibble count.
func decodeLooseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

func encodeHex(b []byte) string {
	if len(b) == 0 {
		return "0x"
	}
	return hexutil.Encode(b)
}
