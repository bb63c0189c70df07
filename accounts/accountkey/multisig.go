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

package accountkey

import (
	"fmt"

	"github.com/klaytn/caver-go/codec"
	"github.com/klaytn/caver-go/params"
)

// 加权多签背景：
// 每个公钥带有一个权重。只有当有效签名对应的权重之和达到阈值（threshold）时，交易才被视为已授权。

// WeightedMultiSigOptions holds the threshold and per-key weights of a
// weighted multisig key.
type WeightedMultiSigOptions struct {
	Threshold uint64
	Weights   []uint64
}

// NewWeightedMultiSigOptions validates and returns an option set.
func NewWeightedMultiSigOptions(threshold uint64, weights []uint64) (*WeightedMultiSigOptions, error) {
	opts := &WeightedMultiSigOptions{Threshold: threshold, Weights: weights}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// DefaultWeightedMultiSigOptions gives every key weight one and sets the
// threshold to one.
// DefaultWeightedMultiSigOptions 为每个密钥赋予权重 1，并将阈值设为 1。
func DefaultWeightedMultiSigOptions(keyCount int) *WeightedMultiSigOptions {
	weights := make([]uint64, keyCount)
	for i := range weights {
		weights[i] = 1
	}
	return &WeightedMultiSigOptions{Threshold: 1, Weights: weights}
}

// Validate checks that the threshold is positive, that there are at most ten
// weights and that the weights can reach the threshold.
func (o *WeightedMultiSigOptions) Validate() error {
	if o.Threshold == 0 || len(o.Weights) > params.MaxWeightedPublicKeys {
		return ErrInvalidOptions
	}
	var sum uint64
	for _, w := range o.Weights {
		if sum+w < sum {
			return ErrInvalidOptions
		}
		sum += w
	}
	if sum < o.Threshold {
		return ErrInvalidOptions
	}
	return nil
}

// IsEmpty reports whether no option was given.
func (o *WeightedMultiSigOptions) IsEmpty() bool {
	return o == nil || (o.Threshold == 0 && len(o.Weights) == 0)
}

// WeightedPublicKey is one member of a weighted multisig key.
type WeightedPublicKey struct {
	Weight    uint64
	PublicKey *Public
}

// WeightedMultiSig is a set of weighted public keys with a threshold.
// WeightedMultiSig 是带阈值的一组加权公钥。
type WeightedMultiSig struct {
	Threshold uint64
	Keys      []WeightedPublicKey
}

// NewWeightedMultiSig builds a multisig key from public keys in any of the
// formats accepted by NewPublic.
func NewWeightedMultiSig(pubs [][]byte, opts *WeightedMultiSigOptions) (*WeightedMultiSig, error) {
	if len(pubs) > params.MaxWeightedPublicKeys {
		return nil, ErrTooManyPublicKeys
	}
	if opts == nil {
		opts = DefaultWeightedMultiSigOptions(len(pubs))
	}
	if len(pubs) != len(opts.Weights) {
		return nil, ErrWeightCountMismatch
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	key := &WeightedMultiSig{Threshold: opts.Threshold}
	for i, pub := range pubs {
		pk, err := NewPublic(pub)
		if err != nil {
			return nil, err
		}
		key.Keys = append(key.Keys, WeightedPublicKey{Weight: opts.Weights[i], PublicKey: pk})
	}
	if len(key.Keys) == 0 {
		return nil, ErrEmptyMultiSig
	}
	return key, nil
}

func (k *WeightedMultiSig) Type() KeyType { return KeyTypeWeightedMultiSig }

// RLPEncoding returns 0x04 ‖ rlp([threshold, [[weight, compressedKey], ...]]).
func (k *WeightedMultiSig) RLPEncoding() []byte {
	return encodeTyped(KeyTypeWeightedMultiSig, k.payload())
}

func (k *WeightedMultiSig) payload() codec.Value {
	keys := make([]codec.Value, len(k.Keys))
	for i, wk := range k.Keys {
		keys[i] = codec.List(codec.Uint64(wk.Weight), codec.String(wk.PublicKey.compressed))
	}
	return codec.List(codec.Uint64(k.Threshold), codec.List(keys...))
}

// Options returns the threshold and weights of the key.
func (k *WeightedMultiSig) Options() *WeightedMultiSigOptions {
	opts := &WeightedMultiSigOptions{Threshold: k.Threshold}
	for _, wk := range k.Keys {
		opts.Weights = append(opts.Weights, wk.Weight)
	}
	return opts
}

func decodeWeightedMultiSig(payload []byte) (AccountKey, error) {
	items, err := codec.DecodeList(payload)
	if err != nil || len(items) != 2 || !items[1].IsList() {
		return nil, ErrInvalidKeyEncoding
	}
	threshold, err := items[0].AsUint64()
	if err != nil {
		return nil, fmt.Errorf("%w: threshold: %v", ErrInvalidKeyEncoding, err)
	}
	var (
		pubs    [][]byte
		weights []uint64
	)
	for _, item := range items[1].Items() {
		pair := item.Items()
		if !item.IsList() || len(pair) != 2 || pair[1].IsList() {
			return nil, ErrInvalidKeyEncoding
		}
		weight, err := pair[0].AsUint64()
		if err != nil {
			return nil, fmt.Errorf("%w: weight: %v", ErrInvalidKeyEncoding, err)
		}
		weights = append(weights, weight)
		pubs = append(pubs, pair[1].Bytes())
	}
	return NewWeightedMultiSig(pubs, &WeightedMultiSigOptions{Threshold: threshold, Weights: weights})
}
