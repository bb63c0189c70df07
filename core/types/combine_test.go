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
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cancelFrom     = "0xdcad313f2bf2240dbdb243eaf5eee2f512e0bfd1"
	cancelFeePayer = "0x6f89ec285c52a3e092cdb017e125a9b197e78dc7"

	// sender signature 0 only, fee payer unset
	cancelSignedRaw = "0x39f883018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1f847f845820fe9a04d9bf7a8bd15a41143eeecd3c39691cdc151b50d641534f0c73055849f7abca1a07123185b4cc046eb6a78e1ee370c059dfe437012098ebe18379685acd907606f940000000000000000000000000000000000000000c4c3018080"
	// sender signatures 1 and 2, fee payer encoded as the empty string
	cancelSenderRaw1 = "0x39f86f018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1f847f845820fe9a0205d4f6f758629da5eb25d1d572e82430243e00096ed64097b6d0031847bf792a0280ce8a79438c699fce0417403e8892e46e10da764b16876091ef0965c1ce1df80c4c3018080"
	cancelSenderRaw2 = "0x39f86f018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1f847f845820feaa02f3c7b7aebd6c9af7a5b4259f0ea77d96362efbdca397b9f17e3c6924296c53fa00e4197ba6e38cecf99715f523c1805a58559072f944443bad1152dee73bfb16780c4c3018080"
	// all three sender signatures
	cancelSenderCombined           = "0x39f90111018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1f8d5f845820fe9a04d9bf7a8bd15a41143eeecd3c39691cdc151b50d641534f0c73055849f7abca1a07123185b4cc046eb6a78e1ee370c059dfe437012098ebe18379685acd907606ff845820fe9a0205d4f6f758629da5eb25d1d572e82430243e00096ed64097b6d0031847bf792a0280ce8a79438c699fce0417403e8892e46e10da764b16876091ef0965c1ce1dff845820feaa02f3c7b7aebd6c9af7a5b4259f0ea77d96362efbdca397b9f17e3c6924296c53fa00e4197ba6e38cecf99715f523c1805a58559072f944443bad1152dee73bfb167940000000000000000000000000000000000000000c4c3018080"
	cancelSenderCombinedEmptyPayer = "0x39f8fd018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1f8d5f845820fe9a04d9bf7a8bd15a41143eeecd3c39691cdc151b50d641534f0c73055849f7abca1a07123185b4cc046eb6a78e1ee370c059dfe437012098ebe18379685acd907606ff845820fe9a0205d4f6f758629da5eb25d1d572e82430243e00096ed64097b6d0031847bf792a0280ce8a79438c699fce0417403e8892e46e10da764b16876091ef0965c1ce1dff845820feaa02f3c7b7aebd6c9af7a5b4259f0ea77d96362efbdca397b9f17e3c6924296c53fa00e4197ba6e38cecf99715f523c1805a58559072f944443bad1152dee73bfb16780c4c3018080"

	// fee payer signatures 0, 1 and 2
	cancelFeePayerRaw0     = "0x39f883018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1c4c3018080946f89ec285c52a3e092cdb017e125a9b197e78dc7f847f845820fe9a0a4ca740e08115db092a79ce902bdac45347a3d34a74ea0fcc371ccf01269ca43a029e095bf3f9e0be7e2130fe6985419114958877412b46b5b4243cc39380c5028"
	cancelFeePayerRaw1     = "0x39f883018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1c4c3018080946f89ec285c52a3e092cdb017e125a9b197e78dc7f847f845820feaa09c86edd1b5d75ac1050a5a7494dece5f186b8e9654f75cf4942f7dca57fc2de0a032f306028776389107c40f1765679b2630f093b1c4f4fda9415f0c909c7addef"
	cancelFeePayerRaw2     = "0x39f883018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1c4c3018080946f89ec285c52a3e092cdb017e125a9b197e78dc7f847f845820fe9a0392e7a5d2efbc7da9d114ce79797eebbe2007ece065109f7f93baed1e23bb22ca022e161a9f20c14b5830154e819cdaf59e8d82690b318afb19e2903b52020bb3e"
	cancelFeePayerCombined = "0x39f90111018505d21dba00830dbba094dcad313f2bf2240dbdb243eaf5eee2f512e0bfd1c4c3018080946f89ec285c52a3e092cdb017e125a9b197e78dc7f8d5f845820fe9a0a4ca740e08115db092a79ce902bdac45347a3d34a74ea0fcc371ccf01269ca43a029e095bf3f9e0be7e2130fe6985419114958877412b46b5b4243cc39380c5028f845820feaa09c86edd1b5d75ac1050a5a7494dece5f186b8e9654f75cf4942f7dca57fc2de0a032f306028776389107c40f1765679b2630f093b1c4f4fda9415f0c909c7addeff845820fe9a0392e7a5d2efbc7da9d114ce79797eebbe2007ece065109f7f93baed1e23bb22ca022e161a9f20c14b5830154e819cdaf59e8d82690b318afb19e2903b52020bb3e"
)

func cancelSenderSigs(t *testing.T) []SignatureData {
	return []SignatureData{
		mustSig(t, "0x0fe9", "0x4d9bf7a8bd15a41143eeecd3c39691cdc151b50d641534f0c73055849f7abca1", "0x7123185b4cc046eb6a78e1ee370c059dfe437012098ebe18379685acd907606f"),
		mustSig(t, "0x0fe9", "0x205d4f6f758629da5eb25d1d572e82430243e00096ed64097b6d0031847bf792", "0x280ce8a79438c699fce0417403e8892e46e10da764b16876091ef0965c1ce1df"),
		mustSig(t, "0x0fea", "0x2f3c7b7aebd6c9af7a5b4259f0ea77d96362efbdca397b9f17e3c6924296c53f", "0x0e4197ba6e38cecf99715f523c1805a58559072f944443bad1152dee73bfb167"),
	}
}

func cancelFeePayerSigs(t *testing.T) []SignatureData {
	return []SignatureData{
		mustSig(t, "0x0fe9", "0xa4ca740e08115db092a79ce902bdac45347a3d34a74ea0fcc371ccf01269ca43", "0x29e095bf3f9e0be7e2130fe6985419114958877412b46b5b4243cc39380c5028"),
		mustSig(t, "0x0fea", "0x9c86edd1b5d75ac1050a5a7494dece5f186b8e9654f75cf4942f7dca57fc2de0", "0x32f306028776389107c40f1765679b2630f093b1c4f4fda9415f0c909c7addef"),
		mustSig(t, "0x0fe9", "0x392e7a5d2efbc7da9d114ce79797eebbe2007ece065109f7f93baed1e23bb22c", "0x22e161a9f20c14b5830154e819cdaf59e8d82690b318afb19e2903b52020bb3e"),
	}
}

func cancelArgs() TxArgs {
	return TxArgs{
		From:     cancelFrom,
		Nonce:    Uint64(1),
		Gas:      Uint64(0xdbba0),
		GasPrice: U256(0x5d21dba00),
		ChainID:  U256(0x7e3),
	}
}

func newFeeDelegatedCancel(t *testing.T, args TxArgs) *Transaction {
	t.Helper()
	tx, err := NewTransaction(TxTypeFeeDelegatedCancel, args)
	require.NoError(t, err)
	return tx
}

func TestCombineSingle(t *testing.T) {
	tx := newFeeDelegatedCancel(t, cancelArgs())
	combined, err := tx.CombineSignedRawTransactions([]string{cancelSignedRaw})
	require.NoError(t, err)
	assert.Equal(t, cancelSignedRaw, combined)
	assert.Equal(t, cancelSenderSigs(t)[:1], tx.Signatures())
}

func TestCombineSenderSignatures(t *testing.T) {
	args := cancelArgs()
	args.Signatures = cancelSenderSigs(t)[:1]
	tx := newFeeDelegatedCancel(t, args)

	combined, err := tx.CombineSignedRawTransactions([]string{cancelSenderRaw1, cancelSenderRaw2})
	require.NoError(t, err)
	assert.Equal(t, cancelSenderCombined, combined)
	assert.Equal(t, cancelSenderSigs(t), tx.Signatures())

	// Combining again adds nothing.
	again, err := tx.CombineSignedRawTransactions([]string{cancelSenderRaw1, cancelSignedRaw})
	require.NoError(t, err)
	assert.Equal(t, cancelSenderCombined, again)
}

func TestCombineOrderIndependence(t *testing.T) {
	forward := newFeeDelegatedCancel(t, cancelArgs())
	_, err := forward.CombineSignedRawTransactions([]string{cancelSenderRaw1, cancelSenderRaw2})
	require.NoError(t, err)

	backward := newFeeDelegatedCancel(t, cancelArgs())
	_, err = backward.CombineSignedRawTransactions([]string{cancelSenderRaw2, cancelSenderRaw1})
	require.NoError(t, err)

	sigs := cancelSenderSigs(t)
	assert.Equal(t, []SignatureData{sigs[1], sigs[2]}, forward.Signatures())
	assert.Equal(t, []SignatureData{sigs[2], sigs[1]}, backward.Signatures())
	assert.ElementsMatch(t, forward.Signatures(), backward.Signatures())
}

func TestCombineFeePayerSignature(t *testing.T) {
	tx := newFeeDelegatedCancel(t, cancelArgs())
	combined, err := tx.CombineSignedRawTransactions([]string{cancelFeePayerRaw0})
	require.NoError(t, err)
	assert.Equal(t, cancelFeePayerRaw0, combined)
	assert.Equal(t, common.HexToAddress(cancelFeePayer), tx.FeePayer())
	assert.Equal(t, cancelFeePayerSigs(t)[:1], tx.FeePayerSignatures())
}

func TestCombineFeePayerSignatures(t *testing.T) {
	args := cancelArgs()
	args.FeePayer = cancelFeePayer
	args.FeePayerSignatures = cancelFeePayerSigs(t)[:1]
	tx := newFeeDelegatedCancel(t, args)

	combined, err := tx.CombineSignedRawTransactions([]string{cancelFeePayerRaw1, cancelFeePayerRaw2})
	require.NoError(t, err)
	assert.Equal(t, cancelFeePayerCombined, combined)
	assert.Equal(t, cancelFeePayerSigs(t), tx.FeePayerSignatures())
}

func TestCombineSenderThenFeePayer(t *testing.T) {
	tx := newFeeDelegatedCancel(t, cancelArgs())

	_, err := tx.CombineSignedRawTransactions([]string{cancelSenderCombinedEmptyPayer})
	require.NoError(t, err)
	assert.Equal(t, cancelSenderSigs(t), tx.Signatures())
	assert.Equal(t, common.Address{}, tx.FeePayer())

	// The fee payer is still open, so it is taken from the next input.
	_, err = tx.CombineSignedRawTransactions([]string{cancelFeePayerCombined})
	require.NoError(t, err)
	assert.Equal(t, cancelSenderSigs(t), tx.Signatures())
	assert.Equal(t, cancelFeePayerSigs(t), tx.FeePayerSignatures())
	assert.Equal(t, common.HexToAddress(cancelFeePayer), tx.FeePayer())
}

func TestCombineFillsDeferredFields(t *testing.T) {
	args := cancelArgs()
	args.Nonce = nil
	args.GasPrice = nil
	args.ChainID = nil
	tx := newFeeDelegatedCancel(t, args)

	combined, err := tx.CombineSignedRawTransactions([]string{cancelSignedRaw})
	require.NoError(t, err)
	assert.Equal(t, cancelSignedRaw, combined)

	nonce, ok := tx.Nonce()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), nonce)
	assert.Equal(t, uint256.NewInt(0x5d21dba00), tx.GasPrice())
	assert.Equal(t, uint256.NewInt(0x7e3), tx.ChainID())
}

func TestCombineErrors(t *testing.T) {
	t.Run("different field", func(t *testing.T) {
		args := cancelArgs()
		args.Gas = Uint64(0x1000)
		args.FeePayer = cancelFeePayer
		tx := newFeeDelegatedCancel(t, args)
		before := mustRaw(t, tx)

		_, err := tx.CombineSignedRawTransactions([]string{cancelSenderRaw1})
		assert.ErrorIs(t, err, ErrCombineMismatch)
		assert.ErrorContains(t, err, "Transactions containing different information cannot be combined.")
		assert.Equal(t, before, mustRaw(t, tx))
		assert.True(t, isEmptySignatures(tx.Signatures()))
	})
	t.Run("different fee payer", func(t *testing.T) {
		args := cancelArgs()
		args.FeePayer = fixtureFeePayer
		tx := newFeeDelegatedCancel(t, args)

		_, err := tx.CombineSignedRawTransactions([]string{cancelFeePayerRaw0})
		assert.ErrorIs(t, err, ErrCombineMismatch)
	})
	t.Run("different type", func(t *testing.T) {
		tx, err := NewTransaction(TxTypeFeeDelegatedCancelWithRatio, TxArgs{
			From:     cancelFrom,
			Nonce:    Uint64(1),
			Gas:      Uint64(0xdbba0),
			GasPrice: U256(0x5d21dba00),
			ChainID:  U256(0x7e3),
			FeeRatio: Uint64(30),
		})
		require.NoError(t, err)
		_, err = tx.CombineSignedRawTransactions([]string{cancelSignedRaw})
		assert.ErrorIs(t, err, ErrCombineMismatch)
	})
	t.Run("later input fails", func(t *testing.T) {
		tx := newFeeDelegatedCancel(t, cancelArgs())
		_, err := tx.CombineSignedRawTransactions([]string{cancelSenderRaw1, "0x39"})
		assert.ErrorContains(t, err, "raw transaction 1")
		assert.True(t, isEmptySignatures(tx.Signatures()))
	})
	t.Run("first bad input is reported", func(t *testing.T) {
		tx := newFeeDelegatedCancel(t, cancelArgs())
		for i := 0; i < 10; i++ {
			_, err := tx.CombineSignedRawTransactions([]string{cancelSenderRaw1, "0x39", "0x12", "0x"})
			assert.ErrorContains(t, err, "raw transaction 1:")
		}
	})
	t.Run("no input", func(t *testing.T) {
		tx := newFeeDelegatedCancel(t, cancelArgs())
		_, err := tx.CombineSignedRawTransactions(nil)
		assert.ErrorIs(t, err, ErrMissingRawInputs)
	})
}

func TestCombineLegacy(t *testing.T) {
	args := fixtureArgs()
	args.From = ""
	args.To = String(fixtureTo)
	args.Value = U256(0xa)
	args.Input = Bytes([]byte("1234"))
	unsigned, err := NewTransaction(TxTypeLegacyTransaction, args)
	require.NoError(t, err)

	signed, err := SignTx(unsigned, newTestKeyring(t, "", senderKeyHex))
	require.NoError(t, err)
	raw := mustRaw(t, signed)

	tx := unsigned.Copy()
	combined, err := tx.CombineSignedRawTransactions([]string{raw})
	require.NoError(t, err)
	assert.Equal(t, raw, combined)

	// The same signature combines again; another one is refused.
	_, err = tx.CombineSignedRawTransactions([]string{raw})
	require.NoError(t, err)

	other, err := SignTx(unsigned, newTestKeyring(t, "", feePayerKeyHex))
	require.NoError(t, err)
	_, err = tx.CombineSignedRawTransactions([]string{mustRaw(t, other)})
	assert.ErrorIs(t, err, ErrLegacySignatureDefined)
	assert.Equal(t, raw, mustRaw(t, tx))
}
