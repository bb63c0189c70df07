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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/log"
	"github.com/hashicorp/go-multierror"
	"github.com/holiman/uint256"
	"github.com/klaytn/caver-go/cmd/utils"
	"github.com/klaytn/caver-go/core/types"
	"github.com/klaytn/caver-go/internal/flags"
	"github.com/klaytn/caver-go/klayclient"
	"github.com/urfave/cli/v2"
)

var (
	errNoInput    = errors.New("need at least one transaction")
	errOneInput   = errors.New("need exactly one transaction")
	errNoEndpoint = errors.New("no node endpoint: use --rpc or set Node.RPC in the config file")
)

var (
	decodeCommand = &cli.Command{
		Action:    decodeTx,
		Name:      "decode",
		Usage:     "Decode raw transactions",
		ArgsUsage: "<raw tx or file>...",
		Flags:     []cli.Flag{utils.DumpFlag},
		Description: `
Decodes every given transaction and prints it as JSON. An argument starting
with 0x is a raw transaction, anything else names a file holding a raw
transaction or its JSON form. All inputs are decoded; failures are reported
together at the end.`,
	}
	hashCommand = &cli.Command{
		Action:    hashTx,
		Name:      "hash",
		Usage:     "Print the hashes of a transaction",
		ArgsUsage: "<raw tx or file>",
		Flags:     []cli.Flag{utils.ChainIDFlag},
	}
	combineCommand = &cli.Command{
		Action:    combineTx,
		Name:      "combine",
		Usage:     "Merge the signatures of raw transactions",
		ArgsUsage: "<raw tx or file>...",
		Description: `
Combines the sender and fee payer signatures of all given raw transactions,
which must describe the same transaction, and prints the merged raw
transaction.`,
	}
	signCommand = &cli.Command{
		Action:    signTx,
		Name:      "sign",
		Usage:     "Sign a transaction as sender or fee payer",
		ArgsUsage: "<raw tx or file>",
		Flags: flags.Merge(utils.SignerFlags, utils.NetworkFlags, []cli.Flag{
			utils.ChainIDFlag,
			utils.FeePayerFlag,
		}),
		Description: `
Signs the transaction and prints the signed raw transaction. Nonce, gas price
and chain id missing from the input are taken from --chainid and, when
--rpc is given, from the node.`,
	}
	fillCommand = &cli.Command{
		Action:    fillTx,
		Name:      "fill",
		Usage:     "Fill nonce, gas price and chain id from a node",
		ArgsUsage: "<raw tx or file>",
		Flags:     flags.Merge(utils.NetworkFlags, []cli.Flag{utils.ChainIDFlag}),
	}
	sendCommand = &cli.Command{
		Action:    sendTx,
		Name:      "send",
		Usage:     "Submit a signed transaction to a node",
		ArgsUsage: "<raw tx or file>",
		Flags:     utils.NetworkFlags,
	}
)

func isHex(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// readInput returns the argument itself when it is hex and the trimmed
// content of the named file otherwise.
func readInput(input string) (string, error) {
	if isHex(input) {
		return input, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readTransaction parses a raw transaction or its JSON form.
func readTransaction(input string) (*types.Transaction, error) {
	text, err := readInput(input)
	if err != nil {
		return nil, err
	}
	if isHex(text) {
		return types.DecodeRawTransaction(text)
	}
	tx := new(types.Transaction)
	if err := json.Unmarshal([]byte(text), tx); err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return tx, nil
}

func singleTransaction(ctx *cli.Context) (*types.Transaction, klaytxConfig, error) {
	if ctx.NArg() != 1 {
		return nil, klaytxConfig{}, errOneInput
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return nil, cfg, err
	}
	tx, err := readTransaction(ctx.Args().First())
	if err != nil {
		return nil, cfg, err
	}
	if tx.ChainID() == nil && cfg.Tx.ChainID != 0 {
		tx.SetChainID(uint256.NewInt(cfg.Tx.ChainID))
	}
	return tx, cfg, nil
}

func needsFill(tx *types.Transaction) bool {
	_, hasNonce := tx.Nonce()
	return !hasNonce || tx.GasPrice() == nil || tx.ChainID() == nil
}

// withClient dials the configured node and runs fn with a request context
// bounded by the configured timeout.
func withClient(ctx *cli.Context, cfg klaytxConfig, fn func(context.Context, *klayclient.Client) error) error {
	if cfg.Node.RPC == "" {
		return errNoEndpoint
	}
	c, cancel := context.WithTimeout(ctx.Context, cfg.Node.Timeout)
	defer cancel()

	client, err := klayclient.DialContext(c, cfg.Node.RPC)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(c, client)
}

func fillFromNode(ctx *cli.Context, cfg klaytxConfig, tx *types.Transaction) error {
	return withClient(ctx, cfg, func(c context.Context, client *klayclient.Client) error {
		return tx.FillTransaction(c, client)
	})
}

func printTransaction(ctx *cli.Context, tx *types.Transaction) error {
	if ctx.Bool(utils.DumpFlag.Name) {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		cfg.Fdump(ctx.App.Writer, tx.Type().String(), tx.Args())
		return nil
	}
	out, err := json.MarshalIndent(tx, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(out))
	return err
}

func decodeTx(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errNoInput
	}
	var result *multierror.Error
	for i, input := range ctx.Args().Slice() {
		tx, err := readTransaction(input)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("input %d: %w", i, err))
			continue
		}
		if err := printTransaction(ctx, tx); err != nil {
			return err
		}
	}
	return result.ErrorOrNil()
}

func hashTx(ctx *cli.Context) error {
	tx, _, err := singleTransaction(ctx)
	if err != nil {
		return err
	}
	hash, err := tx.Hash()
	if err != nil {
		return err
	}
	senderTxHash, err := tx.SenderTxHash()
	if err != nil {
		return err
	}
	sigHash, err := tx.HashForSignature()
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	fmt.Fprintf(w, "hash:            %s\n", hash.Hex())
	fmt.Fprintf(w, "senderTxHash:    %s\n", senderTxHash.Hex())
	fmt.Fprintf(w, "sigHash:         %s\n", sigHash.Hex())
	if tx.IsFeeDelegated() {
		if feePayerHash, err := tx.HashForFeePayerSignature(); err == nil {
			fmt.Fprintf(w, "feePayerSigHash: %s\n", feePayerHash.Hex())
		}
	}
	return nil
}

func combineTx(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errNoInput
	}
	raws := make([]string, ctx.NArg())
	for i, input := range ctx.Args().Slice() {
		raw, err := readInput(input)
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		raws[i] = raw
	}
	tx, err := types.DecodeRawTransaction(raws[0])
	if err != nil {
		return fmt.Errorf("input 0: %w", err)
	}
	out, err := tx.CombineSignedRawTransactions(raws)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, out)
	return err
}

func signTx(ctx *cli.Context) error {
	tx, cfg, err := singleTransaction(ctx)
	if err != nil {
		return err
	}
	kr, err := utils.MakeKeyring(ctx)
	if err != nil {
		return err
	}
	if needsFill(tx) && cfg.Node.RPC != "" {
		if err := fillFromNode(ctx, cfg, tx); err != nil {
			return err
		}
	}
	var opts []types.SignOption
	if cfg.Tx.KeyIndex >= 0 {
		opts = append(opts, types.WithKeyIndex(cfg.Tx.KeyIndex))
	}
	if ctx.Bool(utils.FeePayerFlag.Name) {
		tx, err = types.SignTxAsFeePayer(tx, kr, opts...)
	} else {
		tx, err = types.SignTx(tx, kr, opts...)
	}
	if err != nil {
		return err
	}
	raw, err := tx.RawTransaction()
	if err != nil {
		return err
	}
	log.Info("Signed transaction", "type", tx.Type(), "signer", kr.Address(), "feepayer", ctx.Bool(utils.FeePayerFlag.Name))
	_, err = fmt.Fprintln(ctx.App.Writer, raw)
	return err
}

func fillTx(ctx *cli.Context) error {
	tx, cfg, err := singleTransaction(ctx)
	if err != nil {
		return err
	}
	if needsFill(tx) {
		if err := fillFromNode(ctx, cfg, tx); err != nil {
			return err
		}
	}
	return printTransaction(ctx, tx)
}

func sendTx(ctx *cli.Context) error {
	tx, cfg, err := singleTransaction(ctx)
	if err != nil {
		return err
	}
	return withClient(ctx, cfg, func(c context.Context, client *klayclient.Client) error {
		hash, err := client.SendTransaction(c, tx)
		if err != nil {
			return err
		}
		log.Info("Submitted transaction", "hash", hash, "type", tx.Type())
		_, err = fmt.Fprintln(ctx.App.Writer, hash.Hex())
		return err
	})
}
