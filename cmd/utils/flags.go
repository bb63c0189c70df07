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

// Package utils contains internal helper functions for klaytx commands.
package utils

import (
	"time"

	"github.com/klaytn/caver-go/internal/flags"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// Transaction settings
	ChainIDFlag = &flags.BigFlag{
		Name:     "chainid",
		Usage:    "Chain id to sign for, used when the transaction does not carry one (decimal or 0x hex)",
		Category: flags.TransactionCategory,
	}
	FeePayerFlag = &cli.BoolFlag{
		Name:     "feepayer",
		Usage:    "Sign as the fee payer of a fee delegated transaction",
		Category: flags.TransactionCategory,
	}
	DumpFlag = &cli.BoolFlag{
		Name:     "dump",
		Usage:    "Print a structural dump instead of JSON",
		Category: flags.TransactionCategory,
	}

	// Account settings
	PrivateKeyFlag = &cli.StringFlag{
		Name:     "key",
		Usage:    "Private key or Klaytn wallet key to sign with (hex)",
		Category: flags.AccountCategory,
	}
	KeyFileFlag = &flags.PathFlag{
		Name:     "keyfile",
		Usage:    "Keystore file holding the key to sign with",
		Category: flags.AccountCategory,
	}
	PasswordFileFlag = &flags.PathFlag{
		Name:     "password",
		Usage:    "File holding the keystore password",
		Category: flags.AccountCategory,
	}
	KeyIndexFlag = &cli.IntFlag{
		Name:     "index",
		Usage:    "Sign with the key at this index of the role group only (-1 signs with every key)",
		Value:    -1,
		Category: flags.AccountCategory,
	}

	// Networking settings
	RPCFlag = &cli.StringFlag{
		Name:     "rpc",
		Usage:    "Klaytn node endpoint used to fill and send transactions (http, ws or ipc)",
		Category: flags.NetworkingCategory,
	}
	RPCTimeoutFlag = &cli.DurationFlag{
		Name:     "rpc.timeout",
		Usage:    "Timeout of a single RPC request",
		Value:    30 * time.Second,
		Category: flags.NetworkingCategory,
	}
)

// SignerFlags are the flags selecting the signing key.
var SignerFlags = []cli.Flag{
	PrivateKeyFlag,
	KeyFileFlag,
	PasswordFileFlag,
	KeyIndexFlag,
}

// NetworkFlags are the flags of commands talking to a node.
var NetworkFlags = []cli.Flag{
	RPCFlag,
	RPCTimeoutFlag,
}
