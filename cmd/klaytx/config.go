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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/klaytn/caver-go/cmd/utils"
	"github.com/klaytn/caver-go/internal/flags"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &flags.PathFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       flags.Merge(utils.NetworkFlags, []cli.Flag{utils.ChainIDFlag, utils.KeyIndexFlag}),
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// nodeConfig describes the node transactions are filled from and sent to.
type nodeConfig struct {
	RPC     string        `toml:",omitempty"`
	Timeout time.Duration // per request
}

// txConfig holds the defaults applied to transactions before signing.
// txConfig 保存签名前应用于交易的默认值。
type txConfig struct {
	ChainID  uint64 `toml:",omitempty"` // 0: not configured
	KeyIndex int
}

type klaytxConfig struct {
	Node nodeConfig
	Tx   txConfig
}

var defaultConfig = klaytxConfig{
	Node: nodeConfig{Timeout: 30 * time.Second},
	Tx:   txConfig{KeyIndex: -1},
}

func loadConfig(file string, cfg *klaytxConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig loads the klaytxConfig based on the given command line
// parameters and config file.
func loadBaseConfig(ctx *cli.Context) (klaytxConfig, error) {
	// Load defaults
	cfg := defaultConfig

	// Load config file.
	if file := flags.Path(ctx, configFileFlag.Name); file != "" && ctx.IsSet(configFileFlag.Name) {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}

	// Apply flags.
	if ctx.IsSet(utils.RPCFlag.Name) {
		cfg.Node.RPC = ctx.String(utils.RPCFlag.Name)
	}
	if ctx.IsSet(utils.RPCTimeoutFlag.Name) {
		cfg.Node.Timeout = ctx.Duration(utils.RPCTimeoutFlag.Name)
	}
	chainID, err := utils.ChainID(ctx)
	if err != nil {
		return cfg, err
	}
	if chainID != 0 {
		cfg.Tx.ChainID = chainID
	}
	if ctx.IsSet(utils.KeyIndexFlag.Name) {
		cfg.Tx.KeyIndex = ctx.Int(utils.KeyIndexFlag.Name)
	}
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
