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

package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/klaytn/caver-go/accounts/keyring"
	"github.com/klaytn/caver-go/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	errNoSigner       = errors.New("no signing key: use --key or --keyfile")
	errNoPasswordFile = errors.New("--keyfile requires --password")
)

// ReadPassword returns the first line of the given file.
// ReadPassword 返回密码文件的第一行。
func ReadPassword(path string) (string, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read password file: %v", err)
	}
	lines := strings.Split(string(text), "\n")
	return strings.TrimRight(lines[0], "\r"), nil
}

// MakeKeyring returns the keyring selected by --key or by --keyfile and
// --password.
func MakeKeyring(ctx *cli.Context) (*keyring.SingleKeyring, error) {
	if err := flags.CheckExclusive(ctx, PrivateKeyFlag, KeyFileFlag); err != nil {
		return nil, err
	}
	if key := ctx.String(PrivateKeyFlag.Name); key != "" {
		return keyring.FromPrivateKey(key)
	}
	file := flags.Path(ctx, KeyFileFlag.Name)
	if file == "" || !ctx.IsSet(KeyFileFlag.Name) {
		return nil, errNoSigner
	}
	if !ctx.IsSet(PasswordFileFlag.Name) {
		return nil, errNoPasswordFile
	}
	pass, err := ReadPassword(flags.Path(ctx, PasswordFileFlag.Name))
	if err != nil {
		return nil, err
	}
	keyjson, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyfile: %v", err)
	}
	return keyring.DecryptKeystore(keyjson, pass)
}

// ChainID returns the value of --chainid as a uint64, or zero when the flag
// is not given.
func ChainID(ctx *cli.Context) (uint64, error) {
	id := flags.GlobalBig(ctx, ChainIDFlag.Name)
	if id == nil {
		return 0, nil
	}
	if id.Sign() <= 0 || !id.IsUint64() {
		return 0, fmt.Errorf("invalid --%s: %v", ChainIDFlag.Name, id)
	}
	return id.Uint64(), nil
}
