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

package keyring

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
)

// EncryptKeystore encrypts a single keyring into a version 3 key file. The
// address of the keyring is stored as is, so decoupled keyrings survive the
// round trip.
func EncryptKeystore(kr *SingleKeyring, passphrase string, scryptN, scryptP int) ([]byte, error) {
	key := &keystore.Key{Address: kr.address, PrivateKey: kr.key.ECDSA()}
	return keystore.EncryptKey(key, passphrase, scryptN, scryptP)
}

// DecryptKeystore decrypts a version 3 key file into a single keyring. The
// address recorded in the file wins over the one derived from the key.
// DecryptKeystore 将 v3 版本的密钥文件解密为 SingleKeyring，文件中记录的地址优先。
func DecryptKeystore(keyjson []byte, passphrase string) (*SingleKeyring, error) {
	key, err := keystore.DecryptKey(keyjson, passphrase)
	if err != nil {
		return nil, err
	}
	kr := NewSingleKeyring(key.Address, NewPrivateKeyFromECDSA(key.PrivateKey))

	var header struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(keyjson, &header); err != nil {
		return nil, err
	}
	if header.Address != "" {
		if !common.IsHexAddress(header.Address) {
			return nil, fmt.Errorf("invalid address in key file: %q", header.Address)
		}
		kr.address = common.HexToAddress(header.Address)
	}
	return kr, nil
}
