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

// Package version implements reading of build version information.
package version

import "fmt"

const ourPath = "github.com/klaytn/caver-go"

const (
	Major = 0        // 主版本
	Minor = 1        // 次版本
	Patch = 0        // 补丁版本
	Meta  = "unstable"
)

// Semantic holds the textual version string for major.minor.patch.
var Semantic = fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

// WithMeta holds the textual version string including the metadata.
var WithMeta = func() string {
	v := Semantic
	if Meta != "" {
		v += "-" + Meta
	}
	return v
}()

// WithCommit appends the short commit hash and, for unstable builds, the
// commit date to WithMeta.
func WithCommit(gitCommit, gitDate string) string {
	vsn := WithMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if Meta != "stable" && gitDate != "" {
		vsn += "-" + gitDate
	}
	return vsn
}

// Info returns the version string of the running binary, taking VCS
// information into account when it is available.
func Info() string {
	if info, ok := VCS(); ok {
		vsn := WithCommit(info.Commit, info.Date)
		if info.Dirty {
			vsn += "-dirty"
		}
		return vsn
	}
	return WithMeta
}
