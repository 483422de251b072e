// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package keyfile

import (
	"io"
	"io/fs"
	"os"
)

// FS is the part of the filesystem the Emitter needs. Unlike io/fs.FS it accepts
// arbitrary host paths, including absolute ones.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// OS is the host filesystem.
var OS FS = osFS{}

type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}
