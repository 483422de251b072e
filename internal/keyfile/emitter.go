// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package keyfile transfers the contents of a key file to a writer without leaving a copy
// of the key behind in memory.
package keyfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/ironcore-dev/passdev/internal/secret"
)

// Emitter reads a key file fully into a secret.Buffer and writes it out verbatim.
type Emitter struct {
	fs    FS
	alloc secret.Allocator
	log   *log.Logger
}

type Option func(*Emitter)

// WithFS sets the filesystem key files are read from. Defaults to OS.
func WithFS(fsys FS) Option {
	return func(e *Emitter) {
		e.fs = fsys
	}
}

// WithAllocator sets the allocator for key buffers. Defaults to secret.Guarded.
func WithAllocator(alloc secret.Allocator) Option {
	return func(e *Emitter) {
		e.alloc = alloc
	}
}

func NewEmitter(logger *log.Logger, opts ...Option) *Emitter {
	e := &Emitter{
		fs:    OS,
		alloc: secret.Guarded,
		log:   logger,
	}
	if e.log == nil {
		e.log = log.New(io.Discard)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit writes the contents of the key file at path to w and returns the number of bytes
// written. Nothing is written to w unless the whole key has been read. The key buffer is
// wiped before Emit returns, on success and on failure.
func (e *Emitter) Emit(path string, w io.Writer) (int, error) {
	e.log.Debug("Probing key file", "path", path)
	info, err := e.fs.Stat(path)
	if err != nil {
		// A non-directory path component means the file cannot exist either.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, fmt.Errorf("%w: %w", ErrStat, err)
	}

	size := info.Size()
	if size < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if int64(int(size)) != size {
		return 0, fmt.Errorf("%w: key file of %d bytes does not fit into memory", ErrAlloc, size)
	}
	e.log.Debug("Probed key file", "size", size)

	buf, err := e.load(path, int(size))
	if err != nil {
		return 0, err
	}
	defer buf.Destroy()

	n, err := writeFull(w, buf.Bytes())
	if err != nil {
		return n, err
	}
	e.log.Debug("Wrote key", "bytes", n)
	return n, nil
}

// load opens path and reads exactly size bytes from it into a new buffer. The returned
// buffer is frozen; on error no buffer is left alive.
func (e *Emitter) load(path string, size int) (secret.Buffer, error) {
	f, err := e.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	buf, err := e.alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAlloc, err)
	}

	if err := readFull(f, buf.Bytes()); err != nil {
		buf.Destroy()
		return nil, err
	}
	buf.Freeze()

	e.log.Debug("Read key file", "bytes", size)
	return buf, nil
}

// readFull fills p from r. A read that makes no progress before p is full is fatal.
func readFull(r io.Reader, p []byte) error {
	read := 0
	for read < len(p) {
		n, err := r.Read(p[read:])
		read += n
		if read == len(p) {
			break
		}
		if err == nil && n <= 0 {
			err = io.ErrNoProgress
		}
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("%w: read %d of %d bytes: %w", ErrShortRead, read, len(p), err)
		}
	}
	return nil
}

// writeFull writes all of p to w. A write that makes no progress is fatal.
func writeFull(w io.Writer, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := w.Write(p[written:])
		if n > 0 {
			written += n
		}
		if err == nil && n <= 0 {
			err = io.ErrShortWrite
		}
		if err != nil {
			return written, fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrShortWrite, written, len(p), err)
		}
	}
	return written, nil
}
