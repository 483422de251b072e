// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides exclusively owned buffers for key material that are wiped
// before their memory is released.
package secret

import (
	"errors"
	"fmt"

	"github.com/awnumar/memguard"
)

// ErrAlloc is returned when memory for a buffer cannot be obtained.
var ErrAlloc = errors.New("failed to allocate memory")

// Buffer holds key material. Destroy must be called exactly once when the buffer is no
// longer needed; it zeroes the contents before the memory is released.
type Buffer interface {
	// Bytes returns the backing memory. The slice is invalid after Destroy.
	Bytes() []byte
	// Size returns the number of usable bytes.
	Size() int
	// Freeze makes the buffer read-only where the implementation supports it.
	Freeze()
	// Destroy wipes and releases the buffer.
	Destroy()
}

// newLockedBuffer panics when it cannot map or lock memory.
var newLockedBuffer = memguard.NewBuffer

// Allocator returns a zero-filled Buffer of exactly size bytes.
type Allocator func(size int) (Buffer, error)

// Guarded allocates size bytes in locked memory surrounded by guard pages. Zero-sized
// requests are served from the heap since there is nothing to protect.
func Guarded(size int) (b Buffer, err error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAlloc, size)
	}
	if size == 0 {
		return Heap(0)
	}

	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: %v", ErrAlloc, r)
		}
	}()
	return &guardedBuffer{lb: newLockedBuffer(size)}, nil
}

type guardedBuffer struct {
	lb *memguard.LockedBuffer
}

func (g *guardedBuffer) Bytes() []byte { return g.lb.Bytes() }
func (g *guardedBuffer) Size() int     { return g.lb.Size() }
func (g *guardedBuffer) Freeze()       { g.lb.Freeze() }
func (g *guardedBuffer) Destroy()      { g.lb.Destroy() }

// Heap allocates size bytes on the Go heap. The memory is neither locked nor guarded,
// but it is still wiped on Destroy.
func Heap(size int) (Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAlloc, size)
	}
	return &heapBuffer{data: make([]byte, size)}, nil
}

type heapBuffer struct {
	data []byte
}

func (h *heapBuffer) Bytes() []byte { return h.data }
func (h *heapBuffer) Size() int     { return len(h.data) }
func (h *heapBuffer) Freeze()       {}

func (h *heapBuffer) Destroy() {
	memguard.WipeBytes(h.data)
	h.data = nil
}

var (
	_ Allocator = Guarded
	_ Allocator = Heap
)
