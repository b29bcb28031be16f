// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ringbuf

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"
)

// RingBuffer is a handle to one process's attachment of a shared,
// file-backed MPMC ring buffer. The capacity is fixed at creation
// time; the four counters are shared, mutable state read and written
// by every attached process through the mapped bytes.
//
// A RingBuffer must be Detach'd when no longer needed; it owns the
// mapping for the lifetime between Attach and Detach.
type RingBuffer struct {
	file       *os.File
	mapped     []byte
	mappedSize int
	nbWords    uint32
	data       []uint32
}

// Create creates a new ring buffer file at path with the given data
// area capacity in words, replacing any existing file at that path.
// The fresh file has all four counters zero.
func Create(path string, nbWords uint32) error {
	if nbWords < 2 {
		return fmt.Errorf("%w: nb_words must be at least 2, got %d", ErrCreateFailed, nbWords)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: cannot create %q: %v", ErrCreateFailed, path, err)
	}
	defer f.Close()

	size := int64(headerSize) + int64(nbWords)*4
	if err := f.Truncate(size); err != nil {
		return fmt.Errorf("%w: cannot size %q: %v", ErrCreateFailed, path, err)
	}

	hdr := make([]byte, headerSize)
	binary.NativeEndian.PutUint32(hdr[offsetNBWords:], nbWords)
	if _, err := f.WriteAt(hdr, 0); err != nil {
		return fmt.Errorf("%w: cannot write header of %q: %v", ErrCreateFailed, path, err)
	}

	return nil
}

// Attach maps an existing ring buffer file read-write and shared, and
// validates its header. Multiple processes may Attach the same file
// concurrently; that is the entire point.
func Attach(path string) (*RingBuffer, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %q: %v", ErrAttachFailed, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: cannot stat %q: %v", ErrAttachFailed, path, err)
	}
	size := info.Size()
	if size <= int64(headerSize) {
		f.Close()
		return nil, fmt.Errorf("%w: %q is too small to hold a header", ErrAttachFailed, path)
	}

	mapped, err := mmapFile(f, size)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: cannot map %q: %v", ErrAttachFailed, path, err)
	}

	rb := &RingBuffer{
		file:       f,
		mapped:     mapped,
		mappedSize: int(size),
	}
	rb.nbWords = binary.NativeEndian.Uint32(mapped[offsetNBWords:])

	if want := int64(headerSize) + int64(rb.nbWords)*4; size != want {
		munmapFile(mapped)
		f.Close()
		return nil, fmt.Errorf("%w: %q is %d bytes, expected %d for nb_words=%d",
			ErrCorruptHeader, path, size, want, rb.nbWords)
	}

	for name, ptr := range map[string]*uint32{
		"prod_head": rb.counterPtr(offsetProdHead),
		"prod_tail": rb.counterPtr(offsetProdTail),
		"cons_head": rb.counterPtr(offsetConsHead),
		"cons_tail": rb.counterPtr(offsetConsTail),
	} {
		if v := atomic.LoadUint32(ptr); v >= rb.nbWords {
			munmapFile(mapped)
			f.Close()
			return nil, fmt.Errorf("%w: %q has %s=%d, should be < nb_words=%d",
				ErrCorruptHeader, path, name, v, rb.nbWords)
		}
	}

	rb.data = unsafe.Slice((*uint32)(unsafe.Pointer(&mapped[headerSize])), rb.nbWords)

	return rb, nil
}

// Detach releases this process's mapping of the ring buffer file. The
// file itself is not deleted and may still be attached by other
// processes.
func (rb *RingBuffer) Detach() error {
	if err := munmapFile(rb.mapped); err != nil {
		return fmt.Errorf("ringbuf: detach: %w", err)
	}
	if err := rb.file.Close(); err != nil {
		return fmt.Errorf("ringbuf: detach: %w", err)
	}
	return nil
}

// Capacity returns nb_words, the fixed capacity of the data area in
// 32-bit words. It is set at creation time and never changes.
func (rb *RingBuffer) Capacity() uint32 {
	return rb.nbWords
}

// Data exposes the mapped data area for zero-copy use alongside
// EnqueueAlloc/DequeueAlloc. Indices into it are always taken modulo
// Capacity().
func (rb *RingBuffer) Data() []uint32 {
	return rb.data
}

func (rb *RingBuffer) counterPtr(offset int) *uint32 {
	return (*uint32)(unsafe.Pointer(&rb.mapped[offset]))
}

func (rb *RingBuffer) prodHeadPtr() *uint32 { return rb.counterPtr(offsetProdHead) }
func (rb *RingBuffer) prodTailPtr() *uint32 { return rb.counterPtr(offsetProdTail) }
func (rb *RingBuffer) consHeadPtr() *uint32 { return rb.counterPtr(offsetConsHead) }
func (rb *RingBuffer) consTailPtr() *uint32 { return rb.counterPtr(offsetConsTail) }

// modDist computes the forward ring-distance from b to a, i.e.
// (a - b) mod n, given the invariant that a and b are both already in
// [0, n).
func modDist(a, b, n uint32) uint32 {
	if a >= b {
		return a - b
	}
	return n - b + a
}

// NBEntries returns the number of words currently readable by a
// consumer: (prod_tail - cons_head) mod nb_words.
func (rb *RingBuffer) NBEntries() uint32 {
	pt := atomic.LoadUint32(rb.prodTailPtr())
	ch := atomic.LoadUint32(rb.consHeadPtr())
	return modDist(pt, ch, rb.nbWords)
}

// NBFree returns the number of words a producer may still reserve:
// (cons_tail - prod_head - 1) mod nb_words. One word is always left
// unused so full and empty remain distinguishable.
func (rb *RingBuffer) NBFree() uint32 {
	ct := atomic.LoadUint32(rb.consTailPtr())
	ph := atomic.LoadUint32(rb.prodHeadPtr())
	return freeFromDist(modDist(ct, ph, rb.nbWords), rb.nbWords)
}

func freeFromDist(dist, n uint32) uint32 {
	if dist == 0 {
		return n - 1
	}
	return dist - 1
}
