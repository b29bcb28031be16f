// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ringbuf provides a lock-free, multi-producer multi-consumer
// (MPMC) ring buffer backed by a memory-mapped file, for passing
// variable-length messages of 32-bit words between unrelated OS
// processes.
//
// # Thread-Safety Guarantees
//
// Unlike a classic SPSC ring buffer, any number of goroutines in any
// number of processes may call Enqueue and Dequeue concurrently on
// handles attached to the same file. Producers serialize among
// themselves only at the final publish step of each transaction
// (similarly for consumers); reservation itself is lock-free via
// compare-and-swap.
//
// # Performance Characteristics
//
//   - Lock-free reservation: producers and consumers claim space with
//     a CAS loop, never blocking on a kernel primitive.
//   - Wait-free publish under low contention: the only spin is a short
//     wait for earlier transactions on the same side to publish first.
//   - Zero extra copies on the *Alloc/*Commit path: callers may write
//     payload words directly into the mapped data area.
//
// # Usage Example
//
//	if err := ringbuf.Create("/tmp/q.ring", 1024); err != nil {
//	    log.Fatal(err)
//	}
//	rb, err := ringbuf.Attach("/tmp/q.ring")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rb.Detach()
//
//	rb.Enqueue([]uint32{42})
//
//	buf := make([]uint32, 64)
//	n, err := rb.Dequeue(buf)
//
// # Non-Goals
//
// No durability guarantee across a process crash, no message framing
// beyond the length-word prefix, no blocking or wakeup mechanism
// (callers poll EMPTY / NOT_ENOUGH_SPACE), no messages larger than the
// buffer's capacity, and no endianness negotiation: the file is only
// ever meaningful on hosts sharing the producer's word order.
package ringbuf
