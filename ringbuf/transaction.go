// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ringbuf

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Side identifies which end of the ring buffer a Transaction belongs
// to.
type Side int

const (
	SideProducer Side = iota
	SideConsumer
)

func (s Side) String() string {
	if s == SideProducer {
		return "producer"
	}
	return "consumer"
}

// spinWaitTurn is how many tight-loop iterations to try before
// yielding the processor while waiting for an earlier transaction on
// the same side to publish first. Contention here is expected to be
// brief: the lagging side is mid-commit, not blocked indefinitely.
const spinWaitTurn = 64

// Transaction is the caller-held handle between reserving space
// (EnqueueAlloc/DequeueAlloc) and publishing it (EnqueueCommit/
// DequeueCommit). It must be committed exactly once: committing twice
// is a programming error and panics, and a Transaction that is never
// committed permanently stalls every later transaction on the same
// side (there is no abort).
type Transaction struct {
	rb   *RingBuffer
	side Side

	reserveStart uint32 // head snapshot this transaction must wait its turn behind
	newHead      uint32 // value this transaction will advance *_tail to
	payloadStart uint32 // index into Data() where the payload begins
	length       uint32 // payload length in words
	wrapped      bool

	committed bool
}

// StartIndex returns the index into Data() where this transaction's
// payload begins (or, for a dequeue, was read from).
func (tx *Transaction) StartIndex() uint32 { return tx.payloadStart }

// Length returns the payload length in words.
func (tx *Transaction) Length() uint32 { return tx.length }

// Wrapped reports whether this transaction's reservation straddled
// the end of the data area (a sentinel was written or consumed).
func (tx *Transaction) Wrapped() bool { return tx.wrapped }

// EnqueueAlloc reserves space for a message of nbWords payload words
// without writing or publishing it. The caller must fill
// rb.Data()[tx.StartIndex() : tx.StartIndex()+nbWords] and then call
// EnqueueCommit.
func (rb *RingBuffer) EnqueueAlloc(nbWords uint32) (*Transaction, error) {
	if nbWords < 1 || nbWords > rb.nbWords-2 {
		return nil, fmt.Errorf("%w: payload length %d out of range [1, %d]",
			ErrNotEnoughSpace, nbWords, rb.nbWords-2)
	}
	need := nbWords + 1

	for {
		ph := atomic.LoadUint32(rb.prodHeadPtr())
		ct := atomic.LoadUint32(rb.consTailPtr())

		free := freeFromDist(modDist(ct, ph, rb.nbWords), rb.nbWords)
		if free < need {
			return nil, ErrNotEnoughSpace
		}

		var newHead, start uint32
		var wrapped bool
		if ph+need <= rb.nbWords {
			newHead = (ph + need) % rb.nbWords
			start = ph
			wrapped = false
		} else if free-(rb.nbWords-ph) >= need {
			newHead = need
			start = 0
			wrapped = true
		} else {
			return nil, ErrNotEnoughSpace
		}

		if !atomic.CompareAndSwapUint32(rb.prodHeadPtr(), ph, newHead) {
			continue
		}

		if wrapped {
			rb.data[ph] = SentinelLength
		}
		rb.data[start] = nbWords

		return &Transaction{
			rb:           rb,
			side:         SideProducer,
			reserveStart: ph,
			newHead:      newHead,
			payloadStart: (start + 1) % rb.nbWords,
			length:       nbWords,
			wrapped:      wrapped,
		}, nil
	}
}

// EnqueueCommit publishes a producer transaction's payload, advancing
// prod_tail. It waits for any earlier concurrent reservation to
// publish first, so prod_tail always advances in reservation order.
func (rb *RingBuffer) EnqueueCommit(tx *Transaction) {
	rb.commit(tx, SideProducer, rb.prodTailPtr())
}

// Enqueue performs a full producer transaction: it reserves space for
// data, copies it into the mapped data area, and publishes it.
func (rb *RingBuffer) Enqueue(data []uint32) error {
	tx, err := rb.EnqueueAlloc(uint32(len(data)))
	if err != nil {
		return err
	}
	copy(rb.data[tx.payloadStart:int(tx.payloadStart)+len(data)], data)
	rb.EnqueueCommit(tx)
	return nil
}

// DequeueAlloc reserves the oldest unread message without copying it
// out. The caller must read rb.Data()[tx.StartIndex() : tx.StartIndex()+tx.Length()]
// and then call DequeueCommit.
func (rb *RingBuffer) DequeueAlloc() (*Transaction, error) {
	for {
		ch := atomic.LoadUint32(rb.consHeadPtr())
		pt := atomic.LoadUint32(rb.prodTailPtr())
		if ch == pt {
			return nil, ErrEmpty
		}

		readIndex := ch
		length := rb.data[readIndex]
		sawSentinel := false
		if length == SentinelLength {
			sawSentinel = true
			readIndex = 0
			pt = atomic.LoadUint32(rb.prodTailPtr())
			if readIndex == pt {
				return nil, ErrEmpty
			}
			length = rb.data[0]
		}

		var newHead uint32
		if sawSentinel {
			newHead = length + 1
		} else {
			newHead = (ch + length + 1) % rb.nbWords
		}

		if !atomic.CompareAndSwapUint32(rb.consHeadPtr(), ch, newHead) {
			continue
		}

		return &Transaction{
			rb:           rb,
			side:         SideConsumer,
			reserveStart: ch,
			newHead:      newHead,
			payloadStart: (readIndex + 1) % rb.nbWords,
			length:       length,
			wrapped:      sawSentinel,
		}, nil
	}
}

// DequeueCommit releases a consumer transaction's slot, advancing
// cons_tail. Must not be called until the caller has finished reading
// the payload; it waits for any earlier concurrent reservation to
// publish first, so cons_tail always advances in reservation order.
func (rb *RingBuffer) DequeueCommit(tx *Transaction) {
	rb.commit(tx, SideConsumer, rb.consTailPtr())
}

// Dequeue performs a full consumer transaction: it reserves the oldest
// message, copies it into buf, and publishes the release. It returns
// ErrBufferTooSmall (without reserving anything) if the next message
// would not fit in buf. If a concurrent consumer takes that message
// first and the message reserved instead is longer than buf, that
// message is consumed and dropped, and ErrBufferTooSmall is returned.
func (rb *RingBuffer) Dequeue(buf []uint32) (int, error) {
	if length, ok := rb.peekNextLength(); ok && int(length) > len(buf) {
		return 0, ErrBufferTooSmall
	}

	tx, err := rb.DequeueAlloc()
	if err != nil {
		return 0, err
	}

	if int(tx.length) > len(buf) {
		// Lost the race: a different, longer message was reserved
		// between the peek above and this allocation. The
		// transaction must still be committed (there is no abort),
		// so the message is drained from the ring and reported lost.
		rb.DequeueCommit(tx)
		return 0, ErrBufferTooSmall
	}

	n := copy(buf, rb.data[tx.payloadStart:int(tx.payloadStart)+int(tx.length)])
	rb.DequeueCommit(tx)
	return n, nil
}

// peekNextLength reports the length of the next message without
// reserving it. The result is a hint, not authoritative: by the time
// the caller acts on it, concurrent consumers may have already taken
// that message.
func (rb *RingBuffer) peekNextLength() (uint32, bool) {
	ch := atomic.LoadUint32(rb.consHeadPtr())
	pt := atomic.LoadUint32(rb.prodTailPtr())
	if ch == pt {
		return 0, false
	}
	length := rb.data[ch]
	if length == SentinelLength {
		pt = atomic.LoadUint32(rb.prodTailPtr())
		if pt == 0 {
			return 0, false
		}
		length = rb.data[0]
	}
	return length, true
}

func (rb *RingBuffer) commit(tx *Transaction, side Side, tailPtr *uint32) {
	if tx.side != side {
		panic(fmt.Sprintf("ringbuf: %s commit called on a %s transaction", side, tx.side))
	}
	if tx.committed {
		panic("ringbuf: transaction committed twice")
	}

	spins := 0
	for atomic.LoadUint32(tailPtr) != tx.reserveStart {
		spins++
		if spins >= spinWaitTurn {
			runtime.Gosched()
			spins = 0
		}
	}
	atomic.StoreUint32(tailPtr, tx.newHead)
	tx.committed = true
}
