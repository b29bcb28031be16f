// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ringbuf

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// spinEnqueue retries on NOT_ENOUGH_SPACE until the message fits.
func spinEnqueue(t *testing.T, rb *RingBuffer, data []uint32) {
	t.Helper()
	for {
		err := rb.Enqueue(data)
		if err == nil {
			return
		}
		if !errors.Is(err, ErrNotEnoughSpace) {
			t.Fatalf("Enqueue: %v", err)
		}
	}
}

// spinDequeue retries on EMPTY until a message is available.
func spinDequeue(t *testing.T, rb *RingBuffer, buf []uint32) int {
	t.Helper()
	for {
		n, err := rb.Dequeue(buf)
		if err == nil {
			return n
		}
		if !errors.Is(err, ErrEmpty) {
			t.Fatalf("Dequeue: %v", err)
		}
	}
}

// E5: two producers, one consumer, 1000 unique messages per producer.
// The consumer must receive exactly 2000 messages, and each
// producer's messages must arrive in that producer's original order
// (property 3: FIFO per single-producer stream).
func TestRingBuffer_E5_TwoProducersOneConsumer(t *testing.T) {
	const perProducer = 1000
	rb := newTestRing(t, 512)

	var wg sync.WaitGroup
	wg.Add(2)
	for producer := uint32(0); producer < 2; producer++ {
		go func(producer uint32) {
			defer wg.Done()
			for seq := uint32(0); seq < perProducer; seq++ {
				spinEnqueue(t, rb, []uint32{producer, seq})
			}
		}(producer)
	}

	var received uint64
	nextSeq := [2]uint32{}
	buf := make([]uint32, 4)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for int(atomic.LoadUint64(&received)) < 2*perProducer {
		n, err := rb.Dequeue(buf)
		if err != nil {
			if errors.Is(err, ErrEmpty) {
				continue
			}
			t.Fatalf("Dequeue: %v", err)
		}
		if n != 2 {
			t.Fatalf("Dequeue returned %d words, want 2", n)
		}
		producer, seq := buf[0], buf[1]
		if producer > 1 {
			t.Fatalf("unexpected producer id %d", producer)
		}
		if seq != nextSeq[producer] {
			t.Fatalf("producer %d: got seq %d, want %d (out of order)", producer, seq, nextSeq[producer])
		}
		nextSeq[producer]++
		atomic.AddUint64(&received, 1)
	}

	<-done

	if nextSeq[0] != perProducer || nextSeq[1] != perProducer {
		t.Fatalf("final sequence counts = %v, want [%d %d]", nextSeq, perProducer, perProducer)
	}
}

// Property 4: a consumer never observes a partial payload. Run many
// producers and many consumers concurrently and verify every
// dequeued message is exactly one that some producer enqueued,
// bytes unchanged (property 2), with no duplicate and no corrupted
// message.
func TestRingBuffer_NoTornReads_MultipleProducersMultipleConsumers(t *testing.T) {
	const (
		numProducers = 4
		numConsumers = 3
		perProducer  = 500
	)
	rb := newTestRing(t, 1024)

	var wg sync.WaitGroup
	wg.Add(numProducers)
	for p := uint32(0); p < numProducers; p++ {
		go func(p uint32) {
			defer wg.Done()
			for seq := uint32(0); seq < perProducer; seq++ {
				spinEnqueue(t, rb, []uint32{p, seq, p*1000000 + seq})
			}
		}(p)
	}

	var (
		mu   sync.Mutex
		seen = make(map[uint64]bool)
	)
	var received uint64
	target := uint64(numProducers * perProducer)

	var consumerWG sync.WaitGroup
	consumerWG.Add(numConsumers)
	for c := 0; c < numConsumers; c++ {
		go func() {
			defer consumerWG.Done()
			buf := make([]uint32, 4)
			for atomic.LoadUint64(&received) < target {
				n, err := rb.Dequeue(buf)
				if err != nil {
					if errors.Is(err, ErrEmpty) {
						continue
					}
					t.Errorf("Dequeue: %v", err)
					return
				}
				if n != 3 {
					t.Errorf("Dequeue returned %d words, want 3", n)
					return
				}
				producer, seq, checksum := buf[0], buf[1], buf[2]
				if checksum != producer*1000000+seq {
					t.Errorf("torn read: producer=%d seq=%d checksum=%d", producer, seq, checksum)
					return
				}
				key := uint64(producer)<<32 | uint64(seq)

				mu.Lock()
				dup := seen[key]
				seen[key] = true
				mu.Unlock()

				if dup {
					t.Errorf("duplicate delivery of producer=%d seq=%d", producer, seq)
					return
				}
				atomic.AddUint64(&received, 1)
			}
		}()
	}

	wg.Wait()
	consumerWG.Wait()

	if got := atomic.LoadUint64(&received); got != target {
		t.Fatalf("received %d messages, want %d", got, target)
	}
}
