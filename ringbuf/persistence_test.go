// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ringbuf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// E6: process A creates and enqueues a message, detaches; process B
// (simulated by a fresh Attach in this process) attaches and
// dequeues the same message unchanged.
func TestRingBuffer_E6_PersistenceAcrossDetachReattach(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring")

	require.NoError(t, Create(path, 16))

	producer, err := Attach(path)
	require.NoError(t, err)
	require.NoError(t, producer.Enqueue([]uint32{7, 8, 9}))
	require.NoError(t, producer.Detach())

	consumer, err := Attach(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, consumer.Detach()) }()

	buf := make([]uint32, 16)
	n, err := consumer.Dequeue(buf)
	require.NoError(t, err)
	require.Equal(t, []uint32{7, 8, 9}, buf[:n])
}

func TestAttach_RejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring")
	require.NoError(t, Create(path, 16))
	require.NoError(t, os.Truncate(path, headerSize+4))

	_, err := Attach(path)
	require.ErrorIs(t, err, ErrCorruptHeader)
}

func TestAttach_RejectsMissingFile(t *testing.T) {
	_, err := Attach(filepath.Join(t.TempDir(), "does-not-exist"))
	require.ErrorIs(t, err, ErrAttachFailed)
}
