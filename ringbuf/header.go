// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ringbuf

// On-disk header layout (native byte order):
//
//	offset 0   u32 nb_words
//	offset 4   u32 mapped_size  (runtime-only, ignored on disk)
//	offset 8   u32 prod_head
//	offset 12  u32 prod_tail
//	offset 16  u32 cons_head
//	offset 20  u32 cons_tail
//	offset 24  nb_words x u32 data area
const (
	offsetNBWords    = 0
	offsetMappedSize = 4
	offsetProdHead   = 8
	offsetProdTail   = 12
	offsetConsHead   = 16
	offsetConsTail   = 20

	headerSize = 24
)

// SentinelLength is the wrap marker written in place of a real length
// word: a consumer that reads it jumps to data index 0 and retries.
// No legitimate payload length ever reaches this value, since Enqueue
// enforces L <= nb_words-2.
const SentinelLength uint32 = ^uint32(0)
