// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ringbuf

import "errors"

// Sentinel errors returned by this package. NotEnoughSpace and Empty
// are expected, common, non-fatal signals a caller is meant to poll
// on; the rest indicate an environmental or programming fault.
var (
	// ErrCreateFailed is returned when the backing file cannot be
	// created, sized, or initialized.
	ErrCreateFailed = errors.New("ringbuf: create failed")

	// ErrAttachFailed is returned when the backing file cannot be
	// opened, sized, or mapped.
	ErrAttachFailed = errors.New("ringbuf: attach failed")

	// ErrCorruptHeader is returned when an attached file violates a
	// header invariant (wrong size, or a counter >= nb_words).
	ErrCorruptHeader = errors.New("ringbuf: corrupt header")

	// ErrNotEnoughSpace is returned when a producer cannot reserve the
	// requested number of words.
	ErrNotEnoughSpace = errors.New("ringbuf: not enough space")

	// ErrEmpty is returned when a consumer finds no message to read.
	ErrEmpty = errors.New("ringbuf: empty")

	// ErrBufferTooSmall is returned when the caller's destination
	// buffer is shorter than the next message's payload.
	ErrBufferTooSmall = errors.New("ringbuf: destination buffer too small")
)
